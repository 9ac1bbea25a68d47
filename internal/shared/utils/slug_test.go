package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"spaces become hyphens", "Annual Report 2024", "annual-report-2024"},
		{"underscores become hyphens", "ban_do_hanh_chinh", "ban-do-hanh-chinh"},
		{"special chars stripped", "Q&A: What's New?", "qa-whats-new"},
		{"hyphen runs collapsed", "a -- b", "a-b"},
		{"edges trimmed", " -hello- ", "hello"},
		{"already clean", "video-archive", "video-archive"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Slugify(tt.input))
		})
	}
}

func TestNormalizeFilename(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"keeps extension lowercase", "Annual Report.PDF", "annual-report.pdf"},
		{"slugs base name", "My Photo (1).png", "my-photo-1.png"},
		{"no extension", "README", "readme"},
		{"dotfile keeps whole name as base", ".env", "env"},
		{"multiple dots use last", "archive.tar.gz", "archivetar.gz"},
		{"unusable name falls back", "???.png", "file.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeFilename(tt.input))
		})
	}
}

func TestNormalizeFilenameIsIdempotent(t *testing.T) {
	inputs := []string{"Annual Report.PDF", "My Photo (1).png", "plain.mp4"}
	for _, in := range inputs {
		once := NormalizeFilename(in)
		assert.Equal(t, once, NormalizeFilename(once))
	}
}
