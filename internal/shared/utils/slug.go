package utils

import (
	"regexp"
	"strings"
)

var (
	slugInvalidChars = regexp.MustCompile(`[^a-z0-9-]+`)
	slugHyphenRuns   = regexp.MustCompile(`-+`)
)

// Slugify normalizes a string into a URL/object-key safe slug.
// "Annual Report 2024" -> "annual-report-2024"
func Slugify(input string) string {
	lower := strings.ToLower(input)
	hyphenated := strings.ReplaceAll(lower, " ", "-")
	hyphenated = strings.ReplaceAll(hyphenated, "_", "-")
	cleaned := slugInvalidChars.ReplaceAllString(hyphenated, "")
	normalized := slugHyphenRuns.ReplaceAllString(cleaned, "-")
	return strings.Trim(normalized, "-")
}

// NormalizeFilename slugs the base name and keeps the lowercased extension.
// The same original filename always yields the same key, so re-uploading a
// corrected asset overwrites instead of duplicating.
func NormalizeFilename(name string) string {
	ext := ""
	base := name
	if idx := strings.LastIndex(name, "."); idx > 0 {
		base = name[:idx]
		ext = strings.ToLower(name[idx+1:])
	}

	slug := Slugify(base)
	if slug == "" {
		slug = "file"
	}
	if ext == "" {
		return slug
	}
	return slug + "." + Slugify(ext)
}
