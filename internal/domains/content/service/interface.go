package service

import (
	"context"
	"io"

	"mediaportal-backend/internal/domains/content/model"
)

// Attachment is one file selected for a media field during submit.
type Attachment struct {
	Field       string // media field the resulting URL is written to
	Filename    string
	ContentType string
	Reader      io.Reader
	Size        int64
}

// Uploader pushes one file to the media store and returns its public URL.
// Implemented by the media domain service.
type Uploader interface {
	Upload(ctx context.Context, filename, contentType string, reader io.Reader, size int64) (string, error)
}

// Service is the business logic contract for one content kind.
type Service interface {
	List(ctx context.Context) ([]*model.Document, error)
	Get(ctx context.Context, id string) (*model.Document, error)
	Create(ctx context.Context, fields map[string]string) (*model.Document, error)
	Update(ctx context.Context, id string, fields map[string]string) (*model.Document, error)
	Delete(ctx context.Context, id string) error

	// Submit is the two-phase "upload then save" workflow: every attachment
	// must upload successfully before any record write is attempted. An empty
	// id means create, otherwise update.
	Submit(ctx context.Context, id string, fields map[string]string, attachments []Attachment) (*model.Document, error)
}
