package repository

import (
	"context"

	"github.com/google/uuid"

	"mediaportal-backend/internal/domains/content/model"
)

// Repository is the persistence contract for one content kind.
// GetByID and Update return (nil, nil) when the identity does not exist;
// translating that into a domain error is the service's job.
type Repository interface {
	// EnsureTable bootstraps the kind's document table.
	EnsureTable(ctx context.Context) error

	// List returns all documents, newest first.
	List(ctx context.Context) ([]*model.Document, error)

	// GetByID returns one document or (nil, nil).
	GetByID(ctx context.Context, id uuid.UUID) (*model.Document, error)

	// Create inserts a new document and returns it with identity and timestamps.
	Create(ctx context.Context, fields map[string]string) (*model.Document, error)

	// Update merges partial fields into an existing document and refreshes
	// its update timestamp. Returns (nil, nil) when the id does not exist.
	Update(ctx context.Context, id uuid.UUID, fields map[string]string) (*model.Document, error)

	// Delete removes a document. Returns false when the id does not exist.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}
