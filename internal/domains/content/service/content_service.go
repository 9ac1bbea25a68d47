package service

import (
	"context"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"mediaportal-backend/internal/domains/content/model"
	"mediaportal-backend/internal/domains/content/repository"
)

// contentService implements Service for one kind. All kind-specific behavior
// lives in the schema; the logic below is shared by news, books, maps and
// videos alike.
type contentService struct {
	schema   model.Schema
	repo     repository.Repository
	uploader Uploader
}

func NewContentService(schema model.Schema, repo repository.Repository, uploader Uploader) Service {
	return &contentService{
		schema:   schema,
		repo:     repo,
		uploader: uploader,
	}
}

func (s *contentService) List(ctx context.Context) ([]*model.Document, error) {
	docs, err := s.repo.List(ctx)
	if err != nil {
		return nil, model.NewStoreError(err)
	}
	return docs, nil
}

func (s *contentService) Get(ctx context.Context, id string) (*model.Document, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, model.NewInvalidID(id)
	}

	doc, err := s.repo.GetByID(ctx, parsed)
	if err != nil {
		return nil, model.NewStoreError(err)
	}
	if doc == nil {
		return nil, model.NewNotFound(s.schema.Kind, id)
	}

	return doc, nil
}

func (s *contentService) Create(ctx context.Context, fields map[string]string) (*model.Document, error) {
	pruned := s.prune(fields)

	if err := s.validateRequired(pruned); err != nil {
		return nil, err
	}

	doc, err := s.repo.Create(ctx, pruned)
	if err != nil {
		return nil, model.NewStoreError(err)
	}

	return doc, nil
}

func (s *contentService) Update(ctx context.Context, id string, fields map[string]string) (*model.Document, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, model.NewInvalidID(id)
	}

	pruned := s.prune(fields)

	// A media URL is only ever overwritten by a successful new upload.
	// An empty media value in the partial means "no new file was chosen",
	// so it must not erase the stored reference.
	for name, value := range pruned {
		if s.schema.IsMedia(name) && strings.TrimSpace(value) == "" {
			delete(pruned, name)
		}
	}

	doc, err := s.repo.Update(ctx, parsed, pruned)
	if err != nil {
		return nil, model.NewStoreError(err)
	}
	if doc == nil {
		return nil, model.NewNotFound(s.schema.Kind, id)
	}

	return doc, nil
}

func (s *contentService) Delete(ctx context.Context, id string) error {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return model.NewInvalidID(id)
	}

	deleted, err := s.repo.Delete(ctx, parsed)
	if err != nil {
		return model.NewStoreError(err)
	}
	if !deleted {
		return model.NewNotFound(s.schema.Kind, id)
	}

	return nil
}

// Submit executes the two-phase save. Phase 1 uploads every attachment in
// sequence; any failure aborts before a single byte is written to the
// collection, so an editing session never half-applies. Phase 2 merges the
// returned URLs over the submitted fields and performs one create or update.
func (s *contentService) Submit(ctx context.Context, id string, fields map[string]string, attachments []Attachment) (*model.Document, error) {
	merged := s.prune(fields)

	// Phase 1: uploads. Idempotent per filename, so a retried submit
	// overwrites rather than duplicates.
	for _, att := range attachments {
		if !s.schema.IsMedia(att.Field) {
			return nil, model.NewValidationFailed(s.schema.Kind, map[string]string{
				att.Field: "not a media field",
			})
		}

		url, err := s.uploader.Upload(ctx, att.Filename, att.ContentType, att.Reader, att.Size)
		if err != nil {
			return nil, model.NewUploadFailed(err)
		}
		merged[att.Field] = url
	}

	// Phase 2: single record write.
	if id == "" {
		return s.Create(ctx, merged)
	}
	return s.Update(ctx, id, merged)
}

// prune drops keys the schema does not know. The collection stays
// schema-validated no matter what the client sends.
func (s *contentService) prune(fields map[string]string) map[string]string {
	pruned := make(map[string]string, len(fields))
	for name, value := range fields {
		if s.schema.Has(name) {
			pruned[name] = value
		}
	}
	return pruned
}

// validateRequired enforces non-empty required fields at creation.
func (s *contentService) validateRequired(fields map[string]string) error {
	errs := validation.Errors{}
	for _, name := range s.schema.RequiredFields() {
		value := strings.TrimSpace(fields[name])
		if err := validation.Validate(value, validation.Required); err != nil {
			errs[name] = err
		}
	}

	if len(errs) > 0 {
		return model.NewValidationFailed(s.schema.Kind, errs)
	}
	return nil
}
