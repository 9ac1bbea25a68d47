package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mediaportal-backend/internal/domains/content/model"
)

// fakeRepo is an in-memory Repository for service tests.
type fakeRepo struct {
	docs        map[uuid.UUID]*model.Document
	order       []uuid.UUID
	createCalls int
	updateCalls int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{docs: make(map[uuid.UUID]*model.Document)}
}

func (r *fakeRepo) EnsureTable(ctx context.Context) error { return nil }

func (r *fakeRepo) List(ctx context.Context) ([]*model.Document, error) {
	docs := make([]*model.Document, 0, len(r.order))
	for i := len(r.order) - 1; i >= 0; i-- {
		docs = append(docs, r.docs[r.order[i]])
	}
	return docs, nil
}

func (r *fakeRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Document, error) {
	return r.docs[id], nil
}

func (r *fakeRepo) Create(ctx context.Context, fields map[string]string) (*model.Document, error) {
	r.createCalls++
	doc := &model.Document{
		ID:        uuid.New(),
		Fields:    copyFields(fields),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	r.docs[doc.ID] = doc
	r.order = append(r.order, doc.ID)
	return doc, nil
}

func (r *fakeRepo) Update(ctx context.Context, id uuid.UUID, fields map[string]string) (*model.Document, error) {
	r.updateCalls++
	doc, ok := r.docs[id]
	if !ok {
		return nil, nil
	}
	for k, v := range fields {
		doc.Fields[k] = v
	}
	doc.UpdatedAt = time.Now()
	return doc, nil
}

func (r *fakeRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	if _, ok := r.docs[id]; !ok {
		return false, nil
	}
	delete(r.docs, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true, nil
}

func copyFields(fields map[string]string) map[string]string {
	cp := make(map[string]string, len(fields))
	for k, v := range fields {
		cp[k] = v
	}
	return cp
}

// fakeUploader returns deterministic URLs, or fails every upload.
type fakeUploader struct {
	fail    bool
	uploads []string
}

func (u *fakeUploader) Upload(ctx context.Context, filename, contentType string, reader io.Reader, size int64) (string, error) {
	if u.fail {
		return "", errors.New("store unreachable")
	}
	u.uploads = append(u.uploads, filename)
	return "http://store.local/media/" + filename, nil
}

func TestCreate(t *testing.T) {
	t.Run("PersistsWithRequiredFields", func(t *testing.T) {
		repo := newFakeRepo()
		svc := NewContentService(model.NewsSchema, repo, &fakeUploader{})

		doc, err := svc.Create(context.Background(), map[string]string{
			"title": "A",
			"body":  "B",
		})
		require.NoError(t, err)
		require.NotNil(t, doc)

		assert.NotEqual(t, uuid.Nil, doc.ID)
		assert.False(t, doc.CreatedAt.IsZero())
		assert.Equal(t, "A", doc.Fields["title"])
		assert.Equal(t, "B", doc.Fields["body"])
		_, hasMedia := doc.Fields["imageUrl"]
		assert.False(t, hasMedia, "media field must stay absent when nothing was uploaded")

		fetched, err := svc.Get(context.Background(), doc.ID.String())
		require.NoError(t, err)
		assert.Equal(t, doc.ID, fetched.ID)
	})

	t.Run("RejectsMissingRequiredField", func(t *testing.T) {
		repo := newFakeRepo()
		svc := NewContentService(model.NewsSchema, repo, &fakeUploader{})

		_, err := svc.Create(context.Background(), map[string]string{"title": "A"})
		require.Error(t, err)
		assert.True(t, model.IsValidationFailed(err))
		assert.Equal(t, 0, repo.createCalls, "no record may be persisted on validation failure")
	})

	t.Run("RejectsBlankRequiredField", func(t *testing.T) {
		repo := newFakeRepo()
		svc := NewContentService(model.BookSchema, repo, &fakeUploader{})

		_, err := svc.Create(context.Background(), map[string]string{
			"title":       "T",
			"author":      "   ",
			"description": "D",
		})
		require.Error(t, err)
		assert.True(t, model.IsValidationFailed(err))
	})

	t.Run("DropsUnknownFields", func(t *testing.T) {
		repo := newFakeRepo()
		svc := NewContentService(model.MapSchema, repo, &fakeUploader{})

		doc, err := svc.Create(context.Background(), map[string]string{
			"title":       "T",
			"description": "D",
			"rogueField":  "x",
		})
		require.NoError(t, err)
		_, ok := doc.Fields["rogueField"]
		assert.False(t, ok)
	})
}

func TestUpdate(t *testing.T) {
	t.Run("PreservesMediaWhenNoNewFile", func(t *testing.T) {
		repo := newFakeRepo()
		svc := NewContentService(model.MapSchema, repo, &fakeUploader{})

		created, err := svc.Create(context.Background(), map[string]string{
			"title":       "Old",
			"description": "D",
			"mapUrl":      "http://x/y.png",
		})
		require.NoError(t, err)

		updated, err := svc.Update(context.Background(), created.ID.String(), map[string]string{
			"title": "New",
		})
		require.NoError(t, err)
		assert.Equal(t, "New", updated.Fields["title"])
		assert.Equal(t, "http://x/y.png", updated.Fields["mapUrl"])
	})

	t.Run("EmptyMediaValueDoesNotEraseStoredURL", func(t *testing.T) {
		repo := newFakeRepo()
		svc := NewContentService(model.MapSchema, repo, &fakeUploader{})

		created, err := svc.Create(context.Background(), map[string]string{
			"title":       "T",
			"description": "D",
			"mapUrl":      "http://x/y.png",
		})
		require.NoError(t, err)

		updated, err := svc.Update(context.Background(), created.ID.String(), map[string]string{
			"mapUrl": "",
		})
		require.NoError(t, err)
		assert.Equal(t, "http://x/y.png", updated.Fields["mapUrl"])
	})

	t.Run("NewMediaValueOverwritesExactlyThatField", func(t *testing.T) {
		repo := newFakeRepo()
		svc := NewContentService(model.VideoSchema, repo, &fakeUploader{})

		created, err := svc.Create(context.Background(), map[string]string{
			"title":        "T",
			"description":  "D",
			"videoUrl":     "http://x/old.mp4",
			"thumbnailUrl": "http://x/thumb.png",
		})
		require.NoError(t, err)

		updated, err := svc.Update(context.Background(), created.ID.String(), map[string]string{
			"videoUrl": "http://x/new.mp4",
		})
		require.NoError(t, err)
		assert.Equal(t, "http://x/new.mp4", updated.Fields["videoUrl"])
		assert.Equal(t, "http://x/thumb.png", updated.Fields["thumbnailUrl"])
		assert.Equal(t, "T", updated.Fields["title"])
	})

	t.Run("UnknownIdentity", func(t *testing.T) {
		repo := newFakeRepo()
		svc := NewContentService(model.NewsSchema, repo, &fakeUploader{})

		_, err := svc.Update(context.Background(), uuid.NewString(), map[string]string{"title": "X"})
		require.Error(t, err)
		assert.True(t, model.IsNotFound(err))
	})

	t.Run("MalformedIdentity", func(t *testing.T) {
		repo := newFakeRepo()
		svc := NewContentService(model.NewsSchema, repo, &fakeUploader{})

		_, err := svc.Update(context.Background(), "not-a-uuid", map[string]string{"title": "X"})
		require.Error(t, err)
		assert.False(t, model.IsNotFound(err))
	})
}

func TestDelete(t *testing.T) {
	t.Run("RemovesDocument", func(t *testing.T) {
		repo := newFakeRepo()
		svc := NewContentService(model.BookSchema, repo, &fakeUploader{})

		created, err := svc.Create(context.Background(), map[string]string{
			"title":       "T",
			"author":      "A",
			"description": "D",
		})
		require.NoError(t, err)

		require.NoError(t, svc.Delete(context.Background(), created.ID.String()))

		_, err = svc.Get(context.Background(), created.ID.String())
		assert.True(t, model.IsNotFound(err))
	})

	t.Run("UnknownIdentityLeavesCollectionUntouched", func(t *testing.T) {
		repo := newFakeRepo()
		svc := NewContentService(model.BookSchema, repo, &fakeUploader{})

		_, err := svc.Create(context.Background(), map[string]string{
			"title":       "T",
			"author":      "A",
			"description": "D",
		})
		require.NoError(t, err)

		err = svc.Delete(context.Background(), uuid.NewString())
		require.Error(t, err)
		assert.True(t, model.IsNotFound(err))

		docs, err := svc.List(context.Background())
		require.NoError(t, err)
		assert.Len(t, docs, 1)
	})
}

func TestSubmit(t *testing.T) {
	t.Run("UploadsThenCreates", func(t *testing.T) {
		repo := newFakeRepo()
		uploader := &fakeUploader{}
		svc := NewContentService(model.BookSchema, repo, uploader)

		doc, err := svc.Submit(context.Background(), "", map[string]string{
			"title":       "T",
			"author":      "A",
			"description": "D",
		}, []Attachment{
			{Field: "coverUrl", Filename: "cover.png", ContentType: "image/png", Reader: strings.NewReader("png"), Size: 3},
			{Field: "pdfUrl", Filename: "book.pdf", ContentType: "application/pdf", Reader: strings.NewReader("pdf"), Size: 3},
		})
		require.NoError(t, err)

		assert.Equal(t, "http://store.local/media/cover.png", doc.Fields["coverUrl"])
		assert.Equal(t, "http://store.local/media/book.pdf", doc.Fields["pdfUrl"])
		assert.Equal(t, []string{"cover.png", "book.pdf"}, uploader.uploads)
	})

	t.Run("UploadFailureAbortsBeforeAnyWrite", func(t *testing.T) {
		repo := newFakeRepo()
		svc := NewContentService(model.NewsSchema, repo, &fakeUploader{fail: true})

		_, err := svc.Submit(context.Background(), "", map[string]string{
			"title": "T",
			"body":  "B",
		}, []Attachment{
			{Field: "imageUrl", Filename: "a.png", ContentType: "image/png", Reader: strings.NewReader("x"), Size: 1},
		})
		require.Error(t, err)
		assert.True(t, model.IsUploadFailed(err))
		assert.Equal(t, 0, repo.createCalls)
		assert.Equal(t, 0, repo.updateCalls)
	})

	t.Run("UploadFailureLeavesExistingRecordUntouched", func(t *testing.T) {
		repo := newFakeRepo()
		okUploader := &fakeUploader{}
		svc := NewContentService(model.MapSchema, repo, okUploader)

		created, err := svc.Create(context.Background(), map[string]string{
			"title":       "T",
			"description": "D",
			"mapUrl":      "http://x/y.png",
		})
		require.NoError(t, err)

		failing := NewContentService(model.MapSchema, repo, &fakeUploader{fail: true})
		_, err = failing.Submit(context.Background(), created.ID.String(), map[string]string{
			"title": "Changed",
		}, []Attachment{
			{Field: "mapUrl", Filename: "new.png", ContentType: "image/png", Reader: strings.NewReader("x"), Size: 1},
		})
		require.Error(t, err)

		current, err := svc.Get(context.Background(), created.ID.String())
		require.NoError(t, err)
		assert.Equal(t, "T", current.Fields["title"])
		assert.Equal(t, "http://x/y.png", current.Fields["mapUrl"])
	})

	t.Run("RejectsAttachmentOnNonMediaField", func(t *testing.T) {
		repo := newFakeRepo()
		svc := NewContentService(model.NewsSchema, repo, &fakeUploader{})

		_, err := svc.Submit(context.Background(), "", map[string]string{
			"title": "T",
			"body":  "B",
		}, []Attachment{
			{Field: "title", Filename: "a.png", ContentType: "image/png", Reader: strings.NewReader("x"), Size: 1},
		})
		require.Error(t, err)
		assert.True(t, model.IsValidationFailed(err))
	})
}

func TestList(t *testing.T) {
	t.Run("NewestFirst", func(t *testing.T) {
		repo := newFakeRepo()
		svc := NewContentService(model.NewsSchema, repo, &fakeUploader{})

		for i := 1; i <= 3; i++ {
			_, err := svc.Create(context.Background(), map[string]string{
				"title": fmt.Sprintf("n%d", i),
				"body":  "B",
			})
			require.NoError(t, err)
		}

		docs, err := svc.List(context.Background())
		require.NoError(t, err)
		require.Len(t, docs, 3)
		assert.Equal(t, "n3", docs[0].Fields["title"])
		assert.Equal(t, "n1", docs[2].Fields["title"])
	})
}
