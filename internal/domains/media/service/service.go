package service

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/gabriel-vasile/mimetype"

	"mediaportal-backend/internal/domains/media/model"
	"mediaportal-backend/internal/shared/utils"
	"mediaportal-backend/pkg/logger"
)

// sniffLimit is how many leading bytes are read to detect a content type
// when the client declared none (matches mimetype's own read limit).
const sniffLimit = 3072

// ObjectStorage is the slice of the store adapter the media service needs.
type ObjectStorage interface {
	Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) (string, error)
}

// Service classifies uploads and hands them to the object store.
type Service interface {
	Upload(ctx context.Context, filename, contentType string, reader io.Reader, size int64) (string, error)
}

type mediaService struct {
	storage ObjectStorage
}

func NewMediaService(storage ObjectStorage) Service {
	return &mediaService{storage: storage}
}

// Upload stores one file and returns its public URL.
// The object key is <class>/<normalized filename>, so the same filename
// always lands on the same key and a re-upload overwrites the old asset.
// On any failure the caller gets an error and no URL, never a partial one.
func (s *mediaService) Upload(ctx context.Context, filename, contentType string, reader io.Reader, size int64) (string, error) {
	if contentType == "" || contentType == "application/octet-stream" {
		sniffed, sniffedReader, err := sniffContentType(reader)
		if err != nil {
			return "", model.NewUploadFailed(fmt.Errorf("failed to read upload: %w", err))
		}
		contentType = sniffed
		reader = sniffedReader
	}

	class := model.Classify(contentType)
	key := fmt.Sprintf("%s/%s", class, utils.NormalizeFilename(filename))

	url, err := s.storage.Upload(ctx, key, reader, size, contentType)
	if err != nil {
		logger.Error("media upload failed", err)
		return "", model.NewUploadFailed(err)
	}

	logger.Info("media uploaded", map[string]interface{}{
		"key":          key,
		"class":        string(class),
		"content_type": contentType,
		"size":         size,
	})

	return url, nil
}

// sniffContentType detects the MIME type from the leading bytes and returns
// a reader that replays them before the rest of the stream.
func sniffContentType(reader io.Reader) (string, io.Reader, error) {
	header := make([]byte, sniffLimit)
	n, err := io.ReadFull(reader, header)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return "", nil, err
	}
	header = header[:n]

	mtype := mimetype.Detect(header)
	return mtype.String(), io.MultiReader(bytes.NewReader(header), reader), nil
}
