package model

import (
	"errors"
	"fmt"
	"net/http"
)

// MediaError is the base error for the media domain.
type MediaError struct {
	Code    string
	Message string
	Err     error
}

func (e *MediaError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *MediaError) Unwrap() error {
	return e.Err
}

// NewMissingFile - the multipart form carried no "file" field
func NewMissingFile() *MediaError {
	return &MediaError{
		Code:    "MEDIA_MISSING_FILE",
		Message: "No file provided in the upload",
	}
}

// NewUploadFailed - the store rejected or lost the upload; no URL exists
func NewUploadFailed(err error) *MediaError {
	return &MediaError{
		Code:    "MEDIA_UPLOAD_FAILED",
		Message: "Media upload failed",
		Err:     err,
	}
}

func IsUploadFailed(err error) bool {
	var merr *MediaError
	return errors.As(err, &merr) && merr.Code == "MEDIA_UPLOAD_FAILED"
}

// MapErrorToHTTP maps a media error to (status, message, code).
func MapErrorToHTTP(err error) (int, string, string) {
	var merr *MediaError
	if !errors.As(err, &merr) {
		return http.StatusInternalServerError, "Internal server error", "INTERNAL_ERROR"
	}

	switch merr.Code {
	case "MEDIA_MISSING_FILE":
		return http.StatusBadRequest, merr.Message, merr.Code
	case "MEDIA_UPLOAD_FAILED":
		return http.StatusBadGateway, merr.Message, merr.Code
	default:
		return http.StatusInternalServerError, merr.Message, merr.Code
	}
}
