package model

import (
	"errors"
	"fmt"
	"net/http"
)

// ContentError is the base error for the content domain.
type ContentError struct {
	Code    string      // unique error code (e.g. "CONTENT_NOT_FOUND")
	Message string      // human-readable message
	Details interface{} // optional per-field details
	Err     error       // underlying error
}

// Error implements error interface
func (e *ContentError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap allows error wrapping compatibility
func (e *ContentError) Unwrap() error {
	return e.Err
}

// ============================================
// ERROR FACTORY FUNCTIONS
// ============================================

// NewNotFound - no document with this identity in the kind's collection
func NewNotFound(kind, id string) *ContentError {
	return &ContentError{
		Code:    "CONTENT_NOT_FOUND",
		Message: fmt.Sprintf("No %s entry with id %s", kind, id),
	}
}

// NewInvalidID - identity is not a valid UUID
func NewInvalidID(id string) *ContentError {
	return &ContentError{
		Code:    "INVALID_CONTENT_ID",
		Message: fmt.Sprintf("Invalid content id: %s", id),
	}
}

// NewValidationFailed - a required field is missing or empty
func NewValidationFailed(kind string, details interface{}) *ContentError {
	return &ContentError{
		Code:    "CONTENT_VALIDATION_FAILED",
		Message: fmt.Sprintf("Validation failed for %s", kind),
		Details: details,
	}
}

// NewUploadFailed - media upload failed, the pending save was abandoned
func NewUploadFailed(err error) *ContentError {
	return &ContentError{
		Code:    "MEDIA_UPLOAD_FAILED",
		Message: "Media upload failed",
		Err:     err,
	}
}

// NewStoreError - the database rejected or lost the operation
func NewStoreError(err error) *ContentError {
	return &ContentError{
		Code:    "CONTENT_STORE_ERROR",
		Message: "Content store operation failed",
		Err:     err,
	}
}

// ============================================
// ERROR CHECKING FUNCTIONS
// ============================================

func IsNotFound(err error) bool {
	var cerr *ContentError
	return errors.As(err, &cerr) && cerr.Code == "CONTENT_NOT_FOUND"
}

func IsValidationFailed(err error) bool {
	var cerr *ContentError
	return errors.As(err, &cerr) && cerr.Code == "CONTENT_VALIDATION_FAILED"
}

func IsUploadFailed(err error) bool {
	var cerr *ContentError
	return errors.As(err, &cerr) && cerr.Code == "MEDIA_UPLOAD_FAILED"
}

func IsDomainError(err error) bool {
	var cerr *ContentError
	return errors.As(err, &cerr)
}

// MapErrorToHTTP maps a domain error to (status, message, code, details).
// Errors are never recovered here, only translated; the policy is one
// verbatim report upward per failure.
func MapErrorToHTTP(err error) (int, string, string, interface{}) {
	var cerr *ContentError
	if !errors.As(err, &cerr) {
		return http.StatusInternalServerError, "Internal server error", "INTERNAL_ERROR", nil
	}

	switch cerr.Code {
	case "CONTENT_NOT_FOUND":
		return http.StatusNotFound, cerr.Message, cerr.Code, nil
	case "INVALID_CONTENT_ID":
		return http.StatusBadRequest, cerr.Message, cerr.Code, nil
	case "CONTENT_VALIDATION_FAILED":
		return http.StatusBadRequest, cerr.Message, cerr.Code, cerr.Details
	case "MEDIA_UPLOAD_FAILED":
		return http.StatusBadGateway, cerr.Message, cerr.Code, nil
	case "CONTENT_STORE_ERROR":
		return http.StatusInternalServerError, cerr.Message, cerr.Code, nil
	default:
		return http.StatusInternalServerError, cerr.Message, cerr.Code, nil
	}
}
