package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mediaportal-backend/internal/domains/media/model"
	"mediaportal-backend/internal/domains/media/service"
	"mediaportal-backend/internal/shared/response"
)

// MediaHandler handles HTTP requests for the upload pipeline
type MediaHandler struct {
	service service.Service
}

// NewMediaHandler creates a new media handler instance
// Dependency injection pattern - receives service from container.
func NewMediaHandler(svc service.Service) *MediaHandler {
	return &MediaHandler{service: svc}
}

// Upload handles POST /api/upload (multipart form, field "file").
// Success: 201 {"url": "..."}; any store failure is reported as-is, the
// caller must treat "no URL" as "no change to the media reference".
func (h *MediaHandler) Upload(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		status, message, code := model.MapErrorToHTTP(model.NewMissingFile())
		response.ErrorResponse(c, status, code, message)
		return
	}

	file, err := header.Open()
	if err != nil {
		response.BadRequest(c, "could not read uploaded file")
		return
	}
	defer file.Close()

	url, err := h.service.Upload(
		c.Request.Context(),
		header.Filename,
		header.Header.Get("Content-Type"),
		file,
		header.Size,
	)
	if err != nil {
		status, message, code := model.MapErrorToHTTP(err)
		response.ErrorResponse(c, status, code, message)
		return
	}

	response.JSON(c, http.StatusCreated, model.UploadResult{URL: url})
}
