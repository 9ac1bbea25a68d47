package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mediaportal-backend/internal/domains/content/model"
	"mediaportal-backend/internal/domains/content/service"
	"mediaportal-backend/internal/shared/response"
)

// ContentHandler maps HTTP verbs onto the content service for one kind.
// It is instantiated once per schema and carries no state of its own.
type ContentHandler struct {
	schema  model.Schema
	service service.Service
}

// NewContentHandler creates the handler for one kind.
// Dependency injection pattern - receives service from container.
func NewContentHandler(schema model.Schema, svc service.Service) *ContentHandler {
	return &ContentHandler{
		schema:  schema,
		service: svc,
	}
}

// Schema exposes the bound schema (the router needs the kind segment).
func (h *ContentHandler) Schema() model.Schema {
	return h.schema
}

// List handles GET /api/{kind}
func (h *ContentHandler) List(c *gin.Context) {
	docs, err := h.service.List(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, docs)
}

// GetByID handles GET /api/{kind}/:id
func (h *ContentHandler) GetByID(c *gin.Context) {
	doc, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, doc)
}

// Create handles POST /api/{kind}
func (h *ContentHandler) Create(c *gin.Context) {
	fields, ok := h.bindFields(c)
	if !ok {
		return
	}

	doc, err := h.service.Create(c.Request.Context(), fields)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.JSON(c, http.StatusCreated, doc)
}

// Update handles PUT /api/{kind}/:id
func (h *ContentHandler) Update(c *gin.Context) {
	fields, ok := h.bindFields(c)
	if !ok {
		return
	}

	doc, err := h.service.Update(c.Request.Context(), c.Param("id"), fields)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, doc)
}

// Delete handles DELETE /api/{kind}/:id
func (h *ContentHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Submit handles the admin multipart endpoints:
//
//	POST /api/admin/{kind}       - create with attachments
//	PUT  /api/admin/{kind}/:id   - update with attachments
//
// Text parts become document fields; file parts are named after the media
// field they fill. Every upload must succeed before the record is written.
func (h *ContentHandler) Submit(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		response.BadRequest(c, "invalid multipart form")
		return
	}

	fields := make(map[string]string, len(form.Value))
	for name, values := range form.Value {
		if len(values) > 0 {
			fields[name] = values[0]
		}
	}

	var attachments []service.Attachment
	var openFiles []interface{ Close() error }
	defer func() {
		for _, f := range openFiles {
			_ = f.Close()
		}
	}()

	for name, headers := range form.File {
		if len(headers) == 0 {
			continue
		}
		header := headers[0]

		file, err := header.Open()
		if err != nil {
			response.BadRequest(c, "could not read uploaded file")
			return
		}
		openFiles = append(openFiles, file)

		attachments = append(attachments, service.Attachment{
			Field:       name,
			Filename:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Reader:      file,
			Size:        header.Size,
		})
	}

	id := c.Param("id")
	doc, err := h.service.Submit(c.Request.Context(), id, fields, attachments)
	if err != nil {
		h.writeError(c, err)
		return
	}

	status := http.StatusOK
	if id == "" {
		status = http.StatusCreated
	}
	response.JSON(c, status, doc)
}

// bindFields reads the JSON body into a string field bag.
func (h *ContentHandler) bindFields(c *gin.Context) (map[string]string, bool) {
	var fields map[string]string
	if err := c.ShouldBindJSON(&fields); err != nil {
		response.BadRequest(c, "Invalid request payload: "+err.Error())
		return nil, false
	}
	return fields, true
}

func (h *ContentHandler) writeError(c *gin.Context, err error) {
	status, message, code, details := model.MapErrorToHTTP(err)
	if details != nil {
		response.ErrorWithDetails(c, status, code, message, details)
		return
	}
	response.ErrorResponse(c, status, code, message)
}
