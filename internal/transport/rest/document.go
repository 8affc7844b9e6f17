package rest

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"lexsched/internal/domain"
	"lexsched/internal/service"
)

const maxDocumentSize = 10 << 20 // 10 MB

// @Summary Attach a document
// @Description Uploads a court filing (PDF or image) and attaches it to the appointment
// @Tags Documents
// @Accept mpfd
// @Produce json
// @Param id path string true "Appointment ID"
// @Param file formData file true "Document file"
// @Success 201 {object} domain.AppointmentDocument
// @Failure 400 {object} errorResponseBody "Missing or unsupported file"
// @Failure 404 {object} errorResponseBody "Appointment not found"
// @Failure 503 {object} errorResponseBody "Document storage not configured"
// @Failure 500 {object} errorResponseBody "Internal server error"
// @Router /appointments/{id}/documents [post]
func (h *Handler) attachAppointmentDocument(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		badRequestResponse(c, "a file is required")
		return
	}
	if fileHeader.Size > maxDocumentSize {
		badRequestResponse(c, "file exceeds the 10 MB limit")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.logger.Error("failed to open uploaded file", zap.Error(err))
		internalServerErrorResponse(c)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		h.logger.Error("failed to read uploaded file", zap.Error(err))
		internalServerErrorResponse(c)
		return
	}

	document, err := h.services.Document.Attach(c.Request.Context(), c.Param("id"), data, fileHeader.Filename)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			notFoundResponse(c, "appointment not found")
		case errors.Is(err, service.ErrStorageUnavailable):
			errorResponse(c, http.StatusServiceUnavailable, "document storage is not configured")
		default:
			badRequestResponse(c, err.Error())
		}
		return
	}

	createdResponse(c, document)
}

// @Summary List attached documents
// @Tags Documents
// @Produce json
// @Param id path string true "Appointment ID"
// @Success 200 {array} domain.AppointmentDocument
// @Failure 404 {object} errorResponseBody "Appointment not found"
// @Failure 500 {object} errorResponseBody "Internal server error"
// @Router /appointments/{id}/documents [get]
func (h *Handler) getAppointmentDocuments(c *gin.Context) {
	documents, err := h.services.Document.ListByAppointment(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			notFoundResponse(c, "appointment not found")
			return
		}
		internalServerErrorResponse(c)
		return
	}

	successResponse(c, http.StatusOK, documents)
}

// @Summary Detach a document
// @Description Removes the stored object and its record
// @Tags Documents
// @Produce json
// @Param id path string true "Appointment ID"
// @Param docId path string true "Document ID"
// @Success 204 "Deleted"
// @Failure 404 {object} errorResponseBody "Document not found"
// @Failure 500 {object} errorResponseBody "Internal server error"
// @Router /appointments/{id}/documents/{docId} [delete]
func (h *Handler) detachAppointmentDocument(c *gin.Context) {
	err := h.services.Document.Detach(c.Request.Context(), c.Param("id"), c.Param("docId"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			notFoundResponse(c, "document not found")
			return
		}
		internalServerErrorResponse(c)
		return
	}

	noContentResponse(c)
}
