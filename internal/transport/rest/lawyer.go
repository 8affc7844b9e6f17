package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"lexsched/internal/domain"
)

// @Summary List lawyers
// @Tags Lawyers
// @Produce json
// @Success 200 {array} domain.Lawyer
// @Failure 500 {object} errorResponseBody "Internal server error"
// @Router /lawyers [get]
func (h *Handler) getLawyers(c *gin.Context) {
	lawyers, err := h.services.Lawyer.List(c.Request.Context())
	if err != nil {
		internalServerErrorResponse(c)
		return
	}

	successResponse(c, http.StatusOK, lawyers)
}

// @Summary Add a lawyer
// @Tags Lawyers
// @Accept json
// @Produce json
// @Param input body domain.LawyerInput true "Lawyer data"
// @Success 201 {object} map[string]interface{} "ID of the created lawyer"
// @Failure 400 {object} errorResponseBody "Malformed payload"
// @Failure 422 {object} errorResponseBody "Per-field validation errors"
// @Failure 500 {object} errorResponseBody "Internal server error"
// @Router /lawyers [post]
func (h *Handler) createLawyer(c *gin.Context) {
	var input domain.LawyerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("malformed lawyer payload", zap.Error(err))
		badRequestResponse(c, "malformed request body")
		return
	}

	id, err := h.services.Lawyer.Create(c.Request.Context(), input)
	if err != nil {
		var verrs domain.ValidationErrors
		if errors.As(err, &verrs) {
			validationErrorResponse(c, verrs)
			return
		}
		internalServerErrorResponse(c)
		return
	}

	createdResponse(c, gin.H{"id": id})
}

// @Summary Get a lawyer
// @Tags Lawyers
// @Produce json
// @Param id path string true "Lawyer ID"
// @Success 200 {object} domain.Lawyer
// @Failure 404 {object} errorResponseBody "Lawyer not found"
// @Failure 500 {object} errorResponseBody "Internal server error"
// @Router /lawyers/{id} [get]
func (h *Handler) getLawyerByID(c *gin.Context) {
	lawyer, err := h.services.Lawyer.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			notFoundResponse(c, "lawyer not found")
			return
		}
		internalServerErrorResponse(c)
		return
	}

	successResponse(c, http.StatusOK, lawyer)
}

// @Summary Update a lawyer
// @Tags Lawyers
// @Accept json
// @Produce json
// @Param id path string true "Lawyer ID"
// @Param input body domain.LawyerInput true "Lawyer data"
// @Success 200 {object} messageResponseType
// @Failure 400 {object} errorResponseBody "Malformed payload"
// @Failure 404 {object} errorResponseBody "Lawyer not found"
// @Failure 422 {object} errorResponseBody "Per-field validation errors"
// @Failure 500 {object} errorResponseBody "Internal server error"
// @Router /lawyers/{id} [put]
func (h *Handler) updateLawyer(c *gin.Context) {
	var input domain.LawyerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("malformed lawyer payload", zap.Error(err))
		badRequestResponse(c, "malformed request body")
		return
	}

	err := h.services.Lawyer.Update(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		var verrs domain.ValidationErrors
		switch {
		case errors.As(err, &verrs):
			validationErrorResponse(c, verrs)
		case errors.Is(err, domain.ErrNotFound):
			notFoundResponse(c, "lawyer not found")
		default:
			internalServerErrorResponse(c)
		}
		return
	}

	messageResponse(c, http.StatusOK, "lawyer updated")
}

// @Summary Remove a lawyer
// @Description Removes the roster entry; appointments assigned to the lawyer are kept as-is
// @Tags Lawyers
// @Produce json
// @Param id path string true "Lawyer ID"
// @Success 204 "Deleted"
// @Failure 404 {object} errorResponseBody "Lawyer not found"
// @Failure 500 {object} errorResponseBody "Internal server error"
// @Router /lawyers/{id} [delete]
func (h *Handler) deleteLawyer(c *gin.Context) {
	err := h.services.Lawyer.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			notFoundResponse(c, "lawyer not found")
			return
		}
		internalServerErrorResponse(c)
		return
	}

	noContentResponse(c)
}
