package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"lexsched/internal/domain"
)

// @Summary Get the firm profile
// @Description Returns the saved profile, or a default placeholder when none has been saved yet
// @Tags Firm
// @Produce json
// @Success 200 {object} domain.LawFirm
// @Failure 500 {object} errorResponseBody "Internal server error"
// @Router /firm [get]
func (h *Handler) getFirm(c *gin.Context) {
	firm, err := h.services.Firm.Get(c.Request.Context())
	if err != nil {
		internalServerErrorResponse(c)
		return
	}

	successResponse(c, http.StatusOK, firm)
}

// @Summary Save the firm profile
// @Description Replaces the single profile record wholesale
// @Tags Firm
// @Accept json
// @Produce json
// @Param input body domain.LawFirm true "Firm profile"
// @Success 200 {object} messageResponseType
// @Failure 400 {object} errorResponseBody "Malformed payload"
// @Failure 422 {object} errorResponseBody "Per-field validation errors"
// @Failure 500 {object} errorResponseBody "Internal server error"
// @Router /firm [put]
func (h *Handler) saveFirm(c *gin.Context) {
	var firm domain.LawFirm
	if err := c.ShouldBindJSON(&firm); err != nil {
		h.logger.Warn("malformed firm payload", zap.Error(err))
		badRequestResponse(c, "malformed request body")
		return
	}

	if err := h.services.Firm.Save(c.Request.Context(), firm); err != nil {
		var verrs domain.ValidationErrors
		if errors.As(err, &verrs) {
			validationErrorResponse(c, verrs)
			return
		}
		internalServerErrorResponse(c)
		return
	}

	messageResponse(c, http.StatusOK, "firm profile saved")
}
