package rest

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"lexsched/internal/domain"
)

// @Summary Create an appointment
// @Description Validates the submitted form and stores the resulting appointment
// @Tags Appointments
// @Accept json
// @Produce json
// @Param input body domain.AppointmentForm true "Appointment form"
// @Success 201 {object} map[string]interface{} "ID of the created appointment"
// @Failure 400 {object} errorResponseBody "Malformed payload"
// @Failure 422 {object} errorResponseBody "Per-field validation errors"
// @Failure 500 {object} errorResponseBody "Internal server error"
// @Router /appointments [post]
func (h *Handler) createAppointment(c *gin.Context) {
	var form domain.AppointmentForm
	if err := c.ShouldBindJSON(&form); err != nil {
		h.logger.Warn("malformed appointment payload", zap.Error(err))
		badRequestResponse(c, "malformed request body")
		return
	}

	id, err := h.services.Appointment.Create(c.Request.Context(), form)
	if err != nil {
		var verrs domain.ValidationErrors
		if errors.As(err, &verrs) {
			validationErrorResponse(c, verrs)
			return
		}
		h.logger.Error("failed to create appointment", zap.Error(err))
		internalServerErrorResponse(c)
		return
	}

	createdResponse(c, gin.H{"id": id})
}

// @Summary Get an appointment
// @Tags Appointments
// @Produce json
// @Param id path string true "Appointment ID"
// @Success 200 {object} domain.Appointment
// @Failure 404 {object} errorResponseBody "Appointment not found"
// @Failure 500 {object} errorResponseBody "Internal server error"
// @Router /appointments/{id} [get]
func (h *Handler) getAppointmentByID(c *gin.Context) {
	appointment, err := h.services.Appointment.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			notFoundResponse(c, "appointment not found")
			return
		}
		internalServerErrorResponse(c)
		return
	}

	successResponse(c, http.StatusOK, appointment)
}

// @Summary Update an appointment
// @Description Replaces the appointment from a full form resubmission; the stored instant is regenerated from the form's date and time
// @Tags Appointments
// @Accept json
// @Produce json
// @Param id path string true "Appointment ID"
// @Param input body domain.AppointmentForm true "Appointment form"
// @Success 200 {object} messageResponseType
// @Failure 400 {object} errorResponseBody "Malformed payload"
// @Failure 404 {object} errorResponseBody "Appointment not found"
// @Failure 422 {object} errorResponseBody "Per-field validation errors"
// @Failure 500 {object} errorResponseBody "Internal server error"
// @Router /appointments/{id} [put]
func (h *Handler) updateAppointment(c *gin.Context) {
	var form domain.AppointmentForm
	if err := c.ShouldBindJSON(&form); err != nil {
		h.logger.Warn("malformed appointment payload", zap.Error(err))
		badRequestResponse(c, "malformed request body")
		return
	}

	err := h.services.Appointment.Update(c.Request.Context(), c.Param("id"), form)
	if err != nil {
		var verrs domain.ValidationErrors
		switch {
		case errors.As(err, &verrs):
			validationErrorResponse(c, verrs)
		case errors.Is(err, domain.ErrNotFound):
			notFoundResponse(c, "appointment not found")
		default:
			internalServerErrorResponse(c)
		}
		return
	}

	messageResponse(c, http.StatusOK, "appointment updated")
}

// @Summary Delete an appointment
// @Description Removes the appointment permanently; there is no undo
// @Tags Appointments
// @Produce json
// @Param id path string true "Appointment ID"
// @Success 204 "Deleted"
// @Failure 404 {object} errorResponseBody "Appointment not found"
// @Failure 500 {object} errorResponseBody "Internal server error"
// @Router /appointments/{id} [delete]
func (h *Handler) deleteAppointment(c *gin.Context) {
	err := h.services.Appointment.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			notFoundResponse(c, "appointment not found")
			return
		}
		internalServerErrorResponse(c)
		return
	}

	noContentResponse(c)
}

// @Summary List appointments
// @Description Lists appointments ascending by instant. scope=upcoming|past filters relative to now; day=YYYY-MM-DD returns one calendar day
// @Tags Appointments
// @Produce json
// @Param scope query string false "all, upcoming or past" default(all)
// @Param day query string false "Calendar day (YYYY-MM-DD)"
// @Success 200 {array} domain.Appointment
// @Failure 400 {object} errorResponseBody "Unknown scope or bad day"
// @Failure 500 {object} errorResponseBody "Internal server error"
// @Router /appointments [get]
func (h *Handler) getAppointments(c *gin.Context) {
	if dayStr := c.Query("day"); dayStr != "" {
		day, err := domain.ParseDate(dayStr)
		if err != nil {
			badRequestResponse(c, "day must be formatted YYYY-MM-DD")
			return
		}

		appointments, err := h.services.Appointment.ListByDay(c.Request.Context(), day)
		if err != nil {
			internalServerErrorResponse(c)
			return
		}

		successResponse(c, http.StatusOK, appointments)
		return
	}

	scope := domain.AppointmentScope(c.DefaultQuery("scope", string(domain.AppointmentScopeAll)))
	switch scope {
	case domain.AppointmentScopeAll, domain.AppointmentScopeUpcoming, domain.AppointmentScopePast:
	default:
		badRequestResponse(c, "scope must be all, upcoming or past")
		return
	}

	appointments, err := h.services.Appointment.List(c.Request.Context(), scope, time.Now())
	if err != nil {
		internalServerErrorResponse(c)
		return
	}

	successResponse(c, http.StatusOK, appointments)
}
