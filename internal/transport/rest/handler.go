package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"lexsched/config"
	"lexsched/internal/service"
)

type Handler struct {
	services *service.Services
	logger   *zap.Logger
	config   *config.Config
}

func NewHandler(services *service.Services, logger *zap.Logger, config *config.Config) *Handler {
	return &Handler{
		services: services,
		logger:   logger,
		config:   config,
	}
}

func (h *Handler) InitRoutes(router *gin.Engine) {
	router.Use(h.loggerMiddleware())

	router.Use(h.errorMiddleware())

	router.Use(h.corsMiddleware())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "version": h.config.Version})
	})

	api := router.Group("/api/v1")
	{
		firm := api.Group("/firm")
		{
			firm.GET("", h.getFirm)
			firm.PUT("", h.saveFirm)
		}

		lawyers := api.Group("/lawyers")
		{
			lawyers.GET("", h.getLawyers)
			lawyers.POST("", h.createLawyer)
			lawyers.GET("/:id", h.getLawyerByID)
			lawyers.PUT("/:id", h.updateLawyer)
			lawyers.DELETE("/:id", h.deleteLawyer)
		}

		appointments := api.Group("/appointments")
		{
			appointments.GET("", h.getAppointments)
			appointments.POST("", h.createAppointment)
			appointments.GET("/:id", h.getAppointmentByID)
			appointments.PUT("/:id", h.updateAppointment)
			appointments.DELETE("/:id", h.deleteAppointment)

			appointments.GET("/:id/documents", h.getAppointmentDocuments)
			appointments.POST("/:id/documents", h.attachAppointmentDocument)
			appointments.DELETE("/:id/documents/:docId", h.detachAppointmentDocument)
		}

		dashboard := api.Group("/dashboard")
		{
			dashboard.GET("/stats", h.getDashboardStats)
		}
	}
}
