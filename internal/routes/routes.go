package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"clinic-desk-server/internal/config"
	"clinic-desk-server/internal/handlers"
	"clinic-desk-server/internal/metrics"
	"clinic-desk-server/internal/middleware"
	"clinic-desk-server/internal/models"
)

// SetupRoutes configures the application routes. m may be nil, in which case
// /metrics answers 404.
func SetupRoutes(router *gin.Engine, svc handlers.ClinicService, cfg *config.Config, m *metrics.ClinicMetrics) {
	authHandler := handlers.NewAuthHandler(svc, cfg)
	directoryHandler := handlers.NewDirectoryHandler(svc)
	appointmentHandler := handlers.NewAppointmentHandler(svc, m)
	clientHandler := handlers.NewClientHandler(svc, m)

	// Public routes
	public := router.Group("/api/v1")
	{
		public.POST("/auth/login", authHandler.Login)
	}

	// Authenticated routes
	private := router.Group("/api/v1")
	private.Use(middleware.AuthMiddleware(cfg))
	{
		private.GET("/auth/profile", authHandler.GetProfile)

		// Reference data for both roles
		private.GET("/doctors", directoryHandler.GetDoctors)
		private.GET("/services", directoryHandler.GetServices)

		admin := private.Group("")
		admin.Use(middleware.RoleAuthMiddleware(models.RoleAdmin))
		{
			admin.GET("/appointments", appointmentHandler.GetAppointments)
			admin.POST("/appointments", appointmentHandler.CreateAppointment)
			admin.GET("/appointments/:id", appointmentHandler.GetAppointmentByID)
			admin.PUT("/appointments/:id", appointmentHandler.UpdateAppointment)
			admin.GET("/appointments/:id/services", appointmentHandler.GetAppointmentServices)

			admin.GET("/patients", directoryHandler.GetPatients)
			admin.POST("/patients", directoryHandler.CreatePatient)
		}

		me := private.Group("/me")
		me.Use(middleware.RoleAuthMiddleware(models.RoleClient))
		{
			me.GET("/appointments", clientHandler.GetMyAppointments)
			me.POST("/appointments", clientHandler.CreateMyAppointment)
		}
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "UP"})
	})
	router.GET("/metrics", gin.WrapH(m.Handler()))
}
