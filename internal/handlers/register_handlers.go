package handlers

import (
	"github.com/gin-gonic/gin"

	portssvc "github.com/umarali/qisst_management_app/internal/core/ports/services"
	"github.com/umarali/qisst_management_app/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	setupAPIV1Routes(r, services)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(r *gin.Engine, services *portssvc.ServiceContainer) {
	v1 := r.Group("/api/v1")

	registerMemberRoutes(v1, services.Member)
	registerCycleRoutes(v1, services.Cycle)
	registerPaymentRoutes(v1, services.Payment)
	registerSettingsRoutes(v1, services.Settings)
	registerReportingRoutes(v1, services.Reporting)
	registerAdvisorRoutes(v1, services.Advisor)
}
