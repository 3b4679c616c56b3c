package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/umarali/qisst_management_app/internal/core/ports/services"
	"github.com/umarali/qisst_management_app/internal/dto"
	"github.com/umarali/qisst_management_app/internal/middleware"
)

// advisorHandler handles HTTP requests for the AI advisor.
type advisorHandler struct {
	advisorService portssvc.AdvisorSvcFacade
}

// newAdvisorHandler creates a new advisorHandler.
func newAdvisorHandler(as portssvc.AdvisorSvcFacade) *advisorHandler {
	return &advisorHandler{
		advisorService: as,
	}
}

// registerAdvisorRoutes registers the advisor route.
func registerAdvisorRoutes(rg *gin.RouterGroup, advisorService portssvc.AdvisorSvcFacade) {
	h := newAdvisorHandler(advisorService)

	rg.POST("/advisor", h.getAdvice)
}

func (h *advisorHandler) getAdvice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.AdviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for GetAdvice", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	// Service-level failures degrade to fallback answers, so any error left
	// here is genuinely unexpected.
	answer, err := h.advisorService.GetAdvice(c.Request.Context(), req.Query)
	if err != nil {
		logger.Error("Failed to get advice", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get advice"})
		return
	}

	c.JSON(http.StatusOK, dto.AdviceResponse{Answer: answer})
}
