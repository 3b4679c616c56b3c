package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/umarali/qisst_management_app/internal/apperrors"
	portssvc "github.com/umarali/qisst_management_app/internal/core/ports/services"
	"github.com/umarali/qisst_management_app/internal/dto"
	"github.com/umarali/qisst_management_app/internal/middleware"
)

// cycleHandler handles HTTP requests related to cycles and the winner draw.
type cycleHandler struct {
	cycleService portssvc.CycleSvcFacade
}

// newCycleHandler creates a new cycleHandler.
func newCycleHandler(cs portssvc.CycleSvcFacade) *cycleHandler {
	return &cycleHandler{
		cycleService: cs,
	}
}

// registerCycleRoutes registers routes related to cycles.
func registerCycleRoutes(rg *gin.RouterGroup, cycleService portssvc.CycleSvcFacade) {
	h := newCycleHandler(cycleService)

	cycles := rg.Group("/cycles")
	{
		cycles.POST("", h.createCycle)
		cycles.GET("", h.listCycles)
		cycles.POST("/:id/draw", h.proposeWinner)
		cycles.POST("/:id/winner", h.confirmWinner)
		cycles.GET("/:id/receipt", h.getWinnerReceipt)
	}
}

func (h *cycleHandler) createCycle(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCycleRequest
	// The request body is optional; a bodyless POST starts the cycle now.
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			logger.Warn("Failed to bind JSON for CreateCycle", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
			return
		}
	}

	cycle, err := h.cycleService.CreateCycle(c.Request.Context(), req)
	if err != nil {
		logger.Error("Failed to create cycle", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create cycle"})
		return
	}

	logger.Info("Cycle created successfully", slog.String("cycle_id", cycle.CycleID), slog.String("label", cycle.Label))
	c.JSON(http.StatusCreated, dto.ToCycleResponse(cycle))
}

func (h *cycleHandler) listCycles(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	cycles, err := h.cycleService.ListCycles(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list cycles", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve cycles"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListCyclesResponse(cycles))
}

// proposeWinner picks a draw candidate. Nothing is persisted until the
// operator confirms through the winner endpoint.
func (h *cycleHandler) proposeWinner(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	cycleID := c.Param("id")

	candidate, err := h.cycleService.ProposeWinner(c.Request.Context(), cycleID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Cycle not found"})
		case errors.Is(err, apperrors.ErrCycleCompleted):
			c.JSON(http.StatusConflict, gin.H{"error": "Cycle already has a winner"})
		case errors.Is(err, apperrors.ErrNoEligibleMembers):
			c.JSON(http.StatusConflict, gin.H{"error": "Every member has already received the pot"})
		default:
			logger.Error("Failed to propose winner", slog.String("cycle_id", cycleID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to propose winner"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.DrawCandidateResponse{
		Candidate: dto.ToMemberResponse(candidate),
		CycleID:   cycleID,
	})
}

func (h *cycleHandler) confirmWinner(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	cycleID := c.Param("id")

	var req dto.ConfirmWinnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ConfirmWinner", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	cycle, err := h.cycleService.ConfirmWinner(c.Request.Context(), cycleID, req.MemberID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Cycle or member not found"})
		case errors.Is(err, apperrors.ErrCycleCompleted):
			c.JSON(http.StatusConflict, gin.H{"error": "Cycle already has a winner"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to confirm winner",
				slog.String("cycle_id", cycleID),
				slog.String("member_id", req.MemberID),
				slog.String("error", err.Error()),
			)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to confirm winner"})
		}
		return
	}

	logger.Info("Winner confirmed", slog.String("cycle_id", cycleID), slog.String("member_id", req.MemberID))
	c.JSON(http.StatusOK, dto.ToCycleResponse(cycle))
}

func (h *cycleHandler) getWinnerReceipt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	cycleID := c.Param("id")

	receipt, err := h.cycleService.GetWinnerReceipt(c.Request.Context(), cycleID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No receipt available for this cycle"})
		} else {
			logger.Error("Failed to build winner receipt", slog.String("cycle_id", cycleID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve receipt"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToReceiptResponse(receipt))
}
