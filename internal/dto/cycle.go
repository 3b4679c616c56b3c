package dto

import (
	"time"

	"github.com/umarali/qisst_management_app/internal/core/domain"
)

// CreateCycleRequest defines the payload for opening a new cycle. The start
// date defaults to now when omitted.
type CreateCycleRequest struct {
	StartDate *time.Time `json:"startDate"`
}

// ConfirmWinnerRequest carries the operator's confirmation of a proposed
// draw candidate.
type ConfirmWinnerRequest struct {
	MemberID string `json:"memberID" binding:"required"`
}

// CycleResponse is the API representation of a cycle.
type CycleResponse struct {
	CycleID     string    `json:"cycleID"`
	Label       string    `json:"label"`
	StartDate   time.Time `json:"startDate"`
	WinnerID    *string   `json:"winnerID,omitempty"`
	IsCompleted bool      `json:"isCompleted"`
}

// ListCyclesResponse wraps the cycle list, newest first.
type ListCyclesResponse struct {
	Cycles []CycleResponse `json:"cycles"`
}

// DrawCandidateResponse is the proposed winner awaiting confirmation.
type DrawCandidateResponse struct {
	Candidate MemberResponse `json:"candidate"`
	CycleID   string         `json:"cycleID"`
}

// ToCycleResponse converts a domain.Cycle to its response DTO.
func ToCycleResponse(c *domain.Cycle) CycleResponse {
	return CycleResponse{
		CycleID:     c.CycleID,
		Label:       c.Label,
		StartDate:   c.StartDate,
		WinnerID:    c.WinnerID,
		IsCompleted: c.IsCompleted,
	}
}

// ToListCyclesResponse converts a slice of domain.Cycle to the list DTO.
func ToListCyclesResponse(cycles []domain.Cycle) ListCyclesResponse {
	responses := make([]CycleResponse, len(cycles))
	for i := range cycles {
		responses[i] = ToCycleResponse(&cycles[i])
	}
	return ListCyclesResponse{Cycles: responses}
}
