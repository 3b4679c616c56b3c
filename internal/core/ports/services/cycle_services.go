package services

import (
	"context"

	"github.com/umarali/qisst_management_app/internal/core/domain"
	"github.com/umarali/qisst_management_app/internal/dto"
)

// CycleReaderSvc defines read operations for cycle data.
type CycleReaderSvc interface {
	// ListCycles returns every cycle, newest first.
	ListCycles(ctx context.Context) ([]domain.Cycle, error)

	// GetWinnerReceipt returns the receipt data for a completed cycle.
	GetWinnerReceipt(ctx context.Context, cycleID string) (*domain.WinnerReceipt, error)
}

// CycleWriterSvc defines write operations for cycle data.
type CycleWriterSvc interface {
	// CreateCycle opens a new cycle at the front of the list; it becomes the
	// current cycle for payment entry.
	CreateCycle(ctx context.Context, req dto.CreateCycleRequest) (*domain.Cycle, error)
}

// DrawSvc splits a winner draw into two independently testable steps:
// choosing a candidate and committing it after operator confirmation.
type DrawSvc interface {
	// ProposeWinner selects a candidate uniformly at random among members who
	// have not yet received the pot. Nothing is mutated.
	ProposeWinner(ctx context.Context, cycleID string) (*domain.Member, error)

	// ConfirmWinner commits a previously proposed candidate: the member is
	// marked as having received the pot and the cycle is completed, in one
	// atomic write. There is no undo.
	ConfirmWinner(ctx context.Context, cycleID string, memberID string) (*domain.Cycle, error)
}

// CycleSvcFacade combines all cycle-related service interfaces.
type CycleSvcFacade interface {
	CycleReaderSvc
	CycleWriterSvc
	DrawSvc
}
