package repositories

import (
	"context"

	"github.com/umarali/qisst_management_app/internal/core/domain"
)

// CycleReader defines read operations for the cycle bucket.
type CycleReader interface {
	// LoadCycles returns the full cycle collection, newest first. The order
	// is maintained by insertion policy and stored as-is, never re-sorted.
	LoadCycles(ctx context.Context) ([]domain.Cycle, error)
}

// CycleWriter defines write operations for the cycle bucket.
type CycleWriter interface {
	// SaveCycles replaces the cycle bucket with the given collection.
	SaveCycles(ctx context.Context, cycles []domain.Cycle) error
}

// DrawResultWriter persists the outcome of a confirmed winner draw. Members
// and cycles must land in a single atomic write so a crash cannot leave a
// member flagged as winner while the cycle is still open, or vice versa.
type DrawResultWriter interface {
	SaveDrawResult(ctx context.Context, members []domain.Member, cycles []domain.Cycle) error
}

// CycleRepositoryFacade combines all cycle bucket operations.
type CycleRepositoryFacade interface {
	CycleReader
	CycleWriter
	DrawResultWriter
}
