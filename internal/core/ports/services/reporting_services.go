package services

import (
	"context"

	"github.com/umarali/qisst_management_app/internal/core/domain"
)

// ReportingSvcFacade defines the derived-statistics queries. All of them are
// pure reads recomputed from the current snapshots.
type ReportingSvcFacade interface {
	// GetDashboard returns the headline numbers for the main screen.
	GetDashboard(ctx context.Context) (*domain.DashboardSummary, error)

	// GetPeriodReport aggregates payment activity for cycles starting within
	// the period (TODAY, WEEK or MONTH).
	GetPeriodReport(ctx context.Context, period domain.ReportPeriod) (*domain.PeriodReport, error)
}

// AdvisorSvcFacade asks the external advice service a free-text question
// about the committee. Failures degrade to a fixed fallback answer.
type AdvisorSvcFacade interface {
	GetAdvice(ctx context.Context, query string) (string, error)
}
