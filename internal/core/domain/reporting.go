package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReportPeriod selects the date range of a period report.
type ReportPeriod string

const (
	PeriodToday ReportPeriod = "TODAY"
	PeriodWeek  ReportPeriod = "WEEK"  // Start of week (Sunday) through now
	PeriodMonth ReportPeriod = "MONTH" // First calendar day of the month through now
)

// Valid reports whether p is a known report period.
func (p ReportPeriod) Valid() bool {
	return p == PeriodToday || p == PeriodWeek || p == PeriodMonth
}

// PeriodReport aggregates payment activity for cycles whose start date falls
// inside the selected period.
type PeriodReport struct {
	Period         ReportPeriod    `json:"period"`
	CycleCount     int             `json:"cycleCount"` // Cycles in range
	TotalExpected  int             `json:"totalExpected"`
	TotalPaid      int             `json:"totalPaid"`
	TotalUnpaid    int             `json:"totalUnpaid"` // May be negative; see IntegrityWarning
	AmountPaid     decimal.Decimal `json:"amountPaid"`
	AmountUnpaid   decimal.Decimal `json:"amountUnpaid"`
	CompletionRate float64         `json:"completionRate"` // Percentage 0..100
	// PaidMembers and UnpaidMembers are computed only against the most recent
	// cycle within the filtered set, not aggregated across cycles.
	PaidMembers   []Member `json:"paidMembers"`
	UnpaidMembers []Member `json:"unpaidMembers"`
	// IntegrityWarning is set when more payments were recorded than expected
	// instances, which happens when members or cycles are deleted after
	// payments were recorded against them.
	IntegrityWarning bool `json:"integrityWarning"`
}

// DashboardSummary is the derived state shown on the main screen.
type DashboardSummary struct {
	MemberCount       int             `json:"memberCount"`
	WinnersCount      int             `json:"winnersCount"`
	ActiveCount       int             `json:"activeCount"` // Members still waiting for the pot
	TotalCycles       int             `json:"totalCycles"`
	CompletedCycles   int             `json:"completedCycles"`
	PerPersonMonthly  decimal.Decimal `json:"perPersonMonthly"`
	PotAmount         decimal.Decimal `json:"potAmount"`
	CurrentCycle      *Cycle          `json:"currentCycle,omitempty"`
	CurrentPaidCount  int             `json:"currentPaidCount"`
	CollectionRate    float64         `json:"collectionRate"` // Active cycle, percentage
	CommitteeName     string          `json:"committeeName"`
	Currency          string          `json:"currency"`
	InstallmentAmount decimal.Decimal `json:"installmentAmount"`
	Frequency         Frequency       `json:"frequency"`
}

// MemberSummary is the derived per-member view: lifetime totals plus the
// member's paid/unpaid status for every cycle, newest first.
type MemberSummary struct {
	Member          Member           `json:"member"`
	TotalPaidCycles int              `json:"totalPaidCycles"`
	TotalPaidAmount decimal.Decimal  `json:"totalPaidAmount"`
	PendingCycles   int              `json:"pendingCycles"`
	PendingAmount   decimal.Decimal  `json:"pendingAmount"`
	WinningCycle    *Cycle           `json:"winningCycle,omitempty"`
	History         []CyclePaidEntry `json:"history"`
}

// CyclePaidEntry pairs a cycle with the member's payment flag for it.
type CyclePaidEntry struct {
	Cycle Cycle `json:"cycle"`
	Paid  bool  `json:"paid"`
}

// WinnerReceipt is the printable-receipt data for a completed cycle.
type WinnerReceipt struct {
	Member        Member          `json:"member"`
	Cycle         Cycle           `json:"cycle"`
	CommitteeName string          `json:"committeeName"`
	Currency      string          `json:"currency"`
	PotAmount     decimal.Decimal `json:"potAmount"`
	IssuedAt      time.Time       `json:"issuedAt"`
}
