package dto

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/umarali/qisst_management_app/internal/core/domain"
)

// DashboardResponse is the headline view of the committee.
type DashboardResponse struct {
	CommitteeName     string          `json:"committeeName"`
	Currency          string          `json:"currency"`
	InstallmentAmount decimal.Decimal `json:"installmentAmount"`
	Frequency         string          `json:"frequency"`
	MemberCount       int             `json:"memberCount"`
	WinnersCount      int             `json:"winnersCount"`
	ActiveCount       int             `json:"activeCount"`
	TotalCycles       int             `json:"totalCycles"`
	CompletedCycles   int             `json:"completedCycles"`
	PerPersonMonthly  decimal.Decimal `json:"perPersonMonthly"`
	PotAmount         decimal.Decimal `json:"potAmount"`
	CurrentCycle      *CycleResponse  `json:"currentCycle,omitempty"`
	CurrentPaidCount  int             `json:"currentPaidCount"`
	CollectionRate    int             `json:"collectionRate"` // Rounded percentage
}

// PeriodReportResponse is the aggregate report for a date range.
type PeriodReportResponse struct {
	Period           string           `json:"period"`
	CycleCount       int              `json:"cycleCount"`
	TotalExpected    int              `json:"totalExpected"`
	TotalPaid        int              `json:"totalPaid"`
	TotalUnpaid      int              `json:"totalUnpaid"`
	AmountPaid       decimal.Decimal  `json:"amountPaid"`
	AmountUnpaid     decimal.Decimal  `json:"amountUnpaid"`
	CompletionRate   int              `json:"completionRate"` // Rounded percentage
	PaidMembers      []MemberResponse `json:"paidMembers"`
	UnpaidMembers    []MemberResponse `json:"unpaidMembers"`
	IntegrityWarning bool             `json:"integrityWarning"`
}

// MemberSummaryResponse is the per-member detail view.
type MemberSummaryResponse struct {
	Member          MemberResponse       `json:"member"`
	TotalPaidCycles int                  `json:"totalPaidCycles"`
	TotalPaidAmount decimal.Decimal      `json:"totalPaidAmount"`
	PendingCycles   int                  `json:"pendingCycles"`
	PendingAmount   decimal.Decimal      `json:"pendingAmount"`
	WinningCycle    *CycleResponse       `json:"winningCycle,omitempty"`
	History         []CycleHistoryEntry  `json:"history"`
}

// CycleHistoryEntry pairs a cycle with the member's payment flag for it.
type CycleHistoryEntry struct {
	Cycle CycleResponse `json:"cycle"`
	Paid  bool          `json:"paid"`
}

// ReceiptResponse is the winner receipt for a completed cycle.
type ReceiptResponse struct {
	Member        MemberResponse  `json:"member"`
	Cycle         CycleResponse   `json:"cycle"`
	CommitteeName string          `json:"committeeName"`
	Currency      string          `json:"currency"`
	PotAmount     decimal.Decimal `json:"potAmount"`
	IssuedAt      time.Time       `json:"issuedAt"`
}

// ToDashboardResponse converts the domain summary to the response DTO.
func ToDashboardResponse(s *domain.DashboardSummary) DashboardResponse {
	resp := DashboardResponse{
		CommitteeName:     s.CommitteeName,
		Currency:          s.Currency,
		InstallmentAmount: s.InstallmentAmount,
		Frequency:         string(s.Frequency),
		MemberCount:       s.MemberCount,
		WinnersCount:      s.WinnersCount,
		ActiveCount:       s.ActiveCount,
		TotalCycles:       s.TotalCycles,
		CompletedCycles:   s.CompletedCycles,
		PerPersonMonthly:  s.PerPersonMonthly,
		PotAmount:         s.PotAmount,
		CurrentPaidCount:  s.CurrentPaidCount,
		CollectionRate:    int(math.Round(s.CollectionRate)),
	}
	if s.CurrentCycle != nil {
		cycle := ToCycleResponse(s.CurrentCycle)
		resp.CurrentCycle = &cycle
	}
	return resp
}

// ToPeriodReportResponse converts the domain report to the response DTO.
func ToPeriodReportResponse(r *domain.PeriodReport) PeriodReportResponse {
	return PeriodReportResponse{
		Period:           string(r.Period),
		CycleCount:       r.CycleCount,
		TotalExpected:    r.TotalExpected,
		TotalPaid:        r.TotalPaid,
		TotalUnpaid:      r.TotalUnpaid,
		AmountPaid:       r.AmountPaid,
		AmountUnpaid:     r.AmountUnpaid,
		CompletionRate:   int(math.Round(r.CompletionRate)),
		PaidMembers:      ToListMembersResponse(r.PaidMembers).Members,
		UnpaidMembers:    ToListMembersResponse(r.UnpaidMembers).Members,
		IntegrityWarning: r.IntegrityWarning,
	}
}

// ToMemberSummaryResponse converts the domain member summary to the DTO.
func ToMemberSummaryResponse(s *domain.MemberSummary) MemberSummaryResponse {
	resp := MemberSummaryResponse{
		Member:          ToMemberResponse(&s.Member),
		TotalPaidCycles: s.TotalPaidCycles,
		TotalPaidAmount: s.TotalPaidAmount,
		PendingCycles:   s.PendingCycles,
		PendingAmount:   s.PendingAmount,
		History:         make([]CycleHistoryEntry, len(s.History)),
	}
	if s.WinningCycle != nil {
		cycle := ToCycleResponse(s.WinningCycle)
		resp.WinningCycle = &cycle
	}
	for i, entry := range s.History {
		resp.History[i] = CycleHistoryEntry{Cycle: ToCycleResponse(&entry.Cycle), Paid: entry.Paid}
	}
	return resp
}

// ToReceiptResponse converts the domain receipt to the response DTO.
func ToReceiptResponse(r *domain.WinnerReceipt) ReceiptResponse {
	return ReceiptResponse{
		Member:        ToMemberResponse(&r.Member),
		Cycle:         ToCycleResponse(&r.Cycle),
		CommitteeName: r.CommitteeName,
		Currency:      r.Currency,
		PotAmount:     r.PotAmount,
		IssuedAt:      r.IssuedAt,
	}
}
