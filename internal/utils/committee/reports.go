package committee

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/umarali/qisst_management_app/internal/core/domain"
)

// PeriodStart returns the inclusive lower bound of the report period,
// evaluated in now's location. TODAY is the current calendar day, WEEK starts
// on Sunday, MONTH on the first calendar day of the month.
func PeriodStart(period domain.ReportPeriod, now time.Time) time.Time {
	day := startOfDay(now)
	switch period {
	case domain.PeriodWeek:
		return day.AddDate(0, 0, -int(now.Weekday()))
	case domain.PeriodMonth:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	default:
		return day
	}
}

// PeriodReport computes the aggregate payment picture for cycles whose start
// date falls inside the period. The unpaid count is intentionally not clamped
// at zero: a negative value means payments exist for deleted members or
// cycles and is surfaced as an integrity warning instead of being hidden.
func PeriodReport(cycles []domain.Cycle, payments []domain.PaymentRecord, members []domain.Member, settings domain.CommitteeSettings, period domain.ReportPeriod, now time.Time) domain.PeriodReport {
	start := PeriodStart(period, now)

	filtered := make([]domain.Cycle, 0, len(cycles))
	for _, c := range cycles {
		cycleDay := startOfDay(c.StartDate.In(now.Location()))
		if period == domain.PeriodToday {
			if cycleDay.Equal(start) {
				filtered = append(filtered, c)
			}
		} else if !cycleDay.Before(start) {
			filtered = append(filtered, c)
		}
	}

	inRange := make(map[string]bool, len(filtered))
	for _, c := range filtered {
		inRange[c.CycleID] = true
	}

	totalPaid := 0
	for _, p := range payments {
		if p.Status == domain.Paid && inRange[p.CycleID] {
			totalPaid++
		}
	}

	totalExpected := len(members) * len(filtered)
	totalUnpaid := totalExpected - totalPaid

	denom := totalExpected
	if denom < 1 {
		denom = 1
	}

	report := domain.PeriodReport{
		Period:           period,
		CycleCount:       len(filtered),
		TotalExpected:    totalExpected,
		TotalPaid:        totalPaid,
		TotalUnpaid:      totalUnpaid,
		AmountPaid:       settings.InstallmentAmount.Mul(decimal.NewFromInt(int64(totalPaid))),
		AmountUnpaid:     settings.InstallmentAmount.Mul(decimal.NewFromInt(int64(totalUnpaid))),
		CompletionRate:   float64(totalPaid) / float64(denom) * 100,
		PaidMembers:      []domain.Member{},
		UnpaidMembers:    []domain.Member{},
		IntegrityWarning: totalUnpaid < 0,
	}

	// Member lists reflect only the most recent cycle within the filtered
	// set; the cycle list is maintained newest-first so that is index 0.
	if len(filtered) > 0 {
		latest := filtered[0]
		for _, m := range members {
			if domain.HasPayment(payments, m.MemberID, latest.CycleID) {
				report.PaidMembers = append(report.PaidMembers, m)
			} else {
				report.UnpaidMembers = append(report.UnpaidMembers, m)
			}
		}
	}

	return report
}

// DashboardSummary computes the headline numbers for the main screen.
func DashboardSummary(members []domain.Member, cycles []domain.Cycle, payments []domain.PaymentRecord, settings domain.CommitteeSettings) domain.DashboardSummary {
	winners := 0
	for _, m := range members {
		if m.HasReceivedPot {
			winners++
		}
	}

	completed := 0
	for _, c := range cycles {
		if c.IsCompleted {
			completed++
		}
	}

	summary := domain.DashboardSummary{
		MemberCount:       len(members),
		WinnersCount:      winners,
		ActiveCount:       len(members) - winners,
		TotalCycles:       len(cycles),
		CompletedCycles:   completed,
		PerPersonMonthly:  PerPersonMonthly(settings),
		PotAmount:         PotAmount(len(members), settings),
		CommitteeName:     settings.CommitteeName,
		Currency:          settings.Currency,
		InstallmentAmount: settings.InstallmentAmount,
		Frequency:         settings.Frequency,
	}

	if len(cycles) > 0 {
		current := cycles[0]
		summary.CurrentCycle = &current
		summary.CurrentPaidCount = PaidCountForCycle(payments, current.CycleID)
		summary.CollectionRate = CollectionRate(payments, current.CycleID, len(members))
	}

	return summary
}

// MemberSummary computes lifetime totals and the per-cycle payment history
// for one member. History is sorted newest-first by cycle start date.
func MemberSummary(member domain.Member, cycles []domain.Cycle, payments []domain.PaymentRecord, settings domain.CommitteeSettings) domain.MemberSummary {
	paidCycles := 0
	for _, p := range payments {
		if p.MemberID == member.MemberID && p.Status == domain.Paid {
			paidCycles++
		}
	}

	pending := len(cycles) - paidCycles

	sorted := make([]domain.Cycle, len(cycles))
	copy(sorted, cycles)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartDate.After(sorted[j].StartDate)
	})

	history := make([]domain.CyclePaidEntry, 0, len(sorted))
	for _, c := range sorted {
		history = append(history, domain.CyclePaidEntry{
			Cycle: c,
			Paid:  domain.HasPayment(payments, member.MemberID, c.CycleID),
		})
	}

	summary := domain.MemberSummary{
		Member:          member,
		TotalPaidCycles: paidCycles,
		TotalPaidAmount: settings.InstallmentAmount.Mul(decimal.NewFromInt(int64(paidCycles))),
		PendingCycles:   pending,
		PendingAmount:   settings.InstallmentAmount.Mul(decimal.NewFromInt(int64(pending))),
		History:         history,
	}

	for i := range cycles {
		if cycles[i].WinnerID != nil && *cycles[i].WinnerID == member.MemberID {
			winning := cycles[i]
			summary.WinningCycle = &winning
			break
		}
	}

	return summary
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
