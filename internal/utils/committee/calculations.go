// Package committee holds the pure bookkeeping calculations of the
// application: payment toggling, cycle labelling, winner selection and every
// derived statistic. Functions here never touch persistence; they take the
// current collections and return new ones or computed values.
package committee

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/umarali/qisst_management_app/internal/core/domain"
)

// TogglePayment flips the paid state for the (memberID, cycleID) pair: an
// existing record is removed, a missing one is inserted with status PAID and
// datePaid = now. Two consecutive toggles restore the original collection.
func TogglePayment(payments []domain.PaymentRecord, memberID, cycleID string, now time.Time) []domain.PaymentRecord {
	for i, p := range payments {
		if p.MemberID == memberID && p.CycleID == cycleID {
			next := make([]domain.PaymentRecord, 0, len(payments)-1)
			next = append(next, payments[:i]...)
			next = append(next, payments[i+1:]...)
			return next
		}
	}
	next := make([]domain.PaymentRecord, len(payments), len(payments)+1)
	copy(next, payments)
	return append(next, domain.PaymentRecord{
		MemberID: memberID,
		CycleID:  cycleID,
		Status:   domain.Paid,
		DatePaid: now,
	})
}

// CycleLabel derives the display label of the next cycle from the collection
// frequency and the number of cycles that already exist.
func CycleLabel(frequency domain.Frequency, existingCount int) string {
	prefix := "Cycle"
	if frequency == domain.Monthly {
		prefix = "Month"
	}
	return fmt.Sprintf("%s %d", prefix, existingCount+1)
}

// PotAmount is the projected payout of a single cycle: every member paying
// the full monthly-equivalent installment. It is not a sum of recorded
// payments.
func PotAmount(memberCount int, settings domain.CommitteeSettings) decimal.Decimal {
	perPerson := PerPersonMonthly(settings)
	return perPerson.Mul(decimal.NewFromInt(int64(memberCount)))
}

// PerPersonMonthly is the monthly-equivalent contribution of one member.
func PerPersonMonthly(settings domain.CommitteeSettings) decimal.Decimal {
	multiplier := decimal.NewFromInt(settings.Frequency.MonthlyMultiplier())
	return settings.InstallmentAmount.Mul(multiplier)
}

// CollectionRate is the share of members with a PAID record for the cycle,
// as a percentage. The denominator is floored at one so an empty committee
// reports 0 instead of dividing by zero.
func CollectionRate(payments []domain.PaymentRecord, cycleID string, memberCount int) float64 {
	paid := PaidCountForCycle(payments, cycleID)
	denom := memberCount
	if denom < 1 {
		denom = 1
	}
	return float64(paid) / float64(denom) * 100
}

// PaidCountForCycle counts PAID records recorded against the cycle.
func PaidCountForCycle(payments []domain.PaymentRecord, cycleID string) int {
	count := 0
	for _, p := range payments {
		if p.CycleID == cycleID && p.Status == domain.Paid {
			count++
		}
	}
	return count
}
