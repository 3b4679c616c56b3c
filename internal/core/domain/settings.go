package domain

import "github.com/shopspring/decimal"

// Frequency determines how often installments are collected, and the
// multiplier used to express every amount as a monthly equivalent.
type Frequency string

const (
	Daily   Frequency = "DAILY"
	Weekly  Frequency = "WEEKLY"
	Monthly Frequency = "MONTHLY"
)

// MonthlyMultiplier returns the monthly-equivalent factor for the frequency:
// DAILY counts as 30 days, WEEKLY as 4 weeks, MONTHLY as itself.
func (f Frequency) MonthlyMultiplier() int64 {
	switch f {
	case Daily:
		return 30
	case Weekly:
		return 4
	default:
		return 1
	}
}

// Valid reports whether f is one of the known frequencies.
func (f Frequency) Valid() bool {
	return f == Daily || f == Weekly || f == Monthly
}

// CommitteeSettings is the process-wide configuration of the committee.
// It is a singleton, replaced wholesale on save.
type CommitteeSettings struct {
	CommitteeName     string          `json:"committeeName"`
	InstallmentAmount decimal.Decimal `json:"installmentAmount"` // Per-period contribution per member
	Currency          string          `json:"currency"`          // Display label only
	Frequency         Frequency       `json:"frequency"`
}

// DefaultSettings are the first-run values used before the organizer saves
// anything.
func DefaultSettings() CommitteeSettings {
	return CommitteeSettings{
		CommitteeName:     "My Committee",
		InstallmentAmount: decimal.NewFromInt(1000),
		Currency:          "PKR",
		Frequency:         Monthly,
	}
}
