package domain

import "time"

// PaymentStatus is the recorded state of a contribution.
type PaymentStatus string

const (
	Paid PaymentStatus = "PAID"
	// Unpaid exists in the model but is never persisted: the absence of a
	// record for a (member, cycle) pair is the sole "unpaid" signal.
	Unpaid PaymentStatus = "UNPAID"
)

// PaymentRecord marks that a member paid their installment for a cycle.
// Identity is the (MemberID, CycleID) pair; at most one record may exist per
// pair at any time.
type PaymentRecord struct {
	MemberID string        `json:"memberID"`
	CycleID  string        `json:"cycleID"`
	Status   PaymentStatus `json:"status"`
	DatePaid time.Time     `json:"datePaid"`
}

// HasPayment reports whether a PAID record exists for the pair.
func HasPayment(payments []PaymentRecord, memberID, cycleID string) bool {
	for _, p := range payments {
		if p.MemberID == memberID && p.CycleID == cycleID && p.Status == Paid {
			return true
		}
	}
	return false
}
