package domain

import "time"

// Member represents a committee participant in the core domain.
// This is the primary representation used by services.
type Member struct {
	MemberID       string     `json:"memberID"` // Primary Key (UUID)
	Name           string     `json:"name"`     // Required display name
	Phone          string     `json:"phone"`    // Optional contact number
	JoinDate       time.Time  `json:"joinDate"` // Immutable, set at creation
	HasReceivedPot bool       `json:"hasReceivedPot"`
	ReceivedDate   *time.Time `json:"receivedDate,omitempty"` // Present iff HasReceivedPot
}

// Eligible reports whether the member can still win a draw.
func (m Member) Eligible() bool {
	return !m.HasReceivedPot
}

// EligibleMembers filters members that have not yet received the pot.
func EligibleMembers(members []Member) []Member {
	eligible := make([]Member, 0, len(members))
	for _, m := range members {
		if m.Eligible() {
			eligible = append(eligible, m)
		}
	}
	return eligible
}
