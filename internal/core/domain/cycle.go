package domain

import "time"

// Cycle represents one collection period of the committee.
// The cycle list is kept newest-first: index 0 is the current cycle.
type Cycle struct {
	CycleID   string    `json:"cycleID"` // Primary Key (UUID)
	Label     string    `json:"label"`   // e.g. "Month 3"
	StartDate time.Time `json:"startDate"`
	WinnerID  *string   `json:"winnerID,omitempty"` // Present only after a draw commit
	// IsCompleted is true exactly when WinnerID is set; it never reverts.
	IsCompleted bool `json:"isCompleted"`
}

// Completed reports whether this cycle already has a winner.
func (c Cycle) Completed() bool {
	return c.IsCompleted
}

// FindCycle returns the cycle with the given ID, or nil.
func FindCycle(cycles []Cycle, cycleID string) *Cycle {
	for i := range cycles {
		if cycles[i].CycleID == cycleID {
			return &cycles[i]
		}
	}
	return nil
}

// FindMember returns the member with the given ID, or nil.
func FindMember(members []Member, memberID string) *Member {
	for i := range members {
		if members[i].MemberID == memberID {
			return &members[i]
		}
	}
	return nil
}
