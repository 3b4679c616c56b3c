package dto

import (
	"time"

	"github.com/umarali/qisst_management_app/internal/core/domain"
)

// CreateMemberRequest defines the payload for registering a member.
type CreateMemberRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone"`
}

// UpdateMemberRequest defines the data allowed for updating a member.
// Using pointers to differentiate between omitted fields and zero-value fields.
type UpdateMemberRequest struct {
	Name  *string `json:"name"`
	Phone *string `json:"phone"`
}

// MemberResponse is the API representation of a member.
type MemberResponse struct {
	MemberID       string     `json:"memberID"`
	Name           string     `json:"name"`
	Phone          string     `json:"phone,omitempty"`
	JoinDate       time.Time  `json:"joinDate"`
	HasReceivedPot bool       `json:"hasReceivedPot"`
	ReceivedDate   *time.Time `json:"receivedDate,omitempty"`
}

// ListMembersResponse wraps the list of members.
type ListMembersResponse struct {
	Members []MemberResponse `json:"members"`
}

// ToMemberResponse converts a domain.Member to its response DTO.
func ToMemberResponse(m *domain.Member) MemberResponse {
	return MemberResponse{
		MemberID:       m.MemberID,
		Name:           m.Name,
		Phone:          m.Phone,
		JoinDate:       m.JoinDate,
		HasReceivedPot: m.HasReceivedPot,
		ReceivedDate:   m.ReceivedDate,
	}
}

// ToListMembersResponse converts a slice of domain.Member to the list DTO.
func ToListMembersResponse(members []domain.Member) ListMembersResponse {
	responses := make([]MemberResponse, len(members))
	for i := range members {
		responses[i] = ToMemberResponse(&members[i])
	}
	return ListMembersResponse{Members: responses}
}
