package services

import (
	"context"

	"github.com/umarali/qisst_management_app/internal/core/domain"
	"github.com/umarali/qisst_management_app/internal/dto"
)

// MemberReaderSvc defines read operations for member data.
type MemberReaderSvc interface {
	// ListMembers returns every member in insertion order.
	ListMembers(ctx context.Context) ([]domain.Member, error)

	// GetMemberByID retrieves a member by ID.
	GetMemberByID(ctx context.Context, memberID string) (*domain.Member, error)

	// GetMemberSummary computes the member's lifetime totals and per-cycle
	// payment history.
	GetMemberSummary(ctx context.Context, memberID string) (*domain.MemberSummary, error)
}

// MemberWriterSvc defines write operations for member data.
type MemberWriterSvc interface {
	// CreateMember registers a new member. The name must be non-empty.
	CreateMember(ctx context.Context, req dto.CreateMemberRequest) (*domain.Member, error)

	// UpdateMember changes a member's name and/or phone.
	UpdateMember(ctx context.Context, memberID string, req dto.UpdateMemberRequest) (*domain.Member, error)

	// DeleteMember removes the member. Payments recorded against them are
	// kept; orphans surface through the reporting integrity warning.
	DeleteMember(ctx context.Context, memberID string) error
}

// MemberSvcFacade combines all member-related service interfaces.
type MemberSvcFacade interface {
	MemberReaderSvc
	MemberWriterSvc
}
