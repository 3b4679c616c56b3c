package repositories

import (
	"context"

	"github.com/umarali/qisst_management_app/internal/core/domain"
)

// The persistent store holds each collection as one opaque snapshot blob, so
// repositories load and save whole collections rather than single rows. The
// service layer does read-modify-write under the session lock.

// MemberReader defines read operations for the member bucket.
type MemberReader interface {
	// LoadMembers returns the full member collection in insertion order.
	// A missing or corrupt bucket yields the empty collection, not an error.
	LoadMembers(ctx context.Context) ([]domain.Member, error)
}

// MemberWriter defines write operations for the member bucket.
type MemberWriter interface {
	// SaveMembers replaces the member bucket with the given collection.
	SaveMembers(ctx context.Context, members []domain.Member) error
}

// MemberRepositoryFacade combines all member bucket operations.
type MemberRepositoryFacade interface {
	MemberReader
	MemberWriter
}
