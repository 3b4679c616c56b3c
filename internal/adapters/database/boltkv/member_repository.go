package boltkv

import (
	"context"

	portsrepo "github.com/umarali/qisst_management_app/internal/core/ports/repositories"

	"github.com/umarali/qisst_management_app/internal/core/domain"
)

type BoltMemberRepository struct {
	store *Store
}

// NewBoltMemberRepository creates the member repository over the shared store.
func NewBoltMemberRepository(store *Store) portsrepo.MemberRepositoryFacade {
	return &BoltMemberRepository{store: store}
}

// LoadMembers returns the full member collection. A fresh or corrupt bucket
// yields the empty collection.
func (r *BoltMemberRepository) LoadMembers(ctx context.Context) ([]domain.Member, error) {
	return loadSnapshot(r.store, membersBucket, []domain.Member{})
}

// SaveMembers replaces the member collection wholesale.
func (r *BoltMemberRepository) SaveMembers(ctx context.Context, members []domain.Member) error {
	return r.store.saveSnapshot(membersBucket, members)
}
