package boltkv

import (
	"context"
	"encoding/json"
	"fmt"

	bolt "github.com/boltdb/bolt"

	"github.com/umarali/qisst_management_app/internal/core/domain"
	portsrepo "github.com/umarali/qisst_management_app/internal/core/ports/repositories"
)

type BoltCycleRepository struct {
	store *Store
}

// NewBoltCycleRepository creates the cycle repository over the shared store.
func NewBoltCycleRepository(store *Store) portsrepo.CycleRepositoryFacade {
	return &BoltCycleRepository{store: store}
}

// LoadCycles returns the cycle collection in stored order (newest first).
func (r *BoltCycleRepository) LoadCycles(ctx context.Context) ([]domain.Cycle, error) {
	return loadSnapshot(r.store, cyclesBucket, []domain.Cycle{})
}

// SaveCycles replaces the cycle collection wholesale.
func (r *BoltCycleRepository) SaveCycles(ctx context.Context, cycles []domain.Cycle) error {
	return r.store.saveSnapshot(cyclesBucket, cycles)
}

// SaveDrawResult writes the member and cycle collections in one transaction,
// so a confirmed draw can never be half-persisted.
func (r *BoltCycleRepository) SaveDrawResult(ctx context.Context, members []domain.Member, cycles []domain.Cycle) error {
	rawMembers, err := json.Marshal(members)
	if err != nil {
		return fmt.Errorf("failed to encode members snapshot: %w", err)
	}
	rawCycles, err := json.Marshal(cycles)
	if err != nil {
		return fmt.Errorf("failed to encode cycles snapshot: %w", err)
	}

	return r.store.db.Update(func(tx *bolt.Tx) error {
		if err := tx.Bucket([]byte(membersBucket)).Put([]byte(snapshotKey), rawMembers); err != nil {
			return err
		}
		return tx.Bucket([]byte(cyclesBucket)).Put([]byte(snapshotKey), rawCycles)
	})
}
