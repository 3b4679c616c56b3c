package boltkv

import (
	"context"

	bolt "github.com/boltdb/bolt"

	"github.com/umarali/qisst_management_app/internal/core/domain"
	portsrepo "github.com/umarali/qisst_management_app/internal/core/ports/repositories"
)

type BoltSettingsRepository struct {
	store *Store
}

// NewBoltSettingsRepository creates the settings repository over the shared store.
func NewBoltSettingsRepository(store *Store) portsrepo.SettingsRepositoryFacade {
	return &BoltSettingsRepository{store: store}
}

// LoadSettings returns the stored settings, or the first-run defaults when
// nothing has been saved yet or the blob is corrupt.
func (r *BoltSettingsRepository) LoadSettings(ctx context.Context) (domain.CommitteeSettings, error) {
	return loadSnapshot(r.store, settingsBucket, domain.DefaultSettings())
}

// SaveSettings replaces the settings singleton wholesale.
func (r *BoltSettingsRepository) SaveSettings(ctx context.Context, settings domain.CommitteeSettings) error {
	return r.store.saveSnapshot(settingsBucket, settings)
}

// ResetData clears the member, cycle and payment buckets in one transaction.
// Settings are deliberately left in place.
func (r *BoltSettingsRepository) ResetData(ctx context.Context) error {
	return r.store.db.Update(func(tx *bolt.Tx) error {
		for _, name := range []string{membersBucket, cyclesBucket, paymentsBucket} {
			if err := tx.Bucket([]byte(name)).Delete([]byte(snapshotKey)); err != nil {
				return err
			}
		}
		return nil
	})
}
