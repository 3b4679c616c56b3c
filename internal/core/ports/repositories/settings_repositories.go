package repositories

import (
	"context"

	"github.com/umarali/qisst_management_app/internal/core/domain"
)

// SettingsReader defines read operations for the settings bucket.
type SettingsReader interface {
	// LoadSettings returns the committee settings, or the first-run defaults
	// when nothing has been saved yet (or the stored blob is corrupt).
	LoadSettings(ctx context.Context) (domain.CommitteeSettings, error)
}

// SettingsWriter defines write operations for the settings bucket.
type SettingsWriter interface {
	// SaveSettings replaces the settings singleton wholesale.
	SaveSettings(ctx context.Context, settings domain.CommitteeSettings) error
}

// DataResetter wipes the member, cycle and payment buckets in one atomic
// write. Settings are deliberately kept.
type DataResetter interface {
	ResetData(ctx context.Context) error
}

// SettingsRepositoryFacade combines all settings bucket operations.
type SettingsRepositoryFacade interface {
	SettingsReader
	SettingsWriter
	DataResetter
}
