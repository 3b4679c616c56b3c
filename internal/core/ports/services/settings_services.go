package services

import (
	"context"

	"github.com/umarali/qisst_management_app/internal/core/domain"
	"github.com/umarali/qisst_management_app/internal/dto"
)

// SettingsSvcFacade defines operations over the committee settings singleton.
type SettingsSvcFacade interface {
	// GetSettings returns the current settings (first-run defaults until the
	// organizer saves something).
	GetSettings(ctx context.Context) (domain.CommitteeSettings, error)

	// UpdateSettings validates and replaces the settings wholesale.
	UpdateSettings(ctx context.Context, req dto.UpdateSettingsRequest) (domain.CommitteeSettings, error)

	// ResetData wipes members, cycles and payments in one atomic write.
	// Settings survive the reset.
	ResetData(ctx context.Context) error
}
