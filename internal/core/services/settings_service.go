package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/umarali/qisst_management_app/internal/apperrors"
	"github.com/umarali/qisst_management_app/internal/core/domain"
	portsrepo "github.com/umarali/qisst_management_app/internal/core/ports/repositories"
	"github.com/umarali/qisst_management_app/internal/dto"
	"github.com/umarali/qisst_management_app/internal/middleware"
)

type settingsService struct {
	mu           *sessionLock
	settingsRepo portsrepo.SettingsRepositoryFacade
}

// NewSettingsService creates the settings service.
func NewSettingsService(mu *sessionLock, settingsRepo portsrepo.SettingsRepositoryFacade) *settingsService {
	return &settingsService{mu: mu, settingsRepo: settingsRepo}
}

func (s *settingsService) GetSettings(ctx context.Context) (domain.CommitteeSettings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settingsRepo.LoadSettings(ctx)
}

func (s *settingsService) UpdateSettings(ctx context.Context, req dto.UpdateSettingsRequest) (domain.CommitteeSettings, error) {
	name := strings.TrimSpace(req.CommitteeName)
	if name == "" {
		return domain.CommitteeSettings{}, fmt.Errorf("committee name is required: %w", apperrors.ErrValidation)
	}
	if !req.InstallmentAmount.IsPositive() {
		return domain.CommitteeSettings{}, fmt.Errorf("installment amount must be positive: %w", apperrors.ErrValidation)
	}
	frequency := domain.Frequency(req.Frequency)
	if !frequency.Valid() {
		return domain.CommitteeSettings{}, fmt.Errorf("unknown frequency %q: %w", req.Frequency, apperrors.ErrValidation)
	}

	settings := domain.CommitteeSettings{
		CommitteeName:     name,
		InstallmentAmount: req.InstallmentAmount,
		Currency:          strings.TrimSpace(req.Currency),
		Frequency:         frequency,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.settingsRepo.SaveSettings(ctx, settings); err != nil {
		return domain.CommitteeSettings{}, fmt.Errorf("failed to save settings: %w", err)
	}
	return settings, nil
}

// ResetData wipes members, cycles and payments in a single write. Settings
// are kept, matching the organizer's expectation that a reset starts a new
// committee with the same configuration.
func (s *settingsService) ResetData(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.settingsRepo.ResetData(ctx); err != nil {
		return fmt.Errorf("failed to reset data: %w", err)
	}
	middleware.GetLoggerFromCtx(ctx).Warn("All committee data reset")
	return nil
}
