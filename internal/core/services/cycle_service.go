package services

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/umarali/qisst_management_app/internal/apperrors"
	"github.com/umarali/qisst_management_app/internal/core/domain"
	portsrepo "github.com/umarali/qisst_management_app/internal/core/ports/repositories"
	"github.com/umarali/qisst_management_app/internal/dto"
	"github.com/umarali/qisst_management_app/internal/middleware"
	"github.com/umarali/qisst_management_app/internal/utils/committee"
)

type cycleService struct {
	mu           *sessionLock
	cycleRepo    portsrepo.CycleRepositoryFacade
	memberRepo   portsrepo.MemberRepositoryFacade
	settingsRepo portsrepo.SettingsReader

	// rng is not goroutine-safe and proposals run under the shared read
	// lock, so draws take rngMu around every use of it.
	rng   *rand.Rand
	rngMu sync.Mutex
}

// NewCycleService creates the cycle service. The random source drives winner
// selection and is injected so draws are deterministic in tests.
func NewCycleService(mu *sessionLock, cycleRepo portsrepo.CycleRepositoryFacade, memberRepo portsrepo.MemberRepositoryFacade, settingsRepo portsrepo.SettingsReader, rng *rand.Rand) *cycleService {
	return &cycleService{
		mu:           mu,
		cycleRepo:    cycleRepo,
		memberRepo:   memberRepo,
		settingsRepo: settingsRepo,
		rng:          rng,
	}
}

func (s *cycleService) CreateCycle(ctx context.Context, req dto.CreateCycleRequest) (*domain.Cycle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cycles, err := s.cycleRepo.LoadCycles(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load cycles: %w", err)
	}
	settings, err := s.settingsRepo.LoadSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	startDate := time.Now()
	if req.StartDate != nil {
		startDate = *req.StartDate
	}

	cycle := domain.Cycle{
		CycleID:   uuid.NewString(),
		Label:     committee.CycleLabel(settings.Frequency, len(cycles)),
		StartDate: startDate,
	}

	// Newest-first: the fresh cycle becomes the current one.
	cycles = append([]domain.Cycle{cycle}, cycles...)
	if err := s.cycleRepo.SaveCycles(ctx, cycles); err != nil {
		return nil, fmt.Errorf("failed to save cycles: %w", err)
	}

	middleware.GetLoggerFromCtx(ctx).Info("Cycle created", slog.String("cycle_id", cycle.CycleID), slog.String("label", cycle.Label))
	return &cycle, nil
}

func (s *cycleService) ListCycles(ctx context.Context) ([]domain.Cycle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cycleRepo.LoadCycles(ctx)
}

// ProposeWinner chooses a draw candidate without committing anything. The
// operator confirms (or abandons) the candidate through ConfirmWinner.
func (s *cycleService) ProposeWinner(ctx context.Context, cycleID string) (*domain.Member, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cycles, err := s.cycleRepo.LoadCycles(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load cycles: %w", err)
	}
	cycle := domain.FindCycle(cycles, cycleID)
	if cycle == nil {
		return nil, apperrors.ErrNotFound
	}
	if cycle.Completed() {
		return nil, apperrors.ErrCycleCompleted
	}

	members, err := s.memberRepo.LoadMembers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load members: %w", err)
	}

	s.rngMu.Lock()
	candidate, err := committee.SelectWinner(members, s.rng)
	s.rngMu.Unlock()
	if err != nil {
		return nil, err
	}
	return &candidate, nil
}

// ConfirmWinner commits a draw: the member is flagged as having received the
// pot and the cycle is closed, persisted in one atomic write. Not reversible.
func (s *cycleService) ConfirmWinner(ctx context.Context, cycleID string, memberID string) (*domain.Cycle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cycles, err := s.cycleRepo.LoadCycles(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load cycles: %w", err)
	}
	cycle := domain.FindCycle(cycles, cycleID)
	if cycle == nil {
		return nil, apperrors.ErrNotFound
	}
	if cycle.Completed() {
		return nil, apperrors.ErrCycleCompleted
	}

	members, err := s.memberRepo.LoadMembers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load members: %w", err)
	}
	member := domain.FindMember(members, memberID)
	if member == nil {
		return nil, apperrors.ErrNotFound
	}
	if member.HasReceivedPot {
		return nil, fmt.Errorf("member %s already received the pot: %w", memberID, apperrors.ErrValidation)
	}

	now := time.Now()
	member.HasReceivedPot = true
	member.ReceivedDate = &now
	cycle.WinnerID = &member.MemberID
	cycle.IsCompleted = true

	if err := s.cycleRepo.SaveDrawResult(ctx, members, cycles); err != nil {
		return nil, fmt.Errorf("failed to save draw result: %w", err)
	}

	middleware.GetLoggerFromCtx(ctx).Info("Winner committed",
		slog.String("cycle_id", cycleID),
		slog.String("member_id", memberID),
	)
	return cycle, nil
}

func (s *cycleService) GetWinnerReceipt(ctx context.Context, cycleID string) (*domain.WinnerReceipt, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cycles, err := s.cycleRepo.LoadCycles(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load cycles: %w", err)
	}
	cycle := domain.FindCycle(cycles, cycleID)
	if cycle == nil || cycle.WinnerID == nil {
		return nil, apperrors.ErrNotFound
	}

	members, err := s.memberRepo.LoadMembers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load members: %w", err)
	}
	winner := domain.FindMember(members, *cycle.WinnerID)
	if winner == nil {
		return nil, apperrors.ErrNotFound
	}

	settings, err := s.settingsRepo.LoadSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	return &domain.WinnerReceipt{
		Member:        *winner,
		Cycle:         *cycle,
		CommitteeName: settings.CommitteeName,
		Currency:      settings.Currency,
		PotAmount:     committee.PotAmount(len(members), settings),
		IssuedAt:      time.Now(),
	}, nil
}
