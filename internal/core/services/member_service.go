package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/umarali/qisst_management_app/internal/apperrors"
	"github.com/umarali/qisst_management_app/internal/core/domain"
	portsrepo "github.com/umarali/qisst_management_app/internal/core/ports/repositories"
	"github.com/umarali/qisst_management_app/internal/dto"
	"github.com/umarali/qisst_management_app/internal/middleware"
	"github.com/umarali/qisst_management_app/internal/utils/committee"
)

type memberService struct {
	mu           *sessionLock
	memberRepo   portsrepo.MemberRepositoryFacade
	cycleRepo    portsrepo.CycleReader
	paymentRepo  portsrepo.PaymentReader
	settingsRepo portsrepo.SettingsReader
}

// NewMemberService creates the member service. The cycle, payment and
// settings readers feed the per-member summary calculation.
func NewMemberService(mu *sessionLock, memberRepo portsrepo.MemberRepositoryFacade, cycleRepo portsrepo.CycleReader, paymentRepo portsrepo.PaymentReader, settingsRepo portsrepo.SettingsReader) *memberService {
	return &memberService{
		mu:           mu,
		memberRepo:   memberRepo,
		cycleRepo:    cycleRepo,
		paymentRepo:  paymentRepo,
		settingsRepo: settingsRepo,
	}
}

func (s *memberService) CreateMember(ctx context.Context, req dto.CreateMemberRequest) (*domain.Member, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("member name is required: %w", apperrors.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	members, err := s.memberRepo.LoadMembers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load members: %w", err)
	}

	member := domain.Member{
		MemberID: uuid.NewString(),
		Name:     name,
		Phone:    strings.TrimSpace(req.Phone),
		JoinDate: time.Now(),
	}

	members = append(members, member)
	if err := s.memberRepo.SaveMembers(ctx, members); err != nil {
		return nil, fmt.Errorf("failed to save members: %w", err)
	}

	middleware.GetLoggerFromCtx(ctx).Info("Member created", slog.String("member_id", member.MemberID))
	return &member, nil
}

func (s *memberService) ListMembers(ctx context.Context) ([]domain.Member, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.memberRepo.LoadMembers(ctx)
}

func (s *memberService) GetMemberByID(ctx context.Context, memberID string) (*domain.Member, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	members, err := s.memberRepo.LoadMembers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load members: %w", err)
	}
	member := domain.FindMember(members, memberID)
	if member == nil {
		return nil, apperrors.ErrNotFound
	}
	return member, nil
}

func (s *memberService) UpdateMember(ctx context.Context, memberID string, req dto.UpdateMemberRequest) (*domain.Member, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	members, err := s.memberRepo.LoadMembers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load members: %w", err)
	}

	member := domain.FindMember(members, memberID)
	if member == nil {
		return nil, apperrors.ErrNotFound
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, fmt.Errorf("member name cannot be empty: %w", apperrors.ErrValidation)
		}
		member.Name = name
	}
	if req.Phone != nil {
		member.Phone = strings.TrimSpace(*req.Phone)
	}

	if err := s.memberRepo.SaveMembers(ctx, members); err != nil {
		return nil, fmt.Errorf("failed to save members: %w", err)
	}
	return member, nil
}

func (s *memberService) DeleteMember(ctx context.Context, memberID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	members, err := s.memberRepo.LoadMembers(ctx)
	if err != nil {
		return fmt.Errorf("failed to load members: %w", err)
	}

	remaining := make([]domain.Member, 0, len(members))
	found := false
	for _, m := range members {
		if m.MemberID == memberID {
			found = true
			continue
		}
		remaining = append(remaining, m)
	}
	if !found {
		return apperrors.ErrNotFound
	}

	// Payments recorded against the member are kept; they show up through
	// the reporting integrity warning rather than being silently dropped.
	if err := s.memberRepo.SaveMembers(ctx, remaining); err != nil {
		return fmt.Errorf("failed to save members: %w", err)
	}

	middleware.GetLoggerFromCtx(ctx).Info("Member deleted", slog.String("member_id", memberID))
	return nil
}

func (s *memberService) GetMemberSummary(ctx context.Context, memberID string) (*domain.MemberSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	members, err := s.memberRepo.LoadMembers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load members: %w", err)
	}
	member := domain.FindMember(members, memberID)
	if member == nil {
		return nil, apperrors.ErrNotFound
	}

	cycles, err := s.cycleRepo.LoadCycles(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load cycles: %w", err)
	}
	payments, err := s.paymentRepo.LoadPayments(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load payments: %w", err)
	}
	settings, err := s.settingsRepo.LoadSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	summary := committee.MemberSummary(*member, cycles, payments, settings)
	return &summary, nil
}
