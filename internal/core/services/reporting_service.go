package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/umarali/qisst_management_app/internal/apperrors"
	"github.com/umarali/qisst_management_app/internal/core/domain"
	portsrepo "github.com/umarali/qisst_management_app/internal/core/ports/repositories"
	"github.com/umarali/qisst_management_app/internal/middleware"
	"github.com/umarali/qisst_management_app/internal/utils/committee"
)

type reportingService struct {
	mu           *sessionLock
	memberRepo   portsrepo.MemberReader
	cycleRepo    portsrepo.CycleReader
	paymentRepo  portsrepo.PaymentReader
	settingsRepo portsrepo.SettingsReader

	// now is injectable so period boundaries are stable in tests.
	now func() time.Time
}

// NewReportingService creates the reporting service.
func NewReportingService(mu *sessionLock, memberRepo portsrepo.MemberReader, cycleRepo portsrepo.CycleReader, paymentRepo portsrepo.PaymentReader, settingsRepo portsrepo.SettingsReader) *reportingService {
	return &reportingService{
		mu:           mu,
		memberRepo:   memberRepo,
		cycleRepo:    cycleRepo,
		paymentRepo:  paymentRepo,
		settingsRepo: settingsRepo,
		now:          time.Now,
	}
}

func (s *reportingService) GetDashboard(ctx context.Context) (*domain.DashboardSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	members, cycles, payments, settings, err := s.loadAll(ctx)
	if err != nil {
		return nil, err
	}

	summary := committee.DashboardSummary(members, cycles, payments, settings)
	return &summary, nil
}

func (s *reportingService) GetPeriodReport(ctx context.Context, period domain.ReportPeriod) (*domain.PeriodReport, error) {
	if !period.Valid() {
		return nil, fmt.Errorf("unknown report period %q: %w", period, apperrors.ErrValidation)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	members, cycles, payments, settings, err := s.loadAll(ctx)
	if err != nil {
		return nil, err
	}

	report := committee.PeriodReport(cycles, payments, members, settings, period, s.now())
	if report.IntegrityWarning {
		// More payments than expected instances: members or cycles were
		// deleted after payments were recorded. Displayable, not fatal.
		middleware.GetLoggerFromCtx(ctx).Warn("Period report integrity warning",
			slog.String("period", string(period)),
			slog.Int("total_expected", report.TotalExpected),
			slog.Int("total_paid", report.TotalPaid),
		)
	}
	return &report, nil
}

func (s *reportingService) loadAll(ctx context.Context) ([]domain.Member, []domain.Cycle, []domain.PaymentRecord, domain.CommitteeSettings, error) {
	members, err := s.memberRepo.LoadMembers(ctx)
	if err != nil {
		return nil, nil, nil, domain.CommitteeSettings{}, fmt.Errorf("failed to load members: %w", err)
	}
	cycles, err := s.cycleRepo.LoadCycles(ctx)
	if err != nil {
		return nil, nil, nil, domain.CommitteeSettings{}, fmt.Errorf("failed to load cycles: %w", err)
	}
	payments, err := s.paymentRepo.LoadPayments(ctx)
	if err != nil {
		return nil, nil, nil, domain.CommitteeSettings{}, fmt.Errorf("failed to load payments: %w", err)
	}
	settings, err := s.settingsRepo.LoadSettings(ctx)
	if err != nil {
		return nil, nil, nil, domain.CommitteeSettings{}, fmt.Errorf("failed to load settings: %w", err)
	}
	return members, cycles, payments, settings, nil
}
