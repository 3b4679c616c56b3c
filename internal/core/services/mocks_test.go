package services_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/umarali/qisst_management_app/internal/core/domain"
)

// --- Mock MemberRepository ---
type MockMemberRepository struct {
	mock.Mock
}

func (m *MockMemberRepository) LoadMembers(ctx context.Context) ([]domain.Member, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Member), args.Error(1)
}

func (m *MockMemberRepository) SaveMembers(ctx context.Context, members []domain.Member) error {
	args := m.Called(ctx, members)
	return args.Error(0)
}

// --- Mock CycleRepository ---
type MockCycleRepository struct {
	mock.Mock
}

func (m *MockCycleRepository) LoadCycles(ctx context.Context) ([]domain.Cycle, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Cycle), args.Error(1)
}

func (m *MockCycleRepository) SaveCycles(ctx context.Context, cycles []domain.Cycle) error {
	args := m.Called(ctx, cycles)
	return args.Error(0)
}

func (m *MockCycleRepository) SaveDrawResult(ctx context.Context, members []domain.Member, cycles []domain.Cycle) error {
	args := m.Called(ctx, members, cycles)
	return args.Error(0)
}

// --- Mock PaymentRepository ---
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) LoadPayments(ctx context.Context) ([]domain.PaymentRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PaymentRecord), args.Error(1)
}

func (m *MockPaymentRepository) SavePayments(ctx context.Context, payments []domain.PaymentRecord) error {
	args := m.Called(ctx, payments)
	return args.Error(0)
}

// --- Mock SettingsRepository ---
type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) LoadSettings(ctx context.Context) (domain.CommitteeSettings, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.CommitteeSettings), args.Error(1)
}

func (m *MockSettingsRepository) SaveSettings(ctx context.Context, settings domain.CommitteeSettings) error {
	args := m.Called(ctx, settings)
	return args.Error(0)
}

func (m *MockSettingsRepository) ResetData(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// --- Mock AdviceGenerator ---
type MockAdviceGenerator struct {
	mock.Mock
}

func (m *MockAdviceGenerator) GenerateAdvice(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

func (m *MockAdviceGenerator) Configured() bool {
	args := m.Called()
	return args.Bool(0)
}
