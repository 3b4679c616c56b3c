package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/umarali/qisst_management_app/internal/core/domain"
	portsrepo "github.com/umarali/qisst_management_app/internal/core/ports/repositories"
	"github.com/umarali/qisst_management_app/internal/middleware"
	"github.com/umarali/qisst_management_app/internal/utils/committee"
)

type paymentService struct {
	mu          *sessionLock
	paymentRepo portsrepo.PaymentRepositoryFacade
}

// NewPaymentService creates the payment service.
func NewPaymentService(mu *sessionLock, paymentRepo portsrepo.PaymentRepositoryFacade) *paymentService {
	return &paymentService{mu: mu, paymentRepo: paymentRepo}
}

// TogglePayment flips the paid state for the (member, cycle) pair. The flip
// is a pure function over the collection; toggling twice restores the
// original state. No referential check is made against members or cycles.
func (s *paymentService) TogglePayment(ctx context.Context, memberID, cycleID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	payments, err := s.paymentRepo.LoadPayments(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to load payments: %w", err)
	}

	payments = committee.TogglePayment(payments, memberID, cycleID, time.Now())
	if err := s.paymentRepo.SavePayments(ctx, payments); err != nil {
		return false, fmt.Errorf("failed to save payments: %w", err)
	}

	paid := domain.HasPayment(payments, memberID, cycleID)
	middleware.GetLoggerFromCtx(ctx).Info("Payment toggled",
		slog.String("member_id", memberID),
		slog.String("cycle_id", cycleID),
		slog.Bool("paid", paid),
	)
	return paid, nil
}

func (s *paymentService) ListPayments(ctx context.Context) ([]domain.PaymentRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.paymentRepo.LoadPayments(ctx)
}
