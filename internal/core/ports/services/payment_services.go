package services

import (
	"context"

	"github.com/umarali/qisst_management_app/internal/core/domain"
)

// PaymentSvcFacade defines operations over payment records.
type PaymentSvcFacade interface {
	// TogglePayment flips the paid state for the pair and reports the new
	// state (true = a PAID record now exists).
	TogglePayment(ctx context.Context, memberID, cycleID string) (bool, error)

	// ListPayments returns every payment record in insertion order.
	ListPayments(ctx context.Context) ([]domain.PaymentRecord, error)
}
