package repositories

import (
	"context"

	"github.com/umarali/qisst_management_app/internal/core/domain"
)

// PaymentReader defines read operations for the payment bucket.
type PaymentReader interface {
	// LoadPayments returns the full payment collection in insertion order.
	LoadPayments(ctx context.Context) ([]domain.PaymentRecord, error)
}

// PaymentWriter defines write operations for the payment bucket.
type PaymentWriter interface {
	// SavePayments replaces the payment bucket with the given collection.
	SavePayments(ctx context.Context, payments []domain.PaymentRecord) error
}

// PaymentRepositoryFacade combines all payment bucket operations.
type PaymentRepositoryFacade interface {
	PaymentReader
	PaymentWriter
}
