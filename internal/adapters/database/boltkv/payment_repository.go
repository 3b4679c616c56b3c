package boltkv

import (
	"context"

	"github.com/umarali/qisst_management_app/internal/core/domain"
	portsrepo "github.com/umarali/qisst_management_app/internal/core/ports/repositories"
)

type BoltPaymentRepository struct {
	store *Store
}

// NewBoltPaymentRepository creates the payment repository over the shared store.
func NewBoltPaymentRepository(store *Store) portsrepo.PaymentRepositoryFacade {
	return &BoltPaymentRepository{store: store}
}

// LoadPayments returns the payment collection in insertion order.
func (r *BoltPaymentRepository) LoadPayments(ctx context.Context) ([]domain.PaymentRecord, error) {
	return loadSnapshot(r.store, paymentsBucket, []domain.PaymentRecord{})
}

// SavePayments replaces the payment collection wholesale.
func (r *BoltPaymentRepository) SavePayments(ctx context.Context, payments []domain.PaymentRecord) error {
	return r.store.saveSnapshot(paymentsBucket, payments)
}
