package boltkv

import (
	portsrepo "github.com/umarali/qisst_management_app/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every repository over the shared store.
func NewRepositoryProvider(store *Store) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		MemberRepo:   NewBoltMemberRepository(store),
		CycleRepo:    NewBoltCycleRepository(store),
		PaymentRepo:  NewBoltPaymentRepository(store),
		SettingsRepo: NewBoltSettingsRepository(store),
	}
}
