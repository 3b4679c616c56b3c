package services

import (
	"math/rand/v2"
	"time"

	portsrepo "github.com/umarali/qisst_management_app/internal/core/ports/repositories"
	portssvc "github.com/umarali/qisst_management_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider, generator AdviceGenerator) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// All services share one session lock so that writers serialize against
	// every reader, mirroring the single-operator session model.
	mu := &sessionLock{}

	// Seeded from the clock; tests inject their own source.
	rng := rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), uint64(time.Now().UnixNano())>>32))

	container.Member = NewMemberService(mu, repos.MemberRepo, repos.CycleRepo, repos.PaymentRepo, repos.SettingsRepo)
	container.Cycle = NewCycleService(mu, repos.CycleRepo, repos.MemberRepo, repos.SettingsRepo, rng)
	container.Payment = NewPaymentService(mu, repos.PaymentRepo)
	container.Settings = NewSettingsService(mu, repos.SettingsRepo)
	container.Reporting = NewReportingService(mu, repos.MemberRepo, repos.CycleRepo, repos.PaymentRepo, repos.SettingsRepo)
	container.Advisor = NewAdvisorService(mu, repos.MemberRepo, repos.CycleRepo, repos.SettingsRepo, generator)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.MemberSvcFacade    = (*memberService)(nil)
	_ portssvc.CycleSvcFacade     = (*cycleService)(nil)
	_ portssvc.PaymentSvcFacade   = (*paymentService)(nil)
	_ portssvc.SettingsSvcFacade  = (*settingsService)(nil)
	_ portssvc.ReportingSvcFacade = (*reportingService)(nil)
	_ portssvc.AdvisorSvcFacade   = (*advisorService)(nil)
)
