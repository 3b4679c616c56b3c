package services

// ServiceContainer holds all service facades, wired once at startup and
// handed to the route registration.
type ServiceContainer struct {
	Member    MemberSvcFacade
	Cycle     CycleSvcFacade
	Payment   PaymentSvcFacade
	Settings  SettingsSvcFacade
	Reporting ReportingSvcFacade
	Advisor   AdvisorSvcFacade
}
