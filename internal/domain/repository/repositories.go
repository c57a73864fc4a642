package repository

// Repositories agrupa los puertos atados a una misma unidad de trabajo (pool o transacción).
type Repositories struct {
	Companies          CompanyRepository
	CompanyRequests    CompanyRequestRepository
	TrialRequests      TrialRequestRepository
	AdminUsers         AdminUserRepository
	Users              UserRepository
	Doors              DoorRepository
	PermissionRequests PermissionRequestRepository
	AccessEvents       AccessEventRepository
	Payments           PaymentRepository
	Audit              AuditRepository
	Metrics            MetricsRepository
}
