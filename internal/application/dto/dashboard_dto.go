package dto

// DashboardMetricsResponse totales globales del panel del SuperAdmin.
type DashboardMetricsResponse struct {
	TotalUsers            int `json:"totalUsersCount"`
	TotalAdminUsers       int `json:"totalAdminUsersCount"`
	TotalCompanies        int `json:"totalCompaniesCount"`
	TotalDoors            int `json:"totalDoorsCount"`
	TotalHistories        int `json:"totalHistoriesCount"`
	TotalPendingRequests  int `json:"totalPendingRequestCount"`
	TotalRejectedRequests int `json:"totalRejectedRequestCount"`
	TotalPaidRequests     int `json:"totalPaidRequestCount"`
}

// UserDirectoryEntry usuario con los nombres de su empresa y de su administrador.
type UserDirectoryEntry struct {
	UserResponse
	CompanyName string `json:"companyName"`
	AdminName   string `json:"adminName"`
}

// DoorDirectoryEntry puerta con los nombres de su empresa y del administrador que la registró.
type DoorDirectoryEntry struct {
	DoorResponse
	CompanyName string `json:"companyName"`
	AdminName   string `json:"adminName"`
}
