package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/securepass-api/internal/application/access"
	"github.com/jhoicas/securepass-api/internal/application/analytics"
	"github.com/jhoicas/securepass-api/internal/application/auth"
	"github.com/jhoicas/securepass-api/internal/application/billing"
	"github.com/jhoicas/securepass-api/internal/application/provisioning"
	"github.com/jhoicas/securepass-api/internal/application/tenancy"
	"github.com/jhoicas/securepass-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC           *auth.AuthUseCase
	CompanyUC        *tenancy.CompanyUseCase
	CompanyRequestUC *tenancy.CompanyRequestUseCase
	TrialRequestUC   *tenancy.TrialRequestUseCase
	AdminUC          *provisioning.AdminUseCase
	UserUC           *provisioning.UserUseCase
	DoorUC           *access.DoorUseCase
	PermissionUC     *access.PermissionUseCase
	AccessLogUC      *access.AccessLogUseCase
	PaymentUC        *billing.PaymentUseCase
	DashboardUC      *analytics.DashboardUseCase
	DirectoryUC      *analytics.DirectoryUseCase
	JWTSecret        string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	authn := AuthMiddleware(deps.JWTSecret)
	superAdmin := RequireRole(entity.RoleSuperAdmin)
	admin := RequireRole(entity.RoleAdmin)
	adminOrUser := RequireRole(entity.RoleAdmin, entity.RoleUser)
	anyAdmin := RequireRole(entity.RoleAdmin, entity.RoleSuperAdmin)

	// Guest: las altas y la consulta por id son públicas; listar, editar y borrar es del SuperAdmin
	guest := api.Group("/guest")
	guestHandler := NewGuestHandler(deps.CompanyRequestUC, deps.TrialRequestUC)
	guest.Post("/create-company-request", guestHandler.CreateCompanyRequest)
	guest.Get("/company-request/:id", guestHandler.GetCompanyRequest)
	guest.Get("/company-requests", authn, superAdmin, guestHandler.ListCompanyRequests)
	guest.Put("/company-request/:id", authn, superAdmin, guestHandler.UpdateCompanyRequest)
	guest.Delete("/company-request/:id", authn, superAdmin, guestHandler.DeleteCompanyRequest)
	guest.Post("/trial-requests", guestHandler.CreateTrialRequest)
	guest.Get("/trial-requests", authn, superAdmin, guestHandler.ListTrialRequests)

	// Auth
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/admin/login", authHandler.AdminLogin)
	authGroup.Post("/user/login", authHandler.UserLogin)
	authGroup.Get("/me", authn, authHandler.Me)

	// SuperAdmin
	adminGroup := api.Group("/admin", authn, superAdmin)
	adminHandler := NewAdminHandler(deps.CompanyUC, deps.CompanyRequestUC, deps.AdminUC, deps.AccessLogUC)
	adminGroup.Patch("/company-request/:id/status", adminHandler.ToggleCompanyRequest)
	adminGroup.Post("/create-company", adminHandler.CreateCompany)
	adminGroup.Post("/create-admin", adminHandler.CreateAdmin)
	adminGroup.Get("/companies/check-name-address", adminHandler.CheckNameAddress)
	adminGroup.Get("/companies", adminHandler.ListCompanies)
	adminGroup.Get("/companies/:id", adminHandler.GetCompany)
	adminGroup.Put("/companies/:id", adminHandler.UpdateCompany)
	adminGroup.Delete("/companies/:id", adminHandler.DeleteCompany)
	adminGroup.Patch("/companies/toggle-status/:companyId", adminHandler.ToggleCompanyStatus)
	adminGroup.Put("/companies/:companyId/update-expiration", adminHandler.RenewExpiration)
	adminGroup.Post("/add-location", adminHandler.AddLocation)
	adminGroup.Delete("/delete-location", adminHandler.DeleteLocation)
	adminGroup.Get("/recent-access", adminHandler.RecentAccess)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC, deps.DirectoryUC)
	adminGroup.Get("/dashboard", dashboardHandler.GetMetrics)
	adminGroup.Get("/all-users", dashboardHandler.AllUsers)
	adminGroup.Get("/all-doors", dashboardHandler.AllDoors)
	adminGroup.Get("/admin-users/:adminId/users", dashboardHandler.UsersByAdmin)

	// Users (Admin); las rutas fijas van antes de /:id
	users := api.Group("/users", authn, admin)
	userHandler := NewUserHandler(deps.UserUC, deps.PermissionUC)
	users.Post("/register", userHandler.Register)
	users.Get("/check-email", userHandler.CheckEmail)
	users.Get("/check-userid", userHandler.CheckUserID)
	users.Get("/check-email-update", userHandler.CheckEmailUpdate)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.Get)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)
	users.Delete("/:userId/door-access/:doorAccessId", userHandler.RemoveDoorAccess)

	// Doors (Admin)
	doors := api.Group("/doors", authn, admin)
	doorHandler := NewDoorHandler(deps.DoorUC)
	doors.Post("/", doorHandler.Create)
	doors.Get("/", doorHandler.List)
	doors.Get("/:id", doorHandler.Get)
	doors.Delete("/:id", doorHandler.Delete)

	// Permission requests
	perms := api.Group("/permission-requests", authn)
	permHandler := NewPermissionHandler(deps.PermissionUC)
	perms.Post("/make", adminOrUser, permHandler.Make)
	perms.Post("/", adminOrUser, permHandler.Create)
	perms.Get("/pending", admin, permHandler.Pending)
	perms.Get("/user/:userId", adminOrUser, permHandler.ByUser)
	perms.Get("/rejected/:userId", adminOrUser, permHandler.RejectedByUser)
	perms.Patch("/:id/approve", admin, permHandler.Approve)
	perms.Patch("/:id/reject", admin, permHandler.Reject)

	// Access log
	accessGroup := api.Group("/access", authn)
	accessHandler := NewAccessHandler(deps.AccessLogUC)
	accessGroup.Post("/events", accessHandler.Record)
	accessGroup.Get("/recent", admin, accessHandler.Recent)
	accessGroup.Get("/report.pdf", anyAdmin, accessHandler.Report)

	// Payment: el callback de la pasarela es público
	paymentHandler := NewPaymentHandler(deps.PaymentUC)
	api.Put("/payment/succes/:orderId", paymentHandler.Success)
	payments := api.Group("/payment", authn, anyAdmin)
	payments.Post("/", paymentHandler.Create)
	payments.Get("/generateid", paymentHandler.GenerateID)
	payments.Get("/order/:orderId", paymentHandler.ByOrderID)
	payments.Get("/:id", paymentHandler.CompanyWithPayments)
}
