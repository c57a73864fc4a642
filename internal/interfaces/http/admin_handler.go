package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/securepass-api/internal/application/access"
	"github.com/jhoicas/securepass-api/internal/application/dto"
	"github.com/jhoicas/securepass-api/internal/application/provisioning"
	"github.com/jhoicas/securepass-api/internal/application/tenancy"
)

// AdminHandler operaciones del SuperAdmin sobre empresas, solicitudes y administradores.
type AdminHandler struct {
	companies *tenancy.CompanyUseCase
	requests  *tenancy.CompanyRequestUseCase
	admins    *provisioning.AdminUseCase
	accessLog *access.AccessLogUseCase
}

// NewAdminHandler construye el handler.
func NewAdminHandler(companies *tenancy.CompanyUseCase, requests *tenancy.CompanyRequestUseCase, admins *provisioning.AdminUseCase, accessLog *access.AccessLogUseCase) *AdminHandler {
	return &AdminHandler{companies: companies, requests: requests, admins: admins, accessLog: accessLog}
}

// ToggleCompanyRequest godoc
// @Summary      Aprobar o rechazar una solicitud de empresa
// @Description  status "Approve" crea la empresa y provisiona los administradores seleccionados en una sola transacción.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                         true  "ID de la solicitud"
// @Param        body  body  dto.ToggleCompanyRequestInput  true  "status y selectedAdmins"
// @Success      200   {object}  dto.ApprovalResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/admin/company-request/{id}/status [patch]
func (h *AdminHandler) ToggleCompanyRequest(c *fiber.Ctx) error {
	var in dto.ToggleCompanyRequestInput
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.requests.ToggleStatus(c.UserContext(), GetUserID(c), c.Params("id"), in)
	if err != nil {
		return err
	}
	if out.Approval != nil {
		return c.JSON(out.Approval)
	}
	return c.JSON(out.Request)
}

// CreateCompany godoc
// @Summary      Crear empresa directamente
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateCompanyRequest  true  "name, address, package"
// @Success      201   {object}  dto.CompanyResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/admin/create-company [post]
func (h *AdminHandler) CreateCompany(c *fiber.Ctx) error {
	var in dto.CreateCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.companies.Create(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// CreateAdmin godoc
// @Summary      Crear administrador de empresa
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateAdminInput  true  "Datos del administrador"
// @Success      201   {object}  dto.AdminResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/admin/create-admin [post]
func (h *AdminHandler) CreateAdmin(c *fiber.Ctx) error {
	var in dto.CreateAdminInput
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.admins.CreateAdminUser(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListCompanies godoc
// @Summary      Listar empresas
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        page        query  int   false  "Página"  default(1)
// @Param        limit       query  int   false  "Límite"  default(10)
// @Param        withAdmins  query  bool  false  "Incluir administradores"
// @Success      200  {array}  dto.CompanyResponse
// @Router       /api/admin/companies [get]
func (h *AdminHandler) ListCompanies(c *fiber.Ctx) error {
	page := dto.PageRequest{Page: c.QueryInt("page", 1), Limit: c.QueryInt("limit", 10)}
	out, err := h.companies.List(c.UserContext(), page, c.QueryBool("withAdmins", false))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// GetCompany godoc
// @Summary      Obtener empresa con administradores
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID de la empresa"
// @Success      200  {object}  dto.CompanyResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/companies/{id} [get]
func (h *AdminHandler) GetCompany(c *fiber.Ctx) error {
	out, err := h.companies.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// UpdateCompany godoc
// @Summary      Actualizar nombre y dirección
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                    true  "ID de la empresa"
// @Param        body  body  dto.UpdateCompanyRequest  true  "name, address"
// @Success      200   {object}  dto.CompanyResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/admin/companies/{id} [put]
func (h *AdminHandler) UpdateCompany(c *fiber.Ctx) error {
	var in dto.UpdateCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.companies.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// DeleteCompany godoc
// @Summary      Eliminar empresa y todo su contenido
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID de la empresa"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/companies/{id} [delete]
func (h *AdminHandler) DeleteCompany(c *fiber.Ctx) error {
	if err := h.companies.Delete(c.UserContext(), GetUserID(c), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "Company deleted successfully"})
}

// ToggleCompanyStatus godoc
// @Summary      Activar o desactivar empresa
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        companyId  path  string  true  "ID de la empresa"
// @Success      200  {object}  dto.CompanyStatusResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/companies/toggle-status/{companyId} [patch]
func (h *AdminHandler) ToggleCompanyStatus(c *fiber.Ctx) error {
	out, err := h.companies.ToggleStatus(c.UserContext(), c.Params("companyId"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// RenewExpiration godoc
// @Summary      Renovar el periodo de suscripción
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        companyId  path  string  true  "ID de la empresa"
// @Success      200  {object}  dto.ExpirationResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/companies/{companyId}/update-expiration [put]
func (h *AdminHandler) RenewExpiration(c *fiber.Ctx) error {
	out, err := h.companies.RenewExpiration(c.UserContext(), c.Params("companyId"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// CheckNameAddress godoc
// @Summary      Verificar que nombre y dirección no estén en uso
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        name       query  string  true   "Nombre"
// @Param        address    query  string  true   "Dirección"
// @Param        excludeId  query  string  false  "Empresa a excluir"
// @Success      200  {object}  dto.UniqueResponse
// @Router       /api/admin/companies/check-name-address [get]
func (h *AdminHandler) CheckNameAddress(c *fiber.Ctx) error {
	ok, err := h.companies.CheckNameAddressUnique(c.UserContext(), c.Query("name"), c.Query("address"), c.Query("excludeId"))
	if err != nil {
		return err
	}
	return c.JSON(dto.UniqueResponse{IsUnique: ok})
}

// AddLocation godoc
// @Summary      Añadir ubicación a una empresa
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.LocationRequest  true  "companyId, location"
// @Success      200   {object}  dto.CompanyResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/admin/add-location [post]
func (h *AdminHandler) AddLocation(c *fiber.Ctx) error {
	var in dto.LocationRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.companies.AddLocation(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// DeleteLocation godoc
// @Summary      Quitar ubicación de una empresa
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.LocationRequest  true  "companyId, location"
// @Success      200   {object}  dto.CompanyResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/admin/delete-location [delete]
func (h *AdminHandler) DeleteLocation(c *fiber.Ctx) error {
	var in dto.LocationRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.companies.RemoveLocation(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// RecentAccess godoc
// @Summary      Accesos recientes de todas las empresas
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.AccessEventResponse
// @Router       /api/admin/recent-access [get]
func (h *AdminHandler) RecentAccess(c *fiber.Ctx) error {
	out, err := h.accessLog.RecentGlobal(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(out)
}
