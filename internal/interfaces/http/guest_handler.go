package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/securepass-api/internal/application/dto"
	"github.com/jhoicas/securepass-api/internal/application/tenancy"
)

// GuestHandler formularios públicos de solicitud de empresa y de prueba gratuita, y su gestión por el SuperAdmin.
type GuestHandler struct {
	requests *tenancy.CompanyRequestUseCase
	trials   *tenancy.TrialRequestUseCase
}

// NewGuestHandler construye el handler.
func NewGuestHandler(requests *tenancy.CompanyRequestUseCase, trials *tenancy.TrialRequestUseCase) *GuestHandler {
	return &GuestHandler{requests: requests, trials: trials}
}

// CreateCompanyRequest godoc
// @Summary      Solicitar alta de empresa
// @Tags         guest
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCompanyRequestInput  true  "Empresa y administradores propuestos"
// @Success      201   {object}  dto.CreateCompanyRequestResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/guest/create-company-request [post]
func (h *GuestHandler) CreateCompanyRequest(c *fiber.Ctx) error {
	var in dto.CreateCompanyRequestInput
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.requests.Create(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CreateCompanyRequestResponse{
		Message:        "Company request created successfully",
		CompanyRequest: *out,
	})
}

// ListCompanyRequests godoc
// @Summary      Listar solicitudes de empresa
// @Description  Solo SuperAdmin.
// @Tags         guest
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.CompanyRequestResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/guest/company-requests [get]
func (h *GuestHandler) ListCompanyRequests(c *fiber.Ctx) error {
	out, err := h.requests.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// GetCompanyRequest godoc
// @Summary      Obtener solicitud de empresa
// @Tags         guest
// @Produce      json
// @Param        id   path  string  true  "ID de la solicitud"
// @Success      200  {object}  dto.CompanyRequestResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/guest/company-request/{id} [get]
func (h *GuestHandler) GetCompanyRequest(c *fiber.Ctx) error {
	out, err := h.requests.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// UpdateCompanyRequest godoc
// @Summary      Editar nombre y dirección de una solicitud
// @Description  Solo SuperAdmin.
// @Tags         guest
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                         true  "ID de la solicitud"
// @Param        body  body  dto.UpdateCompanyRequestInput  true  "name, address"
// @Success      200   {object}  dto.CompanyRequestResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/guest/company-request/{id} [put]
func (h *GuestHandler) UpdateCompanyRequest(c *fiber.Ctx) error {
	var in dto.UpdateCompanyRequestInput
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.requests.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// DeleteCompanyRequest godoc
// @Summary      Eliminar solicitud de empresa
// @Description  Solo SuperAdmin.
// @Tags         guest
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID de la solicitud"
// @Success      200  {object}  dto.MessageResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/guest/company-request/{id} [delete]
func (h *GuestHandler) DeleteCompanyRequest(c *fiber.Ctx) error {
	if err := h.requests.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "Company request deleted successfully"})
}

// CreateTrialRequest godoc
// @Summary      Solicitar prueba gratuita
// @Tags         guest
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTrialRequestInput  true  "Datos de contacto"
// @Success      201   {object}  dto.TrialRequestResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/guest/trial-requests [post]
func (h *GuestHandler) CreateTrialRequest(c *fiber.Ctx) error {
	var in dto.CreateTrialRequestInput
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.trials.Create(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListTrialRequests godoc
// @Summary      Listar solicitudes de prueba
// @Description  Solo SuperAdmin.
// @Tags         guest
// @Produce      json
// @Security     BearerAuth
// @Param        page   query  int  false  "Página"  default(1)
// @Param        limit  query  int  false  "Límite"  default(10)
// @Success      200    {object}  dto.TrialRequestListResponse
// @Failure      401    {object}  dto.ErrorResponse
// @Router       /api/guest/trial-requests [get]
func (h *GuestHandler) ListTrialRequests(c *fiber.Ctx) error {
	page := dto.PageRequest{Page: c.QueryInt("page", 1), Limit: c.QueryInt("limit", 10)}
	out, err := h.trials.List(c.UserContext(), page)
	if err != nil {
		return err
	}
	return c.JSON(out)
}
