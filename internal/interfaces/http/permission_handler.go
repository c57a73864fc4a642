package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/securepass-api/internal/application/access"
	"github.com/jhoicas/securepass-api/internal/application/dto"
)

// PermissionHandler solicitudes de acceso a puertas.
type PermissionHandler struct {
	uc *access.PermissionUseCase
}

// NewPermissionHandler construye el handler.
func NewPermissionHandler(uc *access.PermissionUseCase) *PermissionHandler {
	return &PermissionHandler{uc: uc}
}

// Make godoc
// @Summary      Crear y aprobar una solicitud en un paso
// @Tags         permission-requests
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.MakePermissionInput  true  "user, door, date, inTime, outTime"
// @Success      201   {object}  dto.PermissionSummaryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/permission-requests/make [post]
func (h *PermissionHandler) Make(c *fiber.Ctx) error {
	var in dto.MakePermissionInput
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Make(c.UserContext(), GetPrincipal(c), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Create godoc
// @Summary      Crear solicitud pendiente de revisión
// @Tags         permission-requests
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreatePermissionInput  true  "userId, doorId, date, inTime, outTime"
// @Success      201   {object}  dto.PermissionRequestResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/permission-requests [post]
func (h *PermissionHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePermissionInput
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), GetPrincipal(c), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Approve godoc
// @Summary      Aprobar solicitud
// @Tags         permission-requests
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID de la solicitud"
// @Success      200  {object}  dto.PermissionRequestResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/permission-requests/{id}/approve [patch]
func (h *PermissionHandler) Approve(c *fiber.Ctx) error {
	out, err := h.uc.Approve(c.UserContext(), GetPrincipal(c), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Reject godoc
// @Summary      Rechazar solicitud
// @Tags         permission-requests
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID de la solicitud"
// @Success      200  {object}  dto.PermissionRequestResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/permission-requests/{id}/reject [patch]
func (h *PermissionHandler) Reject(c *fiber.Ctx) error {
	out, err := h.uc.Reject(c.UserContext(), GetPrincipal(c), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Pending godoc
// @Summary      Solicitudes pendientes de la empresa
// @Tags         permission-requests
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.PermissionRequestResponse
// @Router       /api/permission-requests/pending [get]
func (h *PermissionHandler) Pending(c *fiber.Ctx) error {
	out, err := h.uc.GetPending(c.UserContext(), GetPrincipal(c))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// ByUser godoc
// @Summary      Solicitudes de un usuario
// @Tags         permission-requests
// @Produce      json
// @Security     BearerAuth
// @Param        userId  path  string  true  "ID del usuario"
// @Success      200  {array}  dto.PermissionRequestResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/permission-requests/user/{userId} [get]
func (h *PermissionHandler) ByUser(c *fiber.Ctx) error {
	out, err := h.uc.ListByUser(c.UserContext(), GetPrincipal(c), c.Params("userId"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// RejectedByUser godoc
// @Summary      Solicitudes rechazadas de un usuario
// @Tags         permission-requests
// @Produce      json
// @Security     BearerAuth
// @Param        userId  path  string  true  "ID del usuario"
// @Success      200  {array}  dto.PermissionRequestResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/permission-requests/rejected/{userId} [get]
func (h *PermissionHandler) RejectedByUser(c *fiber.Ctx) error {
	out, err := h.uc.GetRejectedByUser(c.UserContext(), GetPrincipal(c), c.Params("userId"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}
