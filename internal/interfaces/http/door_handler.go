package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/securepass-api/internal/application/access"
	"github.com/jhoicas/securepass-api/internal/application/dto"
)

// DoorHandler puertas de la empresa del Admin.
type DoorHandler struct {
	uc *access.DoorUseCase
}

// NewDoorHandler construye el handler.
func NewDoorHandler(uc *access.DoorUseCase) *DoorHandler {
	return &DoorHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar puerta
// @Tags         doors
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateDoorInput  true  "doorCode, roomName, location"
// @Success      201   {object}  dto.DoorResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/doors [post]
func (h *DoorHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDoorInput
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), GetPrincipal(c), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar puertas
// @Description  Con ?mine=true devuelve solo las registradas por el Admin autenticado.
// @Tags         doors
// @Produce      json
// @Security     BearerAuth
// @Param        mine  query  bool  false  "Solo las del Admin autenticado"
// @Success      200  {array}  dto.DoorResponse
// @Router       /api/doors [get]
func (h *DoorHandler) List(c *fiber.Ctx) error {
	var (
		out []dto.DoorResponse
		err error
	)
	if c.QueryBool("mine", false) {
		out, err = h.uc.ListByAdmin(c.UserContext(), GetUserID(c))
	} else {
		out, err = h.uc.List(c.UserContext(), GetPrincipal(c))
	}
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Obtener puerta
// @Tags         doors
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID de la puerta"
// @Success      200  {object}  dto.DoorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/doors/{id} [get]
func (h *DoorHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext(), GetPrincipal(c), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar puerta
// @Tags         doors
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID de la puerta"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/doors/{id} [delete]
func (h *DoorHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), GetPrincipal(c), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "Door deleted successfully"})
}
