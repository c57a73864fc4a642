package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/securepass-api/internal/application/access"
	"github.com/jhoicas/securepass-api/internal/application/dto"
	"github.com/jhoicas/securepass-api/internal/application/provisioning"
)

// UserHandler gestión de usuarios finales por el Admin de su empresa.
type UserHandler struct {
	users       *provisioning.UserUseCase
	permissions *access.PermissionUseCase
}

// NewUserHandler construye el handler.
func NewUserHandler(users *provisioning.UserUseCase, permissions *access.PermissionUseCase) *UserHandler {
	return &UserHandler{users: users, permissions: permissions}
}

// Register godoc
// @Summary      Registrar usuario final
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.RegisterUserInput  true  "Datos del usuario"
// @Success      201   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/users/register [post]
func (h *UserHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterUserInput
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.users.RegisterUser(c.UserContext(), GetPrincipal(c), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar usuarios de la empresa
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.UserResponse
// @Router       /api/users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	out, err := h.users.List(c.UserContext(), GetPrincipal(c))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Obtener usuario
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID del usuario"
// @Success      200  {object}  dto.UserResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/users/{id} [get]
func (h *UserHandler) Get(c *fiber.Ctx) error {
	out, err := h.users.Get(c.UserContext(), GetPrincipal(c), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Editar usuario
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string               true  "ID del usuario"
// @Param        body  body  dto.UpdateUserInput  true  "Campos a modificar"
// @Success      200   {object}  dto.UserResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/users/{id} [put]
func (h *UserHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateUserInput
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.users.Update(c.UserContext(), GetPrincipal(c), c.Params("id"), in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar usuario
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID del usuario"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/users/{id} [delete]
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	if err := h.users.Delete(c.UserContext(), GetPrincipal(c), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "User deleted successfully"})
}

// RemoveDoorAccess godoc
// @Summary      Revocar una concesión de acceso
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        userId        path  string  true  "ID del usuario"
// @Param        doorAccessId  path  string  true  "ID de la concesión"
// @Success      200  {object}  dto.UserResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/users/{userId}/door-access/{doorAccessId} [delete]
func (h *UserHandler) RemoveDoorAccess(c *fiber.Ctx) error {
	out, err := h.permissions.RemoveDoorAccess(c.UserContext(), GetPrincipal(c), c.Params("userId"), c.Params("doorAccessId"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// CheckEmail godoc
// @Summary      Verificar que un email esté libre
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        email  query  string  true  "Email"
// @Success      200  {object}  dto.UniqueResponse
// @Router       /api/users/check-email [get]
func (h *UserHandler) CheckEmail(c *fiber.Ctx) error {
	ok, err := h.users.CheckEmailUnique(c.UserContext(), c.Query("email"))
	if err != nil {
		return err
	}
	return c.JSON(dto.UniqueResponse{IsUnique: ok})
}

// CheckEmailUpdate godoc
// @Summary      Verificar email libre excluyendo al propio usuario
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        email   query  string  true  "Email"
// @Param        userId  query  string  true  "ID o userId del usuario editado"
// @Success      200  {object}  dto.UniqueResponse
// @Router       /api/users/check-email-update [get]
func (h *UserHandler) CheckEmailUpdate(c *fiber.Ctx) error {
	ok, err := h.users.CheckEmailUniqueForUpdate(c.UserContext(), c.Query("email"), c.Query("userId"))
	if err != nil {
		return err
	}
	return c.JSON(dto.UniqueResponse{IsUnique: ok})
}

// CheckUserID godoc
// @Summary      Verificar que un userId esté libre
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        userId  query  string  true  "userId"
// @Success      200  {object}  dto.UniqueResponse
// @Router       /api/users/check-userid [get]
func (h *UserHandler) CheckUserID(c *fiber.Ctx) error {
	ok, err := h.users.CheckUserIDUnique(c.UserContext(), c.Query("userId"))
	if err != nil {
		return err
	}
	return c.JSON(dto.UniqueResponse{IsUnique: ok})
}
