package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/securepass-api/internal/application/analytics"
)

// DashboardHandler métricas y listados globales del SuperAdmin.
type DashboardHandler struct {
	dashboard *analytics.DashboardUseCase
	directory *analytics.DirectoryUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(dashboard *analytics.DashboardUseCase, directory *analytics.DirectoryUseCase) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard, directory: directory}
}

// GetMetrics godoc
// @Summary      Totales globales del panel
// @Description  Pendientes son las solicitudes de empresa Pending sin pago; pagadas, las Pending con pago confirmado.
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.DashboardMetricsResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/admin/dashboard [get]
func (h *DashboardHandler) GetMetrics(c *fiber.Ctx) error {
	out, err := h.dashboard.GetMetrics(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// AllUsers godoc
// @Summary      Usuarios de todas las empresas
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.UserDirectoryEntry
// @Router       /api/admin/all-users [get]
func (h *DashboardHandler) AllUsers(c *fiber.Ctx) error {
	out, err := h.directory.ListAllUsers(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// AllDoors godoc
// @Summary      Puertas de todas las empresas
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.DoorDirectoryEntry
// @Router       /api/admin/all-doors [get]
func (h *DashboardHandler) AllDoors(c *fiber.Ctx) error {
	out, err := h.directory.ListAllDoors(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// UsersByAdmin godoc
// @Summary      Usuarios registrados por un administrador
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        adminId  path  string  true  "ID del administrador"
// @Success      200  {array}  dto.UserDirectoryEntry
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/admin-users/{adminId}/users [get]
func (h *DashboardHandler) UsersByAdmin(c *fiber.Ctx) error {
	out, err := h.directory.ListUsersByAdmin(c.UserContext(), c.Params("adminId"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}
