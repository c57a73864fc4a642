package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/securepass-api/internal/application/access"
	"github.com/jhoicas/securepass-api/internal/application/dto"
	"github.com/jhoicas/securepass-api/internal/domain"
)

// AccessHandler historial de accesos por puerta.
type AccessHandler struct {
	uc *access.AccessLogUseCase
}

// NewAccessHandler construye el handler.
func NewAccessHandler(uc *access.AccessLogUseCase) *AccessHandler {
	return &AccessHandler{uc: uc}
}

// Record godoc
// @Summary      Registrar entrada/salida por una puerta
// @Tags         access
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.RecordAccessInput  true  "user, door, entryTime, exitTime"
// @Success      201   {object}  dto.AccessEventResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/access/events [post]
func (h *AccessHandler) Record(c *fiber.Ctx) error {
	var in dto.RecordAccessInput
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Record(c.UserContext(), GetPrincipal(c), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Recent godoc
// @Summary      Accesos recientes de la empresa
// @Tags         access
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.AccessEventResponse
// @Router       /api/access/recent [get]
func (h *AccessHandler) Recent(c *fiber.Ctx) error {
	out, err := h.uc.RecentForCompany(c.UserContext(), GetPrincipal(c))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Report godoc
// @Summary      Informe PDF de accesos
// @Description  El SuperAdmin indica la empresa con ?companyId; el Admin obtiene la suya.
// @Tags         access
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        companyId  query  string  false  "Empresa (solo SuperAdmin)"
// @Success      200  {file}  binary
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/access/report.pdf [get]
func (h *AccessHandler) Report(c *fiber.Ctx) error {
	caller := GetPrincipal(c)
	companyID := caller.CompanyID
	if caller.IsSuperAdmin() {
		companyID = c.Query("companyId")
	}
	if companyID == "" {
		return domain.ErrValidation
	}
	pdf, err := h.uc.Report(c.UserContext(), companyID)
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="accesos.pdf"`)
	return c.Send(pdf)
}
