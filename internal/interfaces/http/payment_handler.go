package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/securepass-api/internal/application/billing"
	"github.com/jhoicas/securepass-api/internal/application/dto"
	"github.com/jhoicas/securepass-api/internal/domain"
)

// PaymentHandler checkout y callback de la pasarela de pago.
type PaymentHandler struct {
	uc *billing.PaymentUseCase
}

// NewPaymentHandler construye el handler.
func NewPaymentHandler(uc *billing.PaymentUseCase) *PaymentHandler {
	return &PaymentHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar pago pendiente
// @Tags         payment
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreatePaymentInput  true  "Datos del checkout"
// @Success      201   {object}  dto.CreatePaymentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/payment [post]
func (h *PaymentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePaymentInput
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if in.CompanyID != "" && !GetPrincipal(c).CanAccessCompany(in.CompanyID) {
		return domain.ErrTenancyMismatch
	}
	out, err := h.uc.CreatePayment(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GenerateID godoc
// @Summary      Generar orderId único de 16 dígitos
// @Tags         payment
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.GeneratedIDResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/payment/generateid [get]
func (h *PaymentHandler) GenerateID(c *fiber.Ctx) error {
	id, err := h.uc.GenerateOrderID(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(dto.GeneratedIDResponse{UniquePaymentID: id, Message: "Unique payment ID generated"})
}

// CompanyWithPayments godoc
// @Summary      Empresa con sus pagos
// @Tags         payment
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID de la empresa"
// @Success      200  {object}  dto.CompanyWithPaymentsResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/payment/{id} [get]
func (h *PaymentHandler) CompanyWithPayments(c *fiber.Ctx) error {
	caller := GetPrincipal(c)
	id := c.Params("id")
	if !caller.CanAccessCompany(id) {
		return domain.ErrTenancyMismatch
	}
	out, err := h.uc.CompanyWithPayments(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// ByOrderID godoc
// @Summary      Obtener pago por orderId
// @Tags         payment
// @Produce      json
// @Security     BearerAuth
// @Param        orderId  path  string  true  "orderId"
// @Success      200  {object}  dto.PaymentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/payment/order/{orderId} [get]
func (h *PaymentHandler) ByOrderID(c *fiber.Ctx) error {
	out, err := h.uc.GetByOrderID(c.UserContext(), c.Params("orderId"))
	if err != nil {
		return err
	}
	if out.CompanyID != "" && !GetPrincipal(c).CanAccessCompany(out.CompanyID) {
		return domain.ErrTenancyMismatch
	}
	return c.JSON(out)
}

// Success godoc
// @Summary      Callback de pago exitoso
// @Description  Invocado por la pasarela; marca el pago como completado y la empresa o solicitud como pagada.
// @Tags         payment
// @Produce      json
// @Param        orderId  path  string  true  "orderId"
// @Success      200  {object}  dto.PaymentSuccessResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/payment/succes/{orderId} [put]
func (h *PaymentHandler) Success(c *fiber.Ctx) error {
	out, err := h.uc.PaymentSuccess(c.UserContext(), c.Params("orderId"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}
