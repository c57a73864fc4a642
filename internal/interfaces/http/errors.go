package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/securepass-api/internal/application/dto"
	"github.com/jhoicas/securepass-api/internal/domain"
)

type errorMapping struct {
	target error
	status int
	code   string
}

// Orden relevante: el primero que coincide con errors.Is gana.
var errorMappings = []errorMapping{
	{domain.ErrValidation, fiber.StatusBadRequest, "VALIDATION"},
	{domain.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND"},
	{domain.ErrTenancyMismatch, fiber.StatusForbidden, "TENANCY_MISMATCH"},
	{domain.ErrForbidden, fiber.StatusForbidden, "FORBIDDEN"},
	{domain.ErrUnauthorized, fiber.StatusUnauthorized, "UNAUTHORIZED"},
	{domain.ErrCapacity, fiber.StatusBadRequest, "CAPACITY_EXCEEDED"},
	{domain.ErrInvalidStatus, fiber.StatusBadRequest, "INVALID_STATUS"},
	{domain.ErrEmailAlreadyExists, fiber.StatusConflict, "EMAIL_EXISTS"},
	{domain.ErrUserIDAlreadyExists, fiber.StatusConflict, "USERID_EXISTS"},
	{domain.ErrRequestNotPending, fiber.StatusConflict, "REQUEST_NOT_PENDING"},
	{domain.ErrDuplicate, fiber.StatusConflict, "DUPLICATE"},
	{domain.ErrGenerationExhausted, fiber.StatusInternalServerError, "GENERATION_EXHAUSTED"},
}

// ErrorHandler traduce los errores de dominio a {code, message}. Los no mapeados se registran y
// salen como 500 INTERNAL sin detalle.
func ErrorHandler(log zerolog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		for _, m := range errorMappings {
			if errors.Is(err, m.target) {
				return c.Status(m.status).JSON(dto.ErrorResponse{Code: m.code, Message: err.Error()})
			}
		}
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return c.Status(fe.Code).JSON(dto.ErrorResponse{Code: "HTTP_ERROR", Message: fe.Message})
		}
		log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("error interno")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno del servidor"})
	}
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}
