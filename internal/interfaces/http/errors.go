package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/pope-market/internal/application/dto"
	"github.com/jhoicas/pope-market/internal/domain"
	"github.com/jhoicas/pope-market/pkg/logger"
)

var errorMapping = []struct {
	target error
	status int
	code   string
}{
	{domain.ErrDuplicateEmail, fiber.StatusConflict, "EMAIL_EXISTS"},
	{domain.ErrInvalidCredentials, fiber.StatusUnauthorized, "INVALID_CREDENTIALS"},
	{domain.ErrUnauthorized, fiber.StatusForbidden, "UNAUTHORIZED"},
	{domain.ErrProductNotFound, fiber.StatusNotFound, "PRODUCT_NOT_FOUND"},
	{domain.ErrOrderNotFound, fiber.StatusNotFound, "ORDER_NOT_FOUND"},
	{domain.ErrInvalidQuantity, fiber.StatusBadRequest, "INVALID_QUANTITY"},
	{domain.ErrInvalidPrice, fiber.StatusBadRequest, "INVALID_PRICE"},
	{domain.ErrInvalidRole, fiber.StatusBadRequest, "INVALID_ROLE"},
	{domain.ErrInsufficientAvailability, fiber.StatusConflict, "INSUFFICIENT_AVAILABILITY"},
	{domain.ErrInvalidStatusTransition, fiber.StatusConflict, "INVALID_STATUS_TRANSITION"},
}

// writeError traduce un error de dominio a HTTP. Lo no mapeado es 500 y se registra.
func writeError(c *fiber.Ctx, log *logger.Logger, err error) error {
	for _, m := range errorMapping {
		if errors.Is(err, m.target) {
			return c.Status(m.status).JSON(dto.ErrorResponse{Code: m.code, Message: err.Error()})
		}
	}
	log.Error().Err(err).Str("path", c.Path()).Msg("error interno")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "errore interno, riprova più tardi"})
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo della richiesta non valido"})
}

func validation(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: msg})
}
