package http

import (
	"slices"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/pope-market/internal/application/dto"
)

// RequireRole corta con 403 si el rol de la sesión no está entre los permitidos.
// Debe usarse DESPUÉS de RequireSession (necesita LocalRole).
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !slices.Contains(roles, GetRole(c)) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "operazione non consentita per il tuo ruolo",
			})
		}
		return c.Next()
	}
}
