package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/pope-market/internal/application/auth"
	"github.com/jhoicas/pope-market/internal/application/dto"
)

// Locals keys para el usuario de la sesión en Fiber.
const (
	LocalUserID = "user_id"
	LocalRole   = "role"
)

// RequireSession corta con 401 si no hay sesión abierta y, si la hay,
// deja UserID y rol en c.Locals.
func RequireSession(uc *auth.AuthUseCase) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := uc.CurrentUser(c.Context())
		if user == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "NO_SESSION", Message: "effettua il login per continuare"})
		}
		c.Locals(LocalUserID, user.ID)
		c.Locals(LocalRole, user.Role)
		return c.Next()
	}
}

// GetUserID devuelve el UserID del contexto (después de RequireSession).
func GetUserID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalUserID).(string)
	return s
}

// GetRole devuelve el rol del contexto (después de RequireSession).
func GetRole(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalRole).(string)
	return s
}
