package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/jhoicas/pope-market/pkg/logger"
)

// RequestLogger registra una línea por petición con método, ruta, estado y duración.
// Nivel según el resultado: error para 5xx, warn para 4xx, info para el resto.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		if err != nil {
			if herr := c.App().ErrorHandler(c, err); herr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}
		status := c.Response().StatusCode()
		dur := time.Since(start)

		ev := log.Info()
		switch {
		case err != nil || status >= 500:
			ev = log.Error().Err(err)
		case status >= 400:
			ev = log.Warn()
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Str("remote_ip", c.IP()).
			Int("status", status).
			Int64("duration_ms", dur.Milliseconds())
		if rid, ok := c.Locals(requestid.ConfigDefault.ContextKey).(string); ok && rid != "" {
			ev.Str("request_id", rid)
		}
		ev.Msg("request completed")
		return nil
	}
}
