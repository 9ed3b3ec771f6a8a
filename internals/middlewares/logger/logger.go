package logger

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/utils"
	"github.com/sirupsen/logrus"

	"grahafitness_backend/internals/helpers/logx"
)

// RequestLogger: Request-ID + timeout context + satu baris log per request.
func RequestLogger(timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get("X-Request-ID")
		if id == "" {
			id = utils.UUID()
		}
		c.Set("X-Request-ID", id)
		c.Locals("reqid", id)

		start := time.Now()
		if timeout > 0 {
			ctx, cancel := context.WithTimeout(c.Context(), timeout)
			defer cancel()
			c.SetUserContext(ctx)
		}

		err := c.Next()

		status := c.Response().StatusCode()
		if fe, ok := err.(*fiber.Error); ok {
			status = fe.Code
		}
		entry := logx.FromCtx(c).WithFields(logrus.Fields{
			"method": c.Method(),
			"path":   c.OriginalURL(),
			"status": status,
			"ip":     c.IP(),
			"dur":    time.Since(start).String(),
		})
		switch {
		case status >= 500:
			entry.Error("[REQ]")
		case status >= 400:
			entry.Warn("[REQ]")
		default:
			entry.Info("[REQ]")
		}
		return err
	}
}
