package auth

import (
	"github.com/gofiber/fiber/v2"

	"grahafitness_backend/internals/constants"
	helper "grahafitness_backend/internals/helpers"
	"grahafitness_backend/internals/helpers/apperr"
	"grahafitness_backend/internals/helpers/logx"
)

// RequireCapability: lanjut hanya jika role user punya capability tsb.
// Harus dipasang setelah AuthMiddleware.
func RequireCapability(capability constants.Capability) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw, ok := c.Locals(helper.LocUserRole).(string)
		if !ok {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized: missing role information")
		}

		role, err := constants.ParseRole(raw)
		if err != nil || !role.Can(capability) {
			logx.FromCtx(c).WithField("role", raw).WithField("capability", capability).Warn("[AUTH] capability ditolak")
			return helper.JsonFromError(c, apperr.Forbidden(constants.RoleErrorCapability(capability)))
		}
		return c.Next()
	}
}
