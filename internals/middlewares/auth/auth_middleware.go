// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"grahafitness_backend/internals/constants"
	helper "grahafitness_backend/internals/helpers"
	"grahafitness_backend/internals/helpers/apperr"
	"grahafitness_backend/internals/helpers/logx"
)

// SessionStore: sumber data yang dibutuhkan middleware (blacklist + role user).
type SessionStore interface {
	IsTokenBlacklisted(ctx context.Context, token string) (bool, error)
	FindUserRole(ctx context.Context, userID uuid.UUID) (constants.Role, error)
}

type AuthOpts struct {
	Secret string
	Store  SessionStore
	// toleransi jam server untuk exp
	Skew time.Duration
}

func AuthMiddleware(opts AuthOpts) fiber.Handler {
	if opts.Skew == 0 {
		opts.Skew = 30 * time.Second
	}

	return func(c *fiber.Ctx) error {
		log := logx.FromCtx(c).WithField("path", c.Path())

		// 1) Ambil Authorization
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
		}

		if opts.Secret == "" {
			log.Error("[AUTH] JWT_SECRET kosong")
			return helper.JsonError(c, fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		// 2) Cek blacklist (token yang sudah logout)
		blacklisted, err := opts.Store.IsTokenBlacklisted(c.UserContext(), tokenString)
		if err != nil {
			log.WithError(err).Error("[AUTH] DB error saat cek blacklist")
			return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
		}
		if blacklisted {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized - Token is blacklisted")
		}

		// 3) Parse & verifikasi signature; exp dicek manual dengan skew
		claims, err := parseClaims(tokenString, opts.Secret)
		if err != nil {
			log.WithError(err).Warn("[AUTH] Gagal parse token")
			return helper.JsonError(c, fiber.StatusUnauthorized, apperr.ErrInvalidToken.Error())
		}
		exp, err := validateTokenExpiry(claims, opts.Skew)
		if err != nil {
			log.WithError(err).Info("[AUTH] Token expired")
			return helper.JsonError(c, fiber.StatusUnauthorized, apperr.ErrInvalidToken.Error())
		}

		// 4) user_id & role terbaru dari DB
		userID, err := extractUserID(claims)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized - Invalid or missing user ID")
		}
		role, err := opts.Store.FindUserRole(c.UserContext(), userID)
		if err != nil {
			if errors.Is(err, apperr.ErrNotFound) {
				return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized - User not found")
			}
			log.WithError(err).Error("[AUTH] lookup user gagal")
			return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
		}

		// 5) Simpan ke context
		c.Locals(helper.LocUserID, userID.String())
		c.Locals(helper.LocUserRole, string(role))
		c.Locals(helper.LocTokenExp, exp)
		helper.SetRawAccessToken(c, tokenString)

		return c.Next()
	}
}
