// file: internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"grahafitness_backend/internals/configs"
	"grahafitness_backend/internals/features/users/auth/controller"
	"grahafitness_backend/internals/features/users/auth/repository"
	"grahafitness_backend/internals/features/users/auth/service"
	rateLimiter "grahafitness_backend/internals/middlewares"
)

func newAuthController(db *gorm.DB, cfg *configs.Config) *controller.AuthController {
	tokens := service.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL())
	return controller.NewAuthController(service.NewAuthService(repository.NewAuthRepository(db), tokens))
}

// 🔓 Public: POST /api/login
func AuthPublicRoutes(api fiber.Router, db *gorm.DB, cfg *configs.Config) {
	ctl := newAuthController(db, cfg)
	api.Post("/login", rateLimiter.LoginRateLimiter(), ctl.Login)
}

// 🔐 Protected (group sudah lewat AuthMiddleware)
func AuthProtectedRoutes(api fiber.Router, db *gorm.DB, cfg *configs.Config) {
	ctl := newAuthController(db, cfg)
	api.Get("/me", ctl.Me)
	api.Post("/logout", ctl.Logout)
}
