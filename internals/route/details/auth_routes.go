package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"grahafitness_backend/internals/configs"
	authRoute "grahafitness_backend/internals/features/users/auth/route"
)

func AuthPublicRoutes(r fiber.Router, db *gorm.DB, cfg *configs.Config) {
	authRoute.AuthPublicRoutes(r, db, cfg)
}

func AuthPrivateRoutes(r fiber.Router, db *gorm.DB, cfg *configs.Config) {
	authRoute.AuthProtectedRoutes(r, db, cfg)
}
