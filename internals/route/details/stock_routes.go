package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	stockRoute "grahafitness_backend/internals/features/stock/route"
	"grahafitness_backend/internals/helpers/dbtime"
)

func StockRoutes(r fiber.Router, db *gorm.DB, clock dbtime.Clock) {
	stockRoute.StockAdminRoutes(r, db, clock)
}
