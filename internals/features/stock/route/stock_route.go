// file: internals/features/stock/route/stock_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"grahafitness_backend/internals/constants"
	stockCtrl "grahafitness_backend/internals/features/stock/controller"
	stockRepo "grahafitness_backend/internals/features/stock/repository"
	stockSvc "grahafitness_backend/internals/features/stock/service"
	"grahafitness_backend/internals/helpers/dbtime"
	authMw "grahafitness_backend/internals/middlewares/auth"
)

// StockAdminRoutes: base /api/stock
func StockAdminRoutes(r fiber.Router, db *gorm.DB, clock dbtime.Clock) {
	svc := stockSvc.NewStockService(stockRepo.NewStockRepository(db), clock)
	ctl := stockCtrl.NewStockController(svc)

	stock := r.Group("/stock", authMw.RequireCapability(constants.CapManageStock))
	// /movements harus sebelum /:id
	stock.Get("/movements", ctl.Movements)
	stock.Get("/", ctl.List)
	stock.Post("/", ctl.Create)
	stock.Put("/:id", ctl.Update)
	stock.Delete("/:id", ctl.Delete)
	stock.Post("/:id/movement", ctl.Movement)
}
