// file: internals/route/index.go
package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"grahafitness_backend/internals/configs"
	authRepo "grahafitness_backend/internals/features/users/auth/repository"
	"grahafitness_backend/internals/helpers/dbtime"
	"grahafitness_backend/internals/helpers/logx"
	authMw "grahafitness_backend/internals/middlewares/auth"
	routeDetails "grahafitness_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *configs.Config) {
	startTime = time.Now()
	log := logx.Module("route")
	clock := dbtime.NewClock(cfg.Location())

	BaseRoutes(app, db, cfg)

	api := app.Group("/api")

	// ===================== PUBLIC =====================
	log.Info("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthPublicRoutes(api, db, cfg)

	// ===================== PRIVATE (JWT) =====================
	log.Info("[INFO] Setting up PRIVATE group...")
	private := api.Group("",
		authMw.AuthMiddleware(authMw.AuthOpts{
			Secret: cfg.JWTSecret,
			Store:  authRepo.NewAuthRepository(db),
		}),
	)

	// ===================== MOUNT ROUTES =====================
	routeDetails.AuthPrivateRoutes(private, db, cfg)

	log.Info("[INFO] Mounting Gym routes...")
	routeDetails.GymRoutes(private, db, clock)

	log.Info("[INFO] Mounting Finance routes...")
	routeDetails.FinanceRoutes(private, db, clock, cfg.ItemLinkedTransactions)

	log.Info("[INFO] Mounting Stock routes...")
	routeDetails.StockRoutes(private, db, clock)
}
