package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"grahafitness_backend/internals/configs"
	"grahafitness_backend/internals/middlewares"
)

func BaseRoutes(app *fiber.App, db *gorm.DB, cfg *configs.Config) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Graha Fitness API 🏋️")
	})

	// 📈 Prometheus
	app.Get("/metrics", middlewares.MetricsHandler())

	app.Get("/api/health", func(c *fiber.Ctx) error {
		dbStatus := "Connected"
		serverStatus := "ok"
		httpStatus := fiber.StatusOK

		sqlDB, err := db.DB()
		if err != nil || sqlDB.PingContext(c.UserContext()) != nil {
			dbStatus = "Database connection error"
			serverStatus = "down"
			httpStatus = fiber.StatusServiceUnavailable
		}

		return c.Status(httpStatus).JSON(fiber.Map{
			"status":         serverStatus,
			"database":       dbStatus,
			"timestamp":      time.Now().UTC().Format(time.RFC3339),
			"uptime_seconds": int(time.Since(startTime).Seconds()),
			"environment":    cfg.AppEnv,
		})
	})
}
