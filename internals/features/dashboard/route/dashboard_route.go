package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"grahafitness_backend/internals/features/dashboard/controller"
	"grahafitness_backend/internals/features/dashboard/repository"
	"grahafitness_backend/internals/features/dashboard/service"
	"grahafitness_backend/internals/helpers/dbtime"
)

// DashboardRoutes: GET /api/dashboard (semua role yang login)
func DashboardRoutes(r fiber.Router, db *gorm.DB, clock dbtime.Clock) {
	svc := service.NewDashboardService(repository.NewDashboardRepository(db), clock)
	ctl := controller.NewDashboardController(svc)
	r.Get("/dashboard", ctl.Get)
}
