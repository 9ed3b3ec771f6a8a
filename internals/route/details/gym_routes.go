package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dashboardRoute "grahafitness_backend/internals/features/dashboard/route"
	memberRoute "grahafitness_backend/internals/features/members/route"
	"grahafitness_backend/internals/helpers/dbtime"
)

// ✅ Member, attendance & dashboard (token wajib)
// Contoh akses: /api/members, /api/attendance, /api/dashboard
func GymRoutes(r fiber.Router, db *gorm.DB, clock dbtime.Clock) {
	dashboardRoute.DashboardRoutes(r, db, clock)
	memberRoute.MemberAdminRoutes(r, db, clock)
}
