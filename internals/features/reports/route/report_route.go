package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"grahafitness_backend/internals/constants"
	txRepo "grahafitness_backend/internals/features/finance/transactions/repository"
	memberRepo "grahafitness_backend/internals/features/members/repository"
	"grahafitness_backend/internals/features/reports/controller"
	"grahafitness_backend/internals/features/reports/service"
	"grahafitness_backend/internals/helpers/dbtime"
	authMw "grahafitness_backend/internals/middlewares/auth"
)

// ReportRoutes: base /api/reports
func ReportRoutes(r fiber.Router, db *gorm.DB, clock dbtime.Clock) {
	svc := service.NewReportService(txRepo.NewTransactionRepository(db), memberRepo.NewMemberRepository(db))
	ctl := controller.NewReportController(svc, clock)

	rep := r.Group("/reports", authMw.RequireCapability(constants.CapExportReports))
	rep.Get("/finance/export", ctl.ExportFinance)
	rep.Get("/attendance/export", ctl.ExportAttendance)
}
