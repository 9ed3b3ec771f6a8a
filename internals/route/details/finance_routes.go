package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	transactionRoute "grahafitness_backend/internals/features/finance/transactions/route"
	reportRoute "grahafitness_backend/internals/features/reports/route"
	"grahafitness_backend/internals/helpers/dbtime"
)

// Contoh akses: /api/transactions, /api/reports/finance/export
func FinanceRoutes(r fiber.Router, db *gorm.DB, clock dbtime.Clock, itemLinked bool) {
	transactionRoute.TransactionAdminRoutes(r, db, clock, itemLinked)
	reportRoute.ReportRoutes(r, db, clock)
}
