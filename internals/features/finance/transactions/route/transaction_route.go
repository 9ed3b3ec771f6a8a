// file: internals/features/finance/transactions/route/transaction_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"grahafitness_backend/internals/constants"
	txCtrl "grahafitness_backend/internals/features/finance/transactions/controller"
	txRepo "grahafitness_backend/internals/features/finance/transactions/repository"
	txSvc "grahafitness_backend/internals/features/finance/transactions/service"
	"grahafitness_backend/internals/helpers/dbtime"
	authMw "grahafitness_backend/internals/middlewares/auth"
)

// TransactionAdminRoutes: base /api/transactions
func TransactionAdminRoutes(r fiber.Router, db *gorm.DB, clock dbtime.Clock, itemLinked bool) {
	svc := txSvc.NewTransactionService(txRepo.NewTransactionRepository(db), clock)
	ctl := txCtrl.NewTransactionController(svc, itemLinked)

	tx := r.Group("/transactions", authMw.RequireCapability(constants.CapManageLedger))
	tx.Get("/", ctl.List)
	tx.Get("/summary", ctl.Summary)
	tx.Post("/", ctl.Create)
	tx.Put("/:id", ctl.Update)
	// 🔒 hapus ledger: superadmin saja
	tx.Delete("/:id", authMw.RequireCapability(constants.CapDeleteLedger), ctl.Delete)
}
