package database

import (
	"gorm.io/gorm"

	txModel "grahafitness_backend/internals/features/finance/transactions/model"
	memberModel "grahafitness_backend/internals/features/members/model"
	stockModel "grahafitness_backend/internals/features/stock/model"
	authModel "grahafitness_backend/internals/features/users/auth/model"
	"grahafitness_backend/internals/helpers/logx"
)

// Models: urutan penting, parent sebelum child.
func Models() []any {
	return []any{
		&authModel.UserModel{},
		&authModel.TokenBlacklist{},
		&memberModel.Member{},
		&memberModel.Attendance{},
		&stockModel.StockItem{},
		&stockModel.StockMovement{},
		&txModel.Transaction{},
	}
}

func AutoMigrate(db *gorm.DB) error {
	log := logx.Module("database")
	if err := db.AutoMigrate(Models()...); err != nil {
		return err
	}
	log.Info("✅ Migrasi skema selesai")
	return nil
}
