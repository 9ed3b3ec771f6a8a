// file: internals/features/dashboard/repository/dashboard_repository.go
package repository

import (
	"context"

	"gorm.io/gorm"

	"grahafitness_backend/internals/features/dashboard/service"
	txModel "grahafitness_backend/internals/features/finance/transactions/model"
	memberModel "grahafitness_backend/internals/features/members/model"
	stockModel "grahafitness_backend/internals/features/stock/model"
)

type DashboardRepository struct {
	DB *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) *DashboardRepository {
	return &DashboardRepository{DB: db}
}

// Load: beberapa query read-only kecil, tidak dalam transaksi.
func (r *DashboardRepository) Load(ctx context.Context, today, month string) (*service.Snapshot, error) {
	db := r.DB.WithContext(ctx)
	var s service.Snapshot

	if err := db.Model(&memberModel.Member{}).Select("id", "name", "end_date", "status").Find(&s.Members).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&txModel.Transaction{}).
		Select("id", "type", "date", "amount").
		Where("date LIKE ?", month+"%").
		Find(&s.MonthTransactions).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&memberModel.Attendance{}).
		Where("date = ? AND type = ?", today, memberModel.AttendanceCheckIn).
		Count(&s.TodayCheckins).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&stockModel.StockItem{}).Select("id", "quantity", "min_threshold").Find(&s.Items).Error; err != nil {
		return nil, err
	}
	if err := db.Table("attendance AS a").
		Select("a.id, a.member_id, a.date, a.time, a.type, COALESCE(m.name, 'Unknown') AS member_name").
		Joins("LEFT JOIN members m ON m.id = a.member_id").
		Order("a.date DESC, a.created_at DESC").
		Limit(service.RecentAttendanceLimit).
		Scan(&s.RecentAttendance).Error; err != nil {
		return nil, err
	}
	if err := db.Order("date DESC, created_at DESC").
		Limit(service.RecentTransactionsLimit).
		Find(&s.RecentTransactions).Error; err != nil {
		return nil, err
	}
	return &s, nil
}
