// file: internals/features/finance/transactions/repository/transaction_repository.go
package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"grahafitness_backend/internals/features/finance/transactions/model"
	"grahafitness_backend/internals/helpers/apperr"
)

type TransactionRepository struct {
	DB *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{DB: db}
}

// ListFilter: semua field opsional. Limit 0 = tanpa batas.
type ListFilter struct {
	Type   string
	Month  string
	Offset int
	Limit  int
}

const selectWithNames = `t.*, m.name AS member_name, s.name AS item_name`

func (r *TransactionRepository) withNames(ctx context.Context) *gorm.DB {
	return r.DB.WithContext(ctx).
		Table("transactions AS t").
		Joins("LEFT JOIN members m ON m.id = t.member_id").
		Joins("LEFT JOIN stock_items s ON s.id = t.item_id")
}

// List: terbaru dulu (date DESC, lalu created_at DESC sebagai tie-break).
func (r *TransactionRepository) List(ctx context.Context, f ListFilter) ([]model.TransactionWithNames, int64, error) {
	q := r.withNames(ctx)
	if f.Type != "" {
		q = q.Where("t.type = ?", f.Type)
	}
	if f.Month != "" {
		q = q.Where("t.date LIKE ?", f.Month+"%")
	}

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	q = q.Select(selectWithNames).Order("t.date DESC, t.created_at DESC")
	if f.Limit > 0 {
		q = q.Offset(f.Offset).Limit(f.Limit)
	}
	var rows []model.TransactionWithNames
	if err := q.Scan(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// ListLedger: kolom minimum untuk agregasi (type, date, amount).
func (r *TransactionRepository) ListLedger(ctx context.Context) ([]model.Transaction, error) {
	var rows []model.Transaction
	err := r.DB.WithContext(ctx).
		Model(&model.Transaction{}).
		Select("id", "type", "date", "amount").
		Find(&rows).Error
	return rows, err
}

// ListByDateRange: untuk export, batas inklusif, kosong = terbuka.
func (r *TransactionRepository) ListByDateRange(ctx context.Context, start, end string) ([]model.TransactionWithNames, error) {
	q := r.withNames(ctx)
	if start != "" {
		q = q.Where("t.date >= ?", start)
	}
	if end != "" {
		q = q.Where("t.date <= ?", end)
	}
	var rows []model.TransactionWithNames
	err := q.Select(selectWithNames).Order("t.date DESC, t.created_at DESC").Scan(&rows).Error
	return rows, err
}

func (r *TransactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Transaction, error) {
	var t model.Transaction
	if err := r.DB.WithContext(ctx).First(&t, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("transaction")
		}
		return nil, err
	}
	return &t, nil
}

func (r *TransactionRepository) Create(ctx context.Context, t *model.Transaction) error {
	return r.DB.WithContext(ctx).Create(t).Error
}

func (r *TransactionRepository) Update(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	res := r.DB.WithContext(ctx).Model(&model.Transaction{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("transaction")
	}
	return nil
}

func (r *TransactionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.DB.WithContext(ctx).Where("id = ?", id).Delete(&model.Transaction{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("transaction")
	}
	return nil
}

// Exists dipakai untuk validasi referensi member_id / item_id.
func (r *TransactionRepository) Exists(ctx context.Context, table string, id uuid.UUID) (bool, error) {
	var n int64
	err := r.DB.WithContext(ctx).Table(table).Where("id = ?", id).Count(&n).Error
	return n > 0, err
}
