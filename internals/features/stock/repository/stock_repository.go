// file: internals/features/stock/repository/stock_repository.go
package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"grahafitness_backend/internals/features/stock/model"
	"grahafitness_backend/internals/helpers/apperr"
)

type StockRepository struct {
	DB *gorm.DB
}

func NewStockRepository(db *gorm.DB) *StockRepository {
	return &StockRepository{DB: db}
}

/* ====================== ITEM ====================== */

// List: search cocok ke nama atau kategori (case-insensitive).
func (r *StockRepository) List(ctx context.Context, search string) ([]model.StockItem, error) {
	q := r.DB.WithContext(ctx).Model(&model.StockItem{})
	if s := strings.TrimSpace(search); s != "" {
		like := "%" + s + "%"
		q = q.Where("name ILIKE ? OR category ILIKE ?", like, like)
	}
	var rows []model.StockItem
	if err := q.Order("name ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *StockRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.StockItem, error) {
	var it model.StockItem
	if err := r.DB.WithContext(ctx).First(&it, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("item")
		}
		return nil, err
	}
	return &it, nil
}

func (r *StockRepository) Create(ctx context.Context, it *model.StockItem) error {
	return r.DB.WithContext(ctx).Create(it).Error
}

func (r *StockRepository) Update(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	res := r.DB.WithContext(ctx).Model(&model.StockItem{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("item")
	}
	return nil
}

// Delete: movement ikut terhapus, transaksi yang menunjuk item di-NULL-kan.
func (r *StockRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("item_id = ?", id).Delete(&model.StockMovement{}).Error; err != nil {
			return err
		}
		if err := tx.Table("transactions").Where("item_id = ?", id).Update("item_id", nil).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&model.StockItem{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperr.NotFound("item")
		}
		return nil
	})
}

/* ====================== MOVEMENT ====================== */

// MutateFn menerima item terkunci, mengembalikan state baru + movement.
type MutateFn func(item model.StockItem) (model.StockItem, model.StockMovement, error)

// ApplyMovement: SELECT ... FOR UPDATE pada item, hitung, simpan quantity
// dan movement dalam satu transaksi. Movement paralel per item jadi berurutan.
func (r *StockRepository) ApplyMovement(ctx context.Context, id uuid.UUID, fn MutateFn) (*model.StockItem, *model.StockMovement, error) {
	var (
		outItem model.StockItem
		outMv   model.StockMovement
	)
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var it model.StockItem
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&it, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("item")
			}
			return err
		}

		next, mv, err := fn(it)
		if err != nil {
			return err
		}

		if err := tx.Model(&model.StockItem{}).
			Where("id = ?", id).
			Update("quantity", next.Quantity).Error; err != nil {
			return err
		}
		if err := tx.Create(&mv).Error; err != nil {
			return err
		}
		outItem, outMv = next, mv
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return &outItem, &outMv, nil
}

// ListMovements: terbaru dulu dengan nama item.
func (r *StockRepository) ListMovements(ctx context.Context, limit int) ([]model.MovementWithItem, error) {
	var rows []model.MovementWithItem
	err := r.DB.WithContext(ctx).
		Table("stock_movements AS mv").
		Select("mv.*, COALESCE(s.name, 'Unknown') AS item_name").
		Joins("LEFT JOIN stock_items s ON s.id = mv.item_id").
		Order("mv.date DESC, mv.created_at DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
