// file: internals/features/stock/model/stock_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	DefaultUnit         = "pcs"
	DefaultMinThreshold = 5
)

/* =========================
   StockItem
   ========================= */

// StockItem: quantity tidak pernah negatif (movement "out" di-clamp ke 0).
type StockItem struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;column:id" json:"id"`
	Name         string    `gorm:"type:varchar(120);not null;column:name" json:"name"`
	Category     string    `gorm:"type:varchar(80);not null;default:'';column:category" json:"category"`
	Unit         string    `gorm:"type:varchar(20);not null;default:'pcs';column:unit" json:"unit"`
	Quantity     int       `gorm:"not null;default:0;column:quantity;check:chk_stock_qty_nonneg,quantity >= 0" json:"quantity"`
	MinThreshold int       `gorm:"not null;default:5;column:min_threshold" json:"min_threshold"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	Movements []StockMovement `gorm:"foreignKey:ItemID;constraint:OnDelete:CASCADE" json:"-"`
}

func (StockItem) TableName() string { return "stock_items" }

/* =========================
   StockMovement
   ========================= */

type MovementType string

const (
	MovementIn  MovementType = "in"
	MovementOut MovementType = "out"
)

func (t MovementType) Valid() bool {
	return t == MovementIn || t == MovementOut
}

// StockMovement menyimpan quantity yang DIMINTA, bukan yang benar-benar terpotong.
type StockMovement struct {
	ID        uuid.UUID    `gorm:"type:uuid;primaryKey;column:id" json:"id"`
	ItemID    uuid.UUID    `gorm:"type:uuid;not null;column:item_id;index:idx_stock_movements_item" json:"item_id"`
	Type      MovementType `gorm:"type:varchar(4);not null;column:type" json:"type"`
	Quantity  int          `gorm:"not null;column:quantity" json:"quantity"`
	Date      string       `gorm:"type:varchar(10);not null;column:date;index:idx_stock_movements_date" json:"date"`
	Note      string       `gorm:"type:text;not null;default:'';column:note" json:"note"`
	CreatedAt time.Time    `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (StockMovement) TableName() string { return "stock_movements" }

type MovementWithItem struct {
	StockMovement
	ItemName string `gorm:"column:item_name" json:"item_name"`
}
