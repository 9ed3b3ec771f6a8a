// file: internals/features/stock/service/ledger.go
package service

import (
	"github.com/google/uuid"

	"grahafitness_backend/internals/features/stock/model"
	"grahafitness_backend/internals/helpers/apperr"
)

// ApplyMovement menghasilkan state item baru + satu record movement.
//   - in  : quantity += qty
//   - out : quantity = max(0, quantity - qty), clamped=true kalau stok kurang
//
// Movement selalu dibuat (juga saat clamp) dengan qty yang diminta.
func ApplyMovement(item model.StockItem, kind model.MovementType, qty int, note, today string) (model.StockItem, model.StockMovement, bool, error) {
	if !kind.Valid() {
		return item, model.StockMovement{}, false, apperr.Invalid("type must be in or out")
	}
	if qty <= 0 {
		return item, model.StockMovement{}, false, apperr.Invalid("quantity must be positive")
	}

	clamped := false
	switch kind {
	case model.MovementIn:
		item.Quantity += qty
	case model.MovementOut:
		if qty > item.Quantity {
			clamped = true
			item.Quantity = 0
		} else {
			item.Quantity -= qty
		}
	}

	mv := model.StockMovement{
		ID:       uuid.New(),
		ItemID:   item.ID,
		Type:     kind,
		Quantity: qty,
		Date:     today,
		Note:     note,
	}
	return item, mv, clamped, nil
}

// IsLow: quantity <= min_threshold, dihitung tiap baca.
func IsLow(item model.StockItem) bool {
	return item.Quantity <= item.MinThreshold
}

func CountLow(items []model.StockItem) int {
	n := 0
	for _, it := range items {
		if IsLow(it) {
			n++
		}
	}
	return n
}
