package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grahafitness_backend/internals/features/stock/model"
	"grahafitness_backend/internals/helpers/apperr"
)

func towel(qty int) model.StockItem {
	return model.StockItem{ID: uuid.New(), Name: "Towel", Unit: "pcs", Quantity: qty, MinThreshold: 5}
}

func TestApplyMovement_OutClampsAtZero(t *testing.T) {
	item := towel(5)

	next, mv, clamped, err := ApplyMovement(item, model.MovementOut, 10, "", "2024-06-01")
	require.NoError(t, err)

	assert.Equal(t, 0, next.Quantity)
	assert.True(t, clamped)
	assert.True(t, IsLow(next))
	// movement mencatat jumlah yang diminta
	assert.Equal(t, 10, mv.Quantity)
	assert.Equal(t, item.ID, mv.ItemID)
	assert.Equal(t, "2024-06-01", mv.Date)
}

func TestApplyMovement_OutExactIsNotClamped(t *testing.T) {
	next, _, clamped, err := ApplyMovement(towel(5), model.MovementOut, 5, "", "2024-06-01")
	require.NoError(t, err)
	assert.Equal(t, 0, next.Quantity)
	assert.False(t, clamped)
}

func TestApplyMovement_In(t *testing.T) {
	next, mv, clamped, err := ApplyMovement(towel(3), model.MovementIn, 7, "restock", "2024-06-01")
	require.NoError(t, err)

	assert.Equal(t, 10, next.Quantity)
	assert.False(t, clamped)
	assert.False(t, IsLow(next))
	assert.Equal(t, model.MovementIn, mv.Type)
	assert.Equal(t, "restock", mv.Note)
}

func TestApplyMovement_Invalid(t *testing.T) {
	item := towel(3)

	_, _, _, err := ApplyMovement(item, model.MovementOut, 0, "", "2024-06-01")
	assert.ErrorIs(t, err, apperr.ErrValidation)

	_, _, _, err = ApplyMovement(item, model.MovementType("sideways"), 1, "", "2024-06-01")
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestCountLow(t *testing.T) {
	items := []model.StockItem{towel(0), towel(5), towel(6)}
	assert.Equal(t, 2, CountLow(items))
}
