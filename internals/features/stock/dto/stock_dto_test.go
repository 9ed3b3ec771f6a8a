package dto

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grahafitness_backend/internals/features/stock/model"
)

func TestCreateItemRequest_Defaults(t *testing.T) {
	req := CreateItemRequest{Name: " Towel ", Quantity: 10}
	req.Normalize()
	require.NoError(t, req.Validate(validator.New()))

	m := req.ToModel()
	assert.Equal(t, "Towel", m.Name)
	assert.Equal(t, model.DefaultUnit, m.Unit)
	assert.Equal(t, model.DefaultMinThreshold, m.MinThreshold)
}

func TestCreateItemRequest_ExplicitZeroThreshold(t *testing.T) {
	zero := 0
	req := CreateItemRequest{Name: "Locker key", MinThreshold: &zero}
	req.Normalize()
	require.NoError(t, req.Validate(validator.New()))
	assert.Equal(t, 0, req.ToModel().MinThreshold)
}

func TestCreateItemRequest_NegativeQuantity(t *testing.T) {
	req := CreateItemRequest{Name: "Towel", Quantity: -1}
	assert.Error(t, req.Validate(validator.New()))
}

func TestMovementRequest_Validation(t *testing.T) {
	v := validator.New()
	assert.NoError(t, v.Struct(MovementRequest{Type: "out", Quantity: 3}))
	assert.Error(t, v.Struct(MovementRequest{Type: "out", Quantity: 0}))
	assert.Error(t, v.Struct(MovementRequest{Type: "transfer", Quantity: 1}))
}

func TestUpdateItemRequest_BlankNameRejected(t *testing.T) {
	blank := "  "
	req := UpdateItemRequest{Name: &blank}
	req.Normalize()
	assert.Error(t, req.Validate(validator.New()))
}
