package dto

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strp(s string) *string { return &s }

func TestCreateTransactionRequest_ItemLinkGate(t *testing.T) {
	v := validator.New()
	req := CreateTransactionRequest{
		Type:     " Expense ",
		Date:     "2024-04-01",
		Category: "Stock",
		Amount:   20000,
		ItemID:   strp(uuid.NewString()),
	}
	req.Normalize()

	assert.ErrorIs(t, req.Validate(v, false), ErrItemLinkDisabled)
	assert.NoError(t, req.Validate(v, true))
	assert.Equal(t, "expense", req.Type)
}

func TestCreateTransactionRequest_BlankRefsBecomeNil(t *testing.T) {
	req := CreateTransactionRequest{
		Type: "income", Date: "2024-04-01", Category: "Membership", Amount: 1,
		MemberID: strp("  "),
	}
	req.Normalize()

	require.NoError(t, req.Validate(validator.New(), false))
	assert.Nil(t, req.ToModel().MemberID)
}

func TestCreateTransactionRequest_RejectsBadInput(t *testing.T) {
	v := validator.New()

	neg := CreateTransactionRequest{Type: "income", Date: "2024-04-01", Category: "x", Amount: -5}
	assert.Error(t, neg.Validate(v, false))

	badType := CreateTransactionRequest{Type: "refund", Date: "2024-04-01", Category: "x"}
	assert.Error(t, badType.Validate(v, false))

	badDate := CreateTransactionRequest{Type: "income", Date: "01/04/2024", Category: "x"}
	assert.Error(t, badDate.Validate(v, false))
}

func TestUpdateTransactionRequest_ToFields(t *testing.T) {
	member := uuid.New()
	amount := int64(75000)
	req := UpdateTransactionRequest{
		Category: strp(" Supplements "),
		Amount:   &amount,
		MemberID: strp(member.String()),
		ItemID:   strp(""),
	}

	fields := req.ToFields()

	assert.Equal(t, "Supplements", fields["category"])
	assert.Equal(t, int64(75000), fields["amount"])
	require.IsType(t, &uuid.UUID{}, fields["member_id"])
	assert.Equal(t, member, *fields["member_id"].(*uuid.UUID))
	assert.Contains(t, fields, "item_id")
	assert.Nil(t, fields["item_id"])
	assert.NotContains(t, fields, "type")
}

func TestUpdateTransactionRequest_BlankTypeRejected(t *testing.T) {
	v := validator.New()

	req := UpdateTransactionRequest{Type: strp(" ")}
	req.Normalize()
	assert.Error(t, req.Validate(v, false))

	req = UpdateTransactionRequest{Type: strp(" Expense "), Category: strp(" Rent ")}
	req.Normalize()
	require.NoError(t, req.Validate(v, false))
	assert.Equal(t, "expense", *req.Type)
}
