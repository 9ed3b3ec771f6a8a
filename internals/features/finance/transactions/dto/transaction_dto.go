// file: internals/features/finance/transactions/dto/transaction_dto.go
package dto

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"grahafitness_backend/internals/features/finance/transactions/model"
)

// ErrItemLinkDisabled: item_id dikirim padahal ITEM_LINKED_TRANSACTIONS mati.
var ErrItemLinkDisabled = errors.New("item_id is not enabled on this deployment")

/* =========================================================
   Requests: CREATE
   ========================================================= */

type CreateTransactionRequest struct {
	Type     string  `json:"type" validate:"required,oneof=income expense"`
	Date     string  `json:"date" validate:"required,datetime=2006-01-02"`
	Category string  `json:"category" validate:"required,max=80"`
	Amount   int64   `json:"amount" validate:"gte=0"`
	MemberID *string `json:"member_id" validate:"omitempty,uuid"`
	ItemID   *string `json:"item_id" validate:"omitempty,uuid"`
	Note     string  `json:"note" validate:"omitempty,max=500"`
}

func (r *CreateTransactionRequest) Normalize() {
	r.Type = strings.ToLower(strings.TrimSpace(r.Type))
	r.Date = strings.TrimSpace(r.Date)
	r.Category = strings.TrimSpace(r.Category)
	r.Note = strings.TrimSpace(r.Note)
	r.MemberID = trimOrNil(r.MemberID)
	r.ItemID = trimOrNil(r.ItemID)
}

func (r *CreateTransactionRequest) Validate(v *validator.Validate, itemLinked bool) error {
	if err := v.Struct(r); err != nil {
		return err
	}
	if r.ItemID != nil && !itemLinked {
		return ErrItemLinkDisabled
	}
	return nil
}

func (r *CreateTransactionRequest) ToModel() *model.Transaction {
	return &model.Transaction{
		Type:     model.TransactionType(r.Type),
		Date:     r.Date,
		Category: r.Category,
		Amount:   r.Amount,
		MemberID: parseOpt(r.MemberID),
		ItemID:   parseOpt(r.ItemID),
		Note:     r.Note,
	}
}

/* =========================================================
   Requests: UPDATE (partial)
   member_id / item_id "" → referensi dilepas (NULL)
   ========================================================= */

type UpdateTransactionRequest struct {
	Type     *string `json:"type" validate:"omitnil,oneof=income expense"`
	Date     *string `json:"date" validate:"omitnil,datetime=2006-01-02"`
	Category *string `json:"category" validate:"omitnil,min=1,max=80"`
	Amount   *int64  `json:"amount" validate:"omitempty,gte=0"`
	MemberID *string `json:"member_id" validate:"omitempty,uuid"`
	ItemID   *string `json:"item_id" validate:"omitempty,uuid"`
	Note     *string `json:"note" validate:"omitempty,max=500"`
}

func (r *UpdateTransactionRequest) Normalize() {
	if r.Type != nil {
		*r.Type = strings.ToLower(strings.TrimSpace(*r.Type))
	}
	for _, p := range []*string{r.Date, r.Category, r.Note} {
		if p != nil {
			*p = strings.TrimSpace(*p)
		}
	}
}

func (r *UpdateTransactionRequest) Validate(v *validator.Validate, itemLinked bool) error {
	if err := v.Struct(r); err != nil {
		return err
	}
	if r.ItemID != nil && !itemLinked {
		return ErrItemLinkDisabled
	}
	return nil
}

func (r *UpdateTransactionRequest) ToFields() map[string]any {
	out := map[string]any{}
	if r.Type != nil {
		out["type"] = strings.ToLower(strings.TrimSpace(*r.Type))
	}
	if r.Date != nil {
		out["date"] = strings.TrimSpace(*r.Date)
	}
	if r.Category != nil {
		out["category"] = strings.TrimSpace(*r.Category)
	}
	if r.Amount != nil {
		out["amount"] = *r.Amount
	}
	if r.Note != nil {
		out["note"] = strings.TrimSpace(*r.Note)
	}
	setRef(out, "member_id", r.MemberID)
	setRef(out, "item_id", r.ItemID)
	return out
}

func setRef(out map[string]any, col string, p *string) {
	if p == nil {
		return
	}
	if strings.TrimSpace(*p) == "" {
		out[col] = nil
		return
	}
	out[col] = parseOpt(p)
}

func trimOrNil(p *string) *string {
	if p == nil {
		return nil
	}
	s := strings.TrimSpace(*p)
	if s == "" {
		return nil
	}
	return &s
}

// parseOpt: input sudah lolos validate:"uuid".
func parseOpt(p *string) *uuid.UUID {
	if p == nil {
		return nil
	}
	id, err := uuid.Parse(strings.TrimSpace(*p))
	if err != nil {
		return nil
	}
	return &id
}

/* =========================================================
   Responses
   ========================================================= */

type TransactionResponse struct {
	ID         string  `json:"id"`
	Type       string  `json:"type"`
	Date       string  `json:"date"`
	Category   string  `json:"category"`
	Amount     int64   `json:"amount"`
	MemberID   *string `json:"member_id"`
	MemberName *string `json:"member_name"`
	ItemID     *string `json:"item_id,omitempty"`
	ItemName   *string `json:"item_name,omitempty"`
	Note       string  `json:"note"`
}

func idStr(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

func FromModel(t model.TransactionWithNames) TransactionResponse {
	return TransactionResponse{
		ID:         t.ID.String(),
		Type:       string(t.Type),
		Date:       t.Date,
		Category:   t.Category,
		Amount:     t.Amount,
		MemberID:   idStr(t.MemberID),
		MemberName: t.MemberName,
		ItemID:     idStr(t.ItemID),
		ItemName:   t.ItemName,
		Note:       t.Note,
	}
}

func FromModels(rows []model.TransactionWithNames) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(rows))
	for _, t := range rows {
		out = append(out, FromModel(t))
	}
	return out
}
