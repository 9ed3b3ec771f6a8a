// file: internals/features/stock/dto/stock_dto.go
package dto

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"grahafitness_backend/internals/features/stock/model"
	"grahafitness_backend/internals/features/stock/service"
)

/* =========================================================
   Requests
   ========================================================= */

type CreateItemRequest struct {
	Name         string `json:"name" validate:"required,max=120"`
	Category     string `json:"category" validate:"omitempty,max=80"`
	Unit         string `json:"unit" validate:"omitempty,max=20"`
	Quantity     int    `json:"quantity" validate:"gte=0"`
	MinThreshold *int   `json:"min_threshold" validate:"omitempty,gte=0"`
}

func (r *CreateItemRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Category = strings.TrimSpace(r.Category)
	r.Unit = strings.TrimSpace(r.Unit)
	if r.Unit == "" {
		r.Unit = model.DefaultUnit
	}
}

func (r *CreateItemRequest) Validate(v *validator.Validate) error {
	return v.Struct(r)
}

func (r *CreateItemRequest) ToModel() *model.StockItem {
	threshold := model.DefaultMinThreshold
	if r.MinThreshold != nil {
		threshold = *r.MinThreshold
	}
	return &model.StockItem{
		Name:         r.Name,
		Category:     r.Category,
		Unit:         r.Unit,
		Quantity:     r.Quantity,
		MinThreshold: threshold,
	}
}

type UpdateItemRequest struct {
	Name         *string `json:"name" validate:"omitnil,min=1,max=120"`
	Category     *string `json:"category" validate:"omitnil,max=80"`
	Unit         *string `json:"unit" validate:"omitnil,min=1,max=20"`
	Quantity     *int    `json:"quantity" validate:"omitempty,gte=0"`
	MinThreshold *int    `json:"min_threshold" validate:"omitempty,gte=0"`
}

func (r *UpdateItemRequest) Normalize() {
	for _, p := range []*string{r.Name, r.Category, r.Unit} {
		if p != nil {
			*p = strings.TrimSpace(*p)
		}
	}
}

func (r *UpdateItemRequest) Validate(v *validator.Validate) error {
	return v.Struct(r)
}

func (r *UpdateItemRequest) ToFields() map[string]any {
	out := map[string]any{}
	if r.Name != nil {
		out["name"] = strings.TrimSpace(*r.Name)
	}
	if r.Category != nil {
		out["category"] = strings.TrimSpace(*r.Category)
	}
	if r.Unit != nil {
		out["unit"] = strings.TrimSpace(*r.Unit)
	}
	if r.Quantity != nil {
		out["quantity"] = *r.Quantity
	}
	if r.MinThreshold != nil {
		out["min_threshold"] = *r.MinThreshold
	}
	return out
}

type MovementRequest struct {
	Type     string `json:"type" validate:"required,oneof=in out"`
	Quantity int    `json:"quantity" validate:"required,gt=0"`
	Note     string `json:"note" validate:"omitempty,max=500"`
}

func (r *MovementRequest) Normalize() {
	r.Type = strings.ToLower(strings.TrimSpace(r.Type))
	r.Note = strings.TrimSpace(r.Note)
}

/* =========================================================
   Responses
   ========================================================= */

type ItemResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Category     string `json:"category"`
	Unit         string `json:"unit"`
	Quantity     int    `json:"quantity"`
	MinThreshold int    `json:"min_threshold"`
	Low          bool   `json:"low"`
}

func FromItem(it model.StockItem) ItemResponse {
	return ItemResponse{
		ID:           it.ID.String(),
		Name:         it.Name,
		Category:     it.Category,
		Unit:         it.Unit,
		Quantity:     it.Quantity,
		MinThreshold: it.MinThreshold,
		Low:          service.IsLow(it),
	}
}

func FromItems(rows []model.StockItem) []ItemResponse {
	out := make([]ItemResponse, 0, len(rows))
	for _, it := range rows {
		out = append(out, FromItem(it))
	}
	return out
}

type MovementResponse struct {
	ID          string `json:"id"`
	Status      string `json:"status"`
	ItemID      string `json:"item_id"`
	Type        string `json:"type"`
	Quantity    int    `json:"quantity"`
	Date        string `json:"date"`
	NewQuantity int    `json:"new_quantity"`
	Clamped     bool   `json:"clamped"`
	Low         bool   `json:"low"`
}

func FromMovementResult(r service.MovementResult) MovementResponse {
	return MovementResponse{
		ID:          r.Movement.ID.String(),
		Status:      "recorded",
		ItemID:      r.Movement.ItemID.String(),
		Type:        string(r.Movement.Type),
		Quantity:    r.Movement.Quantity,
		Date:        r.Movement.Date,
		NewQuantity: r.NewQuantity,
		Clamped:     r.Clamped,
		Low:         r.Low,
	}
}

type MovementListItem struct {
	ID       string `json:"id"`
	ItemID   string `json:"item_id"`
	ItemName string `json:"item_name"`
	Type     string `json:"type"`
	Quantity int    `json:"quantity"`
	Date     string `json:"date"`
	Note     string `json:"note"`
}

func FromMovements(rows []model.MovementWithItem) []MovementListItem {
	out := make([]MovementListItem, 0, len(rows))
	for _, m := range rows {
		out = append(out, MovementListItem{
			ID:       m.ID.String(),
			ItemID:   m.ItemID.String(),
			ItemName: m.ItemName,
			Type:     string(m.Type),
			Quantity: m.Quantity,
			Date:     m.Date,
			Note:     m.Note,
		})
	}
	return out
}
