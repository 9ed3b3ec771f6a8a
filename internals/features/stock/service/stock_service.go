// file: internals/features/stock/service/stock_service.go
package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"grahafitness_backend/internals/features/stock/model"
	"grahafitness_backend/internals/features/stock/repository"
	"grahafitness_backend/internals/helpers/dbtime"
	"grahafitness_backend/internals/helpers/logx"
	"grahafitness_backend/internals/helpers/metrics"
)

const LatestMovementsLimit = 20

type StockStore interface {
	List(ctx context.Context, search string) ([]model.StockItem, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.StockItem, error)
	Create(ctx context.Context, it *model.StockItem) error
	Update(ctx context.Context, id uuid.UUID, fields map[string]any) error
	Delete(ctx context.Context, id uuid.UUID) error
	ApplyMovement(ctx context.Context, id uuid.UUID, fn repository.MutateFn) (*model.StockItem, *model.StockMovement, error)
	ListMovements(ctx context.Context, limit int) ([]model.MovementWithItem, error)
}

type StockService struct {
	Store StockStore
	Clock dbtime.Clock
}

func NewStockService(store StockStore, clock dbtime.Clock) *StockService {
	return &StockService{Store: store, Clock: clock}
}

type MovementResult struct {
	Movement    model.StockMovement
	NewQuantity int
	Clamped     bool
	Low         bool
}

func (s *StockService) List(ctx context.Context, search string) ([]model.StockItem, error) {
	return s.Store.List(ctx, search)
}

func (s *StockService) Create(ctx context.Context, it *model.StockItem) error {
	if it.ID == uuid.Nil {
		it.ID = uuid.New()
	}
	it.Name = strings.TrimSpace(it.Name)
	if it.Unit == "" {
		it.Unit = model.DefaultUnit
	}
	return s.Store.Create(ctx, it)
}

func (s *StockService) Update(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	if len(fields) == 0 {
		_, err := s.Store.FindByID(ctx, id)
		return err
	}
	return s.Store.Update(ctx, id, fields)
}

func (s *StockService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.Store.Delete(ctx, id)
}

// Move menerapkan movement pada item secara atomik.
func (s *StockService) Move(ctx context.Context, id uuid.UUID, kind model.MovementType, qty int, note string) (*MovementResult, error) {
	today := s.Clock.Today()
	clamped := false

	item, mv, err := s.Store.ApplyMovement(ctx, id, func(it model.StockItem) (model.StockItem, model.StockMovement, error) {
		next, mv, c, err := ApplyMovement(it, kind, qty, strings.TrimSpace(note), today)
		clamped = c
		return next, mv, err
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordStockMovement(string(kind), clamped)
	if clamped {
		logx.Module("stock").WithFields(logrus.Fields{
			"item_id":   id,
			"requested": qty,
		}).Warn("[stock] out movement melebihi stok, quantity di-clamp ke 0")
	}
	return &MovementResult{
		Movement:    *mv,
		NewQuantity: item.Quantity,
		Clamped:     clamped,
		Low:         IsLow(*item),
	}, nil
}

func (s *StockService) LatestMovements(ctx context.Context) ([]model.MovementWithItem, error) {
	return s.Store.ListMovements(ctx, LatestMovementsLimit)
}
