// file: internals/features/finance/transactions/service/transaction_service.go
package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"grahafitness_backend/internals/features/finance/transactions/model"
	"grahafitness_backend/internals/features/finance/transactions/repository"
	"grahafitness_backend/internals/helpers/apperr"
	"grahafitness_backend/internals/helpers/dbtime"
)

type TransactionStore interface {
	List(ctx context.Context, f repository.ListFilter) ([]model.TransactionWithNames, int64, error)
	ListLedger(ctx context.Context) ([]model.Transaction, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Transaction, error)
	Create(ctx context.Context, t *model.Transaction) error
	Update(ctx context.Context, id uuid.UUID, fields map[string]any) error
	Delete(ctx context.Context, id uuid.UUID) error
	Exists(ctx context.Context, table string, id uuid.UUID) (bool, error)
}

type TransactionService struct {
	Store TransactionStore
	Clock dbtime.Clock
}

func NewTransactionService(store TransactionStore, clock dbtime.Clock) *TransactionService {
	return &TransactionService{Store: store, Clock: clock}
}

func (s *TransactionService) List(ctx context.Context, f repository.ListFilter) ([]model.TransactionWithNames, int64, error) {
	f.Type = strings.TrimSpace(f.Type)
	f.Month = strings.TrimSpace(f.Month)
	return s.Store.List(ctx, f)
}

// Summary: month kosong → bulan berjalan (zona gym).
func (s *TransactionService) Summary(ctx context.Context, month string) (Summary, error) {
	month = strings.TrimSpace(month)
	if month == "" {
		month = s.Clock.Month()
	}
	txs, err := s.Store.ListLedger(ctx)
	if err != nil {
		return Summary{}, err
	}
	return Summarize(txs, month), nil
}

func (s *TransactionService) Create(ctx context.Context, t *model.Transaction) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	if err := s.checkRefs(ctx, t.MemberID, t.ItemID); err != nil {
		return err
	}
	return s.Store.Create(ctx, t)
}

// Update: fields["member_id"] == nil berarti referensi dilepas.
func (s *TransactionService) Update(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	if len(fields) == 0 {
		_, err := s.Store.FindByID(ctx, id)
		return err
	}
	memberID, _ := fields["member_id"].(*uuid.UUID)
	itemID, _ := fields["item_id"].(*uuid.UUID)
	if err := s.checkRefs(ctx, memberID, itemID); err != nil {
		return err
	}
	return s.Store.Update(ctx, id, fields)
}

func (s *TransactionService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.Store.Delete(ctx, id)
}

func (s *TransactionService) checkRefs(ctx context.Context, memberID, itemID *uuid.UUID) error {
	if memberID != nil {
		ok, err := s.Store.Exists(ctx, "members", *memberID)
		if err != nil {
			return err
		}
		if !ok {
			return apperr.NotFound("member")
		}
	}
	if itemID != nil {
		ok, err := s.Store.Exists(ctx, "stock_items", *itemID)
		if err != nil {
			return err
		}
		if !ok {
			return apperr.NotFound("item")
		}
	}
	return nil
}
