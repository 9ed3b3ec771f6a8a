// file: internals/features/finance/transactions/model/transaction_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

/* =========================
   Enums
   ========================= */

type TransactionType string

const (
	TransactionIncome  TransactionType = "income"
	TransactionExpense TransactionType = "expense"
)

func (t TransactionType) Valid() bool {
	return t == TransactionIncome || t == TransactionExpense
}

/* =========================
   Model
   ========================= */

// Transaction = satu baris ledger. Amount dalam satuan rupiah utuh.
type Transaction struct {
	ID       uuid.UUID       `json:"id" gorm:"type:uuid;primaryKey"`
	Type     TransactionType `json:"type" gorm:"type:varchar(10);not null;index"`
	Date     string          `json:"date" gorm:"type:varchar(10);not null;index"`
	Category string          `json:"category" gorm:"type:varchar(80);not null"`
	Amount   int64           `json:"amount" gorm:"not null"`

	// NULLABLE: di-NULL-kan saat member / item dihapus
	MemberID *uuid.UUID `json:"member_id,omitempty" gorm:"type:uuid;index"`
	ItemID   *uuid.UUID `json:"item_id,omitempty" gorm:"type:uuid;index"`

	Note      string    `json:"note" gorm:"type:text;not null;default:''"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (Transaction) TableName() string { return "transactions" }

// TransactionWithNames: hasil join untuk listing & report.
type TransactionWithNames struct {
	Transaction
	MemberName *string `json:"member_name"`
	ItemName   *string `json:"item_name"`
}
