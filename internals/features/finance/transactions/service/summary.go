// file: internals/features/finance/transactions/service/summary.go
package service

import (
	"sort"

	"grahafitness_backend/internals/features/finance/transactions/model"
)

type Summary struct {
	Income  int64    `json:"income"`
	Expense int64    `json:"expense"`
	Profit  int64    `json:"profit"`
	Months  []string `json:"months"`
}

// monthOf = date[:7]; string pendek dipakai apa adanya (tidak pernah gagal).
func monthOf(date string) string {
	if len(date) < 7 {
		return date
	}
	return date[:7]
}

// Summarize menjumlahkan income/expense untuk bulan "YYYY-MM".
// Months dihitung dari SEMUA transaksi, bukan hanya bulan tersebut.
func Summarize(txs []model.Transaction, month string) Summary {
	var s Summary
	for _, t := range txs {
		if monthOf(t.Date) != month {
			continue
		}
		switch t.Type {
		case model.TransactionIncome:
			s.Income += t.Amount
		case model.TransactionExpense:
			s.Expense += t.Amount
		}
	}
	s.Profit = s.Income - s.Expense
	s.Months = MonthsAvailable(txs)
	return s
}

// MonthsAvailable: prefix bulan unik, terbaru dulu.
func MonthsAvailable(txs []model.Transaction) []string {
	seen := make(map[string]struct{}, len(txs))
	out := make([]string, 0)
	for _, t := range txs {
		m := monthOf(t.Date)
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		out = append(out, m)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(out)))
	return out
}
