// file: internals/features/dashboard/service/dashboard.go
package service

import (
	"fmt"

	txModel "grahafitness_backend/internals/features/finance/transactions/model"
	txSvc "grahafitness_backend/internals/features/finance/transactions/service"
	memberModel "grahafitness_backend/internals/features/members/model"
	memberSvc "grahafitness_backend/internals/features/members/service"
	stockModel "grahafitness_backend/internals/features/stock/model"
	stockSvc "grahafitness_backend/internals/features/stock/service"
)

const (
	RecentAttendanceLimit   = 5
	RecentTransactionsLimit = 3
)

// Snapshot: data mentah yang dibaca dari DB untuk satu request dashboard.
type Snapshot struct {
	Members            []memberModel.Member
	MonthTransactions  []txModel.Transaction
	TodayCheckins      int64
	Items              []stockModel.StockItem
	RecentAttendance   []memberModel.AttendanceWithMember
	RecentTransactions []txModel.Transaction
}

type ExpiringMember struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	EndDate string `json:"end_date"`
}

type Activity struct {
	Kind string `json:"kind"`
	Icon string `json:"icon"`
	Text string `json:"text"`
	Time string `json:"time"`
}

type Dashboard struct {
	ActiveMembers  int              `json:"active_members"`
	MonthRevenue   int64            `json:"month_revenue"`
	TodayCheckins  int64            `json:"today_checkins"`
	LowStock       int              `json:"low_stock"`
	Expiring       []ExpiringMember `json:"expiring"`
	RecentActivity []Activity       `json:"recent_activity"`
}

// Build merakit dashboard tanpa menulis apa pun ke DB.
// Status member dihitung efektif (end_date vs today), bukan dari kolom status.
func Build(s Snapshot, today, horizon, month string) Dashboard {
	d := Dashboard{
		TodayCheckins:  s.TodayCheckins,
		LowStock:       stockSvc.CountLow(s.Items),
		MonthRevenue:   txSvc.Summarize(s.MonthTransactions, month).Income,
		Expiring:       []ExpiringMember{},
		RecentActivity: []Activity{},
	}

	for _, m := range s.Members {
		if memberSvc.EffectiveStatus(m, today) == memberModel.MemberStatusActive {
			d.ActiveMembers++
		}
		if memberSvc.IsExpiringSoon(m, today, horizon) {
			d.Expiring = append(d.Expiring, ExpiringMember{
				ID:      m.ID.String(),
				Name:    m.Name,
				EndDate: m.EndDate,
			})
		}
	}

	d.RecentActivity = ActivityFeed(s.RecentAttendance, s.RecentTransactions)
	return d
}

// ActivityFeed: attendance dulu, lalu transaksi. Tidak di-merge kronologis.
func ActivityFeed(att []memberModel.AttendanceWithMember, txs []txModel.Transaction) []Activity {
	out := make([]Activity, 0, len(att)+len(txs))
	for i, a := range att {
		if i >= RecentAttendanceLimit {
			break
		}
		icon := "✅"
		if a.Type != memberModel.AttendanceCheckIn {
			icon = "❌"
		}
		out = append(out, Activity{
			Kind: "attendance",
			Icon: icon,
			Text: fmt.Sprintf("%s - %s", a.MemberName, a.Type),
			Time: a.Date,
		})
	}
	for i, t := range txs {
		if i >= RecentTransactionsLimit {
			break
		}
		icon := "💰"
		if t.Type != txModel.TransactionIncome {
			icon = "💸"
		}
		out = append(out, Activity{
			Kind: "transaction",
			Icon: icon,
			Text: fmt.Sprintf("%s - %d", t.Category, t.Amount),
			Time: t.Date,
		})
	}
	return out
}
