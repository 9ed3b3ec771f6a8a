package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	txModel "grahafitness_backend/internals/features/finance/transactions/model"
	memberModel "grahafitness_backend/internals/features/members/model"
	stockModel "grahafitness_backend/internals/features/stock/model"
	"grahafitness_backend/internals/helpers/dbtime"
)

func gymMember(name, end string, status memberModel.MemberStatus) memberModel.Member {
	return memberModel.Member{ID: uuid.New(), Name: name, EndDate: end, Status: status}
}

func checkin(name string, kind memberModel.AttendanceType) memberModel.AttendanceWithMember {
	return memberModel.AttendanceWithMember{
		Attendance: memberModel.Attendance{ID: uuid.New(), Date: "2024-06-01", Type: kind},
		MemberName: name,
	}
}

func ledgerRow(kind txModel.TransactionType, category string, amount int64) txModel.Transaction {
	return txModel.Transaction{ID: uuid.New(), Type: kind, Category: category, Amount: amount, Date: "2024-06-01"}
}

func TestBuild_CountsEffectiveState(t *testing.T) {
	snap := Snapshot{
		Members: []memberModel.Member{
			gymMember("Andi", "2024-12-31", memberModel.MemberStatusActive),
			gymMember("Budi", "2024-06-05", memberModel.MemberStatusActive),
			// status tersimpan active tapi sudah lewat
			gymMember("Citra", "2024-05-01", memberModel.MemberStatusActive),
			gymMember("Dewi", "2024-06-03", memberModel.MemberStatusExpired),
		},
		MonthTransactions: []txModel.Transaction{
			ledgerRow(txModel.TransactionIncome, "Membership", 150000),
			ledgerRow(txModel.TransactionIncome, "Drink", 10000),
			ledgerRow(txModel.TransactionExpense, "Electricity", 90000),
		},
		TodayCheckins: 4,
		Items: []stockModel.StockItem{
			{Quantity: 2, MinThreshold: 5},
			{Quantity: 50, MinThreshold: 5},
		},
	}

	d := Build(snap, "2024-06-01", "2024-06-08", "2024-06")

	assert.Equal(t, 2, d.ActiveMembers)
	assert.Equal(t, int64(160000), d.MonthRevenue)
	assert.Equal(t, int64(4), d.TodayCheckins)
	assert.Equal(t, 1, d.LowStock)
	require.Len(t, d.Expiring, 1)
	assert.Equal(t, "Budi", d.Expiring[0].Name)
	assert.Equal(t, "2024-06-05", d.Expiring[0].EndDate)
	assert.NotNil(t, d.RecentActivity)
}

func TestActivityFeed_AttendanceThenTransactions(t *testing.T) {
	att := make([]memberModel.AttendanceWithMember, 0, 7)
	for i := 0; i < 7; i++ {
		att = append(att, checkin("Andi", memberModel.AttendanceCheckIn))
	}
	att[1] = checkin("Budi", memberModel.AttendanceCheckOut)
	txs := []txModel.Transaction{
		ledgerRow(txModel.TransactionIncome, "Membership", 150000),
		ledgerRow(txModel.TransactionExpense, "Cleaning", 25000),
		ledgerRow(txModel.TransactionIncome, "Drink", 8000),
		ledgerRow(txModel.TransactionIncome, "Towel", 5000),
	}

	feed := ActivityFeed(att, txs)

	require.Len(t, feed, RecentAttendanceLimit+RecentTransactionsLimit)
	for i := 0; i < RecentAttendanceLimit; i++ {
		assert.Equal(t, "attendance", feed[i].Kind)
	}
	assert.Equal(t, "Andi - check-in", feed[0].Text)
	assert.Equal(t, "✅", feed[0].Icon)
	assert.Equal(t, "Budi - check-out", feed[1].Text)
	assert.Equal(t, "❌", feed[1].Icon)

	first := feed[RecentAttendanceLimit]
	assert.Equal(t, "transaction", first.Kind)
	assert.Equal(t, "Membership - 150000", first.Text)
	assert.Equal(t, "💰", first.Icon)
	assert.Equal(t, "💸", feed[RecentAttendanceLimit+1].Icon)
}

func TestActivityFeed_Empty(t *testing.T) {
	feed := ActivityFeed(nil, nil)
	assert.NotNil(t, feed)
	assert.Empty(t, feed)
}

type stubSource struct {
	snap       *Snapshot
	err        error
	today, mon string
}

func (s *stubSource) Load(_ context.Context, today, month string) (*Snapshot, error) {
	s.today, s.mon = today, month
	return s.snap, s.err
}

func TestDashboardService_UsesClock(t *testing.T) {
	src := &stubSource{snap: &Snapshot{
		Members: []memberModel.Member{gymMember("Eka", "2024-06-08", memberModel.MemberStatusActive)},
	}}
	svc := NewDashboardService(src, dbtime.Fixed(time.Date(2024, 6, 1, 23, 0, 0, 0, time.UTC)))

	d, err := svc.Get(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "2024-06-01", src.today)
	assert.Equal(t, "2024-06", src.mon)
	// end_date tepat di hari ke-7 masih termasuk
	assert.Len(t, d.Expiring, 1)
}

func TestDashboardService_SourceError(t *testing.T) {
	svc := NewDashboardService(&stubSource{err: errors.New("db down")}, dbtime.Fixed(time.Now()))
	_, err := svc.Get(context.Background())
	assert.Error(t, err)
}
