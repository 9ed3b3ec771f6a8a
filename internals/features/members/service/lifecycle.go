// file: internals/features/members/service/lifecycle.go
package service

import (
	"time"

	"github.com/google/uuid"

	"grahafitness_backend/internals/features/members/model"
	"grahafitness_backend/internals/helpers/apperr"
	"grahafitness_backend/internals/helpers/dbtime"
)

// ExpiringWindowDays: jendela "segera habis" di dashboard.
const ExpiringWindowDays = 7

// EffectiveStatus menghitung status member pada tanggal today ("YYYY-MM-DD").
// Perbandingan string aman karena tanggal ISO zero-padded.
// expired tidak pernah kembali ke active dengan sendirinya.
func EffectiveStatus(m model.Member, today string) model.MemberStatus {
	if m.Status == model.MemberStatusExpired {
		return model.MemberStatusExpired
	}
	if m.EndDate < today {
		return model.MemberStatusExpired
	}
	return model.MemberStatusActive
}

// Reconcile mengembalikan ID member yang status tersimpannya active
// tapi sudah lewat end_date, dan menyesuaikan slice in-place supaya
// response listing sudah memakai status baru.
func Reconcile(members []model.Member, today string) []uuid.UUID {
	var ids []uuid.UUID
	for i := range members {
		if members[i].Status != model.MemberStatusActive {
			continue
		}
		if EffectiveStatus(members[i], today) == model.MemberStatusExpired {
			members[i].Status = model.MemberStatusExpired
			ids = append(ids, members[i].ID)
		}
	}
	return ids
}

// CheckCheckin: tolak kalau status tersimpan expired ATAU end_date < today.
// Dua-duanya dicek ulang di sini, tidak mengandalkan listing sebelumnya.
func CheckCheckin(m model.Member, today string) error {
	if m.Status == model.MemberStatusExpired || m.EndDate < today {
		return apperr.ErrMembershipExpired
	}
	return nil
}

// NewCheckin membuat record check-in dengan stempel tanggal & jam 12-jam.
func NewCheckin(m model.Member, now time.Time) model.Attendance {
	return model.Attendance{
		ID:       uuid.New(),
		MemberID: m.ID,
		Date:     now.Format(dbtime.DateLayout),
		Time:     now.Format(dbtime.TimeOfDayLayout),
		Type:     model.AttendanceCheckIn,
	}
}

// IsExpiringSoon: status efektif active dan today <= end_date <= today+window.
func IsExpiringSoon(m model.Member, today, horizon string) bool {
	if EffectiveStatus(m, today) != model.MemberStatusActive {
		return false
	}
	return m.EndDate >= today && m.EndDate <= horizon
}
