// file: internals/features/members/repository/member_repository.go
package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"grahafitness_backend/internals/features/members/model"
	"grahafitness_backend/internals/helpers/apperr"
)

type MemberRepository struct {
	DB *gorm.DB
}

func NewMemberRepository(db *gorm.DB) *MemberRepository {
	return &MemberRepository{DB: db}
}

/* ====================== MEMBER ====================== */

// List: terbaru dulu; search mencocokkan nama atau telepon (case-insensitive).
func (r *MemberRepository) List(ctx context.Context, search string) ([]model.Member, error) {
	tx := r.DB.WithContext(ctx).Model(&model.Member{})
	if s := strings.TrimSpace(search); s != "" {
		like := "%" + s + "%"
		tx = tx.Where("name ILIKE ? OR phone ILIKE ?", like, like)
	}
	var rows []model.Member
	if err := tx.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *MemberRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Member, error) {
	var m model.Member
	if err := r.DB.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("member")
		}
		return nil, err
	}
	return &m, nil
}

func (r *MemberRepository) Create(ctx context.Context, m *model.Member) error {
	return r.DB.WithContext(ctx).Create(m).Error
}

// Update hanya menulis kolom yang ada di fields.
func (r *MemberRepository) Update(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	res := r.DB.WithContext(ctx).Model(&model.Member{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("member")
	}
	return nil
}

// Delete: attendance ikut dihapus, referensi di ledger di-NULL-kan.
func (r *MemberRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("member_id = ?", id).Delete(&model.Attendance{}).Error; err != nil {
			return err
		}
		if err := tx.Table("transactions").Where("member_id = ?", id).Update("member_id", nil).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&model.Member{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperr.NotFound("member")
		}
		return nil
	})
}

// MarkExpired menulis status expired untuk ids yang masih active.
func (r *MemberRepository) MarkExpired(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res := r.DB.WithContext(ctx).Model(&model.Member{}).
		Where("id IN ? AND status = ?", ids, model.MemberStatusActive).
		Update("status", model.MemberStatusExpired)
	return res.RowsAffected, res.Error
}

// ExpireLapsed: versi set-based untuk sweep terjadwal.
func (r *MemberRepository) ExpireLapsed(ctx context.Context, today string) (int64, error) {
	res := r.DB.WithContext(ctx).Model(&model.Member{}).
		Where("status = ? AND end_date < ?", model.MemberStatusActive, today).
		Update("status", model.MemberStatusExpired)
	return res.RowsAffected, res.Error
}

/* ====================== ATTENDANCE ====================== */

func (r *MemberRepository) CreateAttendance(ctx context.Context, a *model.Attendance) error {
	return r.DB.WithContext(ctx).Create(a).Error
}

// ListAttendanceByDate: satu hari, jam terbaru dulu, dengan nama member.
func (r *MemberRepository) ListAttendanceByDate(ctx context.Context, date string) ([]model.AttendanceWithMember, error) {
	var rows []model.AttendanceWithMember
	err := r.DB.WithContext(ctx).
		Table("attendance AS a").
		Select("a.id, a.member_id, a.date, a.time, a.type, COALESCE(m.name, 'Unknown') AS member_name").
		Joins("LEFT JOIN members m ON m.id = a.member_id").
		Where("a.date = ?", date).
		Order("a.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ListAttendanceRange: untuk export, batas inklusif, kosong = terbuka.
func (r *MemberRepository) ListAttendanceRange(ctx context.Context, start, end string) ([]model.AttendanceWithMember, error) {
	q := r.DB.WithContext(ctx).
		Table("attendance AS a").
		Select("a.id, a.member_id, a.date, a.time, a.type, COALESCE(m.name, 'Unknown') AS member_name").
		Joins("LEFT JOIN members m ON m.id = a.member_id")
	if start != "" {
		q = q.Where("a.date >= ?", start)
	}
	if end != "" {
		q = q.Where("a.date <= ?", end)
	}
	var rows []model.AttendanceWithMember
	if err := q.Order("a.date DESC, a.created_at DESC").Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
