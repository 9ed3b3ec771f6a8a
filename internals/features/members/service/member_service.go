// file: internals/features/members/service/member_service.go
package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"grahafitness_backend/internals/features/members/model"
	"grahafitness_backend/internals/helpers/apperr"
	"grahafitness_backend/internals/helpers/dbtime"
	"grahafitness_backend/internals/helpers/logx"
	"grahafitness_backend/internals/helpers/metrics"
)

// MemberStore: persistence gateway untuk member + attendance.
type MemberStore interface {
	List(ctx context.Context, search string) ([]model.Member, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Member, error)
	Create(ctx context.Context, m *model.Member) error
	Update(ctx context.Context, id uuid.UUID, fields map[string]any) error
	Delete(ctx context.Context, id uuid.UUID) error
	MarkExpired(ctx context.Context, ids []uuid.UUID) (int64, error)
	ExpireLapsed(ctx context.Context, today string) (int64, error)
	CreateAttendance(ctx context.Context, a *model.Attendance) error
	ListAttendanceByDate(ctx context.Context, date string) ([]model.AttendanceWithMember, error)
}

type MemberService struct {
	Store MemberStore
	Clock dbtime.Clock
}

func NewMemberService(store MemberStore, clock dbtime.Clock) *MemberService {
	return &MemberService{Store: store, Clock: clock}
}

type CheckinResult struct {
	Record     model.Attendance
	MemberName string
}

// List mengembalikan member dan sekaligus menulis status expired
// untuk yang sudah lewat end_date (satu UPDATE per listing).
func (s *MemberService) List(ctx context.Context, search string) ([]model.Member, error) {
	rows, err := s.Store.List(ctx, search)
	if err != nil {
		return nil, err
	}

	ids := Reconcile(rows, s.Clock.Today())
	if len(ids) > 0 {
		n, err := s.Store.MarkExpired(ctx, ids)
		if err != nil {
			return nil, err
		}
		metrics.RecordExpired(int(n))
		logx.Module("members").WithField("count", n).Info("membership expired on read")
	}
	return rows, nil
}

func (s *MemberService) Get(ctx context.Context, id uuid.UUID) (*model.Member, error) {
	return s.Store.FindByID(ctx, id)
}

func (s *MemberService) Create(ctx context.Context, m *model.Member) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	m.Name = strings.TrimSpace(m.Name)
	if m.Status == "" {
		m.Status = model.MemberStatusActive
	}
	return s.Store.Create(ctx, m)
}

// Update: kalau salah satu tanggal berubah, urutan start <= end dicek
// terhadap baris yang tersimpan.
func (s *MemberService) Update(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	start, hasStart := fields["start_date"].(string)
	end, hasEnd := fields["end_date"].(string)

	if len(fields) == 0 || hasStart || hasEnd {
		m, err := s.Store.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if !hasStart {
			start = m.StartDate
		}
		if !hasEnd {
			end = m.EndDate
		}
		if (hasStart || hasEnd) && end < start {
			return apperr.Invalid("end_date must not be before start_date")
		}
	}
	if len(fields) == 0 {
		return nil
	}
	return s.Store.Update(ctx, id, fields)
}

func (s *MemberService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.Store.Delete(ctx, id)
}

// Checkin: satu record baru per panggilan, tanpa guard idempoten harian.
func (s *MemberService) Checkin(ctx context.Context, id uuid.UUID) (*CheckinResult, error) {
	m, err := s.Store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	now := s.Clock.Now()
	if err := CheckCheckin(*m, now.Format(dbtime.DateLayout)); err != nil {
		metrics.RecordCheckin(false)
		return nil, err
	}

	rec := NewCheckin(*m, now)
	if err := s.Store.CreateAttendance(ctx, &rec); err != nil {
		return nil, err
	}
	metrics.RecordCheckin(true)
	return &CheckinResult{Record: rec, MemberName: m.Name}, nil
}

// Attendance: kosong → hari ini.
func (s *MemberService) Attendance(ctx context.Context, date string) ([]model.AttendanceWithMember, error) {
	if strings.TrimSpace(date) == "" {
		date = s.Clock.Today()
	}
	return s.Store.ListAttendanceByDate(ctx, date)
}

// SweepExpired dipakai scheduler: rekonsiliasi tanpa menunggu listing.
func (s *MemberService) SweepExpired(ctx context.Context) (int64, error) {
	n, err := s.Store.ExpireLapsed(ctx, s.Clock.Today())
	if err != nil {
		return 0, err
	}
	metrics.RecordExpired(int(n))
	return n, nil
}
