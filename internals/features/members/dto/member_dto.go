// file: internals/features/members/dto/member_dto.go
package dto

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"grahafitness_backend/internals/features/members/model"
	"grahafitness_backend/internals/features/members/service"
)

/* =========================================================
   Requests: CREATE
   ========================================================= */

type CreateMemberRequest struct {
	Name      string  `json:"name" validate:"required,max=120"`
	Phone     string  `json:"phone" validate:"omitempty,max=32"`
	Plan      string  `json:"plan" validate:"required,max=80"`
	StartDate string  `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string  `json:"end_date" validate:"required,datetime=2006-01-02"`
	Status    *string `json:"status" validate:"omitempty,oneof=active expired"`
}

func (r *CreateMemberRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Plan = strings.TrimSpace(r.Plan)
	r.StartDate = strings.TrimSpace(r.StartDate)
	r.EndDate = strings.TrimSpace(r.EndDate)
}

func (r *CreateMemberRequest) Validate(v *validator.Validate) error {
	if err := v.Struct(r); err != nil {
		return err
	}
	if r.EndDate < r.StartDate {
		return errors.New("end_date must not be before start_date")
	}
	return nil
}

func (r *CreateMemberRequest) ToModel() *model.Member {
	status := model.MemberStatusActive
	if r.Status != nil {
		status = model.MemberStatus(*r.Status)
	}
	return &model.Member{
		Name:      r.Name,
		Phone:     r.Phone,
		Plan:      r.Plan,
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
		Status:    status,
	}
}

/* =========================================================
   Requests: UPDATE (partial, field nil = tidak diubah)
   ========================================================= */

type UpdateMemberRequest struct {
	Name      *string `json:"name" validate:"omitnil,min=1,max=120"`
	Phone     *string `json:"phone" validate:"omitnil,max=32"`
	Plan      *string `json:"plan" validate:"omitnil,min=1,max=80"`
	StartDate *string `json:"start_date" validate:"omitnil,datetime=2006-01-02"`
	EndDate   *string `json:"end_date" validate:"omitnil,datetime=2006-01-02"`
	Status    *string `json:"status" validate:"omitnil,oneof=active expired"`
}

// Normalize di-trim sebelum Validate supaya "   " gagal min=1.
func (r *UpdateMemberRequest) Normalize() {
	for _, p := range []*string{r.Name, r.Phone, r.Plan, r.StartDate, r.EndDate, r.Status} {
		if p != nil {
			*p = strings.TrimSpace(*p)
		}
	}
}

func (r *UpdateMemberRequest) Validate(v *validator.Validate) error {
	return v.Struct(r)
}

// ToFields → map kolom untuk Updates().
func (r *UpdateMemberRequest) ToFields() map[string]any {
	out := map[string]any{}
	set := func(col string, p *string) {
		if p != nil {
			out[col] = strings.TrimSpace(*p)
		}
	}
	set("name", r.Name)
	set("phone", r.Phone)
	set("plan", r.Plan)
	set("start_date", r.StartDate)
	set("end_date", r.EndDate)
	set("status", r.Status)
	return out
}

/* =========================================================
   Responses
   ========================================================= */

type MemberResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Plan      string `json:"plan"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Status    string `json:"status"`
}

func FromModel(m model.Member) MemberResponse {
	return MemberResponse{
		ID:        m.ID.String(),
		Name:      m.Name,
		Phone:     m.Phone,
		Plan:      m.Plan,
		StartDate: m.StartDate,
		EndDate:   m.EndDate,
		Status:    string(m.Status),
	}
}

func FromModels(rows []model.Member) []MemberResponse {
	out := make([]MemberResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, FromModel(m))
	}
	return out
}

type CheckinResponse struct {
	Status       string `json:"status"`
	AttendanceID string `json:"attendance_id"`
	MemberName   string `json:"member_name"`
	Date         string `json:"date"`
	Time         string `json:"time"`
}

func FromCheckin(r service.CheckinResult) CheckinResponse {
	return CheckinResponse{
		Status:       "checked_in",
		AttendanceID: r.Record.ID.String(),
		MemberName:   r.MemberName,
		Date:         r.Record.Date,
		Time:         r.Record.Time,
	}
}

type AttendanceResponse struct {
	ID         string `json:"id"`
	MemberID   string `json:"member_id"`
	MemberName string `json:"member_name"`
	Date       string `json:"date"`
	Time       string `json:"time"`
	Type       string `json:"type"`
}

func FromAttendance(rows []model.AttendanceWithMember) []AttendanceResponse {
	out := make([]AttendanceResponse, 0, len(rows))
	for _, a := range rows {
		out = append(out, AttendanceResponse{
			ID:         a.ID.String(),
			MemberID:   a.MemberID.String(),
			MemberName: a.MemberName,
			Date:       a.Date,
			Time:       a.Time,
			Type:       string(a.Type),
		})
	}
	return out
}
