// file: internals/features/members/model/attendance_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type AttendanceType string

const (
	AttendanceCheckIn  AttendanceType = "check-in"
	AttendanceCheckOut AttendanceType = "check-out"
)

// Attendance immutable setelah dibuat; ikut terhapus bersama member.
type Attendance struct {
	ID       uuid.UUID      `gorm:"type:uuid;primaryKey;column:id" json:"id"`
	MemberID uuid.UUID      `gorm:"type:uuid;not null;column:member_id;index:idx_attendance_member" json:"member_id"`
	Date     string         `gorm:"type:varchar(10);not null;column:date;index:idx_attendance_date" json:"date"`
	Time     string         `gorm:"type:varchar(16);not null;default:'';column:time" json:"time"`
	Type     AttendanceType `gorm:"type:varchar(16);not null;default:'check-in';column:type" json:"type"`

	// urutan kronologis; kolom time hanya untuk tampilan 12 jam
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime;index:idx_attendance_created" json:"-"`
}

func (Attendance) TableName() string { return "attendance" }

// AttendanceWithMember: hasil join untuk listing / report.
type AttendanceWithMember struct {
	Attendance
	MemberName string `gorm:"column:member_name" json:"member_name"`
}
