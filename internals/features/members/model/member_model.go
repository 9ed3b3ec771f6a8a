// file: internals/features/members/model/member_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type MemberStatus string

const (
	MemberStatusActive  MemberStatus = "active"
	MemberStatusExpired MemberStatus = "expired"
)

// Member: tanggal disimpan sebagai string ISO "YYYY-MM-DD".
// Status hanya cache, status efektif dihitung dari end_date.
type Member struct {
	ID        uuid.UUID    `gorm:"type:uuid;primaryKey;column:id" json:"id"`
	Name      string       `gorm:"type:varchar(120);not null;column:name;index:idx_members_name" json:"name"`
	Phone     string       `gorm:"type:varchar(32);not null;default:'';column:phone" json:"phone"`
	Plan      string       `gorm:"type:varchar(80);not null;column:plan" json:"plan"`
	StartDate string       `gorm:"type:varchar(10);not null;column:start_date" json:"start_date"`
	EndDate   string       `gorm:"type:varchar(10);not null;column:end_date;index:idx_members_status_end,priority:2" json:"end_date"`
	Status    MemberStatus `gorm:"type:varchar(16);not null;default:'active';column:status;index:idx_members_status_end,priority:1" json:"status"`
	CreatedAt time.Time    `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	Attendance []Attendance `gorm:"foreignKey:MemberID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Member) TableName() string { return "members" }
