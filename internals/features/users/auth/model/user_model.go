package model

import (
	"time"

	"github.com/google/uuid"

	"grahafitness_backend/internals/constants"
)

// UserModel merepresentasikan tabel users (akun staf back office)
type UserModel struct {
	ID          uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserName    string         `gorm:"size:50;not null;uniqueIndex" json:"user_name"`
	Password    string         `gorm:"not null" json:"-"`
	Role        constants.Role `gorm:"type:varchar(20);not null;default:'admin'" json:"role"`
	DisplayName string         `gorm:"size:120" json:"display_name"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName memastikan nama tabel sesuai dengan skema database
func (UserModel) TableName() string {
	return "users"
}
