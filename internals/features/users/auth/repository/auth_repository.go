// internals/features/users/auth/repository/auth_repository.go
package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"grahafitness_backend/internals/constants"
	authModel "grahafitness_backend/internals/features/users/auth/model"
	"grahafitness_backend/internals/helpers/apperr"
)

type AuthRepository struct {
	DB *gorm.DB
}

func NewAuthRepository(db *gorm.DB) *AuthRepository {
	return &AuthRepository{DB: db}
}

/* ====================== USER ====================== */

func (r *AuthRepository) FindUserByUsername(ctx context.Context, username string) (*authModel.UserModel, error) {
	var user authModel.UserModel
	err := r.DB.WithContext(ctx).
		Where("user_name = ?", strings.TrimSpace(username)).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("user")
		}
		return nil, err
	}
	return &user, nil
}

func (r *AuthRepository) FindUserByID(ctx context.Context, userID uuid.UUID) (*authModel.UserModel, error) {
	var user authModel.UserModel
	if err := r.DB.WithContext(ctx).First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("user")
		}
		return nil, err
	}
	return &user, nil
}

// FindUserRole: dipakai AuthMiddleware, cuma ambil kolom role.
func (r *AuthRepository) FindUserRole(ctx context.Context, userID uuid.UUID) (constants.Role, error) {
	var role string
	res := r.DB.WithContext(ctx).
		Model(&authModel.UserModel{}).
		Select("role").
		Where("id = ?", userID).
		Limit(1).
		Scan(&role)
	if res.Error != nil {
		return "", res.Error
	}
	if res.RowsAffected == 0 {
		return "", apperr.NotFound("user")
	}
	return constants.ParseRole(role)
}

// UsernameExists dipakai seeder supaya idempoten.
func (r *AuthRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	var n int64
	err := r.DB.WithContext(ctx).
		Model(&authModel.UserModel{}).
		Where("user_name = ?", username).
		Count(&n).Error
	return n > 0, err
}

func (r *AuthRepository) CreateUser(ctx context.Context, user *authModel.UserModel) error {
	return r.DB.WithContext(ctx).Create(user).Error
}

/* ====================== BLACKLIST TOKEN ====================== */

// BlacklistToken idempoten: token yang sama cukup tercatat sekali.
func (r *AuthRepository) BlacklistToken(ctx context.Context, token string, expiredAt time.Time) error {
	return r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "token"}}, DoNothing: true}).
		Create(&authModel.TokenBlacklist{
			Token:     token,
			ExpiredAt: expiredAt.UTC(),
		}).Error
}

func (r *AuthRepository) IsTokenBlacklisted(ctx context.Context, token string) (bool, error) {
	var n int64
	err := r.DB.WithContext(ctx).
		Model(&authModel.TokenBlacklist{}).
		Where("token = ?", token).
		Count(&n).Error
	return n > 0, err
}

// CleanupExpiredBlacklist menghapus (soft delete) token yang expired_at-nya
// sudah lewat sebelum `before`, maksimal `limit` baris per panggilan.
func (r *AuthRepository) CleanupExpiredBlacklist(ctx context.Context, before time.Time, limit int) (int64, error) {
	var expired []authModel.TokenBlacklist
	if err := r.DB.WithContext(ctx).
		Where("expired_at < ?", before.UTC()).
		Limit(limit).
		Find(&expired).Error; err != nil {
		return 0, err
	}
	if len(expired) == 0 {
		return 0, nil
	}
	res := r.DB.WithContext(ctx).Delete(&expired)
	return res.RowsAffected, res.Error
}
