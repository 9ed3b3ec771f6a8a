// internals/features/users/auth/service/auth_service.go
package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	authHelper "grahafitness_backend/internals/features/users/auth/helper"
	authModel "grahafitness_backend/internals/features/users/auth/model"
	"grahafitness_backend/internals/helpers/apperr"
	"grahafitness_backend/internals/helpers/logx"
)

// UserStore: yang dibutuhkan service auth dari repository.
type UserStore interface {
	FindUserByUsername(ctx context.Context, username string) (*authModel.UserModel, error)
	FindUserByID(ctx context.Context, userID uuid.UUID) (*authModel.UserModel, error)
	BlacklistToken(ctx context.Context, token string, expiredAt time.Time) error
}

type AuthService struct {
	Store  UserStore
	Tokens TokenIssuer
}

func NewAuthService(store UserStore, tokens TokenIssuer) *AuthService {
	return &AuthService{Store: store, Tokens: tokens}
}

type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      authModel.UserModel
}

// dummyHash dipakai saat username tidak ditemukan supaya waktu respon
// tidak membocorkan keberadaan akun.
var dummyHash, _ = authHelper.HashPassword("RandomDummyPassword123!")

/* ==========================
   LOGIN
========================== */

func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, apperr.ErrInvalidCredentials
	}

	user, err := s.Store.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			_ = authHelper.CheckPasswordHash(dummyHash, password)
			return nil, apperr.ErrInvalidCredentials
		}
		return nil, err
	}
	if err := authHelper.CheckPasswordHash(user.Password, password); err != nil {
		logx.Module("auth").WithField("user_name", username).Info("[LOGIN] password salah")
		return nil, apperr.ErrInvalidCredentials
	}

	token, exp, err := s.Tokens.Issue(*user)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Token: token, ExpiresAt: exp, User: *user}, nil
}

/* ==========================
   ME
========================== */

func (s *AuthService) Me(ctx context.Context, userID uuid.UUID) (*authModel.UserModel, error) {
	return s.Store.FindUserByID(ctx, userID)
}

/* ==========================
   LOGOUT
========================== */

// Logout mem-blacklist token sampai exp-nya lewat (+ sedikit buffer).
// exp nol (tidak diketahui) → pakai TTL token penuh dari sekarang.
func (s *AuthService) Logout(ctx context.Context, rawToken string, exp time.Time) error {
	rawToken = strings.TrimSpace(rawToken)
	if rawToken == "" {
		return nil
	}
	until := exp
	if until.IsZero() {
		until = s.Tokens.Now().Add(s.Tokens.TTL)
	}
	return s.Store.BlacklistToken(ctx, rawToken, until.Add(time.Minute))
}
