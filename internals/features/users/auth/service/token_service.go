// internals/features/users/auth/service/token_service.go
package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"

	authModel "grahafitness_backend/internals/features/users/auth/model"
)

// TokenIssuer menandatangani access token HS256 dengan claim id/role/exp.
type TokenIssuer struct {
	Secret string
	TTL    time.Duration
	NowFn  func() time.Time
}

func NewTokenIssuer(secret string, ttl time.Duration) TokenIssuer {
	return TokenIssuer{Secret: secret, TTL: ttl}
}

func (t TokenIssuer) Now() time.Time {
	if t.NowFn != nil {
		return t.NowFn().UTC()
	}
	return time.Now().UTC()
}

func (t TokenIssuer) Issue(user authModel.UserModel) (string, time.Time, error) {
	if t.Secret == "" {
		return "", time.Time{}, errors.New("JWT_SECRET belum diset")
	}
	now := t.Now()
	exp := now.Add(t.TTL)
	claims := jwt.MapClaims{
		"typ":       "access",
		"id":        user.ID.String(),
		"sub":       user.ID.String(),
		"user_name": user.UserName,
		"role":      string(user.Role),
		"iat":       now.Unix(),
		"exp":       exp.Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(t.Secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, exp, nil
}
