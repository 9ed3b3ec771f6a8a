package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grahafitness_backend/internals/constants"
	authHelper "grahafitness_backend/internals/features/users/auth/helper"
	authModel "grahafitness_backend/internals/features/users/auth/model"
	"grahafitness_backend/internals/helpers/apperr"
)

const testSecret = "unit-test-secret"

type userStore struct {
	users       map[string]authModel.UserModel
	blacklisted map[string]time.Time
	failLookup  error
}

func (s *userStore) FindUserByUsername(_ context.Context, username string) (*authModel.UserModel, error) {
	if s.failLookup != nil {
		return nil, s.failLookup
	}
	u, ok := s.users[username]
	if !ok {
		return nil, apperr.NotFound("user")
	}
	return &u, nil
}

func (s *userStore) FindUserByID(_ context.Context, id uuid.UUID) (*authModel.UserModel, error) {
	for _, u := range s.users {
		if u.ID == id {
			return &u, nil
		}
	}
	return nil, apperr.NotFound("user")
}

func (s *userStore) BlacklistToken(_ context.Context, token string, expiredAt time.Time) error {
	s.blacklisted[token] = expiredAt
	return nil
}

var fixedNow = time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)

func newAuthService(t *testing.T) (*AuthService, *userStore, authModel.UserModel) {
	t.Helper()
	hash, err := authHelper.HashPassword("s3cret!")
	require.NoError(t, err)

	admin := authModel.UserModel{ID: uuid.New(), UserName: "admin", Password: hash, Role: constants.RoleAdmin}
	store := &userStore{
		users:       map[string]authModel.UserModel{"admin": admin},
		blacklisted: map[string]time.Time{},
	}
	tokens := NewTokenIssuer(testSecret, 24*time.Hour)
	tokens.NowFn = func() time.Time { return fixedNow }
	return NewAuthService(store, tokens), store, admin
}

func TestLogin_IssuesSignedToken(t *testing.T) {
	svc, _, admin := newAuthService(t)

	res, err := svc.Login(context.Background(), "  admin ", "s3cret!")
	require.NoError(t, err)

	assert.Equal(t, fixedNow.Add(24*time.Hour), res.ExpiresAt)
	assert.Equal(t, admin.ID, res.User.ID)

	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	_, err = parser.ParseWithClaims(res.Token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	assert.Equal(t, admin.ID.String(), claims["id"])
	assert.Equal(t, "admin", claims["role"])
	assert.Equal(t, float64(fixedNow.Add(24*time.Hour).Unix()), claims["exp"])
}

func TestLogin_RejectsBadCredentials(t *testing.T) {
	svc, _, _ := newAuthService(t)

	cases := map[string][2]string{
		"wrong password": {"admin", "nope"},
		"unknown user":   {"ghost", "s3cret!"},
		"empty username": {"  ", "s3cret!"},
		"empty password": {"admin", ""},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Login(context.Background(), in[0], in[1])
			assert.ErrorIs(t, err, apperr.ErrInvalidCredentials)
		})
	}
}

func TestLogin_StoreFailureIsNotMasked(t *testing.T) {
	svc, store, _ := newAuthService(t)
	store.failLookup = errors.New("connection refused")

	_, err := svc.Login(context.Background(), "admin", "s3cret!")

	assert.Error(t, err)
	assert.NotErrorIs(t, err, apperr.ErrInvalidCredentials)
}

func TestIssue_RequiresSecret(t *testing.T) {
	_, _, err := NewTokenIssuer("", time.Hour).Issue(authModel.UserModel{ID: uuid.New()})
	assert.Error(t, err)
}

func TestLogout_BlacklistsUntilExpiry(t *testing.T) {
	svc, store, _ := newAuthService(t)
	exp := fixedNow.Add(3 * time.Hour)

	require.NoError(t, svc.Logout(context.Background(), " tok-1 ", exp))
	assert.Equal(t, exp.Add(time.Minute), store.blacklisted["tok-1"])

	require.NoError(t, svc.Logout(context.Background(), "tok-2", time.Time{}))
	assert.Equal(t, fixedNow.Add(24*time.Hour+time.Minute), store.blacklisted["tok-2"])

	require.NoError(t, svc.Logout(context.Background(), "", exp))
	assert.Len(t, store.blacklisted, 2)
}

func TestMe(t *testing.T) {
	svc, _, admin := newAuthService(t)

	u, err := svc.Me(context.Background(), admin.ID)
	require.NoError(t, err)
	assert.Equal(t, "admin", u.UserName)

	_, err = svc.Me(context.Background(), uuid.New())
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}
