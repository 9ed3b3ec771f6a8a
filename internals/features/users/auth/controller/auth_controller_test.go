package controller

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grahafitness_backend/internals/constants"
	authHelper "grahafitness_backend/internals/features/users/auth/helper"
	authModel "grahafitness_backend/internals/features/users/auth/model"
	"grahafitness_backend/internals/features/users/auth/service"
	helper "grahafitness_backend/internals/helpers"
	"grahafitness_backend/internals/helpers/apperr"
)

type memUsers struct {
	user        authModel.UserModel
	blacklisted []string
}

func (m *memUsers) FindUserByUsername(_ context.Context, username string) (*authModel.UserModel, error) {
	if username != m.user.UserName {
		return nil, apperr.NotFound("user")
	}
	u := m.user
	return &u, nil
}

func (m *memUsers) FindUserByID(_ context.Context, id uuid.UUID) (*authModel.UserModel, error) {
	if id != m.user.ID {
		return nil, apperr.NotFound("user")
	}
	u := m.user
	return &u, nil
}

func (m *memUsers) BlacklistToken(_ context.Context, token string, _ time.Time) error {
	m.blacklisted = append(m.blacklisted, token)
	return nil
}

func newAuthApp(t *testing.T) (*fiber.App, *memUsers) {
	t.Helper()
	hash, err := authHelper.HashPassword("s3cret!")
	require.NoError(t, err)
	store := &memUsers{user: authModel.UserModel{
		ID: uuid.New(), UserName: "owner", Password: hash, Role: constants.RoleSuperAdmin,
	}}
	ctl := NewAuthController(service.NewAuthService(store, service.NewTokenIssuer("test-secret", time.Hour)))

	app := fiber.New()
	app.Post("/login", ctl.Login)
	// simulasi AuthMiddleware
	app.Post("/logout", func(c *fiber.Ctx) error {
		c.Locals(helper.LocUserID, store.user.ID.String())
		c.Locals(helper.LocTokenExp, time.Now().Add(time.Hour))
		helper.SetRawAccessToken(c, "raw-token")
		return c.Next()
	}, ctl.Logout)
	return app, store
}

func login(t *testing.T, app *fiber.App, body string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodPost, "/login", strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	require.NoError(t, err)
	out := map[string]any{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func TestLogin_Success(t *testing.T) {
	app, _ := newAuthApp(t)

	status, body := login(t, app, `{"username":"owner","password":"s3cret!"}`)

	require.Equal(t, fiber.StatusOK, status)
	data := body["data"].(map[string]any)
	assert.NotEmpty(t, data["access_token"])
	assert.Equal(t, "Bearer", data["token_type"])
	user := data["user"].(map[string]any)
	assert.Equal(t, "superadmin", user["role"])
	assert.Equal(t, "owner", user["display_name"])
}

func TestLogin_WrongPassword(t *testing.T) {
	app, _ := newAuthApp(t)

	status, body := login(t, app, `{"username":"owner","password":"wrong"}`)

	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, "invalid username or password", body["message"])
}

func TestLogin_MissingFields(t *testing.T) {
	app, _ := newAuthApp(t)

	status, body := login(t, app, `{"username":"owner"}`)

	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
	assert.Contains(t, body["errors"], "password")
}

func TestLogout_BlacklistsCurrentToken(t *testing.T) {
	app, store := newAuthApp(t)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodPost, "/logout", nil))
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, []string{"raw-token"}, store.blacklisted)
}
