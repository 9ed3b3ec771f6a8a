package helper

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grahafitness_backend/internals/helpers/apperr"
)

func run(t *testing.T, target string, h fiber.Handler) (int, map[string]any) {
	t.Helper()
	app := fiber.New()
	app.Get("/t", h)
	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, target, nil))
	require.NoError(t, err)
	out := map[string]any{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func TestJsonFromError_HidesInternalMessage(t *testing.T) {
	status, body := run(t, "/t", func(c *fiber.Ctx) error {
		return JsonFromError(c, assert.AnError)
	})
	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, "Internal Server Error", body["message"])
	assert.Equal(t, "INTERNAL_ERROR", body["error_code"])

	status, body = run(t, "/t", func(c *fiber.Ctx) error {
		return JsonFromError(c, apperr.NotFound("member"))
	})
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "member not found", body["message"])
	assert.Equal(t, false, body["success"])
}

func TestValidationError_PerField(t *testing.T) {
	type req struct {
		Name string `validate:"required"`
		Qty  int    `validate:"gt=0"`
	}
	status, body := run(t, "/t", func(c *fiber.Ctx) error {
		return ValidationError(c, validator.New().Struct(req{}))
	})

	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
	errs := body["errors"].(map[string]any)
	assert.Equal(t, []any{"required"}, errs["name"])
	assert.Equal(t, []any{"gt=0"}, errs["qty"])
}

func TestValidationError_UsesJSONFieldNames(t *testing.T) {
	type req struct {
		StartDate    string `json:"start_date" validate:"required"`
		MinThreshold int    `json:"min_threshold,omitempty" validate:"gte=0"`
	}
	_, body := run(t, "/t", func(c *fiber.Ctx) error {
		return ValidationError(c, NewValidator().Struct(req{MinThreshold: -1}))
	})

	errs := body["errors"].(map[string]any)
	assert.Equal(t, []any{"required"}, errs["start_date"])
	assert.Equal(t, []any{"gte=0"}, errs["min_threshold"])
	assert.NotContains(t, errs, "startdate")
}

func TestResolvePaging(t *testing.T) {
	var got Paging
	run(t, "/t?page=3&per_page=500", func(c *fiber.Ctx) error {
		got = ResolvePaging(c, 50, 200)
		return c.JSON(fiber.Map{})
	})
	assert.Equal(t, Paging{Page: 3, PerPage: 200, Offset: 400, Limit: 200}, got)

	run(t, "/t?page=0&limit=x", func(c *fiber.Ctx) error {
		got = ResolvePaging(c, 50, 200)
		return c.JSON(fiber.Map{})
	})
	assert.Equal(t, Paging{Page: 1, PerPage: 50, Offset: 0, Limit: 50}, got)
}

func TestBuildPagination(t *testing.T) {
	p := BuildPagination(101, Paging{Page: 2, PerPage: 50}, 50)
	assert.Equal(t, 3, p.TotalPages)
	assert.True(t, p.HasNext)
	assert.True(t, p.HasPrev)

	empty := BuildPagination(0, Paging{Page: 1, PerPage: 50}, 0)
	assert.Equal(t, 1, empty.TotalPages)
	assert.False(t, empty.HasNext)
}

func TestGetUserIDFromToken(t *testing.T) {
	id := uuid.New()
	var got uuid.UUID
	var gotErr error
	run(t, "/t", func(c *fiber.Ctx) error {
		c.Locals(LocUserID, id.String())
		got, gotErr = GetUserIDFromToken(c)
		return c.JSON(fiber.Map{})
	})
	require.NoError(t, gotErr)
	assert.Equal(t, id, got)

	run(t, "/t", func(c *fiber.Ctx) error {
		_, gotErr = GetUserIDFromToken(c)
		return c.JSON(fiber.Map{})
	})
	assert.Equal(t, fiber.StatusUnauthorized, apperr.Status(gotErr))
}
