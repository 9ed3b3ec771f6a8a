package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{nil, fiber.StatusOK},
		{NotFound("member"), fiber.StatusNotFound},
		{fmt.Errorf("checkin: %w", ErrMembershipExpired), fiber.StatusBadRequest},
		{ErrForbidden, fiber.StatusForbidden},
		{Forbidden("no access"), fiber.StatusForbidden},
		{ErrInvalidCredentials, fiber.StatusUnauthorized},
		{ErrInvalidToken, fiber.StatusUnauthorized},
		{Invalid("quantity must be positive"), fiber.StatusUnprocessableEntity},
		{fiber.NewError(fiber.StatusConflict, "dup"), fiber.StatusConflict},
		{errors.New("boom"), fiber.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Status(tc.err), fmt.Sprint(tc.err))
	}
}

func TestMessages(t *testing.T) {
	assert.EqualError(t, NotFound("item"), "item not found")
	assert.EqualError(t, Invalid("type must be %s", "in or out"), "validation failed: type must be in or out")
	assert.EqualError(t, Forbidden("no access"), "no access")
	assert.ErrorIs(t, Forbidden("no access"), ErrForbidden)
}
