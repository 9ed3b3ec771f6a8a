// Package apperr berisi jenis error domain yang dipetakan ke status HTTP.
package apperr

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrMembershipExpired  = errors.New("membership expired")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrValidation         = errors.New("validation failed")
)

// NotFound → "<what> not found", tetap errors.Is(err, ErrNotFound).
func NotFound(what string) error {
	return fmt.Errorf("%s %w", what, ErrNotFound)
}

// Invalid → error validasi dengan pesan spesifik.
func Invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

type forbiddenError struct{ msg string }

func (e forbiddenError) Error() string { return e.msg }
func (e forbiddenError) Unwrap() error { return ErrForbidden }

// Forbidden → 403 dengan pesan apa adanya.
func Forbidden(msg string) error {
	return forbiddenError{msg: msg}
}

// Status memetakan error ke kode HTTP.
func Status(err error) int {
	switch {
	case err == nil:
		return fiber.StatusOK
	case errors.Is(err, ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, ErrMembershipExpired):
		return fiber.StatusBadRequest
	case errors.Is(err, ErrForbidden):
		return fiber.StatusForbidden
	case errors.Is(err, ErrInvalidCredentials), errors.Is(err, ErrInvalidToken):
		return fiber.StatusUnauthorized
	case errors.Is(err, ErrValidation):
		return fiber.StatusUnprocessableEntity
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code
	}
	return fiber.StatusInternalServerError
}
