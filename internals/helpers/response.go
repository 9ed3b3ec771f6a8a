package helper

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ValidationError: ubah validator.ValidationErrors → 422 per field.
// Error lain (mis. aturan custom DTO) → 422 dengan pesan apa adanya.
func ValidationError(c *fiber.Ctx, err error) error {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	fields := make(map[string][]string, len(ve))
	for _, fe := range ve {
		key := strings.ToLower(fe.Field())
		msg := fe.Tag()
		if p := fe.Param(); p != "" {
			msg += "=" + p
		}
		fields[key] = append(fields[key], msg)
	}
	return JsonValidationError(c, fields)
}
