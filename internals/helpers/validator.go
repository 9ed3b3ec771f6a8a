package helper

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// NewValidator: nama field di error diambil dari tag json (start_date, min_threshold).
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}
