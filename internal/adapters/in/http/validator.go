package http

import (
	"reflect"
	"strings"

	"medidrone/internal/core/domain/model/medication"

	"github.com/go-playground/validator/v10"
)

// RequestValidator plugs go-playground/validator into echo.
// Besides the built-in tags it knows medname and medcode, the medication name and code formats.
type RequestValidator struct {
	validate *validator.Validate
}

func NewRequestValidator() *RequestValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// report json names so clients see the field they sent
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("medname", func(fl validator.FieldLevel) bool {
		return medication.IsValidName(fl.Field().String())
	})
	_ = v.RegisterValidation("medcode", func(fl validator.FieldLevel) bool {
		return medication.IsValidCode(fl.Field().String())
	})

	return &RequestValidator{validate: v}
}

// Validate implements echo.Validator.
func (v *RequestValidator) Validate(i any) error {
	return v.validate.Struct(i)
}
