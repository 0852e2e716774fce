package validate

import (
	"github.com/go-playground/validator/v10"
)

type CustomValidator struct {
	validator *validator.Validate
}

type Option func(v *validator.Validate)

// WithCustomTypeFunc makes the validator check fn's result instead of
// the raw value for every field of the given types.
func WithCustomTypeFunc(fn validator.CustomTypeFunc, types ...interface{}) Option {
	return func(v *validator.Validate) {
		v.RegisterCustomTypeFunc(fn, types...)
	}
}

func NewCustomValidator(opts ...Option) *CustomValidator {
	v := validator.New()
	for _, opt := range opts {
		opt(v)
	}
	return &CustomValidator{validator: v}
}

// Validate implements echo.Validator.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
