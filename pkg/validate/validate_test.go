package validate_test

import (
	"database/sql"
	"reflect"
	"testing"

	"github.com/Astemirdum/bookreview-service/pkg/validate"
	"github.com/stretchr/testify/require"
)

func TestCustomValidator_Validate(t *testing.T) {
	type req struct {
		Name  string `validate:"required"`
		Stars int    `validate:"min=1,max=5"`
	}
	v := validate.NewCustomValidator()

	require.NoError(t, v.Validate(req{Name: "a", Stars: 3}))
	require.Error(t, v.Validate(req{Stars: 3}))
	require.Error(t, v.Validate(req{Name: "a", Stars: 6}))
}

func TestCustomValidator_WithCustomTypeFunc(t *testing.T) {
	type req struct {
		Year sql.NullInt64 `validate:"omitempty,min=1000"`
	}
	v := validate.NewCustomValidator(validate.WithCustomTypeFunc(func(field reflect.Value) interface{} {
		if n, ok := field.Interface().(sql.NullInt64); ok && n.Valid {
			return n.Int64
		}
		return nil
	}, sql.NullInt64{}))

	require.NoError(t, v.Validate(req{}))
	require.NoError(t, v.Validate(req{Year: sql.NullInt64{Int64: 1965, Valid: true}}))
	require.Error(t, v.Validate(req{Year: sql.NullInt64{Int64: 12, Valid: true}}))
}
