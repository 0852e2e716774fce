package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// CastError reports a value that could not be coerced to a number.
type CastError struct {
	Value string
	Type  string
}

func (e *CastError) Error() string {
	return fmt.Sprintf("Cast to Number failed for value %s (type %s)", e.Value, e.Type)
}

// Int is an optional integer that also accepts numeric strings.
// null and "" leave it unset but mark it Null, so an update can clear
// the field instead of ignoring it.
type Int struct {
	Value int
	Set   bool
	Null  bool
}

func NewInt(v int) Int { return Int{Value: v, Set: true} }

// Present reports whether the field appeared in the decoded document.
func (i Int) Present() bool { return i.Set || i.Null }

func (i Int) Ptr() *int {
	if !i.Set {
		return nil
	}
	v := i.Value
	return &v
}

func (i *Int) UnmarshalJSON(data []byte) error {
	f, ok, err := parseNumber(data)
	if err != nil {
		return err
	}
	if !ok {
		*i = Int{Null: true}
		return nil
	}
	if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return &CastError{Value: string(data), Type: "number"}
	}
	*i = Int{Value: int(f), Set: true}
	return nil
}

func (i Int) MarshalJSON() ([]byte, error) {
	if !i.Set {
		return []byte("null"), nil
	}
	return []byte(strconv.Itoa(i.Value)), nil
}

// Number is an optional float that also accepts numeric strings.
type Number struct {
	Value float64
	Set   bool
}

func NewNumber(v float64) Number { return Number{Value: v, Set: true} }

func (n *Number) UnmarshalJSON(data []byte) error {
	f, ok, err := parseNumber(data)
	if err != nil {
		return err
	}
	*n = Number{Value: f, Set: ok}
	return nil
}

func (n Number) MarshalJSON() ([]byte, error) {
	if !n.Set {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}

func parseNumber(data []byte) (float64, bool, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return 0, false, nil
	}
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return 0, false, err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			return 0, false, nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false, &CastError{Value: strconv.Quote(s), Type: "string"}
		}
		return f, true, nil
	case 't', 'f':
		return 0, false, &CastError{Value: string(data), Type: "boolean"}
	case '{':
		return 0, false, &CastError{Value: string(data), Type: "Object"}
	case '[':
		return 0, false, &CastError{Value: string(data), Type: "Array"}
	}
	f, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return 0, false, &CastError{Value: string(data), Type: "number"}
	}
	return f, true, nil
}

// ValidationValue lets the validator see Int and Number as plain values.
func ValidationValue(v reflect.Value) interface{} {
	switch x := v.Interface().(type) {
	case Int:
		if x.Set {
			return x.Value
		}
	case Number:
		if x.Set {
			return x.Value
		}
	}
	return nil
}
