package entity

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
)

// Value wraps cell content and provides type conversion helpers.
type Value struct {
	Raw any
}

// Text returns a Value holding s.
func Text(s string) Value {
	return Value{Raw: s}
}

// String returns the value as a string.
func (v Value) String() string {
	if v.Raw == nil {
		return ""
	}
	return fmt.Sprintf("%v", v.Raw)
}

// IsNull is true when there is no content.
func (v Value) IsNull() bool {
	return v.Raw == nil
}

// Int returns the value as an int, parsing text if needed.
func (v Value) Int() (int, error) {
	switch raw := v.Raw.(type) {
	case int:
		return raw, nil
	case int64:
		return int(raw), nil
	case string:
		i, err := strconv.Atoi(raw)
		if err != nil {
			return 0, errors.Wrapf(err, "value is not an int: %q", raw)
		}
		return i, nil
	}
	return 0, errors.Errorf("value is not an int: %T", v.Raw)
}

// Bool returns the value as a bool, parsing text if needed.
func (v Value) Bool() (bool, error) {
	switch raw := v.Raw.(type) {
	case bool:
		return raw, nil
	case string:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return false, errors.Wrapf(err, "value is not a bool: %q", raw)
		}
		return b, nil
	}
	return false, errors.Errorf("value is not a bool: %T", v.Raw)
}

// Line represents a single row of the backing store as an ordered list of values.
// The order corresponds to the fields returned by the store.
type Line []Value
