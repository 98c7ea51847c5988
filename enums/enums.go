// Package enums holds the closed label sets shared by the account services.
// Labels are the upper-snake names used on the wire, e.g. "FIXED_DEPOSIT".
// The empty label is the unset value: it marshals and unmarshals as "" but is
// never IsValid.
package enums

import (
	"errors"
	"fmt"
)

// ErrUnknownValue is returned when a label is not part of the enumeration.
var ErrUnknownValue = errors.New("unknown enum value")

func parse[T ~string](kind, s string, values []T) (T, error) {
	for _, v := range values {
		if string(v) == s {
			return v, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("%w: %s %q", ErrUnknownValue, kind, s)
}

func contains[T ~string](values []T, v T) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}

func marshal[T ~string](kind string, values []T, v T) ([]byte, error) {
	if v != "" && !contains(values, v) {
		return nil, fmt.Errorf("%w: %s %q", ErrUnknownValue, kind, string(v))
	}
	return []byte(v), nil
}

func unmarshal[T ~string](kind string, text []byte, values []T, dst *T) error {
	if len(text) == 0 {
		*dst = ""
		return nil
	}
	v, err := parse(kind, string(text), values)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}
