// Package jsonutil provides shared helpers for decoding backend JSON bodies:
// context-wrapped errors, empty-safe arrays and lenient numeric fields.
package jsonutil

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// DecodeWithContext decodes a single JSON value from r into v and wraps any
// error with the provided context message.
func DecodeWithContext(r io.Reader, v any, context string) error {
	if err := json.NewDecoder(r).Decode(v); err != nil {
		return fmt.Errorf("%s: %w", context, err)
	}
	return nil
}

// DecodeArrayAllowEmpty decodes a JSON array from r. An empty array or a
// literal null yields a non-nil empty slice.
func DecodeArrayAllowEmpty[T any](r io.Reader, context string) ([]T, error) {
	var entries []T
	if err := DecodeWithContext(r, &entries, context); err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []T{}
	}
	return entries, nil
}

// FlexInt is an integer that also accepts numeric JSON strings ("3") and
// whole floats (3.0). Null decodes to zero.
type FlexInt int

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexInt) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*f = 0
		return nil
	}
	if unq, err := strconv.Unquote(s); err == nil {
		s = strings.TrimSpace(unq)
	}
	if n, err := strconv.Atoi(s); err == nil {
		*f = FlexInt(n)
		return nil
	}
	fl, err := strconv.ParseFloat(s, 64)
	if err != nil || fl != float64(int64(fl)) {
		return fmt.Errorf("jsonutil: %s is not an integer", string(data))
	}
	*f = FlexInt(int64(fl))
	return nil
}

// MarshalJSON implements json.Marshaler.
func (f FlexInt) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Itoa(int(f))), nil
}
