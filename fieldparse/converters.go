// Package fieldparse: byte converters for the generic fallback pipeline.
package fieldparse

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Converter transforms captured field bytes into a typed value. Converters
// plug into XparseFunc: the framing layers decide where the field ends, the
// converter interprets the decoded bytes, and a conversion error turns the
// ReturnCode Invalid.
type Converter[T any] func(b []byte) (T, error)

// IntConverter returns a converter parsing int64 in the given base
// (0 means base 10).
func IntConverter(base int) Converter[int64] {
	if base == 0 {
		base = 10
	}
	return func(b []byte) (int64, error) {
		return strconv.ParseInt(string(b), base, 64)
	}
}

// FloatConverter returns a converter parsing float64.
func FloatConverter() Converter[float64] {
	return func(b []byte) (float64, error) {
		return strconv.ParseFloat(string(b), 64)
	}
}

// BoolConverter returns a permissive boolean converter.
// Recognizes: true/false, 1/0, yes/no, y/n, on/off, t/f (case-insensitive).
func BoolConverter() Converter[bool] {
	return func(b []byte) (bool, error) {
		switch lowerToken(b) {
		case "true", "1", "yes", "y", "on", "t":
			return true, nil
		case "false", "0", "no", "n", "off", "f":
			return false, nil
		default:
			return false, fmt.Errorf("cannot convert %q to bool", b)
		}
	}
}

// DateConverter returns a converter parsing time.Time with the given Go
// layout (default: "2006-01-02") in the given location (default: UTC).
func DateConverter(format string, loc *time.Location) Converter[time.Time] {
	if format == "" {
		format = "2006-01-02"
	}
	if loc == nil {
		loc = time.UTC
	}
	return func(b []byte) (time.Time, error) {
		return time.ParseInLocation(format, string(b), loc)
	}
}

// UUIDConverter returns a converter parsing canonical UUID strings.
func UUIDConverter() Converter[uuid.UUID] {
	return func(b []byte) (uuid.UUID, error) {
		return uuid.ParseBytes(b)
	}
}

// lowerToken lowercases ASCII letters into a small stack buffer.
func lowerToken(b []byte) string {
	if len(b) > 8 {
		return ""
	}
	var buf [8]byte
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			c |= 0x20
		}
		buf[i] = c
	}
	return string(buf[:len(b)])
}
