// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package envconv

import (
	"context"
	"strconv"
	"strings"
	"time"
)

// IntFromString converts the raw string read from r into an int.
// Leading and trailing whitespace is ignored.
func IntFromString(r Reader[string]) Reader[int] {
	return Map(r, func(_ context.Context, s string) (int, error) {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return 0, ConversionError{Raw: s, Cause: err}
		}
		return n, nil
	})
}

// Int64FromString converts the raw string read from r into an int64.
// Leading and trailing whitespace is ignored.
func Int64FromString(r Reader[string]) Reader[int64] {
	return Map(r, func(_ context.Context, s string) (int64, error) {
		n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
		if err != nil {
			return 0, ConversionError{Raw: s, Cause: err}
		}
		return n, nil
	})
}

// Uint64FromString converts the raw string read from r into a uint64.
// Leading and trailing whitespace is ignored.
func Uint64FromString(r Reader[string]) Reader[uint64] {
	return Map(r, func(_ context.Context, s string) (uint64, error) {
		n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
		if err != nil {
			return 0, ConversionError{Raw: s, Cause: err}
		}
		return n, nil
	})
}

// Float64FromString converts the raw string read from r into a float64.
// Leading and trailing whitespace is ignored.
func Float64FromString(r Reader[string]) Reader[float64] {
	return Map(r, func(_ context.Context, s string) (float64, error) {
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return 0, ConversionError{Raw: s, Cause: err}
		}
		return f, nil
	})
}

// DurationFromString converts the raw string read from r into a
// time.Duration using time.ParseDuration.
func DurationFromString(r Reader[string]) Reader[time.Duration] {
	return Map(r, func(_ context.Context, s string) (time.Duration, error) {
		d, err := time.ParseDuration(strings.TrimSpace(s))
		if err != nil {
			return 0, ConversionError{Raw: s, Cause: err}
		}
		return d, nil
	})
}
