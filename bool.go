// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package envconv

import (
	"context"
	"errors"
	"slices"
	"strings"
)

var (
	defaultTruthyValues = []string{"TRUE", "True", "true", "T", "t", "1"}
	defaultFalsyValues  = []string{"FALSE", "False", "false", "F", "f", "0"}
)

type boolOptions struct {
	truthy []string
	falsy  []string
}

// BoolOption configures which tokens are recognized as booleans.
type BoolOption func(*boolOptions)

// TruthyValues overrides the set of tokens recognized as true.
// Matching is exact, tokens differing only in case must be listed
// individually.
func TruthyValues(vs ...string) BoolOption {
	return func(bo *boolOptions) {
		bo.truthy = vs
	}
}

// FalsyValues overrides the set of tokens recognized as false.
// Matching is exact, tokens differing only in case must be listed
// individually.
func FalsyValues(vs ...string) BoolOption {
	return func(bo *boolOptions) {
		bo.falsy = vs
	}
}

// BoolFromString converts the raw string read from r into a bool by
// exact membership against the configured truthy and falsy token sets.
// Leading and trailing whitespace is ignored, internal whitespace is
// preserved. A raw value in neither set is a ConversionError.
func BoolFromString(r Reader[string], opts ...BoolOption) Reader[bool] {
	bo := boolOptions{
		truthy: defaultTruthyValues,
		falsy:  defaultFalsyValues,
	}
	for _, opt := range opts {
		opt(&bo)
	}

	return Map(r, func(_ context.Context, s string) (bool, error) {
		return matchBool(s, bo.truthy, bo.falsy)
	})
}

var errUnknownBoolToken = errors.New("not a recognized boolean token")

func matchBool(raw string, truthy, falsy []string) (bool, error) {
	cleaned := strings.TrimSpace(raw)

	// The truthy set wins if a token was configured into both sets.
	if slices.Contains(truthy, cleaned) {
		return true, nil
	}
	if slices.Contains(falsy, cleaned) {
		return false, nil
	}
	return false, ConversionError{Raw: raw, Cause: errUnknownBoolToken}
}
