// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package envconv

import (
	"context"
	"os"
)

// LookupFunc maps an environment variable name to its raw string value.
// The second return value reports whether the variable is set at all.
type LookupFunc func(string) (string, bool)

type envOptions struct {
	lookup LookupFunc
}

// EnvOption configures how an environment variable is resolved.
type EnvOption func(*envOptions)

// Lookup overrides how the variable name is resolved to a raw value.
// The default is os.LookupEnv.
func Lookup(f LookupFunc) EnvOption {
	return func(eo *envOptions) {
		eo.lookup = f
	}
}

// Env returns a Reader which reads the raw string value of the named
// environment variable. Exactly one lookup is performed per Read and
// the raw value is returned without any validation.
func Env(name string, opts ...EnvOption) Reader[string] {
	eo := envOptions{
		lookup: os.LookupEnv,
	}
	for _, opt := range opts {
		opt(&eo)
	}

	return ReaderFunc[string](func(ctx context.Context) (Value[string], error) {
		raw, ok := eo.lookup(name)
		if !ok {
			return Value[string]{}, nil
		}
		return ValueOf(raw), nil
	})
}
