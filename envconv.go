// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package envconv

import (
	"context"
	"errors"
	"fmt"
)

// Value represents a value which may or may not be set.
type Value[T any] struct {
	value T
	set   bool
}

// ValueOf returns a set Value wrapping v.
func ValueOf[T any](v T) Value[T] {
	return Value[T]{value: v, set: true}
}

// Value returns the underlying value along with whether it was ever set.
func (v Value[T]) Value() (T, bool) {
	return v.value, v.set
}

// Reader represents a source of values which may or may not be present.
type Reader[T any] interface {
	Read(context.Context) (Value[T], error)
}

// ReaderFunc is a functional implementation of the Reader interface.
type ReaderFunc[T any] func(context.Context) (Value[T], error)

// Read implements the Reader interface.
func (f ReaderFunc[T]) Read(ctx context.Context) (Value[T], error) {
	return f(ctx)
}

// ReaderOf returns a Reader which always returns the given value.
func ReaderOf[T any](v T) Reader[T] {
	return ReaderFunc[T](func(ctx context.Context) (Value[T], error) {
		return ValueOf(v), nil
	})
}

// ErrValueNotSet is returned by Read when the underlying Reader
// reported no value.
var ErrValueNotSet = errors.New("envconv: value is not set")

// Read reads a single value from the given Reader. A Reader reporting
// no value is converted into ErrValueNotSet.
func Read[T any](ctx context.Context, r Reader[T]) (T, error) {
	var zero T

	val, err := r.Read(ctx)
	if err != nil {
		return zero, err
	}

	v, ok := val.Value()
	if !ok {
		return zero, ErrValueNotSet
	}
	return v, nil
}

// Must behaves like Read but panics instead of returning an error.
func Must[T any](ctx context.Context, r Reader[T]) T {
	v, err := Read(ctx, r)
	if err != nil {
		panic(err)
	}
	return v
}

// MustOr behaves like Must but substitutes def when the Reader
// reported no value. It still panics on any other error.
func MustOr[T any](ctx context.Context, def T, r Reader[T]) T {
	v, err := Read(ctx, r)
	if err != nil {
		if errors.Is(err, ErrValueNotSet) {
			return def
		}
		panic(err)
	}
	return v
}

// ConversionError occurs when a raw environment variable value can not
// be converted to the requested type.
type ConversionError struct {
	// Raw is the offending raw string value.
	Raw string

	Cause error
}

// Error implements the error interface.
func (e ConversionError) Error() string {
	return fmt.Sprintf("failed to convert %q: %s", e.Raw, e.Cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e ConversionError) Unwrap() error {
	return e.Cause
}
