// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package envconv

import "context"

// Default returns a Reader which substitutes def when r reports no value.
// The default is returned verbatim, no conversion is ever applied to it.
// Errors from r are propagated untouched, a conversion failure is never
// masked by the default.
func Default[T any](def T, r Reader[T]) Reader[T] {
	return ReaderFunc[T](func(ctx context.Context) (Value[T], error) {
		val, err := r.Read(ctx)
		if err != nil {
			return Value[T]{}, err
		}

		if _, ok := val.Value(); !ok {
			return ValueOf(def), nil
		}
		return val, nil
	})
}

// Or returns a Reader which returns the first set value from the given
// readers. Readers after the first set value are never read.
func Or[T any](rs ...Reader[T]) Reader[T] {
	return ReaderFunc[T](func(ctx context.Context) (Value[T], error) {
		for _, r := range rs {
			val, err := r.Read(ctx)
			if err != nil {
				return Value[T]{}, err
			}

			if _, ok := val.Value(); ok {
				return val, nil
			}
		}
		return Value[T]{}, nil
	})
}

// Map returns a Reader which transforms the value read from r with f.
// An unset value is propagated without ever invoking f.
func Map[T, U any](r Reader[T], f func(context.Context, T) (U, error)) Reader[U] {
	return ReaderFunc[U](func(ctx context.Context) (Value[U], error) {
		val, err := r.Read(ctx)
		if err != nil {
			return Value[U]{}, err
		}

		v, ok := val.Value()
		if !ok {
			return Value[U]{}, nil
		}

		u, err := f(ctx, v)
		if err != nil {
			return Value[U]{}, err
		}
		return ValueOf(u), nil
	})
}

// Bind returns a Reader which uses the value read from r to construct
// the Reader which produces the final value. An unset value from r is
// propagated without ever invoking f.
func Bind[T, U any](r Reader[T], f func(context.Context, T) Reader[U]) Reader[U] {
	return ReaderFunc[U](func(ctx context.Context) (Value[U], error) {
		val, err := r.Read(ctx)
		if err != nil {
			return Value[U]{}, err
		}

		v, ok := val.Value()
		if !ok {
			return Value[U]{}, nil
		}
		return f(ctx, v).Read(ctx)
	})
}
