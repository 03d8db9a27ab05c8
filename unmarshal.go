// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package envconv

import (
	"encoding"
	"errors"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
)

type unmarshalOptions struct {
	environ func() []string
	truthy  []string
	falsy   []string
	layout  string
}

// UnmarshalOption configures how the environment is decoded into a struct.
type UnmarshalOption func(*unmarshalOptions)

// Environ overrides how the environment is snapshot. The default is
// os.Environ.
func Environ(f func() []string) UnmarshalOption {
	return func(uo *unmarshalOptions) {
		uo.environ = f
	}
}

// UnmarshalBoolValues overrides the truthy and falsy token sets used
// when decoding into bool fields.
func UnmarshalBoolValues(truthy, falsy []string) UnmarshalOption {
	return func(uo *unmarshalOptions) {
		uo.truthy = truthy
		uo.falsy = falsy
	}
}

// UnmarshalDateTimeLayout sets an explicit layout used when decoding
// into time.Time fields, disabling the candidate layout trials.
func UnmarshalDateTimeLayout(layout string) UnmarshalOption {
	return func(uo *unmarshalOptions) {
		uo.layout = layout
	}
}

// Unmarshal snapshots the environment and decodes it into v. Struct
// fields are matched to variable names via the "env" tag. String values
// are coerced into bool, numeric, duration, time.Time, []string and
// map[string]string fields using the same conversion rules as the
// corresponding Reader converters.
func Unmarshal(v any, opts ...UnmarshalOption) error {
	uo := unmarshalOptions{
		environ: os.Environ,
		truthy:  defaultTruthyValues,
		falsy:   defaultFalsyValues,
	}
	for _, opt := range opts {
		opt(&uo)
	}

	m := make(map[string]any)
	for _, pair := range uo.environ() {
		k, val, ok := strings.Cut(pair, "=")
		if !ok {
			continue
		}
		m[k] = val
	}

	layouts := candidateLayouts()
	if uo.layout != "" {
		layouts = []string{uo.layout}
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "env",
		Result:  v,
		DecodeHook: composeDecodeHooks(
			// The datetime hook must run before the text unmarshaler
			// hook. *time.Time implements encoding.TextUnmarshaler, so
			// the text hook would otherwise claim every time.Time field
			// and force RFC 3339 parsing.
			dateTimeHookFunc(layouts),
			textUnmarshalerHookFunc(),
			timeDurationHookFunc(),
			numberHookFunc(),
			boolHookFunc(uo.truthy, uo.falsy),
			collectionHookFunc(),
		),
	})
	if err != nil {
		return err
	}
	return dec.Decode(m)
}

var errInvalidDecodeCondition = errors.New("invalid decode condition")

// TypeCoercionError occurs when attempting to unmarshal an environment
// value to a struct field whose type does not match the value type, up
// to, coercion.
type TypeCoercionError struct {
	from  reflect.Value
	to    reflect.Value
	Cause error
}

// Error implements the error interface.
func (e TypeCoercionError) Error() string {
	return fmt.Sprintf("failed to coerce value from %s to %s: %s", e.from.Type().Name(), e.to.Type().Name(), e.Cause)
}

// Unwrap implements the implicit interface for usage with errors.Is and errors.As.
func (e TypeCoercionError) Unwrap() error {
	return e.Cause
}

func composeDecodeHooks(hs ...mapstructure.DecodeHookFunc) mapstructure.DecodeHookFuncValue {
	return func(f, t reflect.Value) (any, error) {
		for _, h := range hs {
			v, err := mapstructure.DecodeHookExec(h, f, t)
			if err == nil {
				return v, nil
			}
			if err == errInvalidDecodeCondition {
				continue
			}
			return nil, TypeCoercionError{
				from:  f,
				to:    t,
				Cause: err,
			}
		}
		return f.Interface(), nil
	}
}

func textUnmarshalerHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String {
			return nil, errInvalidDecodeCondition
		}
		result := reflect.New(t).Interface()
		u, ok := result.(encoding.TextUnmarshaler)
		if !ok {
			return nil, errInvalidDecodeCondition
		}
		err := u.UnmarshalText([]byte(data.(string)))
		if err != nil {
			return nil, err
		}
		return result, nil
	}
}

func timeDurationHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if t != reflect.TypeOf(time.Duration(0)) || f.Kind() != reflect.String {
			return nil, errInvalidDecodeCondition
		}
		return time.ParseDuration(strings.TrimSpace(data.(string)))
	}
}

func numberHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String {
			return nil, errInvalidDecodeCondition
		}

		raw := data.(string)
		s := strings.TrimSpace(raw)
		switch t.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			n, err := strconv.ParseInt(s, 10, t.Bits())
			if err != nil {
				return nil, ConversionError{Raw: raw, Cause: err}
			}
			return reflect.ValueOf(n).Convert(t).Interface(), nil
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			n, err := strconv.ParseUint(s, 10, t.Bits())
			if err != nil {
				return nil, ConversionError{Raw: raw, Cause: err}
			}
			return reflect.ValueOf(n).Convert(t).Interface(), nil
		case reflect.Float32, reflect.Float64:
			n, err := strconv.ParseFloat(s, t.Bits())
			if err != nil {
				return nil, ConversionError{Raw: raw, Cause: err}
			}
			return reflect.ValueOf(n).Convert(t).Interface(), nil
		default:
			return nil, errInvalidDecodeCondition
		}
	}
}

func boolHookFunc(truthy, falsy []string) mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String || t.Kind() != reflect.Bool {
			return nil, errInvalidDecodeCondition
		}
		return matchBool(data.(string), truthy, falsy)
	}
}

func dateTimeHookFunc(layouts []string) mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String || t != reflect.TypeOf(time.Time{}) {
			return nil, errInvalidDecodeCondition
		}
		dt, err := resolveDateTime(data.(string), layouts)
		if err != nil {
			return nil, err
		}
		return dt.Time, nil
	}
}

func collectionHookFunc() mapstructure.DecodeHookFuncType {
	stringType := reflect.TypeOf("")
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String {
			return nil, errInvalidDecodeCondition
		}

		// The struct field already fixes the container shape, so only
		// the item pipeline runs here. Type inference is left to
		// CollectionFromString.
		switch {
		case t.Kind() == reflect.Slice && t.Elem() == stringType:
			return parseItems(data.(string))
		case t.Kind() == reflect.Map && t.Key() == stringType && t.Elem() == stringType:
			raw := data.(string)
			items, err := parseItems(raw)
			if err != nil {
				return nil, err
			}
			pairs, err := pairItems(items)
			if err != nil {
				return nil, ConversionError{Raw: raw, Cause: err}
			}
			return pairs, nil
		default:
			return nil, errInvalidDecodeCondition
		}
	}
}
