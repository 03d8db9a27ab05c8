// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package envconv converts raw environment variable strings into typed values.
//
// The package is built around the concept of a Reader[T], which represents a source of
// values that may or may not be present. Readers can be composed using functional
// combinators to build complex conversion logic from simple building blocks.
//
// # Core Concepts
//
// Value[T] represents a value that may or may not be set. This distinguishes
// between "not set" and "set to zero value", which is important when falling
// back to defaults.
//
// Reader[T] is an interface for reading values. Readers are composable and
// can be chained together using combinators like Or, Map, Bind, and Default.
//
// # Basic Usage
//
// Read a value from an environment variable with a default:
//
//	port, err := envconv.Read(ctx,
//	    envconv.Default(8080, envconv.IntFromString(envconv.Env("PORT"))),
//	)
//
// Try multiple sources in order:
//
//	apiKey, err := envconv.Read(ctx,
//	    envconv.Or(
//	        envconv.Env("API_KEY"),
//	        envconv.Env("LEGACY_API_KEY"),
//	    ),
//	)
//
// Parse a bracket delimited collection:
//
//	hosts, err := envconv.Read(ctx,
//	    envconv.CollectionFromString(envconv.Env("HOSTS")),
//	)
//
// # Defaults
//
// Default substitutes its value only when the underlying reader reports no
// value at all. The default is returned verbatim and is never passed through
// any conversion. A present raw value is always converted and any conversion
// failure is reported, never silently replaced by the default.
//
// # Error Handling
//
// Readers distinguish between three states:
//   - Value is set (returns Value with set=true)
//   - Value is not set (returns Value with set=false, no error)
//   - Error occurred (returns error)
//
// The Read function converts "not set" to ErrValueNotSet for convenience.
// Conversion failures are reported as ConversionError carrying the offending
// raw string.
package envconv
