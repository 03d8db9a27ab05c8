// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package envconv

import (
	"fmt"
	"io/fs"

	"github.com/z5labs/envconv/internal/try"

	"github.com/subosito/gotenv"
)

// InvalidEnvFileError occurs if the env file contains lines which are
// not valid dotenv formatted pairs.
type InvalidEnvFileError struct {
	cause error
}

// Error implements the error interface.
func (e InvalidEnvFileError) Error() string {
	return fmt.Sprintf("invalid env file: %s", e.cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e InvalidEnvFileError) Unwrap() error {
	return e.cause
}

// FileLookup parses a dotenv formatted file from fsys and returns a
// LookupFunc over the variables it defines. The returned LookupFunc can
// be used with the Lookup option to resolve variables from the file
// instead of the process environment.
func FileLookup(fsys fs.FS, path string) (lookup LookupFunc, err error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		try.Close(&err, f)
		if err != nil {
			lookup = nil
		}
	}()

	env, err := gotenv.StrictParse(f)
	if err != nil {
		return nil, InvalidEnvFileError{cause: err}
	}

	return func(name string) (string, bool) {
		raw, ok := env[name]
		return raw, ok
	}, nil
}
