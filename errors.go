package diffx

import (
	"errors"

	"github.com/boostgo/errorx"
)

// ErrIO is the single failure kind of the package. Every filesystem problem -
// a missing path, a permission error, a failed directory listing or a file
// that does not decode as text - is returned as ErrIO carrying the offending
// path and the underlying cause. Failures are never retried and never produce
// partial results.
var ErrIO = errorx.New("diffx.io")

// errNotText is the cause attached to ErrIO when file content is not valid
// UTF-8 text.
var errNotText = errors.New("file content is not valid UTF-8 text")

type pathErrorContext struct {
	Path  string `json:"path"`
	Error error  `json:"error"`
}

func newListDirectoryError(path string, err error) error {
	return ErrIO.
		SetError(err).
		SetData(pathErrorContext{
			Path:  path,
			Error: err,
		})
}

func newReadFileError(path string, err error) error {
	return ErrIO.
		SetError(err).
		SetData(pathErrorContext{
			Path:  path,
			Error: err,
		})
}

func newNotTextError(path string) error {
	return ErrIO.
		SetError(errNotText).
		SetData(pathErrorContext{
			Path:  path,
			Error: errNotText,
		})
}
