package apitype

import (
	"errors"
	"fmt"
)

var (
	ErrFileNotFound      = errors.New("no such file")
	ErrNotReadable       = errors.New("not readable")
	ErrNotWritable       = errors.New("not writable")
	ErrUnsupportedFormat = errors.New("not supported type of image")
	ErrResampleFailed    = errors.New("resample failed")
)

// ResizeError carries the file and detected format of a failed request.
// Err is one of the Err* kinds above, possibly wrapping the cause.
type ResizeError struct {
	Op     string
	Path   string
	Format Format
	Err    error
}

func NewResizeError(op string, path string, format Format, err error) *ResizeError {
	return &ResizeError{
		Op:     op,
		Path:   path,
		Format: format,
		Err:    err,
	}
}

func (s *ResizeError) Error() string {
	if s.Format == UnknownFormat {
		return fmt.Sprintf("%s %s: %s", s.Op, s.Path, s.Err)
	}
	return fmt.Sprintf("%s %s (%s): %s", s.Op, s.Path, s.Format, s.Err)
}

func (s *ResizeError) Unwrap() error {
	return s.Err
}

// KindOf returns the error kind err wraps or nil if it is none of them.
func KindOf(err error) error {
	for _, kind := range []error{ErrFileNotFound, ErrNotReadable, ErrNotWritable, ErrUnsupportedFormat, ErrResampleFailed} {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}
