package index

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyPath is returned when an empty path is passed to Add or Inc.
	ErrEmptyPath = errors.New("empty path")
	// ErrNotFound indicates the path does not exist or is not a directory.
	ErrNotFound = errors.New("directory does not exist")
	// ErrInvalidEncoding indicates the resolved path is not valid UTF-8.
	ErrInvalidEncoding = errors.New("path contains invalid UTF-8 characters")
	// ErrNotRegistered is returned by Remove for paths absent from the index.
	ErrNotRegistered = errors.New("directory is not registered")

	ErrMalformedLine = errors.New("missing whitespace delimiter")
	ErrInvalidScore  = errors.New("invalid score")
	ErrDuplicatePath = errors.New("duplicate directory entry")
)

// DecodeError reports a format violation at a 1-based line of the index text.
type DecodeError struct {
	Line int
	Path string // set for ErrDuplicatePath
	Err  error
}

func (e *DecodeError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%v at line %d: %s", e.Err, e.Line, e.Path)
	}
	return fmt.Sprintf("%v at line %d", e.Err, e.Line)
}

func (e *DecodeError) Unwrap() error { return e.Err }
