package btime

import (
	"errors"
	"fmt"
	"syscall"
)

// Errors reported by birth time operations. The usage and encoding
// messages are carried verbatim from the native binding this package
// replaces; downstream tooling pattern-matches on them.
var (
	ErrUsage            = errors.New("bad arguments, expected: (buffer path, seconds btime)")
	ErrInvalidEncoding  = errors.New("Invalid UTF-8 in path")
	ErrInvalidPath      = errors.New("invalid path")
	ErrInvalidTimestamp = errors.New("invalid timestamp")
	ErrNotSupported     = errors.New("operation not supported")
)

// PathError records an error and the operation and file path that caused it
type PathError struct {
	Op   string
	Path string
	Err  error
}

// Error implements the error interface
func (e *PathError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error
func (e *PathError) Unwrap() error {
	return e.Err
}

// Errno extracts the operating system error number from an error returned
// by this package. It returns -1 when the error carries no native code,
// such as validation failures or the no-op platform.
func Errno(err error) int {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return int(errno)
	}
	return -1
}

// IsInvalidPath reports whether an error indicates that a path was empty
// or contained an embedded NUL byte
func IsInvalidPath(err error) bool {
	return errors.Is(err, ErrInvalidPath)
}

// IsInvalidEncoding reports whether an error indicates that a path buffer
// was not valid UTF-8
func IsInvalidEncoding(err error) bool {
	return errors.Is(err, ErrInvalidEncoding)
}

// IsNotSupported reports whether an error indicates that the platform
// cannot change file birth times
func IsNotSupported(err error) bool {
	return errors.Is(err, ErrNotSupported)
}
