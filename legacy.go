package btime

import (
	"fmt"
	"math"
)

// Btime applies a birth time using the calling convention of the native
// binding this package replaces: a raw path buffer and a number of
// seconds, with a numeric zero returned on success. New code should call
// Set or SetUnix instead.
//
// Fewer than two arguments, or arguments of the wrong type, fail with
// ErrUsage before any filesystem interaction. Negative or fractional
// seconds fail with ErrInvalidTimestamp rather than being silently
// truncated the way the old binding did. Extra arguments are ignored.
func Btime(args ...any) (int, error) {
	if len(args) < 2 {
		return 0, ErrUsage
	}
	buf, ok := args[0].([]byte)
	if !ok {
		return 0, ErrUsage
	}
	seconds, err := legacySeconds(args[1])
	if err != nil {
		return 0, err
	}
	path, err := DecodePath(buf)
	if err != nil {
		return 0, err
	}
	if err := SetUnix(path, seconds); err != nil {
		return 0, &utimesError{code: Errno(err), path: path, err: err}
	}
	return 0, nil
}

// legacySeconds coerces the second legacy argument into whole seconds.
// The old binding took any number and truncated it to an unsigned 64-bit
// value; here out-of-range values are rejected instead.
func legacySeconds(v any) (uint64, error) {
	switch n := v.(type) {
	case float64:
		if n < 0 || n != math.Trunc(n) || n >= 1<<64 {
			return 0, fmt.Errorf("%w: %v", ErrInvalidTimestamp, n)
		}
		return uint64(n), nil
	case int:
		if n < 0 {
			return 0, fmt.Errorf("%w: %d", ErrInvalidTimestamp, n)
		}
		return uint64(n), nil
	case int64:
		if n < 0 {
			return 0, fmt.Errorf("%w: %d", ErrInvalidTimestamp, n)
		}
		return uint64(n), nil
	case uint64:
		return n, nil
	default:
		return 0, ErrUsage
	}
}

// utimesError renders a failure in the exact message shape of the native
// binding, "(<code>) utimes(<path>)", while keeping the underlying error
// chain reachable through Unwrap.
type utimesError struct {
	code int
	path string
	err  error
}

func (e *utimesError) Error() string {
	return fmt.Sprintf("(%d) utimes(%s)", e.code, e.path)
}

func (e *utimesError) Unwrap() error {
	return e.err
}
