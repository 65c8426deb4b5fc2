package btime

import "time"

// Set changes the birth (creation) time of the file at path to t.
//
// The time is truncated to whole seconds; times before the Unix epoch
// fail with ErrInvalidTimestamp. On platforms without a birth time
// mutation facility the call validates its arguments and reports success
// without touching the file, see Supported.
func Set(path string, t time.Time, opts ...Option) error {
	if err := validatePath(path); err != nil {
		return err
	}
	sec := t.Unix()
	if sec < 0 {
		return &PathError{Op: "btime", Path: path, Err: ErrInvalidTimestamp}
	}
	return setBirthTime(path, uint64(sec), applyOptions(opts))
}

// SetUnix changes the birth (creation) time of the file at path to the
// given number of whole seconds since the Unix epoch. It is the primitive
// behind Set; there is no upper bound on seconds beyond the integer width,
// far-future values are left to the filesystem to accept or refuse.
func SetUnix(path string, seconds uint64, opts ...Option) error {
	if err := validatePath(path); err != nil {
		return err
	}
	return setBirthTime(path, seconds, applyOptions(opts))
}

// Supported reports whether this build target can change file birth times.
// Windows and macOS can; everywhere else Set and SetUnix are deliberate
// no-ops so that portable callers need no build tags of their own.
func Supported() bool {
	return supported
}
