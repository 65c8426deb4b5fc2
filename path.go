package btime

import (
	"bytes"
	"strings"
	"unicode/utf8"
)

// DecodePath converts a raw path buffer into a path string. The buffer is
// read up to the first NUL byte, or in full when no NUL is present; trailing
// bytes after the terminator are ignored. The bytes before the terminator
// must form valid UTF-8. Decoding never repairs or substitutes characters;
// a malformed buffer fails with ErrInvalidEncoding.
func DecodePath(buf []byte) (string, error) {
	if i := bytes.IndexByte(buf, 0); i >= 0 {
		buf = buf[:i]
	}
	if !utf8.Valid(buf) {
		return "", ErrInvalidEncoding
	}
	return string(buf), nil
}

// validatePath enforces the path invariants shared by every platform:
// non-empty and free of embedded NUL bytes. A NUL would silently truncate
// the path at the system call boundary, so it is rejected up front instead
// of being passed through.
func validatePath(path string) error {
	if path == "" || strings.IndexByte(path, 0) >= 0 {
		return &PathError{Op: "btime", Path: path, Err: ErrInvalidPath}
	}
	return nil
}
