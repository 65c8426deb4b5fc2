//go:build !windows && !darwin

package btime

const supported = false

// setBirthTime reports success without touching the file. Filesystems on
// these targets record a birth time at creation, if at all, and expose no
// interface for changing it afterwards. Callers that must know whether the
// write actually happened consult Supported.
func setBirthTime(path string, seconds uint64, o *Options) error {
	return nil
}
