//go:build darwin

package btime

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

const supported = true

// setBirthTime rewrites the creation time attribute of the file at path
// via setattrlist(2). No handle is opened; the call addresses the file by
// path alone.
func setBirthTime(path string, seconds uint64, o *Options) error {
	// Select exactly one common attribute: creation time. The kernel
	// interprets the value buffer according to this bitmap.
	attrs := unix.Attrlist{
		Bitmapcount: unix.ATTR_BIT_MAP_COUNT,
		Commonattr:  unix.ATTR_CMN_CRTIME,
	}

	// The value record is the raw bytes of a single timespec. Field order
	// and width are the wire contract of the call, not a hint.
	ts := unix.Timespec{Sec: int64(seconds), Nsec: 0}
	buf := unsafe.Slice((*byte)(unsafe.Pointer(&ts)), unsafe.Sizeof(ts))

	var options uint32
	if o.NoFollow {
		options = unix.FSOPT_NOFOLLOW
	}
	if err := unix.Setattrlist(path, &attrs, buf, int(options)); err != nil {
		return &PathError{Op: "setattrlist", Path: path, Err: err}
	}
	return nil
}
