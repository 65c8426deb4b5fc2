//go:build windows

package btime

import (
	"golang.org/x/sys/windows"
)

const supported = true

// setBirthTime rewrites the creation time field of the file at path.
// The handle is opened for attribute writes only, so file contents stay
// unlocked for concurrent readers and writers.
func setBirthTime(path string, seconds uint64, o *Options) error {
	lo, hi := UnixToFiletime(seconds)
	ft := windows.Filetime{LowDateTime: lo, HighDateTime: hi}

	pathp, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return &PathError{Op: "open", Path: path, Err: err}
	}

	// FILE_FLAG_BACKUP_SEMANTICS is required to open directories.
	flags := uint32(windows.FILE_FLAG_BACKUP_SEMANTICS)
	if o.NoFollow {
		flags |= windows.FILE_FLAG_OPEN_REPARSE_POINT
	}
	h, err := windows.CreateFile(pathp,
		windows.FILE_WRITE_ATTRIBUTES, windows.FILE_SHARE_WRITE, nil,
		windows.OPEN_EXISTING, flags, 0)
	if err != nil {
		return &PathError{Op: "open", Path: path, Err: err}
	}
	defer windows.Close(h)

	// Only the creation time field is set; access and write times are
	// left untouched.
	if err := windows.SetFileTime(h, &ft, nil, nil); err != nil {
		return &PathError{Op: "setfiletime", Path: path, Err: err}
	}
	return nil
}
