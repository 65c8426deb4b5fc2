// Package btime sets a file's birth (creation) time on the platforms
// that allow changing it, and degrades to a documented no-op everywhere
// else.
//
// Archive extractors, backup restorers, and file synchronizers write file
// contents and then fix up metadata; modification and access times are
// settable everywhere, but birth time needs a different mechanism per
// platform. On Windows the creation time field is rewritten through a
// file handle opened for attribute access; on macOS the creation time
// attribute is set by path via setattrlist(2); other platforms expose no
// way to change a recorded birth time, so the call validates its
// arguments and succeeds without touching the file. The platform is
// chosen at build time through file build constraints, never at runtime.
//
// # Basic Usage
//
//	err := btime.Set("archive/photo.jpg", time.Unix(1577836800, 0))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// The primitive form takes whole seconds since the Unix epoch.
//	err = btime.SetUnix("archive/photo.jpg", 1577836800)
//
//	// Operate on a symlink itself rather than its target.
//	err = btime.Set(link, stamp, btime.WithNoFollow(true))
//
// Callers that need to know whether the write actually happened check
// [Supported]:
//
//	if !btime.Supported() {
//	    log.Println("birth times are immutable on this platform")
//	}
//
// # Error Handling
//
// Failures carry the operation and path; the native OS error number is
// recoverable with [Errno]:
//
//	err := btime.Set("missing.txt", stamp)
//	var pathErr *btime.PathError
//	if errors.As(err, &pathErr) {
//	    fmt.Printf("op=%s path=%s errno=%d\n", pathErr.Op, pathErr.Path, btime.Errno(err))
//	}
//
// # Batch Restore
//
// The manifest subpackage applies recorded birth times to whole trees,
// with optional glob filtering and content verification, and can derive
// a manifest from an archive's member metadata.
//
// # Legacy Interface
//
// [Btime] and [DecodePath] preserve the calling convention and the exact
// error message strings of the native binding this package replaces, for
// callers that still depend on them.
package btime
