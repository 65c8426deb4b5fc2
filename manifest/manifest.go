// Package manifest applies recorded birth times to file trees.
//
// A manifest is a JSON list of relative paths and timestamps, typically
// produced next to a backup or derived from an archive with FromArchive.
// Apply walks the entries and stamps each file under a root directory,
// collecting per-file failures instead of stopping at the first one.
package manifest

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/gobwas/glob"

	"github.com/matu6968/open-btime"
)

// ErrChecksumMismatch reports that a file's current content does not match
// the hash recorded for it, so its birth time was not changed.
var ErrChecksumMismatch = errors.New("content checksum mismatch")

// Entry records the birth time of a single file. Paths are relative,
// slash-separated, and resolved against the root passed to Apply. XXH64
// optionally carries a hex xxhash-64 digest of the file content for
// verification before stamping.
type Entry struct {
	Path  string `json:"path"`
	Btime uint64 `json:"btime"`
	XXH64 string `json:"xxh64,omitempty"`
}

// Manifest is an ordered list of entries applied relative to a root
// directory.
type Manifest struct {
	Entries []Entry `json:"entries"`
}

// Load parses a JSON manifest from r.
func Load(r io.Reader) (*Manifest, error) {
	var m Manifest
	if err := json.NewDecoder(r).Decode(&m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	return &m, nil
}

// LoadFile reads and parses a JSON manifest from path.
func LoadFile(path string) (*Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

// Option represents a configuration option for Apply
type Option func(*applyOptions)

type applyOptions struct {
	filter   string
	verify   bool
	noFollow bool
}

// WithFilter restricts application to entries whose manifest path matches
// the glob pattern, for example "**/*.jpg". An invalid pattern fails the
// whole run.
func WithFilter(pattern string) Option {
	return func(o *applyOptions) {
		o.filter = pattern
	}
}

// WithVerify refuses to stamp entries whose current content hash differs
// from the recorded one. Entries without a recorded hash are stamped
// unconditionally.
func WithVerify(verify bool) Option {
	return func(o *applyOptions) {
		o.verify = verify
	}
}

// WithNoFollow stamps symbolic links themselves instead of their targets
func WithNoFollow(noFollow bool) Option {
	return func(o *applyOptions) {
		o.noFollow = noFollow
	}
}

// Failure records one entry that could not be applied
type Failure struct {
	Path string
	Err  error
}

// Result summarizes an Apply run. Applied counts stamped entries, Skipped
// counts entries excluded by the filter, and Failures holds the entries
// that were selected but could not be stamped.
type Result struct {
	Applied  int
	Skipped  int
	Failures []Failure
}

// Apply stamps every selected entry under root. Per-entry failures land in
// the result rather than aborting the run; the returned error reports
// problems with the run itself, such as an invalid filter pattern or a
// cancelled context. Entries are never retried, retry policy belongs to
// the caller.
func (m *Manifest) Apply(ctx context.Context, root string, opts ...Option) (*Result, error) {
	o := &applyOptions{}
	for _, opt := range opts {
		opt(o)
	}

	var matcher glob.Glob
	if o.filter != "" {
		g, err := glob.Compile(o.filter, '/')
		if err != nil {
			return nil, fmt.Errorf("compile filter %q: %w", o.filter, err)
		}
		matcher = g
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	res := &Result{}
	for _, entry := range m.Entries {
		select {
		case <-ctx.Done():
			return res, ctx.Err()
		default:
		}

		if matcher != nil && !matcher.Match(entry.Path) {
			res.Skipped++
			continue
		}

		full := filepath.Join(absRoot, filepath.FromSlash(entry.Path))
		if !isPathUnderRoot(absRoot, full) {
			res.Failures = append(res.Failures, Failure{Path: entry.Path, Err: btime.ErrInvalidPath})
			continue
		}

		if o.verify && entry.XXH64 != "" {
			sum, err := HashFile(full)
			if err != nil {
				res.Failures = append(res.Failures, Failure{Path: entry.Path, Err: err})
				continue
			}
			if !strings.EqualFold(sum, entry.XXH64) {
				res.Failures = append(res.Failures, Failure{Path: entry.Path, Err: ErrChecksumMismatch})
				continue
			}
		}

		if err := btime.SetUnix(full, entry.Btime, btime.WithNoFollow(o.noFollow)); err != nil {
			res.Failures = append(res.Failures, Failure{Path: entry.Path, Err: err})
			continue
		}
		res.Applied++
	}
	return res, nil
}

// HashFile computes the hex xxhash-64 digest of a file's content, the
// format Entry.XXH64 records.
func HashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := xxhash.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("failed to hash %s: %w", path, err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// isPathUnderRoot reports whether path stays inside root once resolved.
// Manifest entries are untrusted input; one with enough ".." segments
// would otherwise escape the tree being restored.
func isPathUnderRoot(root, path string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	return !filepath.IsAbs(rel) && rel != ".." &&
		!strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
