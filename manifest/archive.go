package manifest

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mholt/archives"
)

// FromArchive derives a manifest from an archive's member metadata. Each
// regular file member becomes an entry whose birth time is the member's
// recorded modification time, so a tree extracted from the archive can be
// stamped to match. The archive is only read; members without a usable
// timestamp are left out.
//
// Any format the archives package can identify and walk is accepted:
// zip, tar and its compressed variants, rar, 7z, and others.
func FromArchive(ctx context.Context, path string) (*Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	format, input, err := archives.Identify(ctx, filepath.Base(path), f)
	if errors.Is(err, archives.NoMatch) {
		return nil, fmt.Errorf("%s: unrecognized archive format", path)
	} else if err != nil {
		return nil, err
	}

	extractor, ok := format.(archives.Extractor)
	if !ok {
		return nil, fmt.Errorf("%s: format %s has no file listing", path, format.Extension())
	}

	m := &Manifest{}
	handler := func(ctx context.Context, file archives.FileInfo) error {
		if file.IsDir() {
			return nil
		}
		mod := file.ModTime()
		if mod.IsZero() || mod.Unix() < 0 {
			return nil
		}
		m.Entries = append(m.Entries, Entry{
			Path:  file.NameInArchive,
			Btime: uint64(mod.Unix()),
		})
		return nil
	}
	if err := extractor.Extract(ctx, input, handler); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return m, nil
}
