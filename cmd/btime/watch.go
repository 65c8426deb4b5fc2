package main

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/matu6968/open-btime"
	"github.com/matu6968/open-btime/manifest"
)

// runWatch stamps manifest entries as the files appear under the root.
// Restore tools that stream files into place get their birth times set
// the moment each file lands instead of in a second pass.
func runWatch(ctx context.Context, log *zap.SugaredLogger, cfg *Config, args []string) error {
	path := cfg.Manifest
	if len(args) > 0 {
		path = args[0]
	}
	m, err := manifest.LoadFile(path)
	if err != nil {
		return err
	}

	absRoot, err := filepath.Abs(cfg.Root)
	if err != nil {
		return err
	}
	stamps := make(map[string]uint64, len(m.Entries))
	for _, e := range m.Entries {
		stamps[filepath.Join(absRoot, filepath.FromSlash(e.Path))] = e.Btime
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = w.Close() }()

	if err := addRecursive(w, absRoot); err != nil {
		return err
	}
	log.Infow("watching", "root", absRoot, "entries", len(stamps))

	for {
		select {
		case <-ctx.Done():
			log.Infow("watch stopped")
			return nil
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Create) {
				continue
			}
			name := filepath.Clean(event.Name)
			if fi, err := os.Stat(name); err == nil && fi.IsDir() {
				// New directories may receive watched files later.
				if err := addRecursive(w, name); err != nil {
					log.Warnw("watch directory", "path", name, zap.Error(err))
				}
				continue
			}
			sec, ok := stamps[name]
			if !ok {
				continue
			}
			if err := btime.SetUnix(name, sec, btime.WithNoFollow(cfg.NoFollow)); err != nil {
				log.Warnw("stamp failed", "path", name, zap.Error(err))
				continue
			}
			log.Infow("stamped", "path", name, "btime", sec)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Warnw("watch error", zap.Error(err))
		}
	}
}

// addRecursive watches dir and every directory below it. fsnotify
// watches are not recursive on any platform we target.
func addRecursive(w *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return w.Add(path)
		}
		return nil
	})
}
