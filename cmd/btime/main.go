// Command btime stamps file birth times from the command line.
//
// It sets single files, replays a JSON manifest over a restored tree,
// stamps an extracted tree from the archive's own metadata, or watches a
// directory and stamps files as they appear. Settings come from
// BEAVER_BTIME_* environment variables or a .env file.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/matu6968/open-btime"
	"github.com/matu6968/open-btime/manifest"
)

const usage = `usage: btime <command> [arguments]

Commands:
  set <path> <time>   set one file's birth time (unix seconds or a formatted time)
  apply [manifest]    apply a JSON manifest of recorded birth times under the root
  stamp <archive>     stamp an extracted tree from the archive's member metadata
  watch [manifest]    stamp manifest entries as files appear under the root

The root directory, entry filter, and other settings come from
BEAVER_BTIME_* environment variables or a .env file.
`

func main() {
	// A missing .env file is fine; settings may come from the real
	// environment.
	_ = godotenv.Load()

	cfg, err := getConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "btime: config:", err)
		os.Exit(2)
	}

	log, err := newLogger(cfg.Debug)
	if err != nil {
		fmt.Fprintln(os.Stderr, "btime: logger:", err)
		os.Exit(2)
	}
	defer func() { _ = log.Sync() }()

	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()
	args := flag.Args()
	if len(args) < 1 {
		flag.Usage()
		os.Exit(2)
	}

	if err := checkStrict(cfg); err != nil {
		log.Errorw("refusing to run", "os", runtime.GOOS, zap.Error(err))
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	stop := catchInterruptSignal(cancel)
	defer stop()

	switch args[0] {
	case "set":
		err = runSet(cfg, args[1:])
	case "apply":
		err = runApply(ctx, log, cfg, args[1:])
	case "stamp":
		err = runStamp(ctx, log, cfg, args[1:])
	case "watch":
		err = runWatch(ctx, log, cfg, args[1:])
	default:
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		log.Errorw("command failed", "command", args[0], zap.Error(err))
		os.Exit(1)
	}
}

func newLogger(debug bool) (*zap.SugaredLogger, error) {
	if debug {
		l, err := zap.NewDevelopment()
		if err != nil {
			return nil, err
		}
		return l.Sugar(), nil
	}
	l, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}
	return l.Sugar(), nil
}

// checkStrict refuses no-op runs when the configuration demands real
// writes.
func checkStrict(cfg *Config) error {
	if cfg.Strict && !btime.Supported() {
		return fmt.Errorf("%w: birth times are immutable on %s", btime.ErrNotSupported, runtime.GOOS)
	}
	return nil
}

// catchInterruptSignal cancels the context when SIGINT or SIGTERM
// arrives, so manifest runs stop between entries.
func catchInterruptSignal(cancel context.CancelFunc) (stopSignal func()) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigs
		cancel()
	}()
	return func() {
		signal.Stop(sigs)
	}
}

func runSet(cfg *Config, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: btime set <path> <time>")
	}
	path, stamp := args[0], args[1]
	opts := []btime.Option{btime.WithNoFollow(cfg.NoFollow)}

	if sec, err := strconv.ParseUint(stamp, 10, 64); err == nil {
		return btime.SetUnix(path, sec, opts...)
	}
	t, err := time.Parse(cfg.timeLayout(), stamp)
	if err != nil {
		return fmt.Errorf("parse time %q: %w", stamp, err)
	}
	return btime.Set(path, t, opts...)
}

func runApply(ctx context.Context, log *zap.SugaredLogger, cfg *Config, args []string) error {
	path := cfg.Manifest
	if len(args) > 0 {
		path = args[0]
	}
	m, err := manifest.LoadFile(path)
	if err != nil {
		return err
	}
	log.Infow("applying manifest", "manifest", path, "entries", len(m.Entries), "root", cfg.Root)

	res, err := m.Apply(ctx, cfg.Root, applyOptions(cfg)...)
	if res != nil {
		logResult(log, res)
	}
	return err
}

func runStamp(ctx context.Context, log *zap.SugaredLogger, cfg *Config, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: btime stamp <archive>")
	}
	m, err := manifest.FromArchive(ctx, args[0])
	if err != nil {
		return err
	}
	log.Infow("stamping from archive", "archive", args[0], "entries", len(m.Entries), "root", cfg.Root)

	res, err := m.Apply(ctx, cfg.Root, applyOptions(cfg)...)
	if res != nil {
		logResult(log, res)
	}
	return err
}

func applyOptions(cfg *Config) []manifest.Option {
	opts := []manifest.Option{
		manifest.WithVerify(cfg.Verify),
		manifest.WithNoFollow(cfg.NoFollow),
	}
	if cfg.Filter != "" {
		opts = append(opts, manifest.WithFilter(cfg.Filter))
	}
	return opts
}

func logResult(log *zap.SugaredLogger, res *manifest.Result) {
	for _, f := range res.Failures {
		log.Warnw("entry not applied", "path", f.Path, zap.Error(f.Err))
	}
	log.Infow("done", "applied", res.Applied, "skipped", res.Skipped, "failed", len(res.Failures))
}
