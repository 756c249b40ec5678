// Command flame-render renders flame frames to PNG files without a window.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"flames/internal/app"
	"flames/internal/core"
	"flames/internal/render"
	_ "flames/internal/sims/flame"
)

// advancer is implemented by sims that can stop mid-frame.
type advancer interface {
	Advance(ctx context.Context) error
}

type options struct {
	frames int
	every  int
	out    string
	raw    bool
}

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	opts := options{frames: 300, every: 0}
	flag.IntVar(&opts.frames, "frames", opts.frames, "number of frames to render")
	flag.IntVar(&opts.every, "every", opts.every, "also save every N-th frame (0 saves only the last)")
	flag.StringVar(&opts.out, "out", "", "output directory (defaults to -snapshots)")
	flag.BoolVar(&opts.raw, "raw", false, "also write unclamped float frames (.flr) next to each PNG")
	flag.Parse()

	logger := app.NewLogger(os.Stderr, cfg.Verbose)
	core.SetLogger(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, opts); err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Warn("interrupted")
			os.Exit(130)
		}
		fmt.Fprintln(os.Stderr, "flame-render:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *app.Config, opts options) error {
	if opts.frames <= 0 {
		return fmt.Errorf("frames = %d, must be positive", opts.frames)
	}
	dir := opts.out
	if dir == "" {
		dir = cfg.Snapshots
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	sim, err := app.NewSim(cfg)
	if err != nil {
		return err
	}
	log := core.Logger()
	log.Info("rendering", "sim", sim.Name(), "frames", opts.frames, "size", fmt.Sprintf("%dx%d", sim.Size().W, sim.Size().H), "set", cfg.SetString())

	start := time.Now()
	for n := 1; n <= opts.frames; n++ {
		if err := step(ctx, sim); err != nil {
			return err
		}
		if n == opts.frames || (opts.every > 0 && n%opts.every == 0) {
			if err := save(sim, dir, int64(n), opts.raw); err != nil {
				return err
			}
		}
	}
	log.Info("done", "frames", opts.frames, "elapsed", time.Since(start).Round(time.Millisecond), "dir", filepath.Clean(dir))
	return nil
}

func step(ctx context.Context, sim core.Sim) error {
	if a, ok := sim.(advancer); ok {
		return a.Advance(ctx)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	sim.Step()
	return nil
}

func save(sim core.Sim, dir string, n int64, raw bool) error {
	size := sim.Size()
	path := app.SnapshotPath(dir, sim.Name(), n)
	if err := render.SavePNG(path, sim.Frame(), size.W, size.H); err != nil {
		return err
	}
	if raw {
		rawPath := strings.TrimSuffix(path, ".png") + ".flr"
		if err := render.SaveRaw(rawPath, sim.Frame(), size.W, size.H); err != nil {
			return err
		}
	}
	core.Logger().Info("saved", "path", path, "raw", raw)
	return nil
}
