package app

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"
)

// Config represents the command-line parameters shared by the viewer and the
// headless renderer.
type Config struct {
	Sim   string
	Scale int
	TPS   int
	// FPS paces simulation frames independently of the ebiten tick rate.
	FPS       int
	Seed      int64
	HUDWidth  int
	Snapshots string
	Verbose   bool

	// Set holds sim configuration overrides given as -set key=value.
	Set map[string]string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:       "flame",
		Scale:     1,
		TPS:       60,
		FPS:       30,
		HUDWidth:  240,
		Snapshots: ".",
		Set:       map[string]string{},
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.IntVar(&c.FPS, "fps", c.FPS, "simulation frames per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset (0 uses the sim default)")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "HUD panel width in pixels (0 hides it)")
	fs.StringVar(&c.Snapshots, "snapshots", c.Snapshots, "directory for PNG snapshots")
	fs.BoolVar(&c.Verbose, "v", c.Verbose, "enable debug logging")
	fs.Func("set", "sim config override as key=value (repeatable)", c.parseSet)
}

func (c *Config) parseSet(v string) error {
	key, value, ok := strings.Cut(v, "=")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return fmt.Errorf("want key=value, got %q", v)
	}
	if c.Set == nil {
		c.Set = map[string]string{}
	}
	c.Set[key] = strings.TrimSpace(value)
	return nil
}

// SetString renders the overrides in sorted key=value form.
func (c *Config) SetString() string {
	keys := make([]string, 0, len(c.Set))
	for k := range c.Set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + "=" + c.Set[k]
	}
	return strings.Join(parts, " ")
}

// NewLogger returns a text logger writing to w at info level, or debug level
// when verbose is set.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
