package app

import (
	"bytes"
	"context"
	"flag"
	"path/filepath"
	"strings"
	"testing"

	"flames/internal/core"
	_ "flames/internal/sims/flame"
)

func TestBindParsesOverrides(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	err := fs.Parse([]string{"-sim", "flame-pcg", "-seed", "9", "-set", "width=32", "-set", " sampler = pcg ", "-v"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Sim != "flame-pcg" || cfg.Seed != 9 || !cfg.Verbose {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if got := cfg.SetString(); got != "sampler=pcg width=32" {
		t.Fatalf("SetString = %q", got)
	}
}

func TestBindRejectsMalformedSet(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(&bytes.Buffer{})
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-set", "width"}); err == nil {
		t.Fatalf("expected error for missing '='")
	}
}

func TestNewSimBuildsRegisteredSim(t *testing.T) {
	cfg := NewConfig()
	cfg.Set = map[string]string{"width": "24", "height": "16", "particles": "300"}
	sim, err := NewSim(cfg)
	if err != nil {
		t.Fatalf("NewSim: %v", err)
	}
	if sim.Size() != (core.Size{W: 24, H: 16}) {
		t.Fatalf("size %+v", sim.Size())
	}
	sim.Step()
	if len(sim.Frame()) != 24*16*core.Channels {
		t.Fatalf("frame length %d", len(sim.Frame()))
	}

	cfg.Sim = "nope"
	if _, err := NewSim(cfg); err == nil || !strings.Contains(err.Error(), "flame") {
		t.Fatalf("expected unknown-sim error listing names, got %v", err)
	}
	cfg.Sim = "flame"
	cfg.Set = map[string]string{"rate": "fast"}
	if _, err := NewSim(cfg); err == nil {
		t.Fatalf("expected config error")
	}
}

func TestSnapshotPath(t *testing.T) {
	got := SnapshotPath("out", "flame", 42)
	if got != filepath.Join("out", "flame-000042.png") {
		t.Fatalf("got %q", got)
	}
}

func TestNewLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	NewLogger(&buf, false).Debug("hidden")
	if buf.Len() != 0 {
		t.Fatalf("debug logged at info level: %q", buf.String())
	}
	if !NewLogger(&buf, true).Enabled(context.Background(), -4) {
		t.Fatalf("verbose logger should enable debug")
	}
}
