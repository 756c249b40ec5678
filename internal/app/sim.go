package app

import (
	"fmt"
	"path/filepath"

	"flames/internal/core"
)

// NewSim builds the configured simulation and resets it with the configured
// seed.
func NewSim(cfg *Config) (core.Sim, error) {
	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		return nil, fmt.Errorf("unknown sim %q (available: %v)", cfg.Sim, core.SimNames())
	}
	sim, err := factory(cfg.Set)
	if err != nil {
		return nil, fmt.Errorf("sim %s: %w", cfg.Sim, err)
	}
	sim.Reset(cfg.Seed)
	return sim, nil
}

// SnapshotPath names the PNG for frame n of sim inside dir.
func SnapshotPath(dir, sim string, n int64) string {
	return filepath.Join(dir, fmt.Sprintf("%s-%06d.png", sim, n))
}
