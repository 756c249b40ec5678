package flame

import (
	"errors"
	"fmt"
	"strconv"

	"flames/internal/animate"
	"flames/internal/flame"
)

// Config controls the flame simulation.
type Config struct {
	// Width and Height size the histogram grids and the output frame.
	Width  int
	Height int

	Particles int
	Seed      int64

	// Rate is the per-frame smoothing factor of the parameter animation.
	Rate float64
	// Threshold is the divergence below which a new target is drawn.
	Threshold float64
	// TimeStep advances the camera path each frame.
	TimeStep float64
	// FrameSteps is the number of particle passes splatted per frame.
	FrameSteps int

	Sampler flame.Sampler
	// Workers bounds parallelism; zero uses one worker per CPU.
	Workers int
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:      512,
		Height:     512,
		Particles:  1_000_000,
		Seed:       1337,
		Rate:       0.01,
		Threshold:  animate.DefaultThreshold,
		TimeStep:   0.005,
		FrameSteps: 1,
		Sampler:    flame.SamplerHash,
	}
}

// FromMap populates a default config from a string map (flag-style key/value
// pairs).
func FromMap(cfg map[string]string) (Config, error) {
	return DefaultConfig().Apply(cfg)
}

// Apply overrides fields named in cfg. Malformed values are reported together
// and leave the field unchanged.
func (c Config) Apply(cfg map[string]string) (Config, error) {
	var errs []error
	setInt := func(key string, dst *int) {
		if v, ok := cfg[key]; ok {
			parsed, err := strconv.Atoi(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", key, err))
				return
			}
			*dst = parsed
		}
	}
	setFloat := func(key string, dst *float64) {
		if v, ok := cfg[key]; ok {
			parsed, err := strconv.ParseFloat(v, 64)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", key, err))
				return
			}
			*dst = parsed
		}
	}

	setInt("width", &c.Width)
	setInt("height", &c.Height)
	setInt("particles", &c.Particles)
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		} else {
			errs = append(errs, fmt.Errorf("seed: %w", err))
		}
	}
	setFloat("rate", &c.Rate)
	setFloat("threshold", &c.Threshold)
	setFloat("time_step", &c.TimeStep)
	setInt("frame_steps", &c.FrameSteps)
	setInt("workers", &c.Workers)
	if v, ok := cfg["sampler"]; ok {
		if s, err := flame.ParseSampler(v); err == nil {
			c.Sampler = s
		} else {
			errs = append(errs, err)
		}
	}
	return c, errors.Join(errs...)
}

// Validate reports values the simulation cannot run with.
func (c Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("grid size %dx%d must be positive", c.Width, c.Height))
	}
	if c.Particles <= 0 {
		errs = append(errs, fmt.Errorf("particles = %d, must be positive", c.Particles))
	}
	if !(c.Rate > 0 && c.Rate <= 1) {
		errs = append(errs, fmt.Errorf("rate = %v, must be in (0, 1]", c.Rate))
	}
	if c.Threshold < 0 {
		errs = append(errs, fmt.Errorf("threshold = %v, must not be negative", c.Threshold))
	}
	if c.TimeStep < 0 {
		errs = append(errs, fmt.Errorf("time_step = %v, must not be negative", c.TimeStep))
	}
	if c.FrameSteps < 1 {
		errs = append(errs, fmt.Errorf("frame_steps = %d, must be at least 1", c.FrameSteps))
	}
	if c.Workers < 0 {
		errs = append(errs, fmt.Errorf("workers = %d, must not be negative", c.Workers))
	}
	return errors.Join(errs...)
}
