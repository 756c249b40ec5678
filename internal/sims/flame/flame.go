// Package flame runs the animated fractal flame as a core.Sim: each Step
// advances the parameter animation, traces every particle through the chaos
// game, splats the projected samples, filters the histogram and tone-maps it.
package flame

import (
	"context"
	"fmt"

	"flames/internal/animate"
	"flames/internal/camera"
	"flames/internal/core"
	"flames/internal/flame"
	"flames/internal/histogram"
)

// Flame is the fractal flame simulation.
type Flame struct {
	cfg  Config
	name string

	rng    *core.RNG
	anim   *animate.Animator
	engine *flame.Engine
	hist   *histogram.Histogram

	// seeds are drawn once per Reset and reused unchanged every frame.
	seeds   []float32
	samples []flame.Sample
	points  []histogram.Point
	frame   []float32

	tick       int64
	divergence float64
	deposits   int
	fallbacks  int
}

// New returns a flame simulation. Call Reset before the first Step.
func New(cfg Config) (*Flame, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("flame config: %w", err)
	}
	f := &Flame{
		cfg:     cfg,
		name:    "flame",
		engine:  flame.NewEngine(cfg.Workers, cfg.Sampler),
		hist:    histogram.New(cfg.Width, cfg.Height, cfg.Workers),
		seeds:   make([]float32, cfg.Particles),
		samples: make([]flame.Sample, cfg.Particles),
		points:  make([]histogram.Point, 0, cfg.Particles),
		frame:   make([]float32, cfg.Width*cfg.Height*core.Channels),
	}
	if cfg.Sampler != flame.SamplerHash {
		f.name = "flame-" + cfg.Sampler.String()
	}
	f.Reset(0)
	return f, nil
}

// Name returns the simulation identifier.
func (f *Flame) Name() string { return f.name }

// Size reports the frame dimensions.
func (f *Flame) Size() core.Size { return core.Size{W: f.cfg.Width, H: f.cfg.Height} }

// Config returns the active configuration.
func (f *Flame) Config() Config { return f.cfg }

// Frame exposes the latest tone-mapped RGBA frame.
func (f *Flame) Frame() []float32 { return f.frame }

// Animator exposes the parameter animation.
func (f *Flame) Animator() *animate.Animator { return f.anim }

// Tick returns the number of completed frames since Reset.
func (f *Flame) Tick() int64 { return f.tick }

// Divergence returns the animator divergence of the latest frame.
func (f *Flame) Divergence() float64 { return f.divergence }

// Deposits returns how many samples landed on the grid in the latest frame.
func (f *Flame) Deposits() int { return f.deposits }

// Density copies the current sample-count plane into dst, reallocating when
// dst is too small.
func (f *Flame) Density(dst []float32) []float32 {
	cells := f.hist.Current().Cells()
	n := len(cells) / core.Channels
	if cap(dst) < n {
		dst = make([]float32, n)
	}
	dst = dst[:n]
	for i := range dst {
		dst[i] = cells[i*core.Channels+3]
	}
	return dst
}

// Reset redraws particle seeds, restarts the animation and clears both
// histogram grids. A zero seed uses the configured seed.
func (f *Flame) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = f.cfg.Seed
	}
	f.rng = core.NewRNG(effective)
	f.rng.FillUniform(f.seeds)
	f.anim = animate.New(f.rng)
	f.anim.Threshold = f.cfg.Threshold
	f.hist.Clear()
	clear(f.frame)
	f.tick = 0
	f.divergence = 0
	f.deposits = 0
	core.Logger().Info("flame: reset", "seed", effective, "particles", len(f.seeds), "sampler", f.cfg.Sampler.String())
}

// Step advances one frame. Failures are logged; see Advance.
func (f *Flame) Step() {
	if err := f.Advance(context.Background()); err != nil {
		core.Logger().Error("flame: step failed", "tick", f.tick, "err", err)
	}
}

// Advance renders one frame. The frame is committed (buffer flip and tone
// map) only when every particle pass finished; a canceled context leaves the
// previous frame in place.
func (f *Flame) Advance(ctx context.Context) error {
	t := f.cfg.TimeStep * float64(f.tick)
	eye, center := camera.At(t)
	proj := camera.NewProjector(eye, center, f.cfg.Width, f.cfg.Height)

	f.divergence = f.anim.Advance(f.cfg.Rate)
	fs, err := f.anim.FunctionSet()
	if err != nil {
		f.fallbacks++
		core.Logger().Warn("flame: using uniform weights", "err", err, "count", f.fallbacks)
		fs = &flame.FunctionSet{Functions: f.anim.Functions(), Thresholds: flame.UniformThresholds()}
	}

	mixRate := float32(f.anim.State.MixRate)
	f.deposits = 0
	for pass := 0; pass < f.cfg.FrameSteps; pass++ {
		global := f.rng.Float32()
		if err := f.engine.Run(ctx, f.seeds, fs, global, mixRate, f.samples); err != nil {
			return fmt.Errorf("flame: frame %d pass %d: %w", f.tick, pass, err)
		}
		f.points = proj.ProjectAll(f.samples, f.points, f.cfg.Workers)
		f.hist.Splat(f.points)
		f.deposits += len(f.points)
	}

	f.hist.Filter(float32(f.anim.State.Decay))
	if err := f.hist.ToneMap(float32(f.anim.State.Brightness), f.frame); err != nil {
		return fmt.Errorf("flame: frame %d: %w", f.tick, err)
	}
	f.tick++
	core.Logger().Debug("flame: frame", "tick", f.tick, "divergence", f.divergence, "deposits", f.deposits)
	return nil
}

func init() {
	core.Register("flame", func(cfg map[string]string) (core.Sim, error) {
		c, err := FromMap(cfg)
		if err != nil {
			return nil, err
		}
		return newSim(c)
	})
	core.Register("flame-pcg", func(cfg map[string]string) (core.Sim, error) {
		base := DefaultConfig()
		base.Sampler = flame.SamplerPCG
		c, err := base.Apply(cfg)
		if err != nil {
			return nil, err
		}
		return newSim(c)
	})
}

func newSim(c Config) (core.Sim, error) {
	f, err := New(c)
	if err != nil {
		return nil, err
	}
	return f, nil
}
