// Package animate drifts flame parameters toward randomly regenerated targets.
package animate

import (
	"fmt"
	"math"

	"github.com/gogpu/gg"

	"flames/internal/core"
	"flames/internal/flame"
	"flames/internal/vecmath"
)

const numFns = flame.NumFunctions

// DefaultThreshold is the divergence below which a new target is drawn.
const DefaultThreshold = 0.01

// Params is one full set of animated flame parameters. The same type holds
// both the live state and the target it moves toward.
type Params struct {
	MixRate    float64
	Brightness float64
	Decay      float64
	HueBase    float64
	HueOffset  float64

	Weights    [numFns]float64
	Saturation [numFns]float64

	// Transforms are column-major 4×4 matrices.
	Transforms [numFns][16]float64
}

func (p *Params) scalars() [5]*float64 {
	return [5]*float64{&p.MixRate, &p.Brightness, &p.Decay, &p.HueBase, &p.HueOffset}
}

func (p *Params) vectors() [2]*[numFns]float64 {
	return [2]*[numFns]float64{&p.Weights, &p.Saturation}
}

// StepRate moves s toward t by the fraction r.
func StepRate(s, t, r float64) float64 {
	return r*t + (1-r)*s
}

// Animator owns the live parameter state and its current target.
type Animator struct {
	State     Params
	Target    Params
	Threshold float64

	rng           *core.RNG
	regenerations int
}

// New seeds the state the way a fresh flame starts (everything equally
// weighted, random colors and transforms) and draws the first target.
func New(rng *core.RNG) *Animator {
	s := Params{MixRate: 0.8, Brightness: 1, Decay: 0.9}
	s.HueBase = rng.Float64()
	s.HueOffset = rng.Float64()
	for i := range s.Saturation {
		s.Saturation[i] = rng.Float64()
	}
	for i := range s.Transforms {
		for j := range s.Transforms[i] {
			s.Transforms[i][j] = rng.Uniform(-2, 2)
		}
	}
	for i := range s.Weights {
		s.Weights[i] = 1
	}
	a := NewWithState(s, rng)
	a.RegenerateTarget()
	a.regenerations = 0
	return a
}

// NewWithState returns an animator whose target equals the given state.
func NewWithState(state Params, rng *core.RNG) *Animator {
	return &Animator{State: state, Target: state, Threshold: DefaultThreshold, rng: rng}
}

// Regenerations counts targets drawn by Advance.
func (a *Animator) Regenerations() int { return a.regenerations }

// Interpolate smooths every component of the state toward the target and
// returns a divergence estimate taken before the update. Scalars feed a
// decaying running max, d = max(|s-t|, d/4), so only the last few scalars
// dominate; vectors and matrices contribute a true max.
func (a *Animator) Interpolate(r float64) float64 {
	d := 0.0
	ts := a.Target.scalars()
	for i, s := range a.State.scalars() {
		t := *ts[i]
		d = math.Max(math.Abs(*s-t), 0.25*d)
		*s = StepRate(*s, t, r)
	}

	tv := a.Target.vectors()
	for i, sv := range a.State.vectors() {
		for j, s := range sv {
			t := tv[i][j]
			d = math.Max(d, math.Abs(s-t))
			sv[j] = StepRate(s, t, r)
		}
	}

	for i := range a.State.Transforms {
		sm, tm := &a.State.Transforms[i], &a.Target.Transforms[i]
		for j, s := range sm {
			d = math.Max(d, math.Abs(s-tm[j]))
			sm[j] = StepRate(s, tm[j], r)
		}
	}
	return d
}

// Advance interpolates at rate r and draws a new target once the
// divergence falls below the threshold. It returns the divergence.
func (a *Animator) Advance(r float64) float64 {
	d := a.Interpolate(r)
	if d < a.Threshold {
		a.RegenerateTarget()
		a.regenerations++
		core.Logger().Debug("animate: new target", "divergence", d, "count", a.regenerations)
	}
	return d
}

// RegenerateTarget replaces the target. Each scalar, vector element and
// matrix entry independently either keeps the current state value, which
// makes the animator dwell there, or is redrawn from its range.
func (a *Animator) RegenerateTarget() {
	s := &a.State
	t := Params{
		MixRate:    a.keepOr(s.MixRate, 0.5, 0.5, 1),
		Brightness: a.keepOr(s.Brightness, 0.5, 0.75, 1),
		Decay:      a.keepOr(s.Decay, 0.5, 0.8, 1),
		HueBase:    a.keepOr(s.HueBase, 0.5, 0, 1),
		HueOffset:  a.keepOr(s.HueOffset, 0.25, 0, 0.5),
	}
	for i := range t.Saturation {
		t.Saturation[i] = a.keepOr(s.Saturation[i], 0.5, 0, 1)
	}
	for i := range t.Weights {
		if a.rng.Coin(0.5) {
			t.Weights[i] = s.Weights[i]
		} else {
			t.Weights[i] = a.rng.Float64() * a.rng.Float64()
		}
	}
	for i := range t.Transforms {
		for j := range t.Transforms[i] {
			t.Transforms[i][j] = a.keepOr(s.Transforms[i][j], 0.5, -2, 2)
		}
	}
	a.Target = t
}

// keepOr returns cur with probability keep, otherwise a uniform draw in
// [lo, hi).
func (a *Animator) keepOr(cur, keep, lo, hi float64) float64 {
	if a.rng.Coin(keep) {
		return cur
	}
	return a.rng.Uniform(lo, hi)
}

// Hues returns the hue of each function: (HueBase + HueOffset·i) mod 1.
func (a *Animator) Hues() [numFns]float64 {
	var hues [numFns]float64
	for i := range hues {
		h := math.Mod(a.State.HueBase+a.State.HueOffset*float64(i), 1)
		if h < 0 {
			h++
		}
		hues[i] = h
	}
	return hues
}

// DeriveColors converts the hues, per-function saturation and a fixed
// lightness of 0.5 to RGB.
func (a *Animator) DeriveColors() [numFns]vecmath.Vec3 {
	var colors [numFns]vecmath.Vec3
	for i, h := range a.Hues() {
		c := gg.HSL(h*360, a.State.Saturation[i], 0.5)
		colors[i] = vecmath.Vec3{X: float32(c.R), Y: float32(c.G), Z: float32(c.B)}
	}
	return colors
}

// Functions returns the eight functions for the current state: function i
// uses transform i, warp i and color i.
func (a *Animator) Functions() [numFns]flame.Function {
	var fns [numFns]flame.Function
	colors := a.DeriveColors()
	for i := range fns {
		fns[i] = flame.Function{
			Transform: vecmath.FromFloat64(a.State.Transforms[i]),
			Warp:      flame.WarpID(i),
			Color:     colors[i],
		}
	}
	return fns
}

// FunctionSet builds this frame's function set from the state.
func (a *Animator) FunctionSet() (*flame.FunctionSet, error) {
	fs, err := flame.NewFunctionSet(a.Functions(), a.State.Weights)
	if err != nil {
		return nil, fmt.Errorf("animate: %w", err)
	}
	return fs, nil
}
