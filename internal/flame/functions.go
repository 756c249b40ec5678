package flame

import (
	"errors"
	"fmt"
	"math"

	"flames/internal/vecmath"
)

// NumFunctions is the fixed size of a flame function set.
const NumFunctions = 8

// ErrZeroWeightSum reports a weight vector that cannot be normalized.
var ErrZeroWeightSum = errors.New("flame: weights sum to zero")

// Function is one member of the iterated function system.
type Function struct {
	Transform vecmath.Mat4
	Warp      WarpID
	Color     vecmath.Vec3
}

// FunctionSet is the per-frame, read-only description shared by every
// particle worker.
type FunctionSet struct {
	Functions  [NumFunctions]Function
	Thresholds [NumFunctions - 1]float32
}

// NewFunctionSet pairs functions with their selection weights.
func NewFunctionSet(fns [NumFunctions]Function, weights [NumFunctions]float64) (*FunctionSet, error) {
	thr, err := CumulativeThresholds(weights)
	if err != nil {
		return nil, err
	}
	return &FunctionSet{Functions: fns, Thresholds: thr}, nil
}

// CumulativeThresholds converts weights into the partial sums
// Σ_{i≤k} w_i / Σ w for k = 0..6. Weights must be non-negative with a
// positive, finite total.
func CumulativeThresholds(weights [NumFunctions]float64) ([NumFunctions - 1]float32, error) {
	var thr [NumFunctions - 1]float32
	total := 0.0
	for i, w := range weights {
		if w < 0 || math.IsNaN(w) {
			return thr, fmt.Errorf("flame: weight %d is %v", i, w)
		}
		total += w
	}
	if total <= 0 || math.IsInf(total, 0) {
		return thr, fmt.Errorf("%w (total %v)", ErrZeroWeightSum, total)
	}
	partial := 0.0
	for k := range thr {
		partial += weights[k]
		thr[k] = float32(partial / total)
	}
	return thr, nil
}

// UniformThresholds returns the thresholds of eight equal weights.
func UniformThresholds() [NumFunctions - 1]float32 {
	var thr [NumFunctions - 1]float32
	for k := range thr {
		thr[k] = float32(k+1) / NumFunctions
	}
	return thr
}

// Select returns the first index whose cumulative threshold is >= seed, or
// the last function when seed lies above every threshold.
func Select(seed float32, thr *[NumFunctions - 1]float32) int {
	for k, t := range thr {
		if seed <= t {
			return k
		}
	}
	return NumFunctions - 1
}

// Step applies one chaos-game iteration to a position and color.
func (fs *FunctionSet) Step(p, c vecmath.Vec3, seed, mixRate float32) (vecmath.Vec3, vecmath.Vec3) {
	fn := &fs.Functions[Select(seed, &fs.Thresholds)]
	q := fn.Transform.MulVec(p.Extend(1)).Homogenize()
	return Final(fn.Warp.Apply(q)), vecmath.Mix(c, fn.Color, mixRate)
}
