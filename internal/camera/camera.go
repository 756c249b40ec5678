// Package camera provides the flythrough path and the projection from flame
// space onto histogram pixels.
package camera

import (
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"flames/internal/flame"
	"flames/internal/histogram"
	"flames/internal/vecmath"
)

const (
	fieldOfView = math.Pi / 4
	nearPlane   = 0.001
	farPlane    = 1000.0
)

var up = vecmath.Vec3{Y: 1}

// Path returns the camera track position at time t.
func Path(t float64) vecmath.Vec3 {
	r := 1 + math.Abs(math.Sin(2*t))
	return vecmath.Vec3{
		X: float32(r * math.Cos(t)),
		Y: float32(2 * math.Sin(0.25*t+1)),
		Z: float32(r * math.Sin(t)),
	}
}

// At returns the eye and look-at center for time t. The center leads the eye
// along the path and is pulled toward the origin by a slowly oscillating
// factor.
func At(t float64) (eye, center vecmath.Vec3) {
	eye = Path(t)
	s := math.Sin(0.1 * t)
	center = Path(t + 1).Scale(float32(0.25 * s * s))
	return eye, center
}

// Projector maps flame-space points to pixel coordinates of a w×h grid.
type Projector struct {
	viewProj vecmath.Mat4
	w, h     int
}

// NewProjector builds the view-projection for a camera at eye looking at
// center, with the aspect ratio of the target grid.
func NewProjector(eye, center vecmath.Vec3, w, h int) *Projector {
	proj := vecmath.Perspective(fieldOfView, float64(w)/float64(h), nearPlane, farPlane)
	view := vecmath.LookAt(eye, center, up)
	return &Projector{viewProj: proj.Mul(view), w: w, h: h}
}

// Project returns the pixel position of p. Points outside the clip volume are
// rejected the way point primitives are clipped.
func (pr *Projector) Project(p vecmath.Vec3) (x, y float32, ok bool) {
	c := pr.viewProj.MulVec(p.Extend(1))
	if !(c.W > 0) || vecmath.Abs(c.X) > c.W || vecmath.Abs(c.Y) > c.W || vecmath.Abs(c.Z) > c.W {
		return 0, 0, false
	}
	ndc := c.Homogenize()
	x = (ndc.X*0.5 + 0.5) * float32(pr.w)
	y = (0.5 - ndc.Y*0.5) * float32(pr.h)
	return x, y, true
}

// ProjectAll projects samples into dst and returns the filled prefix.
// Rejected samples are skipped, so the result may be shorter than samples.
func (pr *Projector) ProjectAll(samples []flame.Sample, dst []histogram.Point, workers int) []histogram.Point {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if cap(dst) < len(samples) {
		dst = make([]histogram.Point, len(samples))
	}
	dst = dst[:len(samples)]

	// Each worker compacts its own chunk in place; chunks are then joined
	// in order so the output order matches the input order.
	chunk := (len(samples) + workers - 1) / workers
	if chunk == 0 {
		return dst[:0]
	}
	counts := make([]int, (len(samples)+chunk-1)/chunk)
	var g errgroup.Group
	for c := range counts {
		lo := c * chunk
		hi := min(lo+chunk, len(samples))
		g.Go(func() error {
			n := lo
			for _, s := range samples[lo:hi] {
				x, y, ok := pr.Project(s.Position)
				if !ok {
					continue
				}
				dst[n] = histogram.Point{X: x, Y: y, Color: s.Color}
				n++
			}
			counts[c] = n - lo
			return nil
		})
	}
	_ = g.Wait()

	n := counts[0]
	for c := 1; c < len(counts); c++ {
		lo := c * chunk
		n += copy(dst[n:], dst[lo:lo+counts[c]])
	}
	return dst[:n]
}
