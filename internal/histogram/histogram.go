// Package histogram accumulates projected flame samples into a pair of
// ping-ponged RGBA float grids, filters them with a density-adaptive blur and
// tone-maps the result for display.
package histogram

import (
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"flames/internal/core"
	"flames/internal/vecmath"
)

// Point is a sample already projected to grid pixel coordinates.
type Point struct {
	X, Y  float32
	Color vecmath.Vec3
}

// Histogram owns two accumulation grids. Exactly one is current; Filter
// toggles which one by flipping a single index.
type Histogram struct {
	grids   [2]*core.Grid
	current int
	workers int
}

// New allocates both grids at w×h. workers <= 0 uses one worker per CPU.
func New(w, h, workers int) *Histogram {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Histogram{
		grids:   [2]*core.Grid{core.NewGrid(w, h), core.NewGrid(w, h)},
		workers: workers,
	}
}

// Size returns the grid dimensions.
func (h *Histogram) Size() core.Size {
	g := h.grids[0]
	return core.Size{W: g.W, H: g.H}
}

// Current returns the grid that receives splats and feeds the tone mapper.
func (h *Histogram) Current() *core.Grid { return h.grids[h.current] }

// Other returns the grid that is not current.
func (h *Histogram) Other() *core.Grid { return h.grids[h.current^1] }

// Clear zeroes both grids. The frame pipeline never calls this; it exists for
// Reset.
func (h *Histogram) Clear() {
	h.grids[0].Clear()
	h.grids[1].Clear()
}

// Splat deposits (color, 1) for every point into the current grid. Points
// outside the grid or with non-finite coordinates are dropped. Workers own
// disjoint row bands and visit points in input order, so the result is the
// same for any worker count.
func (h *Histogram) Splat(points []Point) {
	g := h.Current()
	cells := g.Cells()
	h.rows(g.H, func(y0, y1 int) {
		for i := range points {
			p := &points[i]
			fx, fy := float64(p.X), float64(p.Y)
			if !(fx >= 0 && fx < float64(g.W) && fy >= float64(y0) && fy < float64(y1)) {
				continue
			}
			idx := g.Index(int(fx), int(fy))
			cells[idx+0] += p.Color.X
			cells[idx+1] += p.Color.Y
			cells[idx+2] += p.Color.Z
			cells[idx+3]++
		}
	})
}

// rows splits [0, height) into contiguous bands and runs fn on each band
// concurrently. It returns once every band is done.
func (h *Histogram) rows(height int, fn func(y0, y1 int)) {
	bands := min(h.workers, height)
	if bands <= 1 {
		fn(0, height)
		return
	}
	var g errgroup.Group
	per := int(math.Ceil(float64(height) / float64(bands)))
	for y0 := 0; y0 < height; y0 += per {
		y1 := min(y0+per, height)
		g.Go(func() error {
			fn(y0, y1)
			return nil
		})
	}
	_ = g.Wait()
}
