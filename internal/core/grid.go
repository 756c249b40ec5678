package core

// Channels is the number of float32 values stored per grid cell (R, G, B, A).
const Channels = 4

// Grid stores a 2D field of RGBA float32 cells in row-major order.
type Grid struct {
	W, H int
	data []float32
}

// NewGrid allocates a zeroed grid with the given dimensions.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid{W: w, H: h, data: make([]float32, w*h*Channels)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid) Cells() []float32 { return g.data }

// Index returns the slice offset of the red channel of cell (x, y).
func (g *Grid) Index(x, y int) int { return (y*g.W + x) * Channels }

// Clamp pins coordinates to the nearest edge cell.
func (g *Grid) Clamp(x, y int) (int, int) {
	x = min(max(x, 0), g.W-1)
	y = min(max(y, 0), g.H-1)
	return x, y
}

// Contains reports whether (x, y) addresses a cell.
func (g *Grid) Contains(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// Fill sets every cell to the same value.
func (g *Grid) Fill(r, gr, b, a float32) {
	for i := 0; i < len(g.data); i += Channels {
		g.data[i+0] = r
		g.data[i+1] = gr
		g.data[i+2] = b
		g.data[i+3] = a
	}
}

// Clear fills the grid with zeros.
func (g *Grid) Clear() {
	clear(g.data)
}

// Sum returns the per-channel totals over the whole grid.
func (g *Grid) Sum() [Channels]float64 {
	var s [Channels]float64
	for i, v := range g.data {
		s[i%Channels] += float64(v)
	}
	return s
}
