package histogram

import (
	"math"
	"math/rand/v2"
	"testing"

	"flames/internal/vecmath"
)

func randomPoints(n, w, h int, seed uint64) []Point {
	rng := rand.New(rand.NewPCG(seed, seed^0xabc))
	pts := make([]Point, n)
	for i := range pts {
		pts[i] = Point{
			X:     rng.Float32() * float32(w),
			Y:     rng.Float32() * float32(h),
			Color: vecmath.Vec3{X: rng.Float32(), Y: rng.Float32(), Z: rng.Float32()},
		}
	}
	return pts
}

func TestSplatTwiceDoubles(t *testing.T) {
	pts := randomPoints(5000, 32, 24, 1)

	once := New(32, 24, 3)
	once.Splat(pts)

	twice := New(32, 24, 3)
	twice.Splat(pts)
	twice.Splat(pts)

	a, b := once.Current().Cells(), twice.Current().Cells()
	for i := range a {
		if math.Abs(float64(2*a[i]-b[i])) > 1e-4*math.Max(1, float64(b[i])) {
			t.Fatalf("cell value %d: twice=%v, want 2×%v", i, b[i], a[i])
		}
	}
}

func TestSplatIndependentOfWorkers(t *testing.T) {
	pts := randomPoints(20000, 64, 48, 2)
	one := New(64, 48, 1)
	many := New(64, 48, 7)
	one.Splat(pts)
	many.Splat(pts)
	a, b := one.Current().Cells(), many.Current().Cells()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("value %d differs: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestSplatDropsOutOfBounds(t *testing.T) {
	h := New(8, 8, 2)
	nan := float32(math.NaN())
	h.Splat([]Point{
		{X: -0.5, Y: 1},
		{X: 8, Y: 1},
		{X: 1, Y: 8},
		{X: nan, Y: 1},
		{X: 1, Y: float32(math.Inf(1))},
	})
	if sum := h.Current().Sum(); sum != [4]float64{} {
		t.Fatalf("out of range points were deposited: %v", sum)
	}

	h.Splat([]Point{{X: 7.99, Y: 0, Color: vecmath.Vec3{X: 1, Y: 0.5}}})
	cells := h.Current().Cells()
	idx := h.Current().Index(7, 0)
	if cells[idx] != 1 || cells[idx+1] != 0.5 || cells[idx+3] != 1 {
		t.Fatalf("edge deposit = %v", cells[idx:idx+4])
	}
}

func TestFilterUniformFieldUnchanged(t *testing.T) {
	h := New(16, 12, 4)
	h.Current().Fill(0.2, 0.4, 0.6, 3)
	h.Filter(1)
	for i, v := range h.Current().Cells() {
		want := []float32{0.2, 0.4, 0.6, 3}[i%4]
		if math.Abs(float64(v-want)) > 1e-5 {
			t.Fatalf("value %d = %v, want %v", i, v, want)
		}
	}
}

func TestFilterDecayScalesTotal(t *testing.T) {
	pts := randomPoints(3000, 40, 30, 3)
	plain := New(40, 30, 2)
	decayed := New(40, 30, 2)
	plain.Splat(pts)
	decayed.Splat(pts)
	plain.Filter(1)
	decayed.Filter(0.85)

	a := plain.Current().Sum()[3]
	b := decayed.Current().Sum()[3]
	if math.Abs(b/a-0.85) > 1e-5 {
		t.Fatalf("decayed/plain alpha = %v, want 0.85", b/a)
	}
}

func TestFilterFlipsAndReadsSplattedGrid(t *testing.T) {
	h := New(9, 9, 2)
	splatted := h.Current()
	h.Splat([]Point{{X: 4.5, Y: 4.5, Color: vecmath.Vec3{X: 1, Y: 1, Z: 1}}})
	h.Filter(1)

	if h.Current() == splatted {
		t.Fatal("Filter did not flip the current grid")
	}
	if h.Other() != splatted {
		t.Fatal("the splatted grid should now be the other grid")
	}
	if got := splatted.Cells()[splatted.Index(4, 4)+3]; got != 1 {
		t.Fatalf("source grid was modified: alpha %v", got)
	}
	cur := h.Current()
	if got := cur.Cells()[cur.Index(4, 4)+3]; got <= 0 || got >= 1 {
		t.Fatalf("filtered center alpha = %v, want a blurred value in (0,1)", got)
	}
	if got := cur.Cells()[cur.Index(0, 0)+3]; got != 0 {
		t.Fatalf("cell outside the radius picked up mass: %v", got)
	}
}

func TestFilterBlursSparseMoreThanDense(t *testing.T) {
	keep := func(alpha float32) float64 {
		h := New(9, 9, 1)
		g := h.Current()
		g.Cells()[g.Index(4, 4)+3] = alpha
		h.Filter(1)
		c := h.Current()
		return float64(c.Cells()[c.Index(4, 4)+3]) / float64(alpha)
	}
	sparse, dense := keep(1), keep(1000)
	if !(dense > sparse) {
		t.Fatalf("dense center kept %v of its mass, sparse kept %v; dense should keep more", dense, sparse)
	}
	if sparse > 0.1 {
		t.Fatalf("a single sample kept %v of its mass; expected a wide blur", sparse)
	}
}

func TestToneMap(t *testing.T) {
	h := New(3, 1, 1)
	g := h.Current()
	c := g.Cells()
	copy(c[g.Index(1, 0):], []float32{4, 2, 0, 4})
	copy(c[g.Index(2, 0):], []float32{100, 0, 0, 0.5})

	out := make([]float32, len(c))
	if err := h.ToneMap(1, out); err != nil {
		t.Fatal(err)
	}

	if out[0] != 0 || out[1] != 0 || out[2] != 0 || out[3] != 1 {
		t.Fatalf("empty cell = %v, want opaque black", out[0:4])
	}
	scale := math.Pow(math.Log(2), 1/2.2)
	if math.Abs(float64(out[4])-scale) > 1e-6 || math.Abs(float64(out[5])-scale/2) > 1e-6 || out[7] != 1 {
		t.Fatalf("cell 1 = %v, want (%v, %v, 0, 1)", out[4:8], scale, scale/2)
	}
	// alpha below 1 divides by 1, and nothing is clamped
	want := 100 * math.Pow(math.Log(1.125), 1/2.2)
	if math.Abs(float64(out[8])-want) > 1e-4 || out[8] <= 1 {
		t.Fatalf("cell 2 red = %v, want unclamped %v", out[8], want)
	}

	if err := h.ToneMap(1, make([]float32, 4)); err == nil {
		t.Fatal("short target accepted")
	}
}
