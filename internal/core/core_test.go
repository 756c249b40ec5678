package core

import (
	"testing"
	"time"
)

func TestFixedStepPacing(t *testing.T) {
	clock := time.Unix(0, 0)
	fs := NewFixedStep(10)
	fs.now = func() time.Time { return clock }

	if !fs.ShouldStep() {
		t.Fatal("first call must release a frame")
	}
	if fs.ShouldStep() {
		t.Fatal("no time elapsed, yet a frame was released")
	}
	clock = clock.Add(50 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("half an interval released a frame")
	}
	clock = clock.Add(50 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("a full interval did not release a frame")
	}

	// A long stall releases one frame now and at most one more right after.
	clock = clock.Add(time.Second)
	released := 0
	for i := 0; i < 5; i++ {
		if fs.ShouldStep() {
			released++
		}
	}
	if released != 2 {
		t.Fatalf("stall released %d frames, want 2", released)
	}
}

func TestFixedStepDefaultRate(t *testing.T) {
	if got := NewFixedStep(0).Interval(); got != time.Second/60 {
		t.Fatalf("default interval = %v, want %v", got, time.Second/60)
	}
}

func TestGridClampAndSum(t *testing.T) {
	g := NewGrid(3, 2)
	if x, y := g.Clamp(-4, 9); x != 0 || y != 1 {
		t.Fatalf("Clamp(-4, 9) = (%d, %d), want (0, 1)", x, y)
	}
	if g.Contains(3, 0) || !g.Contains(2, 1) {
		t.Fatal("Contains disagrees with the grid bounds")
	}
	g.Fill(1, 2, 3, 4)
	g.Cells()[g.Index(2, 1)+3] = 10
	sum := g.Sum()
	if sum != [Channels]float64{6, 12, 18, 30} {
		t.Fatalf("Sum = %v", sum)
	}
	g.Clear()
	if g.Sum() != [Channels]float64{} {
		t.Fatal("Clear left data behind")
	}
}

func TestParameterLookup(t *testing.T) {
	snap := ParameterSnapshot{Groups: []ParameterGroup{
		{Name: "a", Params: []Parameter{IntParam("n", "N", 3)}},
		{Name: "b", Params: []Parameter{FloatParam("rate", "Rate", 0.25), StringParam("mode", "Mode", "hash")}},
	}}
	p, ok := snap.Lookup("rate")
	if !ok || p.Value != "0.25" || p.Type != ParamTypeFloat {
		t.Fatalf("Lookup(rate) = %+v, %v", p, ok)
	}
	if _, ok := snap.Lookup("missing"); ok {
		t.Fatal("Lookup found a missing key")
	}
}

func TestRNGDeterministic(t *testing.T) {
	a, b := NewRNG(5), NewRNG(5)
	bufA, bufB := make([]float32, 16), make([]float32, 16)
	a.FillUniform(bufA)
	b.FillUniform(bufB)
	for i := range bufA {
		if bufA[i] != bufB[i] {
			t.Fatalf("value %d differs: %v vs %v", i, bufA[i], bufB[i])
		}
	}
	for i := 0; i < 100; i++ {
		if v := a.Uniform(-2, 2); v < -2 || v >= 2 {
			t.Fatalf("Uniform(-2, 2) = %v", v)
		}
	}
}
