package main

import (
	"math"
	"testing"

	"flames/internal/sims/flame"
)

func TestParseFloats(t *testing.T) {
	got, err := parseFloats(" 0.01, 0.5 ,,1")
	if err != nil || len(got) != 3 || got[1] != 0.5 {
		t.Fatalf("got %v, %v", got, err)
	}
	if _, err := parseFloats("a"); err == nil {
		t.Fatalf("expected parse error")
	}
	if _, err := parseFloats(" , "); err == nil {
		t.Fatalf("expected error for empty list")
	}
}

func TestBuildSetsCoversGrid(t *testing.T) {
	sets := buildSets([]float64{0.01, 0.1}, []float64{0.01}, []int{1, 2}, 3)
	if len(sets) != 12 {
		t.Fatalf("len = %d, want 12", len(sets))
	}
}

func TestMeasure(t *testing.T) {
	frame := []float32{
		0, 0, 0, 1,
		1, 1, 1, 1,
		float32(math.NaN()), 0, 0, 1,
		4, 4, 4, 1,
	}
	cov, lum := measure(frame)
	if cov != 0.5 {
		t.Fatalf("coverage = %v", cov)
	}
	if math.Abs(lum-0.5) > 1e-9 {
		t.Fatalf("luminance = %v", lum)
	}
}

func TestRankPrefersCoverage(t *testing.T) {
	all := []scenarioResult{{coverage: 0.2, luminance: 0.9}, {coverage: 0.5, luminance: 0.1}, {coverage: 0.5, luminance: 0.3}}
	rank(all)
	if all[0].luminance != 0.3 || all[2].coverage != 0.2 {
		t.Fatalf("unexpected order %+v", all)
	}
}

func TestRunScenario(t *testing.T) {
	base := flame.DefaultConfig()
	base.Width, base.Height, base.Particles, base.Workers = 24, 24, 500, 1
	res := runScenario(base, paramSet{rate: 0.2, threshold: 0.05, frameSteps: 1, seed: 3}, 5)
	if res.err != nil {
		t.Fatalf("err: %v", res.err)
	}
	if res.coverage <= 0 || res.coverage > 1 || res.minDeposits < 0 {
		t.Fatalf("unexpected result %+v", res)
	}
	bad := runScenario(base, paramSet{rate: 0, frameSteps: 1, seed: 1}, 1)
	if bad.err == nil {
		t.Fatalf("expected config error for zero rate")
	}
}
