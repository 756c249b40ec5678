package flame

import (
	"math"
	"testing"

	"flames/internal/vecmath"
)

func near(a, b vecmath.Vec3) bool {
	d := a.Sub(b)
	return math.Abs(float64(d.X)) < 1e-5 && math.Abs(float64(d.Y)) < 1e-5 && math.Abs(float64(d.Z)) < 1e-5
}

func TestWarpKernels(t *testing.T) {
	p := vecmath.Vec3{X: 0.3, Y: -0.4, Z: 1.2}
	cases := []struct {
		warp WarpID
		want vecmath.Vec3
	}{
		{WarpSinusoidal, vecmath.Vec3{X: vecmath.Sin(0.3), Y: vecmath.Sin(-0.4), Z: vecmath.Sin(1.2)}},
		{WarpSphere, p.Scale(0.73 / p.Len())},
		{WarpCycle, vecmath.Vec3{X: 1.2, Y: 0.3, Z: -0.4}.Scale(1 / (p.Len() + 1))},
		{WarpLinear, p},
		{WarpInversion, p.Scale(1 / p.Dot(p))},
	}
	for _, c := range cases {
		if got := c.warp.Apply(p); !near(got, c.want) {
			t.Errorf("%v(%+v) = %+v, want %+v", c.warp, p, got, c.want)
		}
	}
}

func TestWarpPolarPreservesRadiusInPlane(t *testing.T) {
	p := vecmath.Vec3{X: 0.6, Y: 0.8, Z: 0.5}
	got := WarpTwistYZ.Apply(p)
	rIn := math.Hypot(float64(p.Y), float64(p.Z))
	rOut := math.Hypot(float64(got.Y), float64(got.Z))
	if math.Abs(rIn-rOut) > 1e-5 || got.X != p.X {
		t.Fatalf("twist-yz changed radius or x: %+v -> %+v", p, got)
	}

	got = WarpSwirlXZ.Apply(p)
	rIn = math.Hypot(float64(p.X), float64(p.Z))
	rOut = math.Hypot(float64(got.X), float64(got.Z))
	if math.Abs(rIn-rOut) > 1e-5 || got.Y != p.Y {
		t.Fatalf("swirl-xz changed radius or y: %+v -> %+v", p, got)
	}

	// r = 1, theta = 0: (cos0 + sin1, sin0 - cos1, z)
	got = WarpPolarXY.Apply(vecmath.Vec3{X: 1, Z: 2})
	want := vecmath.Vec3{X: 1 + vecmath.Sin(1), Y: -vecmath.Cos(1), Z: 2}
	if !near(got, want) {
		t.Fatalf("polar-xy = %+v, want %+v", got, want)
	}
}

func TestInversionAtOriginIsNotFinite(t *testing.T) {
	if WarpInversion.Apply(vecmath.Vec3{}).IsFinite() {
		t.Fatal("inversion of the origin should propagate NaN")
	}
}

func TestFinal(t *testing.T) {
	inside := vecmath.Vec3{X: 1, Y: 1, Z: 1} // l = 0.75
	if got := Final(inside); got != inside {
		t.Fatalf("Final moved an interior point: %+v", got)
	}
	outside := vecmath.Vec3{X: 4} // l = 4
	if got := Final(outside); !near(got, vecmath.Vec3{X: 1}) {
		t.Fatalf("Final(%+v) = %+v, want (1,0,0)", outside, got)
	}
	edge := vecmath.Vec3{X: 2} // l = 1
	if got := Final(edge); got != edge {
		t.Fatalf("Final on the boundary = %+v, want unchanged", got)
	}
}
