package vecmath

import (
	"math"
	"testing"
)

func approx(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-5
}

func TestMulVecColumnMajor(t *testing.T) {
	m := Identity()
	m[12], m[13], m[14] = 1, 2, 3 // translation column
	got := m.MulVec(Vec4{1, 1, 1, 1})
	want := Vec4{2, 3, 4, 1}
	if got != want {
		t.Fatalf("MulVec = %+v, want %+v", got, want)
	}
	if m.At(0, 3) != 1 || m.At(2, 3) != 3 {
		t.Fatalf("At does not address column-major storage: %v", m)
	}
}

func TestMulIdentity(t *testing.T) {
	var m Mat4
	for i := range m {
		m[i] = float32(i) - 7.5
	}
	if got := Identity().Mul(m); got != m {
		t.Fatalf("I·m = %v, want %v", got, m)
	}
	if got := m.Mul(Identity()); got != m {
		t.Fatalf("m·I = %v, want %v", got, m)
	}
}

func TestLookAtMapsCenterOntoNegativeZ(t *testing.T) {
	eye := Vec3{3, 0, 0}
	view := LookAt(eye, Vec3{}, Vec3{0, 1, 0})
	p := view.MulVec(Vec3{}.Extend(1))
	if !approx(p.X, 0) || !approx(p.Y, 0) || !approx(p.Z, -3) {
		t.Fatalf("center in view space = %+v, want (0,0,-3)", p)
	}
	if got := LookAt(eye, eye, Vec3{0, 1, 0}); got != Identity() {
		t.Fatalf("degenerate LookAt = %v, want identity", got)
	}
}

func TestPerspectiveDepthRange(t *testing.T) {
	proj := Perspective(math.Pi/4, 1, 1, 10)
	near := proj.MulVec(Vec4{0, 0, -1, 1})
	far := proj.MulVec(Vec4{0, 0, -10, 1})
	if !approx(near.Z/near.W, -1) {
		t.Fatalf("near plane ndc z = %v, want -1", near.Z/near.W)
	}
	if !approx(far.Z/far.W, 1) {
		t.Fatalf("far plane ndc z = %v, want 1", far.Z/far.W)
	}
}

func TestFract(t *testing.T) {
	cases := []struct{ in, want float32 }{
		{0, 0},
		{1.25, 0.25},
		{-0.25, 0.75},
	}
	for _, c := range cases {
		if got := Fract(c.in); !approx(got, c.want) {
			t.Errorf("Fract(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}
