package flame

import (
	"fmt"
	"math"

	"flames/internal/vecmath"
)

// WarpID names one of the fixed nonlinear kernels.
type WarpID uint8

const (
	WarpSinusoidal WarpID = iota
	WarpSphere
	WarpTwistYZ
	WarpPolarXY
	WarpCycle
	WarpLinear
	WarpSwirlXZ
	WarpInversion
)

var warpNames = [...]string{"sinusoidal", "sphere", "twist-yz", "polar-xy", "cycle", "linear", "swirl-xz", "inversion"}

func (w WarpID) String() string {
	if int(w) < len(warpNames) {
		return warpNames[w]
	}
	return fmt.Sprintf("warp(%d)", uint8(w))
}

// Apply evaluates the kernel at p. Degenerate inputs (the origin for the
// sphere, polar and inversion kernels) yield NaN or Inf, which the
// accumulator later drops.
func (w WarpID) Apply(p vecmath.Vec3) vecmath.Vec3 {
	switch w {
	case WarpSinusoidal:
		return p.Map(vecmath.Sin)
	case WarpSphere:
		return p.Norm().Scale(0.73)
	case WarpTwistYZ:
		theta := vecmath.Atan2(p.Z, p.Y)
		r := vecmath.Sqrt(p.Y*p.Y + p.Z*p.Z)
		theta += math.Pi * r * vecmath.Abs(p.X)
		return vecmath.Vec3{X: p.X, Y: r * vecmath.Cos(theta), Z: r * vecmath.Sin(theta)}
	case WarpPolarXY:
		theta := vecmath.Atan2(p.Y, p.X)
		r := vecmath.Sqrt(p.X*p.X + p.Y*p.Y)
		return vecmath.Vec3{
			X: (vecmath.Cos(theta) + vecmath.Sin(r)) / r,
			Y: (vecmath.Sin(theta) - vecmath.Cos(r)) / r,
			Z: (r * r * p.Z) / r,
		}
	case WarpCycle:
		return vecmath.Vec3{X: p.Z, Y: p.X, Z: p.Y}.Scale(1 / (p.Len() + 1))
	case WarpSwirlXZ:
		theta := vecmath.Atan2(p.Z, p.X) + 10*p.Y
		r := vecmath.Sqrt(p.X*p.X + p.Z*p.Z)
		return vecmath.Vec3{X: r * vecmath.Cos(theta), Y: p.Y, Z: r * vecmath.Sin(theta)}
	case WarpInversion:
		return p.Scale(1 / p.Dot(p))
	default:
		return p
	}
}

// Final folds points with 0.25·|p|² above 1 back toward the origin by
// dividing by that quantity; points inside the radius-2 ball pass through.
func Final(p vecmath.Vec3) vecmath.Vec3 {
	l := 0.25 * p.Dot(p)
	if l <= 1 {
		return p
	}
	return vecmath.Vec3{X: p.X / l, Y: p.Y / l, Z: p.Z / l}
}
