package vecmath

import "math"

// Vec3 is a float32 3-vector used for positions and RGB colors.
type Vec3 struct {
	X, Y, Z float32
}

// Vec4 is a homogeneous float32 4-vector.
type Vec4 struct {
	X, Y, Z, W float32
}

// Splat3 returns a vector with all components set to v.
func Splat3(v float32) Vec3 { return Vec3{v, v, v} }

func (a Vec3) Add(b Vec3) Vec3                  { return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z} }
func (a Vec3) Sub(b Vec3) Vec3                  { return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z} }
func (v Vec3) Scale(s float32) Vec3             { return Vec3{v.X * s, v.Y * s, v.Z * s} }
func (a Vec3) Dot(b Vec3) float32               { return a.X*b.X + a.Y*b.Y + a.Z*b.Z }
func (v Vec3) Len() float32                     { return Sqrt(v.Dot(v)) }
func (v Vec3) Extend(w float32) Vec4            { return Vec4{v.X, v.Y, v.Z, w} }
func (v Vec4) XYZ() Vec3                        { return Vec3{v.X, v.Y, v.Z} }
func (v Vec3) Map(f func(float32) float32) Vec3 { return Vec3{f(v.X), f(v.Y), f(v.Z)} }

// Homogenize performs the perspective divide xyz/w.
func (v Vec4) Homogenize() Vec3 {
	return Vec3{v.X / v.W, v.Y / v.W, v.Z / v.W}
}

// Cross returns a × b.
func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

// Norm returns v scaled to unit length. Like GLSL normalize, a zero vector
// yields NaN components.
func (v Vec3) Norm() Vec3 {
	return v.Scale(1 / v.Len())
}

// Mix linearly interpolates from a toward b by t.
func Mix(a, b Vec3, t float32) Vec3 {
	return Vec3{
		a.X + (b.X-a.X)*t,
		a.Y + (b.Y-a.Y)*t,
		a.Z + (b.Z-a.Z)*t,
	}
}

// IsFinite reports whether no component is NaN or infinite.
func (v Vec3) IsFinite() bool {
	return finite(v.X) && finite(v.Y) && finite(v.Z)
}

func finite(x float32) bool {
	f := float64(x)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func Sqrt(x float32) float32     { return float32(math.Sqrt(float64(x))) }
func Sin(x float32) float32      { return float32(math.Sin(float64(x))) }
func Cos(x float32) float32      { return float32(math.Cos(float64(x))) }
func Atan2(y, x float32) float32 { return float32(math.Atan2(float64(y), float64(x))) }
func Abs(x float32) float32      { return float32(math.Abs(float64(x))) }

// Fract returns x - floor(x).
func Fract(x float32) float32 {
	return x - float32(math.Floor(float64(x)))
}
