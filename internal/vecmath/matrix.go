package vecmath

import "math"

// Mat4 is a 4×4 float32 matrix stored column-major: element (row r, column c)
// lives at index c*4+r, matching the layout GL uniforms use.
type Mat4 [16]float32

// Identity returns the identity matrix.
func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// At returns the element at row r, column c.
func (m Mat4) At(r, c int) float32 { return m[c*4+r] }

// MulVec returns m·v.
func (m Mat4) MulVec(v Vec4) Vec4 {
	return Vec4{
		m[0]*v.X + m[4]*v.Y + m[8]*v.Z + m[12]*v.W,
		m[1]*v.X + m[5]*v.Y + m[9]*v.Z + m[13]*v.W,
		m[2]*v.X + m[6]*v.Y + m[10]*v.Z + m[14]*v.W,
		m[3]*v.X + m[7]*v.Y + m[11]*v.Z + m[15]*v.W,
	}
}

// Mul returns the product a·b.
func (a Mat4) Mul(b Mat4) Mat4 {
	var out Mat4
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += a[k*4+r] * b[c*4+k]
			}
			out[c*4+r] = sum
		}
	}
	return out
}

// FromFloat64 narrows a column-major float64 matrix.
func FromFloat64(src [16]float64) Mat4 {
	var m Mat4
	for i, v := range src {
		m[i] = float32(v)
	}
	return m
}

// Perspective builds a right-handed projection with a vertical field of view
// of fovy radians, mapping depth to [-1, 1].
func Perspective(fovy, aspect, near, far float64) Mat4 {
	f := 1 / math.Tan(fovy/2)
	nf := 1 / (near - far)
	var m Mat4
	m[0] = float32(f / aspect)
	m[5] = float32(f)
	m[10] = float32((far + near) * nf)
	m[11] = -1
	m[14] = float32(2 * far * near * nf)
	return m
}

// LookAt builds a view matrix for a camera at eye looking toward center.
// A degenerate eye == center returns the identity.
func LookAt(eye, center, up Vec3) Mat4 {
	const eps = 1e-6
	if Abs(eye.X-center.X) < eps && Abs(eye.Y-center.Y) < eps && Abs(eye.Z-center.Z) < eps {
		return Identity()
	}

	z := eye.Sub(center).Norm()
	x := up.Cross(z)
	if l := x.Len(); l == 0 {
		x = Vec3{}
	} else {
		x = x.Scale(1 / l)
	}
	y := z.Cross(x)
	if l := y.Len(); l == 0 {
		y = Vec3{}
	} else {
		y = y.Scale(1 / l)
	}

	return Mat4{
		x.X, y.X, z.X, 0,
		x.Y, y.Y, z.Y, 0,
		x.Z, y.Z, z.Z, 0,
		-x.Dot(eye), -y.Dot(eye), -z.Dot(eye), 1,
	}
}
