package math3d

import "github.com/chewxy/math32"

// Scalar is the numeric type used by all math operations.
type Scalar = float32

// Vec3 is a 3D vector or point.
type Vec3 struct {
	X, Y, Z Scalar
}

// Vec4 is a homogeneous 4D vector.
type Vec4 struct {
	X, Y, Z, W Scalar
}

func V3(x, y, z Scalar) Vec3 { return Vec3{X: x, Y: y, Z: z} }

func (v Vec3) Add(o Vec3) Vec3   { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3   { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Mul(s Scalar) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }
func (v Vec3) Div(s Scalar) Vec3 { return Vec3{v.X / s, v.Y / s, v.Z / s} }

// AddInPlace accumulates o into v.
func (v *Vec3) AddInPlace(o Vec3) {
	v.X += o.X
	v.Y += o.Y
	v.Z += o.Z
}

func (v Vec3) Len() Scalar { return Len(v) }

// Normalize returns v scaled to unit length.
//
// Callers must not pass a zero-length vector; the zero vector is returned
// unchanged in that case.
func (v Vec3) Normalize() Vec3 { return Normalize(v) }

func Dot(a, b Vec3) Scalar { return a.X*b.X + a.Y*b.Y + a.Z*b.Z }

func Cross(a, b Vec3) Vec3 {
	return Vec3{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}

func Len(v Vec3) Scalar {
	return math32.Sqrt(Dot(v, v))
}

func Normalize(v Vec3) Vec3 {
	l := Len(v)
	if l == 0 {
		return Vec3{}
	}
	return v.Div(l)
}

func Clamp(v, lo, hi Scalar) Scalar {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func DegToRad(deg Scalar) Scalar { return deg * (math32.Pi / 180) }
