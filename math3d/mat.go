package math3d

import "github.com/chewxy/math32"

// Mat4 is a column-major 4x4 matrix: element (col, row) lives at m[col*4+row].
type Mat4 [16]Scalar

// At returns the element in column col and row row.
func (m Mat4) At(col, row int) Scalar { return m[col*4+row] }

// Set stores v at column col, row row.
func (m *Mat4) Set(col, row int, v Scalar) { m[col*4+row] = v }

// Col returns the first three rows of column col.
func (m Mat4) Col(col int) Vec3 {
	return Vec3{X: m[col*4+0], Y: m[col*4+1], Z: m[col*4+2]}
}

func Mat4Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Mat4Mul returns a × b: every column of b transformed by a.
func Mat4Mul(a, b Mat4) Mat4 {
	var out Mat4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			out[col*4+row] =
				a[0*4+row]*b[col*4+0] +
					a[1*4+row]*b[col*4+1] +
					a[2*4+row]*b[col*4+2] +
					a[3*4+row]*b[col*4+3]
		}
	}
	return out
}

// Mat4MulV4 applies m to a homogeneous vector without dividing by w.
func Mat4MulV4(m Mat4, v Vec4) Vec4 {
	return Vec4{
		X: m[0]*v.X + m[4]*v.Y + m[8]*v.Z + m[12]*v.W,
		Y: m[1]*v.X + m[5]*v.Y + m[9]*v.Z + m[13]*v.W,
		Z: m[2]*v.X + m[6]*v.Y + m[10]*v.Z + m[14]*v.W,
		W: m[3]*v.X + m[7]*v.Y + m[11]*v.Z + m[15]*v.W,
	}
}

// Mat4MulPoint transforms p as a point (w=1), including translation, and
// divides by the resulting w. A zero w yields non-finite components.
func Mat4MulPoint(m Mat4, p Vec3) Vec3 {
	h := Mat4MulV4(m, Vec4{X: p.X, Y: p.Y, Z: p.Z, W: 1})
	return Vec3{X: h.X / h.W, Y: h.Y / h.W, Z: h.Z / h.W}
}

// Mat4MulDir transforms d by the upper 3x3 block only: no translation and no
// divide. Use it for directions and normals.
func Mat4MulDir(m Mat4, d Vec3) Vec3 {
	return Vec3{
		X: m[0]*d.X + m[4]*d.Y + m[8]*d.Z,
		Y: m[1]*d.X + m[5]*d.Y + m[9]*d.Z,
		Z: m[2]*d.X + m[6]*d.Y + m[10]*d.Z,
	}
}

// Det3 is the determinant of the upper 3x3 block.
func Det3(m Mat4) Scalar {
	return Dot(m.Col(0), Cross(m.Col(1), m.Col(2)))
}

func Mat4Translate(v Vec3) Mat4 {
	m := Mat4Identity()
	m[12] = v.X
	m[13] = v.Y
	m[14] = v.Z
	return m
}

func Mat4Scale(v Vec3) Mat4 {
	m := Mat4Identity()
	m[0] = v.X
	m[5] = v.Y
	m[10] = v.Z
	return m
}

func Mat4ScaleUniform(s Scalar) Mat4 { return Mat4Scale(V3(s, s, s)) }

func Mat4RotateX(rad Scalar) Mat4 {
	s, c := math32.Sincos(rad)
	return Mat4{
		1, 0, 0, 0,
		0, c, s, 0,
		0, -s, c, 0,
		0, 0, 0, 1,
	}
}

func Mat4RotateY(rad Scalar) Mat4 {
	s, c := math32.Sincos(rad)
	return Mat4{
		c, 0, -s, 0,
		0, 1, 0, 0,
		s, 0, c, 0,
		0, 0, 0, 1,
	}
}

func Mat4RotateZ(rad Scalar) Mat4 {
	s, c := math32.Sincos(rad)
	return Mat4{
		c, s, 0, 0,
		-s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Mat4LookAt builds a world-to-camera matrix. The camera looks down -Z.
//
// up only needs to be roughly vertical: the basis is rebuilt from forward,
// then right, then a corrected up. target must differ from eye and up must
// not be parallel to the view direction.
func Mat4LookAt(eye, target, up Vec3) Mat4 {
	f := Normalize(target.Sub(eye))
	s := Normalize(Cross(f, up))
	u := Cross(s, f)

	// Column-major.
	return Mat4{
		s.X, u.X, -f.X, 0,
		s.Y, u.Y, -f.Y, 0,
		s.Z, u.Z, -f.Z, 0,
		-Dot(s, eye), -Dot(u, eye), Dot(f, eye), 1,
	}
}

// Mat4Perspective builds a symmetric right-handed projection that maps the
// near plane to NDC z = -1 and the far plane to +1. The (col 2, row 3)
// element is -1, so clip w equals -z in view space.
//
// fovYRad must be in (0, π), aspect non-zero and near != far.
func Mat4Perspective(fovYRad, aspect, zNear, zFar Scalar) Mat4 {
	f := 1 / math32.Tan(fovYRad/2)
	nf := 1 / (zNear - zFar)
	return Mat4{
		f / aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, (zFar + zNear) * nf, -1,
		0, 0, (2 * zFar * zNear) * nf, 0,
	}
}
