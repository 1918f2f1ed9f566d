package geom

import (
	"github.com/chewxy/math32"
	"golang.org/x/image/math/f32"
)

// Mat4 is a 4x4 matrix in row major order.
type Mat4 f32.Mat4

// Ident4 returns the identity matrix.
func Ident4() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// At returns the element at the given row and column.
func (m Mat4) At(row, col int) float32 {
	return m[row*4+col]
}

// Mul4 returns m * m2.
func (m Mat4) Mul4(m2 Mat4) Mat4 {
	var out Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[r*4+c] = m[r*4+0]*m2[0*4+c] +
				m[r*4+1]*m2[1*4+c] +
				m[r*4+2]*m2[2*4+c] +
				m[r*4+3]*m2[3*4+c]
		}
	}
	return out
}

// Mul4x1 returns m * v.
func (m Mat4) Mul4x1(v Vec4) Vec4 {
	return Vec4{
		m[0]*v[0] + m[1]*v[1] + m[2]*v[2] + m[3]*v[3],
		m[4]*v[0] + m[5]*v[1] + m[6]*v[2] + m[7]*v[3],
		m[8]*v[0] + m[9]*v[1] + m[10]*v[2] + m[11]*v[3],
		m[12]*v[0] + m[13]*v[1] + m[14]*v[2] + m[15]*v[3],
	}
}

// MulPoint transforms p as a point (w = 1) without a perspective divide.
func (m Mat4) MulPoint(p Vec3) Vec3 {
	return m.Mul4x1(p.Vec4(1)).Vec3()
}

// MulDir transforms d as a direction (w = 0).
func (m Mat4) MulDir(d Vec3) Vec3 {
	return m.Mul4x1(d.Vec4(0)).Vec3()
}

// Transpose returns the transpose of m.
func (m Mat4) Transpose() Mat4 {
	return Mat4{
		m[0], m[4], m[8], m[12],
		m[1], m[5], m[9], m[13],
		m[2], m[6], m[10], m[14],
		m[3], m[7], m[11], m[15],
	}
}

// Translate4 returns a translation matrix.
func Translate4(t Vec3) Mat4 {
	return Mat4{
		1, 0, 0, t[0],
		0, 1, 0, t[1],
		0, 0, 1, t[2],
		0, 0, 0, 1,
	}
}

// Scale4 returns a uniform scale matrix.
func Scale4(s float32) Mat4 {
	return Mat4{
		s, 0, 0, 0,
		0, s, 0, 0,
		0, 0, s, 0,
		0, 0, 0, 1,
	}
}

// RotateX4 returns a rotation of angle radians around the X axis.
func RotateX4(angle float32) Mat4 {
	s, c := math32.Sincos(angle)
	return Mat4{
		1, 0, 0, 0,
		0, c, -s, 0,
		0, s, c, 0,
		0, 0, 0, 1,
	}
}

// RotateY4 returns a rotation of angle radians around the Y axis.
func RotateY4(angle float32) Mat4 {
	s, c := math32.Sincos(angle)
	return Mat4{
		c, 0, s, 0,
		0, 1, 0, 0,
		-s, 0, c, 0,
		0, 0, 0, 1,
	}
}

// RotateZ4 returns a rotation of angle radians around the Z axis.
func RotateZ4(angle float32) Mat4 {
	s, c := math32.Sincos(angle)
	return Mat4{
		c, -s, 0, 0,
		s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}
