// Package geom provides the float32 vector and matrix types used by the
// renderer, together with the transform pipeline that turns orbital and
// camera state into model, view, projection and viewport matrices.
//
// Matrices are row-major and act on column vectors: p' = M * p.
package geom

import (
	"github.com/chewxy/math32"
	"golang.org/x/image/math/f32"
)

// Epsilon is the tolerance used when deciding whether a length is zero.
const Epsilon = 1e-7

type (
	// Vec2 is a 2 component vector.
	Vec2 f32.Vec2

	// Vec3 is a 3 component vector.
	Vec3 f32.Vec3

	// Vec4 is a 4 component vector.
	Vec4 f32.Vec4
)

// XY defines a 2 component vector.
func XY(x, y float32) Vec2 {
	return Vec2{x, y}
}

// XYZ defines a 3 component vector.
func XYZ(x, y, z float32) Vec3 {
	return Vec3{x, y, z}
}

// XYZW defines a 4 component vector.
func XYZW(x, y, z, w float32) Vec4 {
	return Vec4{x, y, z, w}
}

// Add returns v + w.
func (v Vec2) Add(w Vec2) Vec2 {
	return Vec2{v[0] + w[0], v[1] + w[1]}
}

// Sub returns v - w.
func (v Vec2) Sub(w Vec2) Vec2 {
	return Vec2{v[0] - w[0], v[1] - w[1]}
}

// Mul scales v by s.
func (v Vec2) Mul(s float32) Vec2 {
	return Vec2{v[0] * s, v[1] * s}
}

// Dot returns the dot product of v and w.
func (v Vec2) Dot(w Vec2) float32 {
	return v[0]*w[0] + v[1]*w[1]
}

// Add returns v + w.
func (v Vec3) Add(w Vec3) Vec3 {
	return Vec3{v[0] + w[0], v[1] + w[1], v[2] + w[2]}
}

// Sub returns v - w.
func (v Vec3) Sub(w Vec3) Vec3 {
	return Vec3{v[0] - w[0], v[1] - w[1], v[2] - w[2]}
}

// Mul scales v by s.
func (v Vec3) Mul(s float32) Vec3 {
	return Vec3{v[0] * s, v[1] * s, v[2] * s}
}

// MulVec multiplies v and w component-wise.
func (v Vec3) MulVec(w Vec3) Vec3 {
	return Vec3{v[0] * w[0], v[1] * w[1], v[2] * w[2]}
}

// Neg returns -v.
func (v Vec3) Neg() Vec3 {
	return Vec3{-v[0], -v[1], -v[2]}
}

// Dot returns the dot product of v and w.
func (v Vec3) Dot(w Vec3) float32 {
	return v[0]*w[0] + v[1]*w[1] + v[2]*w[2]
}

// Cross returns the cross product v x w.
func (v Vec3) Cross(w Vec3) Vec3 {
	return Vec3{
		v[1]*w[2] - v[2]*w[1],
		v[2]*w[0] - v[0]*w[2],
		v[0]*w[1] - v[1]*w[0],
	}
}

// Len returns the length of v.
func (v Vec3) Len() float32 {
	return math32.Sqrt(v.Dot(v))
}

// Normalize returns v scaled to unit length, or the zero vector if v has no
// usable length.
func (v Vec3) Normalize() Vec3 {
	l := v.Len()
	if l < Epsilon || !IsFinite(l) {
		return Vec3{}
	}
	return v.Mul(1 / l)
}

// NormalizeOr is like Normalize but returns fallback instead of the zero
// vector.
func (v Vec3) NormalizeOr(fallback Vec3) Vec3 {
	l := v.Len()
	if l < Epsilon || !IsFinite(l) {
		return fallback
	}
	return v.Mul(1 / l)
}

// Lerp interpolates between v (t=0) and w (t=1).
func (v Vec3) Lerp(w Vec3, t float32) Vec3 {
	return Vec3{
		v[0] + (w[0]-v[0])*t,
		v[1] + (w[1]-v[1])*t,
		v[2] + (w[2]-v[2])*t,
	}
}

// Vec4 expands v with the given w component.
func (v Vec3) Vec4(w float32) Vec4 {
	return Vec4{v[0], v[1], v[2], w}
}

// IsFinite reports whether every component of v is finite.
func (v Vec3) IsFinite() bool {
	return IsFinite(v[0]) && IsFinite(v[1]) && IsFinite(v[2])
}

// Vec3 drops the w component.
func (v Vec4) Vec3() Vec3 {
	return Vec3{v[0], v[1], v[2]}
}

// Mul scales v by s.
func (v Vec4) Mul(s float32) Vec4 {
	return Vec4{v[0] * s, v[1] * s, v[2] * s, v[3] * s}
}

// IsFinite reports whether every component of v is finite.
func (v Vec4) IsFinite() bool {
	return IsFinite(v[0]) && IsFinite(v[1]) && IsFinite(v[2]) && IsFinite(v[3])
}

// IsFinite reports whether f is neither NaN nor infinite.
func IsFinite(f float32) bool {
	return !math32.IsNaN(f) && !math32.IsInf(f, 0)
}

// Clamp restricts f to [lo, hi]. NaN maps to lo.
func Clamp(f, lo, hi float32) float32 {
	if !(f >= lo) {
		return lo
	}
	if f > hi {
		return hi
	}
	return f
}

// Smoothstep is the cubic Hermite step between edge0 and edge1.
func Smoothstep(edge0, edge1, x float32) float32 {
	if edge0 == edge1 {
		if x < edge0 {
			return 0
		}
		return 1
	}
	t := Clamp((x-edge0)/(edge1-edge0), 0, 1)
	return t * t * (3 - 2*t)
}
