package geom

import "github.com/chewxy/math32"

// Euler holds rotation angles in radians around the X, Y and Z axes.
type Euler struct {
	X, Y, Z float32
}

// Add returns the component-wise sum of two rotations.
func (e Euler) Add(o Euler) Euler {
	return Euler{X: e.X + o.X, Y: e.Y + o.Y, Z: e.Z + o.Z}
}

// Mul scales every angle by s.
func (e Euler) Mul(s float32) Euler {
	return Euler{X: e.X * s, Y: e.Y * s, Z: e.Z * s}
}

// Mat4 returns the rotation Ry * Rx * Rz.
func (e Euler) Mat4() Mat4 {
	return RotateY4(e.Y).Mul4(RotateX4(e.X)).Mul4(RotateZ4(e.Z))
}

// Orbit describes a circular orbit in the XZ plane.
type Orbit struct {
	Center Vec3
	Radius float32
	// Speed is the angular speed in radians per second.
	Speed float32
	// Phase is the angle at time zero.
	Phase float32
}

// Angle returns the orbital angle at time t.
func (o Orbit) Angle(t float32) float32 {
	return o.Speed*t + o.Phase
}

// Position returns Center + Radius * (cos θ, 0, sin θ) with θ = Angle(t).
func (o Orbit) Position(t float32) Vec3 {
	s, c := math32.Sincos(o.Angle(t))
	return Vec3{
		o.Center[0] + o.Radius*c,
		o.Center[1],
		o.Center[2] + o.Radius*s,
	}
}

// Model composes translation * rotation * uniform scale.
func Model(translation Vec3, rotation Euler, scale float32) Mat4 {
	return Translate4(translation).Mul4(rotation.Mat4()).Mul4(Scale4(scale))
}

// ModelFromBasis builds a model matrix whose local X, Y and Z axes map to
// b.Right, b.Up and b.Forward.
func ModelFromBasis(translation Vec3, b Basis, scale float32) Mat4 {
	r := b.Right.Mul(scale)
	u := b.Up.Mul(scale)
	f := b.Forward.Mul(scale)
	return Mat4{
		r[0], u[0], f[0], translation[0],
		r[1], u[1], f[1], translation[1],
		r[2], u[2], f[2], translation[2],
		0, 0, 0, 1,
	}
}
