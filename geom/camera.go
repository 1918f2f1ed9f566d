package geom

import "github.com/chewxy/math32"

// Basis is an orthonormal orientation. Forward is the viewing direction.
type Basis struct {
	Forward Vec3
	Right   Vec3
	Up      Vec3
}

// DefaultBasis looks down -Z with +Y up.
func DefaultBasis() Basis {
	return Basis{
		Forward: Vec3{0, 0, -1},
		Right:   Vec3{1, 0, 0},
		Up:      Vec3{0, 1, 0},
	}
}

// NewBasis builds a right-handed orthonormal basis looking along forward
// with up as the approximate up direction. When forward and up are
// parallel another reference axis is used.
func NewBasis(forward, up Vec3) Basis {
	f := forward.NormalizeOr(Vec3{0, 0, -1})
	r := f.Cross(up)
	if r.Len() < 1e-4 {
		// forward is (anti)parallel to up
		alt := Vec3{0, 0, 1}
		if math32.Abs(f[2]) > 0.9 {
			alt = Vec3{1, 0, 0}
		}
		r = f.Cross(alt)
	}
	r = r.Normalize()
	return Basis{Forward: f, Right: r, Up: r.Cross(f)}
}

// Orthonormalize re-derives Right and Up from Forward and Up with
// Gram-Schmidt so accumulated drift from incremental rotations is removed.
func (b Basis) Orthonormalize() Basis {
	return NewBasis(b.Forward, b.Up)
}

// View returns the world to camera matrix for an eye at eye oriented by b.
// The camera looks down its local -Z axis.
func View(eye Vec3, b Basis) Mat4 {
	r, u, f := b.Right, b.Up, b.Forward
	return Mat4{
		r[0], r[1], r[2], -r.Dot(eye),
		u[0], u[1], u[2], -u.Dot(eye),
		-f[0], -f[1], -f[2], f.Dot(eye),
		0, 0, 0, 1,
	}
}

// LookAt returns the view matrix for an eye looking at target.
func LookAt(eye, target, up Vec3) Mat4 {
	return View(eye, NewBasis(target.Sub(eye), up))
}

// Perspective returns a right-handed projection matrix. View space depths
// -near and -far map to NDC z -1 and +1, so smaller NDC z is nearer.
func Perspective(fovY, aspect, near, far float32) Mat4 {
	f := 1 / math32.Tan(fovY/2)
	nf := 1 / (near - far)
	return Mat4{
		f / aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, (far + near) * nf, 2 * far * near * nf,
		0, 0, -1, 0,
	}
}

// Viewport maps NDC to pixel coordinates. NDC y = +1 lands on row 0 so
// rows run top to bottom like the framebuffer. Depth passes through.
func Viewport(width, height int) Mat4 {
	w := float32(width) / 2
	h := float32(height) / 2
	return Mat4{
		w, 0, 0, w,
		0, -h, 0, h,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Camera is the per-frame camera state handed to the renderer.
type Camera struct {
	Eye   Vec3
	Basis Basis
	// FovY is the vertical field of view in radians.
	FovY float32
	Near float32
	Far  float32
}

// DefaultCamera returns a camera at eye looking at the origin.
func DefaultCamera(eye Vec3) Camera {
	return Camera{
		Eye:   eye,
		Basis: NewBasis(eye.Neg(), Vec3{0, 1, 0}),
		FovY:  math32.Pi / 3,
		Near:  0.1,
		Far:   1000,
	}
}

// Matrices holds everything derived from a camera for one frame.
type Matrices struct {
	View           Mat4
	Projection     Mat4
	Viewport       Mat4
	ViewProjection Mat4
	Frustum        Frustum
}

// Matrices derives the view, projection and viewport matrices for a
// width x height target.
func (c Camera) Matrices(width, height int) Matrices {
	aspect := float32(1)
	if height > 0 {
		aspect = float32(width) / float32(height)
	}
	view := View(c.Eye, c.Basis)
	proj := Perspective(c.FovY, aspect, c.Near, c.Far)
	return Matrices{
		View:           view,
		Projection:     proj,
		Viewport:       Viewport(width, height),
		ViewProjection: proj.Mul4(view),
		Frustum:        NewFrustum(c.Basis, c.FovY, aspect),
	}
}

// Frustum stores the world space ray directions through the four corners
// of the image plane: top-left, top-right, bottom-left, bottom-right.
// Per pixel rays are obtained by interpolating the corner rays.
type Frustum [4]Vec3

// NewFrustum computes the corner rays for a camera oriented by b.
func NewFrustum(b Basis, fovY, aspect float32) Frustum {
	ty := math32.Tan(fovY / 2)
	tx := ty * aspect
	corner := func(sx, sy float32) Vec3 {
		return b.Forward.Add(b.Right.Mul(sx * tx)).Add(b.Up.Mul(sy * ty))
	}
	return Frustum{
		corner(-1, 1),
		corner(1, 1),
		corner(-1, -1),
		corner(1, -1),
	}
}

// Ray returns the normalized ray direction at image coordinates u, v in
// [0, 1], with v = 0 at the top row.
func (fr Frustum) Ray(u, v float32) Vec3 {
	top := fr[0].Lerp(fr[1], u)
	bottom := fr[2].Lerp(fr[3], u)
	return top.Lerp(bottom, v).NormalizeOr(Vec3{0, 0, -1})
}
