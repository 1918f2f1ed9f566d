package system

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/orrery/geom"
)

// MinFollowDistance is the closest a FollowCamera may get to its target.
const MinFollowDistance = 0.5

// FollowCamera keeps a fixed offset from a moving target, expressed in
// the target's own right, up and back axes, so the view turns with it.
type FollowCamera struct {
	// Offset is the unit direction from target to eye in the target's
	// frame: X along Right, Y along Up, Z backwards (against Forward).
	Offset   geom.Vec3
	Distance float32
	ZoomStep float32

	FovY, Near, Far float32
}

// NewFollowCamera derives the offset from an initial eye and target,
// measured against the default basis.
func NewFollowCamera(eye, target geom.Vec3) FollowCamera {
	d := eye.Sub(target)
	dist := d.Len()
	if !(dist > 1e-3) {
		dist = 1e-3
	}
	def := geom.DefaultBasis()
	local := geom.XYZ(d.Dot(def.Right), d.Dot(def.Up), -d.Dot(def.Forward))
	cam := geom.DefaultCamera(eye)
	return FollowCamera{
		Offset:   local.NormalizeOr(geom.XYZ(0, 0, 1)),
		Distance: math32.Max(dist, MinFollowDistance),
		ZoomStep: 0.5,
		FovY:     cam.FovY,
		Near:     cam.Near,
		Far:      cam.Far,
	}
}

// ZoomIn moves the eye one step closer, stopping at MinFollowDistance.
func (f *FollowCamera) ZoomIn() {
	f.Distance = math32.Max(f.Distance-f.ZoomStep, MinFollowDistance)
}

// ZoomOut moves the eye one step further away.
func (f *FollowCamera) ZoomOut() {
	f.Distance += f.ZoomStep
}

// Eye returns the eye position for a target at pos oriented by b.
func (f *FollowCamera) Eye(pos geom.Vec3, b geom.Basis) geom.Vec3 {
	b = b.Orthonormalize()
	o := f.Offset.NormalizeOr(geom.XYZ(0, 0, 1)).Mul(f.Distance)
	return pos.
		Add(b.Right.Mul(o[0])).
		Add(b.Up.Mul(o[1])).
		Sub(b.Forward.Mul(o[2]))
}

// Camera returns a camera looking from Eye(pos, b) at pos, keeping the
// target's up direction.
func (f *FollowCamera) Camera(pos geom.Vec3, b geom.Basis) geom.Camera {
	eye := f.Eye(pos, b)
	return geom.Camera{
		Eye:   eye,
		Basis: geom.NewBasis(pos.Sub(eye), b.Orthonormalize().Up),
		FovY:  f.FovY,
		Near:  f.Near,
		Far:   f.Far,
	}
}

// OrbitCamera circles Target at Distance, raised by Elevation radians
// above the XZ plane.
type OrbitCamera struct {
	Target    geom.Vec3
	Distance  float32
	Elevation float32
	// Speed is the angular speed around Target in radians per second.
	Speed float32
	Phase float32

	FovY, Near, Far float32
}

// DefaultOrbitCamera frames the sample system from slightly above.
func DefaultOrbitCamera() OrbitCamera {
	cam := geom.DefaultCamera(geom.Vec3{})
	return OrbitCamera{
		Distance:  140,
		Elevation: 0.35,
		Speed:     0.05,
		Phase:     math32.Pi / 2,
		FovY:      cam.FovY,
		Near:      0.5,
		Far:       cam.Far,
	}
}

// Eye returns the eye position at time t.
func (o *OrbitCamera) Eye(t float32) geom.Vec3 {
	se, ce := math32.Sincos(o.Elevation)
	path := geom.Orbit{Center: o.Target, Radius: o.Distance * ce, Speed: o.Speed, Phase: o.Phase}
	eye := path.Position(t)
	eye[1] += o.Distance * se
	return eye
}

// Camera returns the camera at time t, looking at Target with +Y up.
func (o *OrbitCamera) Camera(t float32) geom.Camera {
	eye := o.Eye(t)
	return geom.Camera{
		Eye:   eye,
		Basis: geom.NewBasis(o.Target.Sub(eye), geom.XYZ(0, 1, 0)),
		FovY:  o.FovY,
		Near:  o.Near,
		Far:   o.Far,
	}
}
