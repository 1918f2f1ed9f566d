package system

import (
	"fmt"

	"github.com/gogpu/orrery/geom"
)

// MotionKind selects how a body moves.
type MotionKind uint8

const (
	// Static bodies keep their translation.
	Static MotionKind = iota
	// Orbit bodies circle a fixed centre.
	Orbit
	// OrbitAround bodies circle another body.
	OrbitAround
)

func (k MotionKind) String() string {
	switch k {
	case Static:
		return "static"
	case Orbit:
		return "orbit"
	case OrbitAround:
		return "orbit-around"
	}
	return fmt.Sprintf("MotionKind(%d)", uint8(k))
}

// Motion describes the path of a body. For OrbitAround, Path.Center is
// ignored and the parent's position is used instead.
type Motion struct {
	Kind   MotionKind
	Path   geom.Orbit
	Parent string
}

// StaticMotion keeps a body where it is.
func StaticMotion() Motion {
	return Motion{Kind: Static}
}

// OrbitMotion circles center at radius with the given angular speed in
// radians per second and starting angle.
func OrbitMotion(center geom.Vec3, radius, speed, phase float32) Motion {
	return Motion{
		Kind: Orbit,
		Path: geom.Orbit{Center: center, Radius: radius, Speed: speed, Phase: phase},
	}
}

// OrbitAroundMotion circles the body named parent. A zero radius pins the
// body to its parent, which is how rings follow their planet.
func OrbitAroundMotion(parent string, radius, speed, phase float32) Motion {
	return Motion{
		Kind:   OrbitAround,
		Path:   geom.Orbit{Radius: radius, Speed: speed, Phase: phase},
		Parent: parent,
	}
}

// Angle returns the orbital angle at time t. Static motion has angle 0.
func (m Motion) Angle(t float32) float32 {
	if m.Kind == Static {
		return 0
	}
	return m.Path.Angle(t)
}

// position resolves the motion at time t given the body's own resting
// translation and, for OrbitAround, the parent's resolved position.
func (m Motion) position(t float32, rest, parent geom.Vec3) geom.Vec3 {
	switch m.Kind {
	case Orbit:
		return m.Path.Position(t)
	case OrbitAround:
		p := m.Path
		p.Center = parent
		if p.Radius == 0 {
			return parent
		}
		return p.Position(t)
	}
	return rest
}
