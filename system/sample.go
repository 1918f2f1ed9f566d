package system

import (
	"fmt"

	"github.com/gogpu/orrery/geom"
	"github.com/gogpu/orrery/mesh"
	"github.com/gogpu/orrery/paint"
	"github.com/gogpu/orrery/shader"
)

// Names of the bodies in the sample system.
const (
	Sun      = "sun"
	Cinder   = "cinder"
	Rust     = "rust"
	RustMoon = "rust-moon"
	Jove     = "jove"
	JoveRing = "jove-ring"
	JoveIce  = "jove-ice"
	Tide     = "tide"
)

// SampleBodies returns the bodies of the sample system: a star, two rocky
// planets, a ringed gas giant with an icy moon, a second gas giant and a
// moon around the red planet. Seeds are derived from seed so different
// seeds give different surfaces with the same layout.
func SampleBodies(seed uint32) []Body {
	star := mesh.Icosphere(4)
	sphere := mesh.Icosphere(3)
	ring := mesh.Ring(1.35, 2.3, 96)
	origin := geom.Vec3{}

	sun := NewBody(Sun, star, shader.SolarMaterial(seed))
	sun.Scale = 8
	sun.Spin = geom.Euler{Y: 0.05}

	cinder := NewBody(Cinder, sphere, shader.RockyMaterial(paint.Rocky, seed+1))
	cinder.Scale = 1.2
	cinder.Motion = OrbitMotion(origin, 16, 0.45, 0)
	cinder.Spin = geom.Euler{Y: 0.4}

	rust := NewBody(Rust, sphere, shader.RockyMaterial(paint.Martian, seed+2))
	rust.Scale = 1.7
	rust.Motion = OrbitMotion(origin, 26, 0.3, 2.1)
	rust.Spin = geom.Euler{Y: 0.35}
	rust.Rotation = geom.Euler{Z: 0.2}

	moon := NewBody(RustMoon, sphere, shader.RockyMaterial(paint.Lunar, seed+3))
	moon.Scale = 0.45
	moon.Motion = OrbitAroundMotion(Rust, 3.2, 1.1, 0)
	moon.FaceTangent = true

	jove := NewBody(Jove, sphere, shader.GasMaterial(paint.Jovian, seed+4, true))
	jove.Scale = 4.2
	jove.Motion = OrbitMotion(origin, 44, 0.16, 4.0)
	jove.Spin = geom.Euler{Y: 0.6}

	// The ring shares Jove's centre and is tilted out of the orbital plane.
	joveRing := NewBody(JoveRing, ring, shader.RingMaterial(paint.RingDust, seed+5))
	joveRing.Scale = jove.Scale
	joveRing.Motion = OrbitAroundMotion(Jove, 0, 0, 0)
	joveRing.Rotation = geom.Euler{X: 0.45}

	ice := NewBody(JoveIce, sphere, shader.RockyMaterial(tinted(paint.Icy, 25), seed+6))
	ice.Scale = 0.7
	ice.Motion = OrbitAroundMotion(Jove, 13, 0.7, 1.3)
	ice.FaceTangent = true

	tide := NewBody(Tide, sphere, shader.GasMaterial(paint.Neptunian, seed+7, true))
	tide.Scale = 3.1
	tide.Motion = OrbitMotion(origin, 62, 0.1, 5.5)
	tide.Spin = geom.Euler{Y: 0.5}
	tide.Rotation = geom.Euler{Z: -0.3}

	return []Body{sun, cinder, rust, moon, jove, joveRing, ice, tide}
}

// Sample builds the sample system.
func Sample(seed uint32) (*System, error) {
	s, err := New(SampleBodies(seed)...)
	if err != nil {
		return nil, fmt.Errorf("system: sample: %w", err)
	}
	return s, nil
}

// tinted returns p with every stop rotated in hue.
func tinted(p paint.Palette, degrees float64) paint.Palette {
	out := paint.Palette{
		Name:  fmt.Sprintf("%s%+.0f", p.Name, degrees),
		Stops: make([]paint.RGBA, len(p.Stops)),
	}
	for i, c := range p.Stops {
		out.Stops[i] = paint.Hue(c, degrees)
	}
	return out
}
