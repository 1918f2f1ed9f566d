package shader

import "github.com/gogpu/orrery/geom"

// Varyings are the per-vertex attributes interpolated across a triangle.
type Varyings struct {
	// World is the world space position.
	World geom.Vec3
	// Object is the object space position after vertex displacement.
	Object geom.Vec3
	// Normal is the world space normal. It is not unit length after
	// interpolation.
	Normal geom.Vec3
	UV     geom.Vec2
}

// Blend returns w0*a + w1*b + w2*c for every attribute.
func Blend(a, b, c *Varyings, w0, w1, w2 float32) Varyings {
	return Varyings{
		World:  blend3(a.World, b.World, c.World, w0, w1, w2),
		Object: blend3(a.Object, b.Object, c.Object, w0, w1, w2),
		Normal: blend3(a.Normal, b.Normal, c.Normal, w0, w1, w2),
		UV: geom.Vec2{
			a.UV[0]*w0 + b.UV[0]*w1 + c.UV[0]*w2,
			a.UV[1]*w0 + b.UV[1]*w1 + c.UV[1]*w2,
		},
	}
}

func blend3(a, b, c geom.Vec3, w0, w1, w2 float32) geom.Vec3 {
	return geom.Vec3{
		a[0]*w0 + b[0]*w1 + c[0]*w2,
		a[1]*w0 + b[1]*w1 + c[1]*w2,
		a[2]*w0 + b[2]*w1 + c[2]*w2,
	}
}

// Fragment is the interpolated input to a fragment shader. It only lives
// for the duration of one shader call.
type Fragment struct {
	Varyings
	// Depth is the NDC depth in [-1, 1]; smaller is nearer.
	Depth float32
	// X and Y are the pixel coordinates.
	X, Y int
}
