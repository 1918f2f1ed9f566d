package raster

import (
	"github.com/gogpu/orrery/geom"
	"github.com/gogpu/orrery/shader"
)

// Vertex is a clip space position with its varyings, the output of the
// vertex stage.
type Vertex struct {
	Clip geom.Vec4
	shader.Varyings
}

// ScreenVertex is a vertex after perspective division and the viewport
// transform.
type ScreenVertex struct {
	// X and Y are pixel coordinates; row 0 is the top.
	X, Y float32
	// Z is NDC depth in [-1, 1].
	Z float32
	// InvW is 1/w of the clip position, used for perspective-correct
	// interpolation.
	InvW float32
	shader.Varyings
}

// Project divides by w and maps to pixel coordinates. It reports false for
// vertices on or behind the eye plane and for non-finite positions.
func (v *Vertex) Project(viewport geom.Mat4) (ScreenVertex, bool) {
	w := v.Clip[3]
	if !(w > geom.Epsilon) || !v.Clip.IsFinite() {
		return ScreenVertex{}, false
	}
	invW := 1 / w
	ndc := geom.Vec4{v.Clip[0] * invW, v.Clip[1] * invW, v.Clip[2] * invW, 1}
	s := viewport.Mul4x1(ndc)
	return ScreenVertex{
		X:        s[0],
		Y:        s[1],
		Z:        ndc[2],
		InvW:     invW,
		Varyings: v.Varyings,
	}, true
}
