package mesh

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/gogpu/orrery/geom"
)

// Ring returns a flat annulus in the XZ plane facing +Y, with inner and
// outer radii in object units. UV.X runs from 0 at the inner edge to 1 at
// the outer edge and UV.Y is the angle around the ring in [0, 1]. Rings are
// meant to be drawn double-sided.
func Ring(inner, outer float32, segments int) *Mesh {
	segments = max(segments, 3)
	if inner > outer {
		inner, outer = outer, inner
	}

	up := geom.XYZ(0, 1, 0)
	m := &Mesh{
		Name:     fmt.Sprintf("ring-%d", segments),
		Vertices: make([]Vertex, 0, 2*(segments+1)),
	}
	for k := 0; k <= segments; k++ {
		a := float32(k) / float32(segments)
		s, c := math32.Sincos(a * 2 * math32.Pi)
		m.Vertices = append(m.Vertices,
			Vertex{Position: geom.XYZ(inner*c, 0, inner*s), Normal: up, UV: geom.XY(0, a)},
			Vertex{Position: geom.XYZ(outer*c, 0, outer*s), Normal: up, UV: geom.XY(1, a)},
		)
	}
	for k := range uint32(segments) {
		i0, o0 := 2*k, 2*k+1
		i1, o1 := 2*k+2, 2*k+3
		m.Triangles = append(m.Triangles,
			[3]uint32{i0, o1, o0},
			[3]uint32{i0, i1, o1},
		)
	}
	return m
}
