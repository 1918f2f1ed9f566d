// Package mesh generates the analytic meshes drawn by the renderer.
//
// Meshes are built once at start-up and never mutated afterwards; the
// renderer only reads them. Triangles wind counter-clockwise when seen from
// the side their normals point to.
package mesh

import (
	"errors"
	"fmt"

	"github.com/gogpu/orrery/geom"
)

// ErrIndexOutOfRange is returned by Validate when a triangle references a
// vertex that does not exist.
var ErrIndexOutOfRange = errors.New("mesh: triangle index out of range")

// Vertex is an object space vertex.
type Vertex struct {
	Position geom.Vec3
	Normal   geom.Vec3
	UV       geom.Vec2
}

// Mesh is an indexed triangle list.
type Mesh struct {
	Name      string
	Vertices  []Vertex
	Triangles [][3]uint32
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Triangles)
}

// Validate checks that every triangle index is in range.
func (m *Mesh) Validate() error {
	n := uint32(len(m.Vertices))
	for i, tri := range m.Triangles {
		for _, idx := range tri {
			if idx >= n {
				return fmt.Errorf("%w: triangle %d references vertex %d of %d", ErrIndexOutOfRange, i, idx, n)
			}
		}
	}
	return nil
}

// Triangle returns a mesh with a single triangle, mostly useful for tests
// and debugging. The normal is derived from the winding.
func Triangle(a, b, c geom.Vec3) *Mesh {
	n := b.Sub(a).Cross(c.Sub(a)).Normalize()
	return &Mesh{
		Name: "triangle",
		Vertices: []Vertex{
			{Position: a, Normal: n, UV: geom.XY(0, 0)},
			{Position: b, Normal: n, UV: geom.XY(1, 0)},
			{Position: c, Normal: n, UV: geom.XY(0, 1)},
		},
		Triangles: [][3]uint32{{0, 1, 2}},
	}
}
