package mesh

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/gogpu/orrery/geom"
)

// MaxSubdivisions bounds Icosphere; level 6 already has 81920 triangles.
const MaxSubdivisions = 6

// Icosphere returns a unit sphere built by subdividing an icosahedron
// subdivisions times. Every vertex lies on the unit sphere and its normal
// equals its position.
func Icosphere(subdivisions int) *Mesh {
	subdivisions = max(0, min(subdivisions, MaxSubdivisions))

	t := (1 + math32.Sqrt(5)) / 2
	positions := []geom.Vec3{
		{-1, t, 0}, {1, t, 0}, {-1, -t, 0}, {1, -t, 0},
		{0, -1, t}, {0, 1, t}, {0, -1, -t}, {0, 1, -t},
		{t, 0, -1}, {t, 0, 1}, {-t, 0, -1}, {-t, 0, 1},
	}
	for i := range positions {
		positions[i] = positions[i].Normalize()
	}
	faces := [][3]uint32{
		{0, 11, 5}, {0, 5, 1}, {0, 1, 7}, {0, 7, 10}, {0, 10, 11},
		{1, 5, 9}, {5, 11, 4}, {11, 10, 2}, {10, 7, 6}, {7, 1, 8},
		{3, 9, 4}, {3, 4, 2}, {3, 2, 6}, {3, 6, 8}, {3, 8, 9},
		{4, 9, 5}, {2, 4, 11}, {6, 2, 10}, {8, 6, 7}, {9, 8, 1},
	}

	for range subdivisions {
		midpoints := make(map[[2]uint32]uint32, len(faces)*3/2)
		midpoint := func(a, b uint32) uint32 {
			key := [2]uint32{min(a, b), max(a, b)}
			if idx, ok := midpoints[key]; ok {
				return idx
			}
			p := positions[a].Add(positions[b]).Mul(0.5).Normalize()
			positions = append(positions, p)
			idx := uint32(len(positions) - 1)
			midpoints[key] = idx
			return idx
		}

		next := make([][3]uint32, 0, len(faces)*4)
		for _, f := range faces {
			ab := midpoint(f[0], f[1])
			bc := midpoint(f[1], f[2])
			ca := midpoint(f[2], f[0])
			next = append(next,
				[3]uint32{f[0], ab, ca},
				[3]uint32{f[1], bc, ab},
				[3]uint32{f[2], ca, bc},
				[3]uint32{ab, bc, ca},
			)
		}
		faces = next
	}

	m := &Mesh{
		Name:      fmt.Sprintf("icosphere-%d", subdivisions),
		Vertices:  make([]Vertex, len(positions)),
		Triangles: faces,
	}
	for i, p := range positions {
		m.Vertices[i] = Vertex{Position: p, Normal: p, UV: sphereUV(p)}
	}
	return m
}

// UVSphere returns a unit latitude/longitude sphere. rings is the number of
// latitude bands and segments the number of longitude slices. Degenerate
// triangles at the poles are omitted.
func UVSphere(rings, segments int) *Mesh {
	rings = max(rings, 2)
	segments = max(segments, 3)

	m := &Mesh{
		Name:     fmt.Sprintf("uvsphere-%dx%d", rings, segments),
		Vertices: make([]Vertex, 0, (rings+1)*(segments+1)),
	}
	for i := 0; i <= rings; i++ {
		v := float32(i) / float32(rings)
		sinT, cosT := math32.Sincos(v * math32.Pi)
		for j := 0; j <= segments; j++ {
			u := float32(j) / float32(segments)
			sinP, cosP := math32.Sincos(u * 2 * math32.Pi)
			p := geom.XYZ(sinT*cosP, cosT, sinT*sinP)
			m.Vertices = append(m.Vertices, Vertex{Position: p, Normal: p, UV: geom.XY(u, v)})
		}
	}

	stride := uint32(segments + 1)
	for i := range uint32(rings) {
		for j := range uint32(segments) {
			a := i*stride + j
			b := a + stride
			c := b + 1
			d := a + 1
			if i != 0 {
				m.Triangles = append(m.Triangles, [3]uint32{a, d, b})
			}
			if i != uint32(rings)-1 {
				m.Triangles = append(m.Triangles, [3]uint32{d, c, b})
			}
		}
	}
	return m
}

// sphereUV maps a unit direction to equirectangular coordinates.
func sphereUV(p geom.Vec3) geom.Vec2 {
	u := 0.5 + math32.Atan2(p[2], p[0])/(2*math32.Pi)
	v := math32.Acos(geom.Clamp(p[1], -1, 1)) / math32.Pi
	return geom.XY(u, v)
}
