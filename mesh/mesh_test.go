package mesh

import (
	"testing"

	"github.com/gogpu/orrery/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// faceNormal returns the unnormalized geometric normal implied by winding.
func faceNormal(m *Mesh, tri [3]uint32) geom.Vec3 {
	a := m.Vertices[tri[0]].Position
	b := m.Vertices[tri[1]].Position
	c := m.Vertices[tri[2]].Position
	return b.Sub(a).Cross(c.Sub(a))
}

func centroid(m *Mesh, tri [3]uint32) geom.Vec3 {
	a := m.Vertices[tri[0]].Position
	b := m.Vertices[tri[1]].Position
	c := m.Vertices[tri[2]].Position
	return a.Add(b).Add(c).Mul(1.0 / 3)
}

func TestIcosphereCounts(t *testing.T) {
	tests := []struct {
		level     int
		triangles int
		vertices  int
	}{
		{0, 20, 12},
		{1, 80, 42},
		{2, 320, 162},
		{3, 1280, 642},
	}
	for _, tc := range tests {
		m := Icosphere(tc.level)
		require.NoError(t, m.Validate())
		assert.Equal(t, tc.triangles, m.TriangleCount(), "level %d", tc.level)
		assert.Len(t, m.Vertices, tc.vertices, "level %d", tc.level)
	}
}

func TestIcosphereClampsLevel(t *testing.T) {
	assert.Equal(t, 20, Icosphere(-4).TriangleCount())
}

func TestIcosphereOutwardWinding(t *testing.T) {
	m := Icosphere(2)
	for i, tri := range m.Triangles {
		n := faceNormal(m, tri)
		require.Greater(t, n.Dot(centroid(m, tri)), float32(0), "triangle %d winds inward", i)
	}
	for _, v := range m.Vertices {
		assert.InDelta(t, 1, v.Position.Len(), 1e-5)
		assert.Equal(t, v.Position, v.Normal)
		assert.True(t, v.UV[0] >= 0 && v.UV[0] <= 1)
		assert.True(t, v.UV[1] >= 0 && v.UV[1] <= 1)
	}
}

func TestUVSphereOutwardWinding(t *testing.T) {
	m := UVSphere(12, 24)
	require.NoError(t, m.Validate())
	// 24 slices, 12 bands, minus one triangle per slice at each pole
	assert.Equal(t, 2*12*24-2*24, m.TriangleCount())
	for i, tri := range m.Triangles {
		n := faceNormal(m, tri)
		require.Greater(t, n.Len(), float32(0), "triangle %d is degenerate", i)
		require.Greater(t, n.Dot(centroid(m, tri)), float32(0), "triangle %d winds inward", i)
	}
}

func TestRingFacesUp(t *testing.T) {
	m := Ring(2, 1.2, 32)
	require.NoError(t, m.Validate())
	assert.Equal(t, 64, m.TriangleCount())
	for i, tri := range m.Triangles {
		n := faceNormal(m, tri)
		require.Greater(t, n[1], float32(0), "triangle %d faces down", i)
	}
	for _, v := range m.Vertices {
		r := v.Position.Len()
		if v.UV[0] == 0 {
			assert.InDelta(t, 1.2, r, 1e-5)
		} else {
			assert.InDelta(t, 2, r, 1e-5)
		}
	}
}

func TestTriangleMesh(t *testing.T) {
	m := Triangle(geom.XYZ(0, 0, 0), geom.XYZ(1, 0, 0), geom.XYZ(0, 1, 0))
	require.NoError(t, m.Validate())
	assert.Equal(t, geom.XYZ(0, 0, 1), m.Vertices[0].Normal)
}

func TestValidateRejectsBadIndex(t *testing.T) {
	m := &Mesh{
		Vertices:  make([]Vertex, 3),
		Triangles: [][3]uint32{{0, 1, 3}},
	}
	assert.ErrorIs(t, m.Validate(), ErrIndexOutOfRange)
}
