package raster

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/orrery/geom"
	"github.com/gogpu/orrery/shader"
)

// CullMode selects which triangle facing is discarded.
type CullMode uint8

const (
	// CullBack discards triangles that are clockwise on screen.
	CullBack CullMode = iota
	// CullNone draws both faces, for double-sided surfaces such as rings.
	CullNone
	// CullFront discards triangles that are counter-clockwise on screen.
	CullFront
)

// String returns the mode name.
func (m CullMode) String() string {
	switch m {
	case CullBack:
		return "back"
	case CullNone:
		return "none"
	case CullFront:
		return "front"
	default:
		return "unknown"
	}
}

// Stats counts what happened to the triangles and fragments submitted
// since the last Reset.
type Stats struct {
	Triangles  int // submitted
	Degenerate int // zero or non-finite area
	Culled     int
	Clipped    int // a vertex on or behind the eye plane
	Tested     int // fragments inside a triangle
	Written    int // fragments that passed the depth test
}

// Add accumulates o into s.
func (s *Stats) Add(o Stats) {
	s.Triangles += o.Triangles
	s.Degenerate += o.Degenerate
	s.Culled += o.Culled
	s.Clipped += o.Clipped
	s.Tested += o.Tested
	s.Written += o.Written
}

// Drawn returns the number of triangles that reached pixel traversal.
func (s Stats) Drawn() int {
	return s.Triangles - s.Degenerate - s.Culled - s.Clipped
}

// Rasterizer draws triangles into a Framebuffer. It is not safe for
// concurrent use.
type Rasterizer struct {
	fb    *Framebuffer
	stats Stats
}

// NewRasterizer returns a rasterizer targeting fb.
func NewRasterizer(fb *Framebuffer) *Rasterizer {
	return &Rasterizer{fb: fb}
}

// Framebuffer returns the render target.
func (r *Rasterizer) Framebuffer() *Framebuffer {
	return r.fb
}

// Stats returns the counters accumulated since the last Reset.
func (r *Rasterizer) Stats() Stats {
	return r.stats
}

// Reset zeroes the counters.
func (r *Rasterizer) Reset() {
	r.stats = Stats{}
}

// SignedArea returns twice the signed area of the triangle in pixel space.
// With row 0 at the top, a triangle that is counter-clockwise as seen by
// the viewer has a negative area.
func SignedArea(a, b, c geom.Vec2) float32 {
	return edge(a, b, c)
}

func edge(a, b, p geom.Vec2) float32 {
	return (b[0]-a[0])*(p[1]-a[1]) - (b[1]-a[1])*(p[0]-a[0])
}

// Barycentric returns the weights of p relative to triangle abc,
// renormalized to sum to 1. ok is false for a degenerate triangle.
// Weights are negative when p is outside.
func Barycentric(a, b, c, p geom.Vec2) (w0, w1, w2 float32, ok bool) {
	area := edge(a, b, c)
	if !usableArea(area) {
		return 0, 0, 0, false
	}
	w0 = edge(b, c, p) / area
	w1 = edge(c, a, p) / area
	w2 = edge(a, b, p) / area
	w0, w1, w2 = renormalize(w0, w1, w2)
	return w0, w1, w2, true
}

func usableArea(area float32) bool {
	return geom.IsFinite(area) && math32.Abs(area) > geom.Epsilon
}

func renormalize(w0, w1, w2 float32) (float32, float32, float32) {
	s := w0 + w1 + w2
	if s == 1 || !(s > 0) {
		return w0, w1, w2
	}
	return w0 / s, w1 / s, w2 / s
}

// DrawClip projects a clip space triangle and draws it. Triangles with a
// vertex on or behind the eye plane are skipped.
func (r *Rasterizer) DrawClip(a, b, c *Vertex, viewport geom.Mat4, fs shader.Shader, ctx *shader.Context, cull CullMode) int {
	sa, okA := a.Project(viewport)
	sb, okB := b.Project(viewport)
	sc, okC := c.Project(viewport)
	if !okA || !okB || !okC {
		r.stats.Triangles++
		r.stats.Clipped++
		return 0
	}
	return r.DrawTriangle(&sa, &sb, &sc, fs, ctx, cull)
}

// DrawTriangle rasterizes one screen space triangle and returns the number
// of pixels written. Each pixel whose centre lies inside the triangle and
// whose interpolated depth is strictly less than the stored depth is
// shaded by fs and written to both buffers.
func (r *Rasterizer) DrawTriangle(a, b, c *ScreenVertex, fs shader.Shader, ctx *shader.Context, cull CullMode) int {
	r.stats.Triangles++

	pa, pb, pc := geom.XY(a.X, a.Y), geom.XY(b.X, b.Y), geom.XY(c.X, c.Y)
	area := edge(pa, pb, pc)
	if !usableArea(area) {
		r.stats.Degenerate++
		return 0
	}
	if (cull == CullBack && area > 0) || (cull == CullFront && area < 0) {
		r.stats.Culled++
		return 0
	}

	fb := r.fb
	fw, fh := float32(fb.width), float32(fb.height)
	minX := int(math32.Floor(geom.Clamp(min(a.X, b.X, c.X), 0, fw)))
	minY := int(math32.Floor(geom.Clamp(min(a.Y, b.Y, c.Y), 0, fh)))
	maxX := int(math32.Ceil(geom.Clamp(max(a.X, b.X, c.X), 0, fw-1)))
	maxY := int(math32.Ceil(geom.Clamp(max(a.Y, b.Y, c.Y), 0, fh-1)))

	invArea := 1 / area
	written := 0
	var in shader.Fragment
	for y := minY; y <= maxY; y++ {
		py := float32(y) + 0.5
		for x := minX; x <= maxX; x++ {
			p := geom.XY(float32(x)+0.5, py)
			w0 := edge(pb, pc, p) * invArea
			w1 := edge(pc, pa, p) * invArea
			w2 := edge(pa, pb, p) * invArea
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}
			w0, w1, w2 = renormalize(w0, w1, w2)
			r.stats.Tested++

			z := w0*a.Z + w1*b.Z + w2*c.Z
			i := y*fb.width + x
			if z < -1 || z > 1 || !(z < fb.depth[i]) {
				continue
			}

			p0, p1, p2 := renormalize(w0*a.InvW, w1*b.InvW, w2*c.InvW)
			in = shader.Fragment{
				Varyings: shader.Blend(&a.Varyings, &b.Varyings, &c.Varyings, p0, p1, p2),
				Depth:    z,
				X:        x,
				Y:        y,
			}
			fb.depth[i] = z
			fb.SetPixel(x, y, fs(&in, ctx))
			written++
		}
	}
	r.stats.Written += written
	return written
}
