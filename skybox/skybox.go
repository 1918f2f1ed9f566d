// Package skybox computes the background color for a view direction.
//
// The sky is a pure function of (direction, time): a two layer FBM nebula,
// discrete hashed stars and a few periodic shooting-star streaks. Nothing
// is stored per pixel, so the result depends only on where a ray points,
// never on where the camera is.
package skybox

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/orrery/geom"
	"github.com/gogpu/orrery/noise"
	"github.com/gogpu/orrery/paint"
	"github.com/gogpu/orrery/raster"
)

var (
	nebulaOctaves = noise.Octaves{Count: 5, Lacunarity: 2.2, Gain: 0.55}
	detailOctaves = noise.Octaves{Count: 4, Lacunarity: 2, Gain: 0.5}
)

var streakColor = paint.RGB8(230, 235, 255)

// Generator evaluates the sky. It is immutable after NewGenerator and safe
// for concurrent use.
type Generator struct {
	cfg     Config
	streaks []streak
}

// NewGenerator validates cfg and precomputes the streak paths.
func NewGenerator(cfg Config) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	g := &Generator{cfg: cfg, streaks: make([]streak, cfg.StreakCount)}
	for i := range g.streaks {
		g.streaks[i] = newStreak(cfg.Seed, int32(i))
	}
	return g, nil
}

// Config returns the generator's settings.
func (g *Generator) Config() Config {
	return g.cfg
}

// ColorForRayDirection returns the sky color seen along dir at time t.
// dir need not be normalized; a zero or non-finite dir looks down -Z.
func (g *Generator) ColorForRayDirection(dir geom.Vec3, t float32) paint.RGBA {
	d := dir.NormalizeOr(geom.XYZ(0, 0, -1))
	if !geom.IsFinite(t) {
		t = 0
	}

	c := g.nebula(d, t)
	if star, ok := g.star(d); ok {
		c = star
	}
	if k := g.streakIntensity(d, t); k > 0 {
		c = c.Lerp(streakColor, k)
	}
	return paint.Sanitize(c)
}

func (g *Generator) nebula(d geom.Vec3, t float32) paint.RGBA {
	s := g.cfg.NebulaScale
	neb := noise.FBM3(g.cfg.Seed, d[0]*s, d[1]*s, d[2]*s, nebulaOctaves)
	fine := noise.FBM3(g.cfg.Seed+1, d[0]*7, d[1]*7+t*g.cfg.NebulaDrift, d[2]*7, detailOctaves)
	m := geom.Clamp(neb*0.6+fine*0.4, 0, 1)
	return g.cfg.NebulaDark.Lerp(g.cfg.NebulaBright, m)
}

// star returns the star color of the cell containing d. Every direction in
// a cell gets the same answer.
func (g *Generator) star(d geom.Vec3) (paint.RGBA, bool) {
	k := g.cfg.StarDensity
	h := noise.Hash(g.cfg.Seed^0x51a75, cellOf(d[0]*k), cellOf(d[1]*k), cellOf(d[2]*k))
	bright, dim := g.cfg.BrightThreshold, g.cfg.DimThreshold
	switch {
	case h > bright:
		a := geom.Clamp((h-bright)/(1-bright), 0, 1)
		b := (210 + 45*a) / 255
		return paint.RGB(b, b, min(1, b*1.1)), true
	case h > dim:
		a := float32(1)
		if bright > dim {
			a = (h - dim) / (bright - dim)
		}
		b := (160 + 80*a) / 255
		return paint.RGB(b, b, min(1, b*1.05)), true
	}
	return paint.RGBA{}, false
}

func cellOf(x float32) int32 {
	return int32(math32.Floor(geom.Clamp(x, -noise.MaxCoord, noise.MaxCoord)))
}

// FillRows writes the sky into every pixel of rows [y0, y1) that no
// geometry covered and returns the number of pixels written. Disjoint row
// ranges may be filled concurrently.
func (g *Generator) FillRows(fb *raster.Framebuffer, fr geom.Frustum, t float32, y0, y1 int) int {
	w, h := fb.Width(), fb.Height()
	y0, y1 = max(y0, 0), min(y1, h)
	n := 0
	for y := y0; y < y1; y++ {
		v := (float32(y) + 0.5) / float32(h)
		for x := range w {
			if fb.Covered(x, y) {
				continue
			}
			u := (float32(x) + 0.5) / float32(w)
			fb.SetPixel(x, y, g.ColorForRayDirection(fr.Ray(u, v), t))
			n++
		}
	}
	return n
}
