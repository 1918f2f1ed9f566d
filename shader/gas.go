package shader

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/orrery/geom"
	"github.com/gogpu/orrery/noise"
	"github.com/gogpu/orrery/paint"
)

var stormOctaves = noise.Octaves{Count: 4, Lacunarity: 2.1, Gain: 0.5}

// gasFragment colors equator-parallel bands from the object space height,
// bent by animated turbulence.
func gasFragment(in *Fragment, m *Material, ctx *Context) paint.RGBA {
	t := ctx.Time
	dir := in.Object.NormalizeOr(geom.XYZ(0, 1, 0))

	turb := noise.FBM3(m.Seed, dir[0]*3+t*0.1, dir[1]*3, dir[2]*3-t*0.07, stormOctaves)
	phase := dir[1]*m.BandFrequency + noise.Signed(turb)*m.Turbulence
	band := 0.5 + 0.5*math32.Sin(phase)

	c := m.albedo(band)
	c.A = 1
	if !m.Lit {
		return c
	}
	n := in.Normal.NormalizeOr(dir)
	return c.Scale(lambert(n, ctx.LightFrom(in.World), m.Ambient))
}
