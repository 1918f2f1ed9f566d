package shader

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/orrery/geom"
	"github.com/gogpu/orrery/noise"
	"github.com/gogpu/orrery/paint"
)

// ringFragment bands the annulus by radius (UV.X, 0 inner to 1 outer) and
// darkens the gaps where 1D noise drops below the threshold. Both faces
// are lit.
func ringFragment(in *Fragment, m *Material, ctx *Context) paint.RGBA {
	r := geom.Clamp(in.UV[0], 0, 1)

	tone := noise.FBM1(m.Seed, r*12, detailOctaves)
	c := m.albedo(tone)
	c = c.Scale(0.85 + 0.15*math32.Sin(r*m.BandFrequency))
	if noise.Value1(m.Seed^craterSalt, r*40) < m.CraterThreshold {
		c = c.Scale(0.25)
	}
	c.A = 1

	n := in.Normal.NormalizeOr(geom.XYZ(0, 1, 0))
	if n.Dot(ctx.ViewFrom(in.World)) < 0 {
		n = n.Neg()
	}
	return c.Scale(lambert(n, ctx.LightFrom(in.World), m.Ambient))
}
