package shader

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/orrery/geom"
	"github.com/gogpu/orrery/mesh"
	"github.com/gogpu/orrery/noise"
	"github.com/gogpu/orrery/paint"
)

var (
	flareOctaves      = noise.Octaves{Count: 4, Lacunarity: 2, Gain: 0.5}
	turbulenceOctaves = noise.Octaves{Count: 5, Lacunarity: 2, Gain: 0.55}
)

// solarVertex pushes the vertex along its normal by a signed FBM flare.
func solarVertex(v mesh.Vertex, m *Material, ctx *Context) mesh.Vertex {
	p := v.Position.Mul(0.25)
	n := noise.FBM3(m.Seed, p[0], p[1], p[2]+ctx.Time*0.2, flareOctaves)
	dir := v.Normal.NormalizeOr(v.Position.Normalize())
	v.Position = v.Position.Add(dir.Mul(noise.Signed(n) * m.FlareAmplitude))
	return v
}

// solarFragment is emissive: a temperature gradient modulated by looping
// turbulence and sharp emission spikes.
func solarFragment(in *Fragment, m *Material, ctx *Context) paint.RGBA {
	t := ctx.Time
	dir := in.Object.NormalizeOr(geom.XYZ(0, 1, 0))
	n := in.Normal.NormalizeOr(dir)

	facing := geom.Clamp(n.Dot(ctx.ViewFrom(in.World)), 0, 1)
	turb := noise.FBM3(m.Seed, dir[0]*3, dir[1]*3, dir[2]*3+t*0.3, turbulenceOctaves)
	intensity := geom.Clamp((facing*0.7+turb*0.6)*ctx.SunIntensity, 0, 1)

	base := paint.Temperature(geom.Clamp((intensity+ctx.SunTemperature*0.8)*0.7, 0, 1))
	spike := math32.Abs(noise.Signed(noise.Value3(m.Seed+1, dir[0]*10+t*1.7, dir[1]*10-t*1.3, t*0.5)))
	emission := geom.Clamp(0.6*intensity+0.8*spike, 0, 1.5)

	out := base.Scale(emission)
	out.A = 1
	return out
}
