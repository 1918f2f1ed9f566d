package shader

import (
	"github.com/gogpu/orrery/geom"
	"github.com/gogpu/orrery/noise"
	"github.com/gogpu/orrery/paint"
)

const craterSalt = 0x9e3779b9

var detailOctaves = noise.Octaves{Count: 5, Lacunarity: 2, Gain: 0.5}

// rockyFragment ignores ctx.Time: craters and albedo are sampled at the
// object space direction only.
func rockyFragment(in *Fragment, m *Material, ctx *Context) paint.RGBA {
	dir := in.Object.NormalizeOr(geom.XYZ(0, 1, 0))
	n := in.Normal.NormalizeOr(dir)

	detail := noise.FBM3(m.Seed, dir[0]*4, dir[1]*4, dir[2]*4, detailOctaves)
	albedo := m.albedo(detail).Scale(1 - 0.45*craterMask(dir, m))
	albedo.A = 1

	return albedo.Scale(lambert(n, ctx.LightFrom(in.World), m.Ambient))
}

// craterMask is 1 inside a crater and 0 outside, with a narrow soft rim.
func craterMask(dir geom.Vec3, m *Material) float32 {
	d := m.CraterDensity
	c := noise.Value3(m.Seed^craterSalt, dir[0]*d, dir[1]*d, dir[2]*d)
	return geom.Smoothstep(m.CraterThreshold, m.CraterThreshold+0.04, c)
}

// lambert returns ambient + max(0, n·l), clamped to 1.
func lambert(n, l geom.Vec3, ambient float32) float32 {
	d := n.Dot(l)
	if !(d > 0) {
		d = 0
	}
	return geom.Clamp(ambient+d, 0, 1)
}
