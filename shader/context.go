package shader

import (
	"github.com/gogpu/orrery/geom"
)

// Sun control ranges.
const (
	MinIntensity = 0.2
	MaxIntensity = 2.0
)

// Context is the per-frame uniform bundle. It is built once per frame with
// NewContext and is read-only afterwards.
type Context struct {
	// Time is the elapsed simulation time in seconds.
	Time float32
	// LightDir is the unit direction from a surface toward the light, used
	// when PointLight is false.
	LightDir geom.Vec3
	// SunPosition is the world position of the light, used when
	// PointLight is true.
	SunPosition geom.Vec3
	PointLight  bool
	CameraPos   geom.Vec3
	// SunTemperature in [0, 1]: 0 is red, 1 is blue-white.
	SunTemperature float32
	// SunIntensity in [MinIntensity, MaxIntensity].
	SunIntensity float32
}

// NewContext builds a directional-light context. Controls are clamped to
// their ranges and non-finite values replaced so shaders see sane uniforms.
func NewContext(time float32, lightDir, cameraPos geom.Vec3, temperature, intensity float32) Context {
	if !geom.IsFinite(time) {
		time = 0
	}
	if !cameraPos.IsFinite() {
		cameraPos = geom.Vec3{}
	}
	return Context{
		Time:           time,
		LightDir:       lightDir.NormalizeOr(geom.XYZ(0, 1, 0)),
		CameraPos:      cameraPos,
		SunTemperature: geom.Clamp(temperature, 0, 1),
		SunIntensity:   geom.Clamp(intensity, MinIntensity, MaxIntensity),
	}
}

// WithSun returns a copy of c lit by a point light at pos.
func (c Context) WithSun(pos geom.Vec3) Context {
	c.SunPosition = pos
	c.PointLight = true
	return c
}

// LightFrom returns the unit direction from world toward the light.
func (c *Context) LightFrom(world geom.Vec3) geom.Vec3 {
	if c.PointLight {
		return c.SunPosition.Sub(world).NormalizeOr(c.LightDir)
	}
	return c.LightDir
}

// ViewFrom returns the unit direction from world toward the camera.
func (c *Context) ViewFrom(world geom.Vec3) geom.Vec3 {
	return c.CameraPos.Sub(world).NormalizeOr(geom.XYZ(0, 0, 1))
}
