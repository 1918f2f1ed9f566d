package shader

import (
	"github.com/gogpu/orrery/mesh"
	"github.com/gogpu/orrery/paint"
)

// Material holds the per-entity shading parameters. It is fixed when the
// entity is created; the variant never changes at runtime.
type Material struct {
	Variant Variant
	Palette paint.Palette
	// Color is used by Flat and as the fallback when Palette is empty.
	Color paint.RGBA
	// Lit selects Lambert lighting for BandedGas; other variants ignore it.
	Lit  bool
	Seed uint32

	// CraterThreshold is the noise level above which a Rocky surface is
	// inside a crater, and below which a Ring has a gap.
	CraterThreshold float32
	// CraterDensity is the crater noise frequency on the unit sphere.
	CraterDensity float32
	// BandFrequency is the angular frequency of gas and ring bands.
	BandFrequency float32
	// Turbulence scales the phase distortion of gas bands.
	Turbulence float32
	// FlareAmplitude is the maximum radial displacement of a Solar vertex.
	FlareAmplitude float32
	// Ambient is the light floor added to the Lambert term.
	Ambient float32
}

// SolarMaterial returns the star material.
func SolarMaterial(seed uint32) Material {
	return Material{
		Variant:        Solar,
		Color:          paint.RGB(1, 0.8, 0.3),
		Seed:           seed,
		FlareAmplitude: 0.06,
	}
}

// RockyMaterial returns a cratered surface colored from p.
func RockyMaterial(p paint.Palette, seed uint32) Material {
	return Material{
		Variant:         Rocky,
		Palette:         p,
		Color:           paint.RGB(0.5, 0.5, 0.5),
		Seed:            seed,
		CraterThreshold: 0.72,
		CraterDensity:   6,
	}
}

// GasMaterial returns a banded giant colored from p.
func GasMaterial(p paint.Palette, seed uint32, lit bool) Material {
	return Material{
		Variant:       BandedGas,
		Palette:       p,
		Color:         paint.RGB(0.8, 0.6, 0.4),
		Lit:           lit,
		Seed:          seed,
		BandFrequency: 14,
		Turbulence:    1.6,
		Ambient:       0.08,
	}
}

// RingMaterial returns a planetary ring colored from p.
func RingMaterial(p paint.Palette, seed uint32) Material {
	return Material{
		Variant:         Ring,
		Palette:         p,
		Color:           paint.RGB(0.7, 0.65, 0.55),
		Seed:            seed,
		CraterThreshold: 0.3,
		BandFrequency:   60,
		Ambient:         0.15,
	}
}

// FlatMaterial returns an unlit constant color.
func FlatMaterial(c paint.RGBA) Material {
	return Material{Variant: Flat, Color: c}
}

// Validate reports whether the material names a known variant.
func (m *Material) Validate() error {
	if !m.Variant.Valid() {
		return &VariantError{Variant: m.Variant}
	}
	return nil
}

// Displace runs the vertex stage of the material's variant. Unknown
// variants pass the vertex through.
func (m *Material) Displace(v mesh.Vertex, ctx *Context) mesh.Vertex {
	if !m.Variant.Valid() {
		return v
	}
	return programs[m.Variant].Vertex(v, m, ctx)
}

// Shade runs the fragment stage of the material's variant. The result is
// always finite and clamped to [0, 1]. Unknown variants shade as Color.
func (m *Material) Shade(in *Fragment, ctx *Context) paint.RGBA {
	if !m.Variant.Valid() {
		return paint.Sanitize(m.Color)
	}
	return paint.Sanitize(programs[m.Variant].Fragment(in, m, ctx))
}

// albedo samples the palette at t, falling back to Color.
func (m *Material) albedo(t float32) paint.RGBA {
	if m.Palette.Len() == 0 {
		return m.Color
	}
	return m.Palette.At(t)
}
