// Package paint defines the normalized color type shared by the shaders,
// the skybox and the framebuffer, plus named palettes and the star
// temperature gradient.
package paint

import (
	"image/color"

	"github.com/chewxy/math32"
	"github.com/lucasb-eyer/go-colorful"
)

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1].
type RGBA struct {
	R, G, B, A float32
}

// Common colors.
var (
	Black       = RGBA{0, 0, 0, 1}
	White       = RGBA{1, 1, 1, 1}
	Transparent = RGBA{0, 0, 0, 0}
)

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float32) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1}
}

// RGB8 creates an opaque color from 8 bit components.
func RGB8(r, g, b uint8) RGBA {
	return RGBA{R: float32(r) / 255, G: float32(g) / 255, B: float32(b) / 255, A: 1}
}

// RGBA8 builds a color from 8 bit components.
func RGBA8(r, g, b, a uint8) RGBA {
	return RGBA{R: float32(r) / 255, G: float32(g) / 255, B: float32(b) / 255, A: float32(a) / 255}
}

// Hex parses "#RRGGBB" or "#RGB" into an opaque color.
func Hex(s string) (RGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Black, err
	}
	return FromColorful(c), nil
}

// MustHex is like Hex but panics on malformed input. It is meant for
// package level palette tables.
func MustHex(s string) RGBA {
	c, err := Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// FromColorful converts a go-colorful color to an opaque RGBA.
func FromColorful(c colorful.Color) RGBA {
	return RGBA{R: float32(c.R), G: float32(c.G), B: float32(c.B), A: 1}
}

// Colorful converts c to a go-colorful color, dropping alpha.
func (c RGBA) Colorful() colorful.Color {
	return colorful.Color{R: float64(c.R), G: float64(c.G), B: float64(c.B)}
}

// FromColor converts a standard color.Color to RGBA.
func FromColor(c color.Color) RGBA {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return Transparent
	}
	// color.Color is premultiplied
	return RGBA{
		R: float32(r) / float32(a),
		G: float32(g) / float32(a),
		B: float32(b) / float32(a),
		A: float32(a) / 65535,
	}
}

// NRGBA converts c to an 8 bit non-premultiplied color.
func (c RGBA) NRGBA() color.NRGBA {
	return color.NRGBA{R: to8(c.R), G: to8(c.G), B: to8(c.B), A: to8(c.A)}
}

// Bytes returns the 8 bit components of c.
func (c RGBA) Bytes() (r, g, b, a uint8) {
	return to8(c.R), to8(c.G), to8(c.B), to8(c.A)
}

// Add returns c + o, keeping the alpha of c.
func (c RGBA) Add(o RGBA) RGBA {
	return RGBA{R: c.R + o.R, G: c.G + o.G, B: c.B + o.B, A: c.A}
}

// Scale multiplies the color channels by s, keeping alpha.
func (c RGBA) Scale(s float32) RGBA {
	return RGBA{R: c.R * s, G: c.G * s, B: c.B * s, A: c.A}
}

// Mul multiplies two colors channel by channel.
func (c RGBA) Mul(o RGBA) RGBA {
	return RGBA{R: c.R * o.R, G: c.G * o.G, B: c.B * o.B, A: c.A * o.A}
}

// Lerp performs linear interpolation between two colors.
func (c RGBA) Lerp(other RGBA, t float32) RGBA {
	return RGBA{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

// Clamp restricts every component to [0, 1].
func (c RGBA) Clamp() RGBA {
	return RGBA{R: clamp01(c.R), G: clamp01(c.G), B: clamp01(c.B), A: clamp01(c.A)}
}

// IsFinite reports whether no component is NaN or infinite.
func (c RGBA) IsFinite() bool {
	return finite(c.R) && finite(c.G) && finite(c.B) && finite(c.A)
}

// Sanitize clamps c to [0, 1]. NaN channels become 0 and a NaN alpha
// becomes fully opaque, so a shader fault can never leak into the
// framebuffer as a non-finite value.
func Sanitize(c RGBA) RGBA {
	if math32.IsNaN(c.A) {
		c.A = 1
	}
	return c.Clamp()
}

// Luminance returns the Rec. 709 relative luminance of c.
func (c RGBA) Luminance() float32 {
	return 0.2126*c.R + 0.7152*c.G + 0.0722*c.B
}

func finite(f float32) bool {
	return !math32.IsNaN(f) && !math32.IsInf(f, 0)
}

// clamp01 restricts x to [0, 1]; NaN maps to 0.
func clamp01(x float32) float32 {
	if !(x >= 0) {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

func to8(x float32) uint8 {
	return uint8(clamp01(x)*255 + 0.5)
}
