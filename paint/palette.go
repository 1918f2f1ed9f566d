package paint

import "github.com/lucasb-eyer/go-colorful"

// Palette is an ordered gradient of colors sampled with At.
type Palette struct {
	Name  string
	Stops []RGBA
}

// NewPalette builds a palette from hex color strings.
func NewPalette(name string, hexes ...string) Palette {
	p := Palette{Name: name, Stops: make([]RGBA, len(hexes))}
	for i, h := range hexes {
		p.Stops[i] = MustHex(h)
	}
	return p
}

// Named palettes used by the sample system.
var (
	Rocky     = NewPalette("rocky", "#3b3430", "#6e6258", "#8f8272", "#b3a58f")
	Lunar     = NewPalette("lunar", "#2e2e30", "#6a6a6d", "#a3a3a6", "#d0d0d2")
	Martian   = NewPalette("martian", "#4a1c0e", "#8a3a1c", "#b8562c", "#d9905b")
	Jovian    = NewPalette("jovian", "#6b4a34", "#c49a6c", "#eadbc1", "#b5653a", "#f4ecdf")
	Saturnine = NewPalette("saturnine", "#8c7650", "#d8c08c", "#efe2bd", "#b59a63")
	Neptunian = NewPalette("neptunian", "#142a6b", "#2d5bb8", "#5a8fe0", "#a9c9f2")
	Icy       = NewPalette("icy", "#4d6b80", "#8fb3c9", "#cfe3ee", "#f4fbff")
	RingDust  = NewPalette("ring", "#4a4032", "#9e8c6c", "#d6c7a1", "#7a6a52")
)

// Len returns the number of stops.
func (p Palette) Len() int {
	return len(p.Stops)
}

// At samples the gradient at t in [0, 1]. Stops are blended in CIE L*a*b*
// so intermediate colors keep their perceived lightness.
func (p Palette) At(t float32) RGBA {
	switch len(p.Stops) {
	case 0:
		return Black
	case 1:
		return p.Stops[0]
	}
	t = clamp01(t)
	pos := t * float32(len(p.Stops)-1)
	i := int(pos)
	if i >= len(p.Stops)-1 {
		return p.Stops[len(p.Stops)-1]
	}
	f := pos - float32(i)
	if f == 0 {
		return p.Stops[i]
	}
	return BlendLab(p.Stops[i], p.Stops[i+1], f)
}

// BlendLab interpolates two colors in CIE L*a*b* space.
func BlendLab(a, b RGBA, t float32) RGBA {
	c := a.Colorful().BlendLab(b.Colorful(), float64(clamp01(t))).Clamped()
	out := FromColorful(c)
	out.A = a.A + (b.A-a.A)*t
	return out
}

// Hue returns a copy of c rotated in HCL hue by degrees.
func Hue(c RGBA, degrees float64) RGBA {
	h, chroma, l := c.Colorful().Hcl()
	out := FromColorful(colorful.Hcl(h+degrees, chroma, l).Clamped())
	out.A = c.A
	return out
}
