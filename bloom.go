package orrery

import (
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/blend"
	"github.com/anthonynsimon/bild/blur"

	"github.com/gogpu/orrery/internal/parallel"
	"github.com/gogpu/orrery/paint"
)

// Bloom configures the glow post-process: pixels brighter than Threshold
// are blurred and added back on top of the frame.
type Bloom struct {
	// Threshold is the luminance in [0, 1) above which a pixel glows.
	Threshold float32 `yaml:"threshold"`
	// Radius is the Gaussian blur radius in pixels.
	Radius float64 `yaml:"radius"`
	// Strength scales the glow before it is added.
	Strength float32 `yaml:"strength"`
}

// DefaultBloom returns a glow tuned for the sun.
func DefaultBloom() Bloom {
	return Bloom{Threshold: 0.7, Radius: 6, Strength: 0.8}
}

func (b Bloom) enabled() bool {
	return b.Radius > 0 && b.Strength > 0 && b.Threshold >= 0 && b.Threshold < 1
}

// brightPass writes the glowing part of src rows [band.Y0, band.Y1) into
// dst. Everything else becomes opaque black so the add blend is a no-op
// there.
func (b Bloom) brightPass(dst, src *image.RGBA, band parallel.Band) {
	w := src.Bounds().Dx()
	for y := band.Y0; y < band.Y1; y++ {
		for x := range w {
			c := paint.FromColor(src.RGBAAt(x, y))
			k := (c.Luminance() - b.Threshold) / (1 - b.Threshold)
			if k <= 0 {
				dst.SetRGBA(x, y, color.RGBA{A: 255})
				continue
			}
			g := c.Scale(k * b.Strength)
			g.A = 1
			r, gg, bb, a := paint.Sanitize(g).Bytes()
			dst.SetRGBA(x, y, color.RGBA{R: r, G: gg, B: bb, A: a})
		}
	}
}

// applyBloom runs the bright pass on the worker pool, blurs it and adds it
// to the color buffer.
func (r *Renderer) applyBloom(b Bloom) error {
	if !b.enabled() {
		return nil
	}
	src := r.fb.ToImage()
	bright := image.NewRGBA(src.Bounds())
	r.pool.ForEachBand(r.fb.Height(), func(band parallel.Band) {
		b.brightPass(bright, src, band)
	})
	glow := blur.Gaussian(bright, b.Radius)
	return r.fb.CopyFrom(blend.Add(src, glow))
}
