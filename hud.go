package orrery

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/orrery/shader"
)

const (
	hudMargin     = 6
	hudLineHeight = 15
)

var hudColor = color.NRGBA{R: 220, G: 230, B: 255, A: 255}

// hudPrinter groups digits so large counters stay readable.
var hudPrinter = message.NewPrinter(language.English)

// hudLines returns the overlay text for a frame.
func hudLines(st *FrameStats, sctx *shader.Context) []string {
	return []string{
		hudPrinter.Sprintf("frame %d  t=%.2fs", st.Frame, st.Time),
		hudPrinter.Sprintf("tris %d/%d  culled %d", st.Raster.Drawn(), st.Raster.Triangles, st.Raster.Culled),
		hudPrinter.Sprintf("fragments %d  sky %d", st.Raster.Written, st.SkyPixels),
		hudPrinter.Sprintf("sun temp %.2f  intensity %.2f", sctx.SunTemperature, sctx.SunIntensity),
	}
}

// drawHUD prints the frame statistics into the top-left corner of the
// color buffer. Depth is left untouched.
func (r *Renderer) drawHUD(st *FrameStats, sctx *shader.Context) {
	face := basicfont.Face7x13
	d := font.Drawer{
		Dst:  r.fb,
		Src:  image.NewUniform(hudColor),
		Face: face,
	}
	ascent := face.Metrics().Ascent.Ceil()
	for i, line := range hudLines(st, sctx) {
		d.Dot = fixed.P(hudMargin, hudMargin+ascent+i*hudLineHeight)
		d.DrawString(line)
	}
}
