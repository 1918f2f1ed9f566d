package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/chewxy/math32"

	"github.com/gogpu/orrery/paint"
)

// MaxDimension bounds the width and height of a Framebuffer.
const MaxDimension = 1 << 14

// Framebuffer is a color buffer plus a depth buffer of equal size.
// It is not safe for concurrent writes to the same pixel.
type Framebuffer struct {
	width  int
	height int
	color  []uint8 // RGBA, 4 bytes per pixel
	depth  []float32
}

// NewFramebuffer allocates a cleared framebuffer.
func NewFramebuffer(width, height int) (*Framebuffer, error) {
	fb := &Framebuffer{}
	if err := fb.Resize(width, height); err != nil {
		return nil, err
	}
	return fb, nil
}

// Resize reallocates both buffers for the new dimensions, reusing storage
// where it is large enough, and clears them to transparent black and +Inf.
func (f *Framebuffer) Resize(width, height int) error {
	if width <= 0 || height <= 0 || width > MaxDimension || height > MaxDimension {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	n := width * height
	if cap(f.color) >= n*4 {
		f.color = f.color[:n*4]
	} else {
		f.color = make([]uint8, n*4)
	}
	if cap(f.depth) >= n {
		f.depth = f.depth[:n]
	} else {
		f.depth = make([]float32, n)
	}
	f.width, f.height = width, height
	f.Clear(paint.Transparent)
	return nil
}

// Check verifies that both buffers match the dimensions.
func (f *Framebuffer) Check() error {
	n := f.width * f.height
	if f.width <= 0 || f.height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, f.width, f.height)
	}
	if len(f.color) != n*4 || len(f.depth) != n {
		return fmt.Errorf("%w: %dx%d has %d color bytes and %d depth samples",
			ErrBufferMismatch, f.width, f.height, len(f.color), len(f.depth))
	}
	return nil
}

// Width returns the width in pixels.
func (f *Framebuffer) Width() int {
	return f.width
}

// Height returns the height in pixels.
func (f *Framebuffer) Height() int {
	return f.height
}

// Data returns the raw color bytes (RGBA, row-major, row 0 at the top).
func (f *Framebuffer) Data() []uint8 {
	return f.color
}

// Clear fills the color buffer with c and resets depth to +Inf.
func (f *Framebuffer) Clear(c paint.RGBA) {
	r, g, b, a := paint.Sanitize(c).Bytes()
	for i := 0; i < len(f.color); i += 4 {
		f.color[i+0] = r
		f.color[i+1] = g
		f.color[i+2] = b
		f.color[i+3] = a
	}
	inf := math32.Inf(1)
	for i := range f.depth {
		f.depth[i] = inf
	}
}

func (f *Framebuffer) inBounds(x, y int) bool {
	return x >= 0 && x < f.width && y >= 0 && y < f.height
}

// SetPixel writes a color without touching depth. Out of range writes are
// ignored.
func (f *Framebuffer) SetPixel(x, y int, c paint.RGBA) {
	if !f.inBounds(x, y) {
		return
	}
	i := (y*f.width + x) * 4
	f.color[i+0], f.color[i+1], f.color[i+2], f.color[i+3] = paint.Sanitize(c).Bytes()
}

// RGBAAt returns the color of a pixel, or transparent when out of range.
func (f *Framebuffer) RGBAAt(x, y int) paint.RGBA {
	if !f.inBounds(x, y) {
		return paint.Transparent
	}
	i := (y*f.width + x) * 4
	return paint.RGBA8(f.color[i+0], f.color[i+1], f.color[i+2], f.color[i+3])
}

// DepthAt returns the stored depth of a pixel, or +Inf when out of range.
func (f *Framebuffer) DepthAt(x, y int) float32 {
	if !f.inBounds(x, y) {
		return math32.Inf(1)
	}
	return f.depth[y*f.width+x]
}

// Covered reports whether any geometry was written to the pixel since the
// last Clear.
func (f *Framebuffer) Covered(x, y int) bool {
	return !math32.IsInf(f.DepthAt(x, y), 1)
}

// CoveredCount returns the number of covered pixels.
func (f *Framebuffer) CoveredCount() int {
	n := 0
	for _, d := range f.depth {
		if !math32.IsInf(d, 1) {
			n++
		}
	}
	return n
}

// ToImage copies the color buffer into a new image.RGBA.
func (f *Framebuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.width, f.height))
	copy(img.Pix, f.color)
	return img
}

// CopyFrom replaces the color buffer with the pixels of img, which must
// have the framebuffer's dimensions. Depth is untouched.
func (f *Framebuffer) CopyFrom(img *image.RGBA) error {
	b := img.Bounds()
	if b.Dx() != f.width || b.Dy() != f.height {
		return fmt.Errorf("%w: image is %dx%d, framebuffer is %dx%d",
			ErrBufferMismatch, b.Dx(), b.Dy(), f.width, f.height)
	}
	row := f.width * 4
	for y := range f.height {
		copy(f.color[y*row:(y+1)*row], img.Pix[y*img.Stride:y*img.Stride+row])
	}
	return nil
}

// SavePNG saves the color buffer to a PNG file.
func (f *Framebuffer) SavePNG(path string) error {
	file, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = file.Close()
	}()
	return png.Encode(file, f.ToImage())
}

// At implements the image.Image interface.
func (f *Framebuffer) At(x, y int) color.Color {
	return f.RGBAAt(x, y).NRGBA()
}

// Bounds implements the image.Image interface.
func (f *Framebuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, f.width, f.height)
}

// ColorModel implements the image.Image interface.
func (f *Framebuffer) ColorModel() color.Model {
	return color.NRGBAModel
}

// Set implements draw.Image so the standard library and x/image can draw
// overlays directly into the color buffer.
func (f *Framebuffer) Set(x, y int, c color.Color) {
	f.SetPixel(x, y, paint.FromColor(c))
}
