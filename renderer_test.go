package orrery

import (
	"bytes"
	"context"
	"errors"
	"image/color"
	"log/slog"
	"math"
	"strings"
	"testing"

	"github.com/gogpu/orrery/geom"
	"github.com/gogpu/orrery/mesh"
	"github.com/gogpu/orrery/paint"
	"github.com/gogpu/orrery/raster"
	"github.com/gogpu/orrery/shader"
)

var background = paint.RGB8(20, 30, 40)

func frameContext() shader.Context {
	return shader.NewContext(1, geom.XYZ(0, 0, 1), geom.XYZ(0, 0, 2), 0.5, 1)
}

// unitTriangle returns an equilateral triangle of side s centred on the
// origin in the plane z, facing +Z.
func unitTriangle(name string, s, z float32, c paint.RGBA) Entity {
	h := s / float32(math.Sqrt(3))
	m := mesh.Triangle(geom.XYZ(0, h, z), geom.XYZ(-s/2, -h/2, z), geom.XYZ(s/2, -h/2, z))
	return NewEntity(name, m, shader.FlatMaterial(c))
}

func newTestRenderer(t *testing.T, w, h int, opts ...Option) *Renderer {
	t.Helper()
	r, err := New(w, h, append([]Option{WithWorkers(2)}, opts...)...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { _ = r.Close() })
	return r
}

func TestRenderTriangleEndToEnd(t *testing.T) {
	r := newTestRenderer(t, 100, 100, WithSkybox(nil), WithBackground(background))
	cam := geom.DefaultCamera(geom.XYZ(0, 0, 2))
	red := paint.RGB(1, 0, 0)
	blue := paint.RGB(0, 0, 1)

	fb, err := r.Render(context.Background(), []Entity{unitTriangle("far", 1, 0, red)}, cam, frameContext())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	c := red.NRGBA()
	b := background.NRGBA()
	footprint := map[[2]int]bool{}
	for y := range 100 {
		for x := range 100 {
			switch got := fb.At(x, y); got {
			case c:
				footprint[[2]int{x, y}] = true
			case b:
			default:
				t.Fatalf("pixel (%d,%d) = %v, want triangle or background", x, y, got)
			}
		}
	}
	if len(footprint) < 200 {
		t.Fatalf("footprint has %d pixels", len(footprint))
	}
	if !footprint[[2]int{50, 50}] {
		t.Error("triangle is not centred")
	}
	if st := r.Stats(); st.Raster.Written != len(footprint) || st.SkyPixels != 100*100-len(footprint) {
		t.Errorf("stats = %+v, footprint %d", st, len(footprint))
	}

	// A nearer triangle that covers the footprint hides the first one,
	// whichever order they are drawn in.
	near := unitTriangle("near", 0.8, 0.5, blue)
	for _, order := range [][]Entity{
		{unitTriangle("far", 1, 0, red), near},
		{near, unitTriangle("far", 1, 0, red)},
	} {
		fb, err = r.Render(context.Background(), order, cam, frameContext())
		if err != nil {
			t.Fatal(err)
		}
		for px := range footprint {
			if got := fb.At(px[0], px[1]); got != blue.NRGBA() {
				t.Fatalf("order %s: pixel %v = %v, want near color", order[0].Name, px, got)
			}
		}
	}
}

func TestRenderRejectsBadInputBeforeDrawing(t *testing.T) {
	r := newTestRenderer(t, 32, 32, WithSkybox(nil), WithBackground(background))
	cam := geom.DefaultCamera(geom.XYZ(0, 0, 2))
	good := unitTriangle("ok", 1, 0, paint.White)

	fb, err := r.Render(context.Background(), []Entity{good}, cam, frameContext())
	if err != nil {
		t.Fatal(err)
	}
	before := append([]uint8(nil), fb.Data()...)

	noMesh := good
	noMesh.Mesh = nil
	badVariant := good
	badVariant.Material.Variant = shader.Variant(99)
	zeroScale := good
	zeroScale.Scale = 0
	badIndex := good
	badIndex.Mesh = &mesh.Mesh{Vertices: good.Mesh.Vertices, Triangles: [][3]uint32{{0, 1, 7}}}

	badCam := cam
	badCam.FovY = 0

	tests := []struct {
		name     string
		entities []Entity
		cam      geom.Camera
		want     error
	}{
		{"nil mesh", []Entity{good, noMesh}, cam, ErrNilMesh},
		{"unknown variant", []Entity{badVariant}, cam, shader.ErrUnknownVariant},
		{"zero scale", []Entity{zeroScale}, cam, ErrInvalidEntity},
		{"bad index", []Entity{badIndex}, cam, mesh.ErrIndexOutOfRange},
		{"bad camera", []Entity{good}, badCam, ErrInvalidCamera},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.Render(context.Background(), tt.entities, tt.cam, frameContext())
			if !errors.Is(err, tt.want) {
				t.Fatalf("Render error = %v, want %v", err, tt.want)
			}
			if !bytes.Equal(before, r.Framebuffer().Data()) {
				t.Error("framebuffer modified by a rejected frame")
			}
		})
	}

	_, err = r.Render(context.Background(), []Entity{good, noMesh}, cam, frameContext())
	var ee *EntityError
	if !errors.As(err, &ee) || ee.Index != 1 {
		t.Errorf("error = %v, want EntityError for index 1", err)
	}
}

func TestRenderCancelled(t *testing.T) {
	r := newTestRenderer(t, 16, 16)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := r.Render(ctx, nil, geom.DefaultCamera(geom.XYZ(0, 0, 2)), frameContext())
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Render = %v, want context.Canceled", err)
	}
}

func TestResize(t *testing.T) {
	r := newTestRenderer(t, 16, 16)
	if err := r.Resize(0, 10); !errors.Is(err, raster.ErrInvalidSize) {
		t.Errorf("Resize(0, 10) = %v, want ErrInvalidSize", err)
	}
	if err := r.Resize(50, 40); err != nil {
		t.Fatal(err)
	}
	fb, err := r.Render(context.Background(), nil, geom.DefaultCamera(geom.XYZ(0, 0, 2)), frameContext())
	if err != nil {
		t.Fatal(err)
	}
	if fb.Width() != 50 || fb.Height() != 40 {
		t.Errorf("framebuffer is %dx%d, want 50x40", fb.Width(), fb.Height())
	}
}

func TestClose(t *testing.T) {
	r, err := New(8, 8)
	if err != nil {
		t.Fatal(err)
	}
	if err := r.Close(); err != nil {
		t.Fatal(err)
	}
	if err := r.Close(); err != nil {
		t.Errorf("second Close = %v", err)
	}
	if _, err := r.Render(context.Background(), nil, geom.DefaultCamera(geom.XYZ(0, 0, 2)), frameContext()); !errors.Is(err, ErrClosed) {
		t.Errorf("Render after Close = %v, want ErrClosed", err)
	}
	if err := r.Resize(4, 4); !errors.Is(err, ErrClosed) {
		t.Errorf("Resize after Close = %v, want ErrClosed", err)
	}
}

func TestSkyFillsUncoveredPixels(t *testing.T) {
	r := newTestRenderer(t, 40, 30, WithBackground(paint.Black))
	cam := geom.DefaultCamera(geom.XYZ(0, 0, 2))
	fb, err := r.Render(context.Background(), []Entity{unitTriangle("tri", 1, 0, paint.RGB(1, 0, 0))}, cam, frameContext())
	if err != nil {
		t.Fatal(err)
	}
	st := r.Stats()
	if st.SkyPixels+st.Raster.Written != 40*30 {
		t.Errorf("sky %d + geometry %d != %d", st.SkyPixels, st.Raster.Written, 40*30)
	}
	if fb.At(0, 0) == (color.NRGBA{A: 255}) {
		t.Error("corner pixel was left at the background color")
	}
	if c := st.Coverage(); c <= 0 || c >= 1 {
		t.Errorf("Coverage = %v", c)
	}
}

func TestRenderDeterministic(t *testing.T) {
	r := newTestRenderer(t, 64, 48, WithWorkers(4), WithBloom(DefaultBloom()))
	cam := geom.DefaultCamera(geom.XYZ(0, 1, 4))
	sun := NewEntity("sun", mesh.Icosphere(2), shader.SolarMaterial(1))
	entities := []Entity{sun}

	fb, err := r.Render(context.Background(), entities, cam, frameContext())
	if err != nil {
		t.Fatal(err)
	}
	first := append([]uint8(nil), fb.Data()...)
	fb, err = r.Render(context.Background(), entities, cam, frameContext())
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first, fb.Data()) {
		t.Error("identical inputs produced different frames")
	}
	if r.Stats().Frame != 2 {
		t.Errorf("Frame = %d, want 2", r.Stats().Frame)
	}
}

func TestBloomSpreadsLight(t *testing.T) {
	cam := geom.DefaultCamera(geom.XYZ(0, 0, 2))
	entities := []Entity{unitTriangle("tri", 1, 0, paint.White)}

	plain := newTestRenderer(t, 64, 64, WithSkybox(nil))
	fb, err := plain.Render(context.Background(), entities, cam, frameContext())
	if err != nil {
		t.Fatal(err)
	}
	// Find a dark pixel two pixels left of a lit one.
	px, py := -1, -1
	for y := 0; y < 64 && px < 0; y++ {
		for x := 2; x < 64; x++ {
			if fb.Covered(x, y) && !fb.Covered(x-2, y) && !fb.Covered(x-1, y) {
				px, py = x-2, y
				break
			}
		}
	}
	if px < 0 {
		t.Fatal("no edge pixel found")
	}
	if l := fb.RGBAAt(px, py).Luminance(); l != 0 {
		t.Fatalf("edge pixel already lit: %v", l)
	}

	bloomed := newTestRenderer(t, 64, 64, WithSkybox(nil), WithBloom(DefaultBloom()))
	fb, err = bloomed.Render(context.Background(), entities, cam, frameContext())
	if err != nil {
		t.Fatal(err)
	}
	if l := fb.RGBAAt(px, py).Luminance(); l <= 0 {
		t.Errorf("bloom did not reach pixel (%d,%d)", px, py)
	}
}

func TestHUD(t *testing.T) {
	r := newTestRenderer(t, 260, 80, WithSkybox(nil), WithHUD(true))
	fb, err := r.Render(context.Background(), nil, geom.DefaultCamera(geom.XYZ(0, 0, 2)), frameContext())
	if err != nil {
		t.Fatal(err)
	}
	lit := 0
	for y := range 80 {
		for x := range 260 {
			if fb.RGBAAt(x, y) != paint.Black {
				lit++
			}
		}
	}
	if lit == 0 {
		t.Error("HUD drew nothing")
	}

	st := FrameStats{Frame: 1234567}
	sctx := frameContext()
	lines := hudLines(&st, &sctx)
	if !strings.Contains(lines[0], "1,234,567") {
		t.Errorf("HUD line = %q, want grouped digits", lines[0])
	}
}

func TestWithLoggerOverridesPackageLogger(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	r := newTestRenderer(t, 8, 8, WithLogger(l), WithSkybox(nil))
	if _, err := r.Render(context.Background(), nil, geom.DefaultCamera(geom.XYZ(0, 0, 2)), frameContext()); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"renderer created", "frame rendered", "frame=1"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func BenchmarkRender(b *testing.B) {
	r, err := New(320, 240)
	if err != nil {
		b.Fatal(err)
	}
	defer r.Close()
	cam := geom.DefaultCamera(geom.XYZ(0, 2, 6))
	entities := []Entity{NewEntity("sun", mesh.Icosphere(3), shader.SolarMaterial(1))}
	sctx := frameContext()
	for b.Loop() {
		if _, err := r.Render(context.Background(), entities, cam, sctx); err != nil {
			b.Fatal(err)
		}
	}
}
