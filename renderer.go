package orrery

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/chewxy/math32"

	"github.com/gogpu/orrery/geom"
	"github.com/gogpu/orrery/internal/parallel"
	"github.com/gogpu/orrery/raster"
	"github.com/gogpu/orrery/shader"
	"github.com/gogpu/orrery/skybox"
)

// Renderer owns a framebuffer and draws frames into it.
//
// A Renderer is not safe for concurrent use: Render, Resize and Close must
// be called from one goroutine at a time. Internally the sky and bloom
// passes run on a worker pool, each worker owning a disjoint band of rows.
type Renderer struct {
	opts options
	log  *slog.Logger

	fb    *raster.Framebuffer
	rast  *raster.Rasterizer
	pool  *parallel.WorkerPool
	sky   *skybox.Generator
	verts []raster.Vertex

	frame  uint64
	stats  FrameStats
	closed bool
}

// New creates a renderer with a width x height framebuffer.
func New(width, height int, opts ...Option) (*Renderer, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	fb, err := raster.NewFramebuffer(width, height)
	if err != nil {
		return nil, fmt.Errorf("orrery: new renderer: %w", err)
	}

	sky := o.sky
	if sky == nil && !o.noSky {
		sky, err = skybox.NewGenerator(skybox.DefaultConfig())
		if err != nil {
			return nil, fmt.Errorf("orrery: default sky: %w", err)
		}
	}

	r := &Renderer{
		opts: o,
		fb:   fb,
		rast: raster.NewRasterizer(fb),
		pool: parallel.NewWorkerPool(o.workers),
		sky:  sky,
	}
	r.logger().Info("renderer created",
		"width", width, "height", height,
		"workers", r.pool.Workers(),
		"sky", sky != nil, "bloom", o.bloom != nil, "hud", o.hud)
	return r, nil
}

func (r *Renderer) logger() *slog.Logger {
	if r.opts.logger != nil {
		return r.opts.logger
	}
	return Logger()
}

// Framebuffer returns the render target. Its contents are replaced by the
// next Render and its storage may be reallocated by Resize.
func (r *Renderer) Framebuffer() *raster.Framebuffer {
	return r.fb
}

// Sky returns the sky generator, or nil when the sky is disabled.
func (r *Renderer) Sky() *skybox.Generator {
	return r.sky
}

// Stats returns the statistics of the last rendered frame.
func (r *Renderer) Stats() FrameStats {
	return r.stats
}

// Resize reallocates the color and depth buffers. It must be called before
// Render whenever the output size changes.
func (r *Renderer) Resize(width, height int) error {
	if r.closed {
		return ErrClosed
	}
	if width == r.fb.Width() && height == r.fb.Height() {
		return nil
	}
	if err := r.fb.Resize(width, height); err != nil {
		return err
	}
	r.logger().Info("renderer resized", "width", width, "height", height)
	return nil
}

// Render draws one frame and returns the framebuffer.
//
// Configuration faults (a closed renderer, mismatched buffers, an invalid
// camera or entity) are reported before any pixel is touched. Cancellation
// of ctx is only observed before the frame starts; a started frame always
// completes. Degenerate or clipped triangles are skipped and only show up
// in Stats.
func (r *Renderer) Render(ctx context.Context, entities []Entity, cam geom.Camera, sctx shader.Context) (*raster.Framebuffer, error) {
	if r.closed {
		return nil, ErrClosed
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := r.fb.Check(); err != nil {
		return nil, err
	}
	if err := validateCamera(&cam); err != nil {
		return nil, err
	}
	for i := range entities {
		if err := entities[i].Validate(); err != nil {
			return nil, &EntityError{Index: i, Name: entities[i].Name, Err: err}
		}
	}

	start := time.Now()
	r.frame++
	w, h := r.fb.Width(), r.fb.Height()
	st := FrameStats{Frame: r.frame, Width: w, Height: h, Time: sctx.Time, Entities: len(entities)}

	r.fb.Clear(r.opts.background)
	r.rast.Reset()
	m := cam.Matrices(w, h)
	for i := range entities {
		st.Vertices += r.drawEntity(&entities[i], &m, &sctx)
	}
	st.Raster = r.rast.Stats()
	st.Geometry = time.Since(start)

	if r.sky != nil {
		skyStart := time.Now()
		var filled atomic.Int64
		r.pool.ForEachBand(h, func(b parallel.Band) {
			filled.Add(int64(r.sky.FillRows(r.fb, m.Frustum, sctx.Time, b.Y0, b.Y1)))
		})
		st.SkyPixels = int(filled.Load())
		st.Sky = time.Since(skyStart)
	} else {
		st.SkyPixels = w*h - r.fb.CoveredCount()
	}

	postStart := time.Now()
	if r.opts.bloom != nil {
		if err := r.applyBloom(*r.opts.bloom); err != nil {
			r.logger().Warn("bloom skipped", "err", err)
		}
	}
	if r.opts.hud {
		r.drawHUD(&st, &sctx)
	}
	st.Post = time.Since(postStart)
	st.Total = time.Since(start)

	r.stats = st
	r.logger().Debug("frame rendered", "stats", st)
	return r.fb, nil
}

// drawEntity runs the vertex stage over the entity's mesh and rasterizes
// its triangles. It returns the number of vertices processed.
func (r *Renderer) drawEntity(e *Entity, m *geom.Matrices, sctx *shader.Context) int {
	model := e.Model()
	mvp := m.ViewProjection.Mul4(model)
	mat := e.Material

	verts := r.verts[:0]
	for _, v := range e.Mesh.Vertices {
		v = mat.Displace(v, sctx)
		verts = append(verts, raster.Vertex{
			Clip: mvp.Mul4x1(v.Position.Vec4(1)),
			Varyings: shader.Varyings{
				World:  model.MulPoint(v.Position),
				Object: v.Position,
				Normal: model.MulDir(v.Normal),
				UV:     v.UV,
			},
		})
	}
	r.verts = verts

	shade := mat.Shade
	for _, tri := range e.Mesh.Triangles {
		r.rast.DrawClip(&verts[tri[0]], &verts[tri[1]], &verts[tri[2]], m.Viewport, shade, sctx, e.Cull)
	}
	return len(verts)
}

func validateCamera(c *geom.Camera) error {
	switch {
	case !c.Eye.IsFinite():
		return fmt.Errorf("%w: eye %v", ErrInvalidCamera, c.Eye)
	case !(c.FovY > 0 && c.FovY < math32.Pi):
		return fmt.Errorf("%w: field of view %v", ErrInvalidCamera, c.FovY)
	case !(c.Near > 0 && c.Far > c.Near) || !geom.IsFinite(c.Far):
		return fmt.Errorf("%w: clip planes %v..%v", ErrInvalidCamera, c.Near, c.Far)
	case !(c.Basis.Forward.Len() >= 0.5):
		return fmt.Errorf("%w: degenerate basis", ErrInvalidCamera)
	}
	return nil
}

// Close stops the worker pool. Render and Resize fail after Close.
func (r *Renderer) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	r.pool.Close()
	r.logger().Info("renderer closed", "frames", r.frame)
	return nil
}
