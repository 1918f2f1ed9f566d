package orrery

import (
	"log/slog"

	"github.com/gogpu/orrery/paint"
	"github.com/gogpu/orrery/skybox"
)

// Option configures a Renderer during creation.
//
// Example:
//
//	r, err := orrery.New(800, 600,
//	    orrery.WithWorkers(4),
//	    orrery.WithBloom(orrery.DefaultBloom()),
//	)
type Option func(*options)

type options struct {
	background paint.RGBA
	sky        *skybox.Generator
	noSky      bool
	workers    int
	bloom      *Bloom
	hud        bool
	logger     *slog.Logger
}

func defaultOptions() options {
	return options{
		background: paint.Black,
	}
}

// WithBackground sets the clear color. It is only visible when the skybox
// is disabled.
func WithBackground(c paint.RGBA) Option {
	return func(o *options) {
		o.background = c
	}
}

// WithSkybox replaces the default sky. Pass nil to disable the sky and
// leave uncovered pixels at the background color.
func WithSkybox(g *skybox.Generator) Option {
	return func(o *options) {
		o.sky = g
		o.noSky = g == nil
	}
}

// WithWorkers sets the number of goroutines used for the sky and
// post-processing. Zero or negative means GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithBloom enables the glow post-process.
func WithBloom(b Bloom) Option {
	return func(o *options) {
		o.bloom = &b
	}
}

// WithHUD enables the statistics overlay in the top-left corner.
func WithHUD(enabled bool) Option {
	return func(o *options) {
		o.hud = enabled
	}
}

// WithLogger sets a logger for this renderer only, overriding SetLogger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
