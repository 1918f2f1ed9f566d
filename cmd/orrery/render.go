package main

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"

	"github.com/schollz/progressbar/v3"
	"github.com/urfave/cli"
	"golang.org/x/sync/errgroup"
)

// renderFrames renders the preset's animation into numbered PNG files.
// Encoding runs concurrently with drawing the next frame.
func renderFrames(ctx *cli.Context) error {
	setupLogging(ctx)

	p, err := presetFromFlags(ctx)
	if err != nil {
		return err
	}
	out := ctx.String("out")
	if err := os.MkdirAll(out, 0o755); err != nil {
		return err
	}

	sc, err := newScene(p)
	if err != nil {
		return err
	}
	defer sc.Close()

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	g, gctx := errgroup.WithContext(sigCtx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	bar := progressbar.Default(int64(p.Frames), "rendering")
	start := float32(ctx.Float64("start"))

	var renderErr error
	for i := range p.Frames {
		fb, err := sc.frame(gctx, p.FrameTime(i, start))
		if err != nil {
			renderErr = err
			break
		}
		img := fb.ToImage()
		path := filepath.Join(out, fmt.Sprintf("frame-%05d.png", i))
		g.Go(func() error {
			defer func() { _ = bar.Add(1) }()
			return writePNG(path, img)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	if renderErr != nil {
		return renderErr
	}
	_ = bar.Finish()

	st := sc.r.Stats()
	logger.Info("render finished", "frames", p.Frames, "dir", out, "last", st)
	return nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path) //nolint:gosec // path is built from the output flag
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
