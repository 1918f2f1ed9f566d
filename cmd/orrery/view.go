package main

import (
	"context"
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/urfave/cli"

	"github.com/gogpu/orrery/geom"
	"github.com/gogpu/orrery/shader"
)

const (
	temperatureRate = 0.3
	intensityRate   = 0.5
	zoomRate        = 0.02
)

// view opens a window that renders the system in real time.
func view(ctx *cli.Context) error {
	setupLogging(ctx)

	p, err := presetFromFlags(ctx)
	if err != nil {
		return err
	}
	sc, err := newScene(p)
	if err != nil {
		return err
	}
	defer sc.Close()

	g := &viewer{sc: sc}
	ebiten.SetWindowTitle("orrery")
	ebiten.SetWindowSize(p.Width, p.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

type viewer struct {
	sc     *scene
	screen *ebiten.Image
	t      float32
	paused bool
}

func (v *viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		v.paused = !v.paused
	}

	dt := float32(1) / float32(ebiten.TPS())
	if !v.paused {
		v.t += dt
	}
	v.handleSunKeys(dt)
	v.handleZoomKeys()

	fb, err := v.sc.frame(context.Background(), v.t)
	if err != nil {
		return err
	}
	if v.screen == nil {
		v.screen = ebiten.NewImage(fb.Width(), fb.Height())
	}
	v.screen.WritePixels(fb.Data())
	return nil
}

func (v *viewer) handleSunKeys(dt float32) {
	sc := v.sc
	if ebiten.IsKeyPressed(ebiten.KeyT) {
		sc.temperature += temperatureRate * dt
	}
	if ebiten.IsKeyPressed(ebiten.KeyG) {
		sc.temperature -= temperatureRate * dt
	}
	if ebiten.IsKeyPressed(ebiten.KeyY) {
		sc.intensity += intensityRate * dt
	}
	if ebiten.IsKeyPressed(ebiten.KeyH) {
		sc.intensity -= intensityRate * dt
	}
	sc.temperature = geom.Clamp(sc.temperature, 0, 1)
	sc.intensity = geom.Clamp(sc.intensity, shader.MinIntensity, shader.MaxIntensity)
}

func (v *viewer) handleZoomKeys() {
	in := ebiten.IsKeyPressed(ebiten.KeyR)
	out := ebiten.IsKeyPressed(ebiten.KeyF)
	if f := v.sc.follow; f != nil {
		if in {
			f.ZoomIn()
		}
		if out {
			f.ZoomOut()
		}
		return
	}
	o := &v.sc.orbit
	if in {
		o.Distance = max(o.Distance*(1-zoomRate), 1)
	}
	if out {
		o.Distance *= 1 + zoomRate
	}
}

func (v *viewer) Draw(screen *ebiten.Image) {
	if v.screen != nil {
		screen.DrawImage(v.screen, nil)
	}
}

func (v *viewer) Layout(_, _ int) (int, int) {
	return v.sc.preset.Width, v.sc.preset.Height
}
