package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/orrery"
	"github.com/gogpu/orrery/paint"
	"github.com/gogpu/orrery/raster"
	"github.com/gogpu/orrery/skybox"
)

var errInvalidPreset = errors.New("invalid preset")

// Preset is the YAML form of a render run. Missing keys keep the values
// from defaultPreset.
type Preset struct {
	Width   int     `yaml:"width"`
	Height  int     `yaml:"height"`
	Frames  int     `yaml:"frames"`
	FPS     float32 `yaml:"fps"`
	Seed    uint32  `yaml:"seed"`
	Workers int     `yaml:"workers"`
	HUD     bool    `yaml:"hud"`
	// Background is a #rrggbb color shown where the sky is disabled.
	Background string `yaml:"background"`

	Sun    SunPreset    `yaml:"sun"`
	Camera CameraPreset `yaml:"camera"`
	Bloom  orrery.Bloom `yaml:"bloom"`
	Sky    SkyPreset    `yaml:"sky"`
}

// SunPreset holds the initial sun controls.
type SunPreset struct {
	Temperature float32 `yaml:"temperature"`
	Intensity   float32 `yaml:"intensity"`
}

// CameraPreset selects and tunes the camera rig. With Follow set the
// camera trails that body; otherwise it orbits the system centre.
type CameraPreset struct {
	Follow    string  `yaml:"follow"`
	Distance  float32 `yaml:"distance"`
	Elevation float32 `yaml:"elevation"`
	Speed     float32 `yaml:"speed"`
}

// SkyPreset embeds the skybox parameters.
type SkyPreset struct {
	Disabled      bool `yaml:"disabled"`
	skybox.Config `yaml:",inline"`
}

func defaultPreset() Preset {
	return Preset{
		Width:      960,
		Height:     540,
		Frames:     120,
		FPS:        30,
		Seed:       1,
		Background: "#040c24",
		Sun:        SunPreset{Temperature: 0.1, Intensity: 0.5},
		Camera:     CameraPreset{Distance: 140, Elevation: 0.35, Speed: 0.05},
		Bloom:      orrery.DefaultBloom(),
		Sky:        SkyPreset{Config: skybox.DefaultConfig()},
	}
}

// parsePreset decodes YAML on top of the defaults and validates the
// result.
func parsePreset(data []byte) (Preset, error) {
	p := defaultPreset()
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Preset{}, fmt.Errorf("parse preset: %w", err)
	}
	if err := p.Validate(); err != nil {
		return Preset{}, err
	}
	return p, nil
}

func loadPreset(path string) (Preset, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from the command line
	if err != nil {
		return Preset{}, err
	}
	return parsePreset(data)
}

// presetFromFlags loads the --preset file, if any, and applies the
// command-line overrides.
func presetFromFlags(ctx *cli.Context) (Preset, error) {
	p := defaultPreset()
	if path := ctx.String("preset"); path != "" {
		var err error
		if p, err = loadPreset(path); err != nil {
			return Preset{}, err
		}
	}
	if ctx.IsSet("width") {
		p.Width = ctx.Int("width")
	}
	if ctx.IsSet("height") {
		p.Height = ctx.Int("height")
	}
	if ctx.IsSet("workers") {
		p.Workers = ctx.Int("workers")
	}
	if ctx.IsSet("frames") {
		p.Frames = ctx.Int("frames")
	}
	return p, p.Validate()
}

// Validate reports the first unusable setting.
func (p *Preset) Validate() error {
	switch {
	case p.Width <= 0 || p.Height <= 0 || p.Width > raster.MaxDimension || p.Height > raster.MaxDimension:
		return fmt.Errorf("%w: size %dx%d", errInvalidPreset, p.Width, p.Height)
	case p.Frames <= 0:
		return fmt.Errorf("%w: %d frames", errInvalidPreset, p.Frames)
	case !(p.FPS > 0):
		return fmt.Errorf("%w: fps %v", errInvalidPreset, p.FPS)
	case p.Camera.Follow == "" && !(p.Camera.Distance > 0):
		return fmt.Errorf("%w: camera distance %v", errInvalidPreset, p.Camera.Distance)
	}
	if _, err := paint.Hex(p.Background); err != nil {
		return fmt.Errorf("%w: background %q: %v", errInvalidPreset, p.Background, err)
	}
	if !p.Sky.Disabled {
		if err := p.Sky.Validate(); err != nil {
			return fmt.Errorf("%w: %v", errInvalidPreset, err)
		}
	}
	return nil
}

// FrameTime returns the simulation time of frame i.
func (p *Preset) FrameTime(i int, start float32) float32 {
	return start + float32(i)/p.FPS
}

// Options translates the preset into renderer options.
func (p *Preset) Options() ([]orrery.Option, error) {
	bg, err := paint.Hex(p.Background)
	if err != nil {
		return nil, err
	}
	opts := []orrery.Option{
		orrery.WithWorkers(p.Workers),
		orrery.WithHUD(p.HUD),
		orrery.WithBackground(bg),
	}
	if p.Bloom.Strength > 0 {
		opts = append(opts, orrery.WithBloom(p.Bloom))
	}
	if p.Sky.Disabled {
		return append(opts, orrery.WithSkybox(nil)), nil
	}
	sky, err := skybox.NewGenerator(p.Sky.Config)
	if err != nil {
		return nil, err
	}
	return append(opts, orrery.WithSkybox(sky)), nil
}
