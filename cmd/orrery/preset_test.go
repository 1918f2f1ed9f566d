package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/orrery/system"
)

func TestParsePresetKeepsDefaults(t *testing.T) {
	p, err := parsePreset([]byte(`
width: 320
height: 200
sun:
  temperature: 0.8
bloom:
  strength: 0
sky:
  star_density: 120
`))
	require.NoError(t, err)

	def := defaultPreset()
	assert.Equal(t, 320, p.Width)
	assert.Equal(t, 200, p.Height)
	assert.Equal(t, def.Frames, p.Frames)
	assert.Equal(t, float32(0.8), p.Sun.Temperature)
	assert.Equal(t, def.Sun.Intensity, p.Sun.Intensity)
	assert.Equal(t, float32(0), p.Bloom.Strength)
	assert.Equal(t, def.Bloom.Radius, p.Bloom.Radius)
	assert.Equal(t, float32(120), p.Sky.StarDensity)
	assert.Equal(t, def.Sky.CycleLength, p.Sky.CycleLength)
	assert.False(t, p.Sky.Disabled)
}

func TestParsePresetRejects(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"syntax", "width: [1"},
		{"zero width", "width: 0"},
		{"huge height", "height: 100000"},
		{"no frames", "frames: 0"},
		{"fps", "fps: -1"},
		{"background", "background: teal"},
		{"camera", "camera: {distance: 0}"},
		{"sky", "sky: {star_density: 0}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parsePreset([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}

	// A disabled sky is not validated.
	_, err := parsePreset([]byte("sky: {disabled: true, star_density: 0}"))
	assert.NoError(t, err)
}

func TestPresetFrameTime(t *testing.T) {
	p := defaultPreset()
	p.FPS = 4
	assert.Equal(t, float32(2), p.FrameTime(0, 2))
	assert.Equal(t, float32(2.5), p.FrameTime(2, 2))
}

func TestPresetOptions(t *testing.T) {
	p := defaultPreset()
	opts, err := p.Options()
	require.NoError(t, err)
	assert.Len(t, opts, 5)

	p.Bloom.Strength = 0
	p.Sky.Disabled = true
	opts, err = p.Options()
	require.NoError(t, err)
	assert.Len(t, opts, 4)
}

func TestSceneRendersFrames(t *testing.T) {
	for _, follow := range []string{"", system.Jove} {
		p := defaultPreset()
		p.Width, p.Height = 48, 32
		p.Workers = 2
		p.Camera.Follow = follow

		sc, err := newScene(p)
		require.NoError(t, err)
		fb, err := sc.frame(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, 48, fb.Width())
		assert.Positive(t, sc.r.Stats().Raster.Written, "follow %q", follow)
		require.NoError(t, sc.Close())
	}
}

func TestSceneUnknownFollow(t *testing.T) {
	p := defaultPreset()
	p.Width, p.Height = 16, 16
	p.Camera.Follow = "pluto"
	_, err := newScene(p)
	assert.ErrorIs(t, err, errInvalidPreset)
}
