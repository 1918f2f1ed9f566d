package main

import (
	"context"
	"fmt"

	"github.com/gogpu/orrery"
	"github.com/gogpu/orrery/geom"
	"github.com/gogpu/orrery/raster"
	"github.com/gogpu/orrery/system"
)

// scene ties the sample system, a camera rig and a renderer together.
type scene struct {
	preset Preset
	sys    *system.System
	r      *orrery.Renderer

	orbit  system.OrbitCamera
	follow *system.FollowCamera

	temperature float32
	intensity   float32
}

func newScene(p Preset) (*scene, error) {
	sys, err := system.Sample(p.Seed)
	if err != nil {
		return nil, err
	}
	opts, err := p.Options()
	if err != nil {
		return nil, err
	}
	r, err := orrery.New(p.Width, p.Height, opts...)
	if err != nil {
		return nil, err
	}

	s := &scene{
		preset:      p,
		sys:         sys,
		r:           r,
		orbit:       system.DefaultOrbitCamera(),
		temperature: p.Sun.Temperature,
		intensity:   p.Sun.Intensity,
	}
	s.orbit.Distance = p.Camera.Distance
	s.orbit.Elevation = p.Camera.Elevation
	s.orbit.Speed = p.Camera.Speed

	if name := p.Camera.Follow; name != "" {
		b, ok := sys.Body(name)
		if !ok {
			_ = r.Close()
			return nil, fmt.Errorf("%w: no body %q to follow", errInvalidPreset, name)
		}
		// Start a few radii behind and above the body.
		d := b.Scale * 6
		f := system.NewFollowCamera(geom.XYZ(0, d*0.35, d), geom.Vec3{})
		s.follow = &f
	}
	return s, nil
}

// camera returns the camera for time t.
func (s *scene) camera(t float32) geom.Camera {
	if s.follow == nil {
		return s.orbit.Camera(t)
	}
	name := s.preset.Camera.Follow
	pos, _ := s.sys.Position(name, t)
	next, _ := s.sys.Position(name, t+0.05)
	b := geom.NewBasis(next.Sub(pos), geom.XYZ(0, 1, 0))
	return s.follow.Camera(pos, b)
}

// frame renders the system at time t.
func (s *scene) frame(ctx context.Context, t float32) (*raster.Framebuffer, error) {
	cam := s.camera(t)
	sctx := s.sys.Context(t, cam, s.temperature, s.intensity)
	return s.r.Render(ctx, s.sys.Entities(t), cam, sctx)
}

func (s *scene) Close() error {
	return s.r.Close()
}
