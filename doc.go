// Package orrery renders an animated procedural solar system on the CPU.
//
// # Overview
//
// A Renderer turns a list of entities, a camera and a per-frame shader
// context into a framebuffer. Every frame runs the same pipeline:
//
//	entities -> model/view/projection -> vertex shader -> rasterizer
//	         -> fragment shader + depth test -> skybox fill -> bloom -> HUD
//
// Geometry is drawn in the order given, on the calling goroutine. The
// skybox fill and bloom are split into row bands and run on a worker pool.
//
// # Quick Start
//
//	r, err := orrery.New(800, 600, orrery.WithBloom(orrery.DefaultBloom()))
//	if err != nil {
//	    return err
//	}
//	defer r.Close()
//
//	ctx := shader.NewContext(t, sunDir, cam.Eye, 0.5, 1)
//	fb, err := r.Render(context.Background(), entities, cam, ctx)
//	if err != nil {
//	    return err
//	}
//	fb.SavePNG("frame.png")
//
// # Coordinate System
//
// World space is right-handed with +Y up; orbits lie in the XZ plane. The
// camera looks down its Forward axis. In the framebuffer the origin is the
// top-left pixel, X grows right and Y grows down.
//
// # Sub-packages
//
//   - noise: lattice hash, value noise and FBM
//   - geom: vectors, matrices, orbits, cameras
//   - paint: colors and palettes
//   - mesh: sphere and ring generators
//   - shader: surface variants and per-frame uniforms
//   - raster: framebuffer and triangle rasterizer
//   - skybox: procedural sky by view direction
//   - system: orbital motion and the sample solar system
package orrery

// Version is the current version of the library.
const Version = "0.1.0"
