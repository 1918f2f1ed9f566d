// Package raster fills triangles into a color and depth buffer.
//
// The Framebuffer holds 8 bit RGBA color (row 0 at the top) and a float32
// depth per pixel. Depth is NDC z: smaller is nearer, and Clear resets every
// sample to +Inf. The Rasterizer draws one triangle at a time with a strict
// less-than depth test, back-face culling and perspective-correct varyings,
// calling a shader.Shader once per accepted pixel.
//
// Malformed triangles (zero area, behind the eye, non-finite) are skipped
// and counted in Stats; they are never reported as errors.
package raster
