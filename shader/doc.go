// Package shader implements the programmable stages of the renderer: a
// closed set of surface variants, each pairing a vertex shader with a
// fragment shader, selected through a fixed dispatch table.
//
// Shaders are pure functions of their inputs. Per-frame uniforms travel in
// a Context value built once per frame and passed by pointer to every call;
// shaders never write to it. Per-entity parameters travel in a Material
// that is fixed when the entity is created.
//
// Every fragment shader output is passed through paint.Sanitize, so a
// non-finite intermediate (for example from a zero length normal) can
// never reach the framebuffer.
package shader
