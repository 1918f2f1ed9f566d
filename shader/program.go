package shader

import (
	"github.com/gogpu/orrery/mesh"
	"github.com/gogpu/orrery/paint"
)

// VertexFunc transforms an object space vertex before projection. It must
// be a pure function of its arguments.
type VertexFunc func(v mesh.Vertex, m *Material, ctx *Context) mesh.Vertex

// FragmentFunc computes the color of one fragment. It must be a pure
// function of its arguments and may return non-finite components; callers
// go through Material.Shade, which sanitizes.
type FragmentFunc func(in *Fragment, m *Material, ctx *Context) paint.RGBA

// Shader is a fragment stage bound to its per-entity parameters, the form
// the rasterizer consumes.
type Shader func(in *Fragment, ctx *Context) paint.RGBA

// Program pairs the vertex and fragment stage of one variant.
type Program struct {
	Vertex   VertexFunc
	Fragment FragmentFunc
}

var programs = [variantCount]Program{
	Solar:     {Vertex: solarVertex, Fragment: solarFragment},
	Rocky:     {Vertex: passThrough, Fragment: rockyFragment},
	BandedGas: {Vertex: passThrough, Fragment: gasFragment},
	Ring:      {Vertex: passThrough, Fragment: ringFragment},
	Flat:      {Vertex: passThrough, Fragment: flatFragment},
}

// Lookup returns the program for v.
func Lookup(v Variant) (Program, error) {
	if !v.Valid() {
		return Program{}, &VariantError{Variant: v}
	}
	return programs[v], nil
}

func passThrough(v mesh.Vertex, _ *Material, _ *Context) mesh.Vertex {
	return v
}

// FlatColor returns a shader that paints every fragment c.
func FlatColor(c paint.RGBA) Shader {
	c = paint.Sanitize(c)
	return func(*Fragment, *Context) paint.RGBA {
		return c
	}
}
