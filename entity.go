package orrery

import (
	"fmt"

	"github.com/gogpu/orrery/geom"
	"github.com/gogpu/orrery/mesh"
	"github.com/gogpu/orrery/raster"
	"github.com/gogpu/orrery/shader"
)

// Entity is one drawable object for one frame. Entities are plain values
// rebuilt by the caller every frame; the renderer never keeps them.
type Entity struct {
	Name     string
	Mesh     *mesh.Mesh
	Material shader.Material

	Translation geom.Vec3
	Rotation    geom.Euler
	// Basis, when set, orients the entity instead of Rotation.
	Basis *geom.Basis
	Scale float32

	Cull raster.CullMode
}

// NewEntity returns an entity at the origin with unit scale.
func NewEntity(name string, m *mesh.Mesh, mat shader.Material) Entity {
	e := Entity{Name: name, Mesh: m, Material: mat, Scale: 1}
	if mat.Variant == shader.Ring {
		e.Cull = raster.CullNone
	}
	return e
}

// Model returns the object to world matrix.
func (e *Entity) Model() geom.Mat4 {
	if e.Basis != nil {
		return geom.ModelFromBasis(e.Translation, *e.Basis, e.Scale)
	}
	return geom.Model(e.Translation, e.Rotation, e.Scale)
}

// Validate reports configuration faults that make the entity undrawable.
func (e *Entity) Validate() error {
	if e.Mesh == nil {
		return ErrNilMesh
	}
	if err := e.Material.Validate(); err != nil {
		return err
	}
	if !(e.Scale > 0) || !geom.IsFinite(e.Scale) {
		return fmt.Errorf("%w: scale %v", ErrInvalidEntity, e.Scale)
	}
	if !e.Translation.IsFinite() {
		return fmt.Errorf("%w: translation %v", ErrInvalidEntity, e.Translation)
	}
	if e.Cull > raster.CullFront {
		return fmt.Errorf("%w: cull mode %d", ErrInvalidEntity, e.Cull)
	}
	return e.Mesh.Validate()
}
