package system

import (
	"fmt"

	"github.com/gogpu/orrery"
	"github.com/gogpu/orrery/geom"
	"github.com/gogpu/orrery/mesh"
	"github.com/gogpu/orrery/shader"
)

// Body is the time-independent definition of one object in a system.
type Body struct {
	Name     string
	Mesh     *mesh.Mesh
	Material shader.Material

	// Translation is the resting position of a Static body.
	Translation geom.Vec3
	// Rotation is the orientation at time zero.
	Rotation geom.Euler
	// Spin is the angular velocity around each axis in radians per second.
	Spin  geom.Euler
	Scale float32

	Motion Motion
	// FaceTangent turns the body so it keeps the same side towards the
	// centre of its orbit.
	FaceTangent bool
}

// NewBody returns a static body with unit scale.
func NewBody(name string, m *mesh.Mesh, mat shader.Material) Body {
	return Body{Name: name, Mesh: m, Material: mat, Scale: 1}
}

// RotationAt returns the orientation at time t: the resting rotation plus
// spin, plus the tangent yaw when FaceTangent is set.
func (b *Body) RotationAt(t float32) geom.Euler {
	rot := b.Rotation.Add(b.Spin.Mul(t))
	if b.FaceTangent && b.Motion.Kind != Static {
		rot.Y -= b.Motion.Angle(t)
	}
	return rot
}

// System is an immutable set of bodies with resolved parent links.
type System struct {
	bodies []Body
	byName map[string]int
	// order lists body indices with every parent before its children.
	order []int
	// parent[i] is the index of body i's parent or -1.
	parent []int
}

// New validates bodies and builds a system. Names must be unique, every
// OrbitAround parent must exist and parent links must not loop.
func New(bodies ...Body) (*System, error) {
	s := &System{
		bodies: append([]Body(nil), bodies...),
		byName: make(map[string]int, len(bodies)),
		parent: make([]int, len(bodies)),
	}
	for i := range s.bodies {
		b := &s.bodies[i]
		if b.Name == "" {
			return nil, fmt.Errorf("%w: body %d has no name", ErrInvalidBody, i)
		}
		if _, dup := s.byName[b.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, b.Name)
		}
		if b.Motion.Kind > OrbitAround {
			return nil, fmt.Errorf("%w: %q has motion %v", ErrInvalidBody, b.Name, b.Motion.Kind)
		}
		s.byName[b.Name] = i
	}
	for i := range s.bodies {
		s.parent[i] = -1
		m := s.bodies[i].Motion
		if m.Kind != OrbitAround {
			continue
		}
		p, ok := s.byName[m.Parent]
		if !ok {
			return nil, fmt.Errorf("%w: %q orbits %q", ErrUnknownParent, s.bodies[i].Name, m.Parent)
		}
		s.parent[i] = p
	}
	order, err := s.resolveOrder()
	if err != nil {
		return nil, err
	}
	s.order = order

	orrery.Logger().Debug("system built", "bodies", len(s.bodies))
	return s, nil
}

func (s *System) resolveOrder() ([]int, error) {
	const (
		unvisited = iota
		visiting
		done
	)
	state := make([]uint8, len(s.bodies))
	order := make([]int, 0, len(s.bodies))

	var visit func(i int) error
	visit = func(i int) error {
		switch state[i] {
		case done:
			return nil
		case visiting:
			return fmt.Errorf("%w: through %q", ErrOrbitCycle, s.bodies[i].Name)
		}
		state[i] = visiting
		if p := s.parent[i]; p >= 0 {
			if err := visit(p); err != nil {
				return err
			}
		}
		state[i] = done
		order = append(order, i)
		return nil
	}
	for i := range s.bodies {
		if err := visit(i); err != nil {
			return nil, err
		}
	}
	return order, nil
}

// Len returns the number of bodies.
func (s *System) Len() int {
	return len(s.bodies)
}

// Body returns a copy of the body called name.
func (s *System) Body(name string) (Body, bool) {
	i, ok := s.byName[name]
	if !ok {
		return Body{}, false
	}
	return s.bodies[i], true
}

// Positions resolves every body's world position at time t, indexed like
// the bodies passed to New.
func (s *System) Positions(t float32) []geom.Vec3 {
	pos := make([]geom.Vec3, len(s.bodies))
	for _, i := range s.order {
		var parent geom.Vec3
		if p := s.parent[i]; p >= 0 {
			parent = pos[p]
		}
		b := &s.bodies[i]
		pos[i] = b.Motion.position(t, b.Translation, parent)
	}
	return pos
}

// Position returns the world position of the body called name at time t.
func (s *System) Position(name string, t float32) (geom.Vec3, bool) {
	if _, ok := s.byName[name]; !ok {
		return geom.Vec3{}, false
	}
	return s.Positions(t)[s.byName[name]], true
}

// Entities returns one entity per body for time t, in the order the
// bodies were given.
func (s *System) Entities(t float32) []orrery.Entity {
	return s.AppendEntities(make([]orrery.Entity, 0, len(s.bodies)), t)
}

// AppendEntities appends the entities for time t to dst.
func (s *System) AppendEntities(dst []orrery.Entity, t float32) []orrery.Entity {
	pos := s.Positions(t)
	for i := range s.bodies {
		b := &s.bodies[i]
		e := orrery.NewEntity(b.Name, b.Mesh, b.Material)
		e.Translation = pos[i]
		e.Rotation = b.RotationAt(t)
		e.Scale = b.Scale
		dst = append(dst, e)
	}
	return dst
}

// Context builds the shader uniforms for time t seen from cam. The first
// Solar body, if any, becomes the point light.
func (s *System) Context(t float32, cam geom.Camera, temperature, intensity float32) shader.Context {
	ctx := shader.NewContext(t, cam.Basis.Forward.Neg(), cam.Eye, temperature, intensity)
	for i := range s.bodies {
		if s.bodies[i].Material.Variant == shader.Solar {
			return ctx.WithSun(s.Positions(t)[i])
		}
	}
	return ctx
}
