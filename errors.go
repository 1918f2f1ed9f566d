package orrery

import (
	"errors"
	"fmt"
)

var (
	// ErrNilMesh is returned by Render for an entity without a mesh.
	ErrNilMesh = errors.New("orrery: entity has no mesh")

	// ErrInvalidEntity is returned by Render for an entity whose transform
	// or material cannot be drawn.
	ErrInvalidEntity = errors.New("orrery: invalid entity")

	// ErrClosed is returned by Render and Resize after Close.
	ErrClosed = errors.New("orrery: renderer closed")
)

// EntityError reports which entity failed validation.
type EntityError struct {
	Index int
	Name  string
	Err   error
}

func (e *EntityError) Error() string {
	return fmt.Sprintf("orrery: entity %d (%q): %v", e.Index, e.Name, e.Err)
}

func (e *EntityError) Unwrap() error {
	return e.Err
}

// ErrInvalidCamera is returned by Render for a camera whose projection is
// undefined.
var ErrInvalidCamera = errors.New("orrery: invalid camera")
