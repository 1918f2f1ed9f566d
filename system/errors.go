package system

import "errors"

var (
	// ErrDuplicateName is returned when two bodies share a name.
	ErrDuplicateName = errors.New("system: duplicate body name")

	// ErrUnknownParent is returned when a body orbits a name that is not
	// part of the system.
	ErrUnknownParent = errors.New("system: unknown parent")

	// ErrOrbitCycle is returned when parent links form a loop.
	ErrOrbitCycle = errors.New("system: orbit cycle")

	// ErrInvalidBody is returned for a body that can never be drawn.
	ErrInvalidBody = errors.New("system: invalid body")
)
