package raster

import "errors"

var (
	// ErrInvalidSize is returned for non-positive or oversized dimensions.
	ErrInvalidSize = errors.New("raster: invalid framebuffer size")

	// ErrBufferMismatch is returned when the color and depth buffers do not
	// match the framebuffer dimensions.
	ErrBufferMismatch = errors.New("raster: color and depth buffers disagree")
)
