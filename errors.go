package multirender

import "errors"

// Common errors shared by rendering backends.
var (
	// ErrSuspended is returned when Render is called on a suspended
	// window renderer.
	ErrSuspended = errors.New("multirender: renderer is suspended")

	// ErrInvalidDimensions is returned when a renderer is created or
	// resized with non-positive dimensions.
	ErrInvalidDimensions = errors.New("multirender: invalid dimensions")

	// ErrClosed is returned when operating on a closed renderer.
	ErrClosed = errors.New("multirender: renderer closed")
)
