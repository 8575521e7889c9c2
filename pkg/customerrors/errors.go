// Package customerrors defines the errors shared by all containers in the
// module. Call sites wrap them with context; callers match with errors.Is.
package customerrors

import (
	"errors"
)

var (
	// ErrEmpty is returned when removing or peeking from a container that
	// holds no elements.
	ErrEmpty = errors.New("empty container")

	// ErrFull is returned by bounded containers when an insert would exceed
	// the configured maximum size.
	ErrFull = errors.New("container is full")

	// ErrInvalidIndex is returned when an index lies outside [0, size).
	ErrInvalidIndex = errors.New("index out of range")

	ErrNotFound = errors.New("not found")

	// ErrLoop is returned when re-parenting a tree node would introduce a
	// cycle.
	ErrLoop = errors.New("operation would create a cycle")

	ErrAlreadyChild = errors.New("node is already a child")
	ErrNotChild     = errors.New("node is not a child")

	// ErrUnknownStyle is returned when looking up a renderer style label
	// that was never registered.
	ErrUnknownStyle = errors.New("unknown style")
)
