package striped

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidLaneCount is returned when a counter is configured with
	// fewer than one lane, or with more lanes than can be addressed.
	ErrInvalidLaneCount = errors.New("striped: invalid lane count")

	// ErrIndexOutOfBounds is wrapped by the *IndexError value that
	// Increment and Load panic with.
	ErrIndexOutOfBounds = errors.New("striped: lane index out of bounds")
)

// IndexError describes a lane index outside [0, Len).
// Counter methods panic with it; it is a caller bug, not a runtime condition.
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("striped: lane index %d out of range [0:%d]", e.Index, e.Len)
}

func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfBounds
}
