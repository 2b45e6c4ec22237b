// Package striped provides a fixed-width striped counter whose lanes live on
// separate cache lines.
package striped

import (
	"fmt"
)

// Counter is a striped uint64 counter.
//
// The count is split over a fixed number of lanes. Each lane occupies its own
// cache line(s), so goroutines incrementing different lanes never contend on
// the same line ("false sharing"). A caller picks the lane, typically one
// lane per worker goroutine.
//
// Every operation on a lane is a single sequentially consistent atomic
// operation: Increment is an atomic add, Sum and Load are atomic loads. There
// are no locks and no CAS loops. All of them take part in the single total
// order of sync/atomic operations.
//
// Sum is not a snapshot of the whole counter. With no concurrent Increment it
// is exact; with M increments in flight it lies in [before, before+M].
//
// The lane count is fixed at construction. There is no reset.
//
// A Counter must not be copied after first use; share it by pointer.
type Counter struct {
	_     noCopy
	lanes []lane
}

// New returns a Counter with the given number of lanes, all at zero.
// It returns an error wrapping ErrInvalidLaneCount if lanes < 1.
func New(lanes int) (*Counter, error) {
	if lanes < 1 || lanes > MaxLanes {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLaneCount, lanes)
	}
	return &Counter{lanes: makeLanes(lanes)}, nil
}

// MustNew is like New but panics if the lane count is invalid.
func MustNew(lanes int) *Counter {
	c, err := New(lanes)
	if err != nil {
		panic(err)
	}
	return c
}

// Len returns the number of lanes.
func (c *Counter) Len() int {
	return len(c.lanes)
}

// Increment atomically adds 1 to lane i.
//
// It panics with an *IndexError (wrapping ErrIndexOutOfBounds) if i is not in
// [0, Len()). The index is never wrapped or clamped.
func (c *Counter) Increment(i int) {
	c.at(i).v.Add(1)
}

// Load atomically reads lane i. It panics like Increment on a bad index.
func (c *Counter) Load(i int) uint64 {
	return c.at(i).v.Load()
}

// Sum returns the total of all lanes.
//
// Each lane is loaded once, in lane order, and accumulated with plain
// addition. Lanes read early may miss increments that lanes read later
// include, so the result is only exact when no Increment runs concurrently.
func (c *Counter) Sum() uint64 {
	var sum uint64
	for i := range c.lanes {
		sum += c.lanes[i].v.Load()
	}
	return sum
}

func (c *Counter) at(i int) *lane {
	if uint(i) >= uint(len(c.lanes)) {
		panic(&IndexError{Index: i, Len: len(c.lanes)})
	}
	return &c.lanes[i]
}
