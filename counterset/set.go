// Package counterset keeps named striped counters that share a lane count.
package counterset

import (
	"fmt"

	"github.com/llxisdsh/pb"

	"github.com/llxisdsh/striped"
)

// Set is a collection of named counters that share a lane count.
//
// Counters are created on first use. Concurrent first uses of the same name
// observe the same *striped.Counter.
type Set struct {
	lanes int
	m     pb.MapOf[string, *striped.Counter]
}

// New returns an empty Set whose counters have the given number of lanes.
// It returns an error wrapping striped.ErrInvalidLaneCount if lanes is not in
// [1, striped.MaxLanes].
func New(lanes int) (*Set, error) {
	if lanes < 1 || lanes > striped.MaxLanes {
		return nil, fmt.Errorf("%w: %d", striped.ErrInvalidLaneCount, lanes)
	}
	s := &Set{lanes: lanes}
	s.m.InitWithOptions()
	return s, nil
}

// Lanes returns the lane count of every counter in the set.
func (s *Set) Lanes() int {
	return s.lanes
}

// Counter returns the counter registered under name, creating it if needed.
func (s *Set) Counter(name string) *striped.Counter {
	if c, ok := s.m.Load(name); ok {
		return c
	}
	c, _ := s.m.ProcessEntry(
		name,
		func(e *pb.EntryOf[string, *striped.Counter]) (*pb.EntryOf[string, *striped.Counter], *striped.Counter, bool) {
			if e != nil {
				return e, e.Value, true
			}
			c := striped.MustNew(s.lanes)
			return &pb.EntryOf[string, *striped.Counter]{Value: c}, c, false
		},
	)
	return c
}

// Range calls f for each counter in the set until f returns false.
// The order is unspecified.
func (s *Set) Range(f func(name string, c *striped.Counter) bool) {
	s.m.Range(f)
}

// Sums returns the current Sum of every counter, keyed by name.
func (s *Set) Sums() map[string]uint64 {
	sums := make(map[string]uint64, s.m.Size())
	s.m.Range(func(name string, c *striped.Counter) bool {
		sums[name] = c.Sum()
		return true
	})
	return sums
}
