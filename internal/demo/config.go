package demo

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig is wrapped by every Config.Validate error.
var ErrInvalidConfig = errors.New("demo: invalid config")

// Config drives a Runner.
type Config struct {
	// Lanes is the lane count of the counter.
	Lanes int
	// Workers is the number of incrementing goroutines. Worker i uses lane
	// i % Lanes.
	Workers int
	// Increments is how many times each worker increments its lane.
	Increments int
	// Interval is the pause after each increment and between reports.
	// Zero disables pacing.
	Interval time.Duration
	// Reports is how many times the reporter logs the running sum.
	Reports int
}

// DefaultConfig returns four workers on four lanes, three increments each,
// reported five times a second apart.
func DefaultConfig() Config {
	return Config{
		Lanes:      4,
		Workers:    4,
		Increments: 3,
		Interval:   time.Second,
		Reports:    5,
	}
}

// Validate reports whether c can be run.
func (c Config) Validate() error {
	switch {
	case c.Lanes < 1:
		return fmt.Errorf("%w: lanes must be >= 1, got %d", ErrInvalidConfig, c.Lanes)
	case c.Workers < 0:
		return fmt.Errorf("%w: workers must be >= 0, got %d", ErrInvalidConfig, c.Workers)
	case c.Increments < 0:
		return fmt.Errorf("%w: increments must be >= 0, got %d", ErrInvalidConfig, c.Increments)
	case c.Interval < 0:
		return fmt.Errorf("%w: interval must be >= 0, got %s", ErrInvalidConfig, c.Interval)
	case c.Reports < 0:
		return fmt.Errorf("%w: reports must be >= 0, got %d", ErrInvalidConfig, c.Reports)
	}
	return nil
}
