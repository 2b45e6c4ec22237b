// Package demo drives a striped.Counter the way a typical user does: a fixed
// set of worker goroutines, each bound to its own lane, and a reporter that
// periodically logs the running sum.
package demo

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/llxisdsh/striped"
)

// Result is the state of the counter once every worker has finished.
type Result struct {
	Sum   uint64
	Lanes []uint64
}

// Runner owns one run of the demo.
type Runner struct {
	cfg     Config
	counter *striped.Counter
	log     *slog.Logger
}

// NewRunner validates cfg and binds it to counter, which must have
// cfg.Lanes lanes.
func NewRunner(cfg Config, counter *striped.Counter, log *slog.Logger) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if counter.Len() != cfg.Lanes {
		return nil, fmt.Errorf("%w: counter has %d lanes, config wants %d",
			ErrInvalidConfig, counter.Len(), cfg.Lanes)
	}
	if log == nil {
		log = slog.Default()
	}
	return &Runner{cfg: cfg, counter: counter, log: log}, nil
}

// Run starts the workers and the reporter and waits for both.
// It returns early with the context error if ctx is cancelled.
func (r *Runner) Run(ctx context.Context) (Result, error) {
	r.log.Info("starting",
		"lanes", r.cfg.Lanes,
		"workers", r.cfg.Workers,
		"increments", r.cfg.Increments,
		"interval", r.cfg.Interval)

	g, ctx := errgroup.WithContext(ctx)
	for w := range r.cfg.Workers {
		g.Go(func() error {
			return r.work(ctx, w%r.cfg.Lanes)
		})
	}
	g.Go(func() error {
		return r.report(ctx)
	})
	if err := g.Wait(); err != nil {
		r.log.Warn("stopped", "error", err, "sum", r.counter.Sum())
		return Result{}, err
	}

	res := Result{
		Sum:   r.counter.Sum(),
		Lanes: make([]uint64, r.counter.Len()),
	}
	for i := range res.Lanes {
		res.Lanes[i] = r.counter.Load(i)
	}
	r.log.Info("finished", "sum", res.Sum)
	return res, nil
}

func (r *Runner) work(ctx context.Context, lane int) error {
	for range r.cfg.Increments {
		r.counter.Increment(lane)
		if err := pause(ctx, r.cfg.Interval); err != nil {
			return err
		}
	}
	r.log.Debug("worker done", "lane", lane)
	return nil
}

func (r *Runner) report(ctx context.Context) error {
	for n := range r.cfg.Reports {
		r.log.Info("sum", "report", n+1, "value", r.counter.Sum())
		if err := pause(ctx, r.cfg.Interval); err != nil {
			return err
		}
	}
	return nil
}

// pause waits for d or until ctx is done.
func pause(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
