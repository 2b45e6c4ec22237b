package demo

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/llxisdsh/striped"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRunDefaultShape(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Interval = 0

	c := striped.MustNew(cfg.Lanes)
	r, err := NewRunner(cfg, c, discard())
	if err != nil {
		t.Fatal(err)
	}
	res, err := r.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Sum != 12 {
		t.Fatalf("Sum = %d, want 12", res.Sum)
	}
	for i, v := range res.Lanes {
		if v != 3 {
			t.Errorf("lane %d = %d, want 3", i, v)
		}
	}
}

func TestRunMoreWorkersThanLanes(t *testing.T) {
	cfg := Config{Lanes: 3, Workers: 7, Increments: 100}
	c := striped.MustNew(cfg.Lanes)
	r, err := NewRunner(cfg, c, discard())
	if err != nil {
		t.Fatal(err)
	}
	res, err := r.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Sum != 700 {
		t.Fatalf("Sum = %d, want 700", res.Sum)
	}
	// workers 0,3,6 -> lane 0; 1,4 -> lane 1; 2,5 -> lane 2
	want := []uint64{300, 200, 200}
	for i := range want {
		if res.Lanes[i] != want[i] {
			t.Errorf("lane %d = %d, want %d", i, res.Lanes[i], want[i])
		}
	}
}

func TestRunReports(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))

	cfg := Config{Lanes: 1, Workers: 1, Increments: 1, Reports: 3}
	r, err := NewRunner(cfg, striped.MustNew(1), log)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := r.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if n := strings.Count(buf.String(), "msg=sum "); n != 3 {
		t.Fatalf("got %d sum reports, want 3\n%s", n, buf.String())
	}
	if !strings.Contains(buf.String(), "msg=finished sum=1") {
		t.Fatalf("missing final sum in log\n%s", buf.String())
	}
}

func TestRunCancel(t *testing.T) {
	cfg := Config{Lanes: 2, Workers: 2, Increments: 3, Interval: time.Hour, Reports: 1}
	c := striped.MustNew(cfg.Lanes)
	r, err := NewRunner(cfg, c, discard())
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(50*time.Millisecond, cancel)

	start := time.Now()
	_, err = r.Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Run error = %v, want context.Canceled", err)
	}
	if d := time.Since(start); d > 10*time.Second {
		t.Fatalf("Run took %v after cancel", d)
	}
	// each worker got exactly one increment in before blocking
	if got := c.Sum(); got != 2 {
		t.Fatalf("Sum = %d, want 2", got)
	}
}

func TestNewRunnerValidation(t *testing.T) {
	tests := []struct {
		name  string
		cfg   Config
		lanes int
	}{
		{"zero lanes", Config{Lanes: 0}, 1},
		{"negative workers", Config{Lanes: 1, Workers: -1}, 1},
		{"negative increments", Config{Lanes: 1, Increments: -1}, 1},
		{"negative interval", Config{Lanes: 1, Interval: -time.Second}, 1},
		{"negative reports", Config{Lanes: 1, Reports: -1}, 1},
		{"lane mismatch", Config{Lanes: 2}, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRunner(tt.cfg, striped.MustNew(tt.lanes), discard())
			if !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("err = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatal(err)
	}
}
