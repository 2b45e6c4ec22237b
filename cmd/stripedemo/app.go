package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/urfave/cli/v2"

	"github.com/llxisdsh/striped/counterset"
	"github.com/llxisdsh/striped/internal/demo"
	"github.com/llxisdsh/striped/metrics"
)

// counterName is the name the demo counter is registered under.
const counterName = "increments"

// Build information, set via ldflags.
var (
	Version = "dev"
	Commit  = "unknown"
)

func newApp() *cli.App {
	def := demo.DefaultConfig()
	return &cli.App{
		Name:    "stripedemo",
		Usage:   "increment a striped counter from several goroutines and report its sum",
		Version: fmt.Sprintf("%s (commit: %s)", Version, Commit),
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "lanes",
				Usage:   "number of counter lanes",
				EnvVars: []string{"STRIPEDEMO_LANES"},
				Value:   def.Lanes,
			},
			&cli.IntFlag{
				Name:    "workers",
				Usage:   "number of incrementing goroutines",
				EnvVars: []string{"STRIPEDEMO_WORKERS"},
				Value:   def.Workers,
			},
			&cli.IntFlag{
				Name:    "increments",
				Usage:   "increments per worker",
				EnvVars: []string{"STRIPEDEMO_INCREMENTS"},
				Value:   def.Increments,
			},
			&cli.DurationFlag{
				Name:    "interval",
				Usage:   "pause after each increment and between reports",
				EnvVars: []string{"STRIPEDEMO_INTERVAL"},
				Value:   def.Interval,
			},
			&cli.IntFlag{
				Name:    "reports",
				Usage:   "number of sum reports",
				EnvVars: []string{"STRIPEDEMO_REPORTS"},
				Value:   def.Reports,
			},
			&cli.StringFlag{
				Name:    "log-format",
				Usage:   "log format: text, json",
				EnvVars: []string{"STRIPEDEMO_LOG_FORMAT"},
				Value:   "text",
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log level: debug, info, warn, error",
				EnvVars: []string{"STRIPEDEMO_LOG_LEVEL"},
				Value:   "info",
			},
			&cli.StringFlag{
				Name:    "metrics-addr",
				Usage:   "serve Prometheus metrics on this address (disabled if empty)",
				EnvVars: []string{"STRIPEDEMO_METRICS_ADDR"},
			},
		},
		Action: run,
	}
}

func run(c *cli.Context) error {
	log, err := newLogger(c.App.ErrWriter, c.String("log-format"), c.String("log-level"))
	if err != nil {
		return err
	}

	cfg := demo.Config{
		Lanes:      c.Int("lanes"),
		Workers:    c.Int("workers"),
		Increments: c.Int("increments"),
		Interval:   c.Duration("interval"),
		Reports:    c.Int("reports"),
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	set, err := counterset.New(cfg.Lanes)
	if err != nil {
		return err
	}
	r, err := demo.NewRunner(cfg, set.Counter(counterName), log)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if addr := c.String("metrics-addr"); addr != "" {
		_, shutdown, err := serveMetrics(addr, set, log)
		if err != nil {
			return err
		}
		defer shutdown()
	}

	res, err := r.Run(ctx)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(c.App.Writer, "sum=%d\n", res.Sum)
	return err
}

func newLogger(w io.Writer, format, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	opts := &slog.HandlerOptions{Level: lvl}
	switch format {
	case "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("invalid log format %q", format)
	}
}

// serveMetrics binds addr and serves /metrics for set in the background.
// It returns the bound address and a func that stops the server.
func serveMetrics(addr string, set *counterset.Set, log *slog.Logger) (net.Addr, func(), error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, nil, fmt.Errorf("metrics listener: %w", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(metrics.NewCollector("stripedemo", set))

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	srv := &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	log.Info("serving metrics", "addr", ln.Addr().String())
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("metrics server", "error", err)
		}
	}()
	return ln.Addr(), func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}, nil
}
