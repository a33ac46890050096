// Command wavefront seeds an N×N symmetric store and sweeps it with the
// selected scheduler, reporting progress and the total sweep duration.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/katalvlaran/wavefront/farm"
	"github.com/katalvlaran/wavefront/internal/config"
	"github.com/katalvlaran/wavefront/matrix"
	"github.com/katalvlaran/wavefront/tree"
	"github.com/katalvlaran/wavefront/wavefront"
)

// printLimit keeps terminal output readable: larger matrices are summarised
// instead of dumped row by row.
const printLimit = 100

// progressEvery caps how often progress lines reach the log; large runs emit
// thousands of diagonals and most of them are noise.
const progressEvery = 250 * time.Millisecond

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "fatal:", err)
		os.Exit(1)
	}
}

func run() error {
	var cfgPath string
	flag.StringVar(&cfgPath, "config", "", "path to a YAML run configuration")
	length := flag.Int("n", 0, "matrix side length")
	workers := flag.Int("workers", 0, "worker or participant count (0 = derive)")
	scheduler := flag.String("scheduler", "", "sequential, farm or tree")
	policy := flag.String("policy", "", "chunk policy: static or dynamic")
	maxChunk := flag.Int("max-chunk", -1, "static chunk cap (0 = uncapped)")
	assist := flag.Bool("assist", false, "coordinator computes the final chunk itself")
	printRes := flag.Bool("print", false, "print the result (small matrices only)")
	logLevel := flag.String("log-level", "", "trace, debug, info, warn or error")
	flag.Parse()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	// Flags set on the command line win over the file; untouched flags keep
	// the loaded values.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "n":
			cfg.Length = *length
		case "workers":
			cfg.Workers = *workers
		case "scheduler":
			cfg.Scheduler = *scheduler
		case "policy":
			cfg.Policy = *policy
		case "max-chunk":
			cfg.MaxChunk = *maxChunk
		case "assist":
			cfg.Assist = *assist
		case "print":
			cfg.Print = *printRes
		case "log-level":
			cfg.LogLevel = *logLevel
		}
	})
	if err = cfg.Validate(); err != nil {
		return err
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("parse log level %q: %w", cfg.LogLevel, err)
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
		Level(level).
		With().Timestamp().Logger()

	log.Info().
		Int("length", cfg.Length).
		Str("scheduler", cfg.Scheduler).
		Str("policy", cfg.Policy).
		Int("workers", cfg.Workers).
		Msg("starting sweep")

	start := time.Now()
	m, err := sweep(cfg, log)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	log.Info().
		Dur("elapsed", elapsed).
		Int("length", cfg.Length).
		Msg("sweep complete")

	if cfg.Print {
		if cfg.Length > printLimit {
			log.Warn().
				Int("length", cfg.Length).
				Int("limit", printLimit).
				Msg("matrix too large to print")
		} else {
			fmt.Print(m.String())
		}
	}

	return nil
}

// sweep dispatches to the configured scheduler and returns the settled store.
func sweep(cfg config.Config, log zerolog.Logger) (*matrix.Square, error) {
	// Progress callbacks run on hot coordinator paths; a limiter keeps the
	// terminal usable without slowing the sweep down.
	limiter := rate.NewLimiter(rate.Every(progressEvery), 1)

	switch cfg.Scheduler {
	case config.SchedulerTree:
		if cfg.Workers == 0 {
			cfg.Workers = 1
		}
		return tree.Run(cfg.Length, cfg.Workers, tree.WithOnRound(func(round, active int) {
			if limiter.Allow() {
				log.Debug().Int("round", round).Int("active", active).Msg("merge round")
			}
		}))

	case config.SchedulerFarm:
		kind, err := wavefront.ParsePolicy(cfg.Policy)
		if err != nil {
			return nil, err
		}

		opts := []farm.Option{
			farm.WithPolicy(kind),
			farm.WithMaxChunk(cfg.MaxChunk),
			farm.WithOnDiagonal(func(diag, length int) {
				if limiter.Allow() {
					log.Debug().Int("diag", diag).Int("cells", length).Msg("diagonal settled")
				}
			}),
		}
		if cfg.Workers > 0 {
			opts = append(opts, farm.WithWorkers(cfg.Workers))
		}
		if cfg.Assist {
			opts = append(opts, farm.WithCoordinatorAssist())
		}

		m, err := seeded(cfg.Length)
		if err != nil {
			return nil, err
		}
		if err = farm.Run(m, opts...); err != nil {
			return nil, err
		}
		return m, nil

	default: // config.Validate already narrowed the selector.
		m, err := seeded(cfg.Length)
		if err != nil {
			return nil, err
		}
		if err = wavefront.Sequential(m); err != nil {
			return nil, err
		}
		return m, nil
	}
}

// seeded allocates and seeds a fresh store of side length n.
func seeded(n int) (*matrix.Square, error) {
	m, err := matrix.NewSquare(n)
	if err != nil {
		return nil, err
	}
	if err = m.Seed(); err != nil {
		return nil, err
	}

	return m, nil
}
