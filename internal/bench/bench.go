// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package bench times the bag backends against each other: every scenario
// builds a fresh bag, drives one operation over it, and reports wall time
// plus node allocation counts where the backend exposes them.
package bench

import (
	"context"
	"fmt"
	"time"

	"github.com/ava-labs/avalanchego/utils/metric"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ava-labs/bag/bag"
	"github.com/ava-labs/bag/internal/alloc"
)

// Result is the outcome of one scenario cell.
type Result struct {
	Scenario

	Elapsed time.Duration
	Allocs  alloc.Snapshot // zero unless the backend reports allocations
}

// Runner executes scenario cells, feeding timings to per-cell averagers on
// its prometheus registry. Cells run concurrently; every cell owns its bag,
// so the containers' single-goroutine rule holds per instance.
type Runner struct {
	log      *zap.Logger
	registry *prometheus.Registry
}

// NewRunner returns a runner logging through [log] and registering its
// metrics on [registry].
func NewRunner(log *zap.Logger, registry *prometheus.Registry) *Runner {
	return &Runner{
		log:      log,
		registry: registry,
	}
}

// Run executes every scenario in [cfg] with up to [workers] cells in
// flight and returns their results in config order.
func (r *Runner) Run(ctx context.Context, cfg Config, workers int) ([]Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if workers < 1 {
		workers = 1
	}

	// Averagers must be registered before the cells race to observe them.
	avgs := make(map[string]metric.Averager, len(cfg.Scenarios))
	for _, s := range cfg.Scenarios {
		key := s.Backend + "_" + s.Op
		if _, ok := avgs[key]; ok {
			continue
		}
		a, err := metric.NewAverager(
			fmt.Sprintf("bench_%s", key),
			fmt.Sprintf("time spent on %s over the %s backend", s.Op, s.Backend),
			r.registry,
		)
		if err != nil {
			return nil, err
		}
		avgs[key] = a
	}

	results := make([]Result, len(cfg.Scenarios))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i, s := range cfg.Scenarios {
		i, s := i, s
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := runScenario(s)
			if err != nil {
				return err
			}
			avgs[s.Backend+"_"+s.Op].Observe(float64(res.Elapsed))
			r.log.Info("scenario complete",
				zap.String("name", s.Name),
				zap.String("backend", s.Backend),
				zap.String("op", s.Op),
				zap.Int("amount", s.Amount),
				zap.Duration("elapsed", res.Elapsed),
				zap.Int64("nodesAllocated", res.Allocs.Allocated),
				zap.Int64("nodesReused", res.Allocs.Reused),
			)
			results[i] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func runScenario(s Scenario) (Result, error) {
	backend, err := newBackend(s.Backend)
	if err != nil {
		return Result{}, err
	}

	counter := &alloc.Counter{}
	if linked, ok := backend.(*bag.Linked[int]); ok {
		linked.SetRecorder(counter)
	}
	b := bag.New(backend)

	// Erase and lookup run against a pre-populated bag; the fill is not
	// part of the measured window.
	if s.Op != "insert" {
		for i := 0; i < s.Amount; i++ {
			b.Insert(i)
		}
	}

	start := time.Now()
	switch s.Op {
	case "insert":
		for i := 0; i < s.Amount; i++ {
			b.Insert(i)
		}
	case "erase":
		for i := s.Amount - 1; i >= 0; i-- {
			b.Erase(i)
		}
	case "lookup":
		for i := 0; i < s.Amount; i++ {
			b.Contains(i)
		}
	default:
		return Result{}, fmt.Errorf("%w: %q", errUnknownOp, s.Op)
	}

	return Result{
		Scenario: s,
		Elapsed:  time.Since(start),
		Allocs:   counter.Snapshot(),
	}, nil
}

func newBackend(name string) (bag.Backend[int], error) {
	switch name {
	case "linked":
		return bag.NewLinked[int](), nil
	case "vector":
		return bag.NewVector[int](), nil
	case "hashed":
		return bag.NewHashed[int](), nil
	case "sorted":
		return bag.NewSorted[int](), nil
	case "ring":
		return bag.NewRing[int](), nil
	default:
		return nil, fmt.Errorf("%w: %q", errUnknownBackend, name)
	}
}
