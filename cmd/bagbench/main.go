// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// bagbench times the bag storage backends against each other and prints a
// per-scenario table. Scenarios come from a YAML file or from the built-in
// backend x operation cross product.
package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/akamensky/argparse"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/ava-labs/bag/internal/bench"
)

func main() {
	parser := argparse.NewParser("bagbench", "Benchmark the bag storage backends")
	configPath := parser.String("c", "config", &argparse.Options{
		Help: "path to a YAML scenario file (defaults to the built-in cross product)",
	})
	amount := parser.Int("n", "amount", &argparse.Options{
		Help:    "elements per scenario for the built-in cross product",
		Default: 10_000,
	})
	backend := parser.String("b", "backend", &argparse.Options{
		Help: "only run scenarios for this backend",
	})
	workers := parser.Int("w", "workers", &argparse.Options{
		Help:    "scenario cells to run concurrently",
		Default: 4,
	})
	if err := parser.Parse(os.Args); err != nil {
		fmt.Fprint(os.Stderr, parser.Usage(err))
		os.Exit(1)
	}

	log, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if err := run(log, *configPath, *amount, *backend, *workers); err != nil {
		log.Fatal("bench failed", zap.Error(err))
	}
}

func run(log *zap.Logger, configPath string, amount int, backend string, workers int) error {
	var (
		cfg bench.Config
		err error
	)
	if configPath != "" {
		cfg, err = bench.LoadConfig(configPath)
		if err != nil {
			return err
		}
	} else {
		cfg = bench.DefaultConfig(amount)
	}
	if backend != "" {
		kept := cfg.Scenarios[:0]
		for _, s := range cfg.Scenarios {
			if s.Backend == backend {
				kept = append(kept, s)
			}
		}
		if len(kept) == 0 {
			return fmt.Errorf("no scenarios for backend %q", backend)
		}
		cfg.Scenarios = kept
	}

	runner := bench.NewRunner(log, prometheus.NewRegistry())
	results, err := runner.Run(context.Background(), cfg, workers)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SCENARIO\tBACKEND\tOP\tAMOUNT\tELAPSED\tNODES ALLOC\tNODES REUSED")
	for _, res := range results {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\t%d\t%d\n",
			res.Name,
			res.Backend,
			res.Op,
			res.Amount,
			res.Elapsed,
			res.Allocs.Allocated,
			res.Allocs.Reused,
		)
	}
	return w.Flush()
}
