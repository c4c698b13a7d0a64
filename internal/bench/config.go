// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package bench

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

const defaultAmount = 10_000

var (
	errUnknownBackend = errors.New("unknown backend")
	errUnknownOp      = errors.New("unknown operation")
	errInvalidAmount  = errors.New("amount must be greater than 0")

	// Backends and Ops enumerate the supported scenario axes.
	Backends = []string{"linked", "vector", "hashed", "sorted", "ring"}
	Ops      = []string{"insert", "erase", "lookup"}
)

// Scenario is one benchmark cell: a backend exercised by one operation over
// [Amount] elements.
type Scenario struct {
	Name    string `yaml:"name"`
	Backend string `yaml:"backend"`
	Op      string `yaml:"op"`
	Amount  int    `yaml:"amount"`
}

func (s Scenario) validate() error {
	if !contains(Backends, s.Backend) {
		return fmt.Errorf("%w: %q", errUnknownBackend, s.Backend)
	}
	if !contains(Ops, s.Op) {
		return fmt.Errorf("%w: %q", errUnknownOp, s.Op)
	}
	if s.Amount <= 0 {
		return fmt.Errorf("%w: %d", errInvalidAmount, s.Amount)
	}
	return nil
}

// Config is the scenario list executed by a [Runner].
type Config struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// Validate checks every scenario axis against the supported sets.
func (c Config) Validate() error {
	for _, s := range c.Scenarios {
		if err := s.validate(); err != nil {
			return fmt.Errorf("scenario %q: %w", s.Name, err)
		}
	}
	return nil
}

// DefaultConfig returns the full backend x operation cross product at
// [amount] elements per cell (or [defaultAmount] if amount <= 0).
func DefaultConfig(amount int) Config {
	if amount <= 0 {
		amount = defaultAmount
	}
	var c Config
	for _, backend := range Backends {
		for _, op := range Ops {
			c.Scenarios = append(c.Scenarios, Scenario{
				Name:    fmt.Sprintf("%s/%s", backend, op),
				Backend: backend,
				Op:      op,
				Amount:  amount,
			})
		}
	}
	return c
}

// LoadConfig reads and validates a YAML scenario file.
func LoadConfig(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return Config{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
