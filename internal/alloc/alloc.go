// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package alloc provides allocation-observing collaborators for the
// container packages. Instead of intercepting every allocation in the
// process, a counter is injected into the structure under observation and
// tallies exactly the node traffic of that one instance.
package alloc

import (
	"go.uber.org/atomic"
)

// Counter tallies node lifecycle events. It satisfies list.Recorder.
//
// Counters are safe for concurrent use, so one Counter may be shared by
// several independently locked lists.
type Counter struct {
	allocated atomic.Int64
	reused    atomic.Int64
	released  atomic.Int64
}

// Snapshot is a point-in-time copy of a Counter's totals.
type Snapshot struct {
	Allocated int64
	Reused    int64
	Released  int64
}

// Live returns the number of nodes handed out and not yet released,
// counting reuses as hand-outs.
func (s Snapshot) Live() int64 {
	return s.Allocated + s.Reused - s.Released
}

func (c *Counter) Allocated() { c.allocated.Inc() }

func (c *Counter) Reused() { c.reused.Inc() }

func (c *Counter) Released() { c.released.Inc() }

// Snapshot returns the current totals.
func (c *Counter) Snapshot() Snapshot {
	return Snapshot{
		Allocated: c.allocated.Load(),
		Reused:    c.reused.Load(),
		Released:  c.released.Load(),
	}
}

// Reset zeroes all totals.
func (c *Counter) Reset() {
	c.allocated.Store(0)
	c.reused.Store(0)
	c.released.Store(0)
}
