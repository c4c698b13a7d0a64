// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package alloc

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics exports node lifecycle totals on a prometheus registry. It
// satisfies list.Recorder and is used by the benchmark harness to publish
// per-backend allocation behavior alongside its timing averagers.
type Metrics struct {
	allocated prometheus.Counter
	reused    prometheus.Counter
	released  prometheus.Counter
}

// NewMetrics registers the node lifecycle counters on [r]. The [namespace]
// should identify the observed structure (e.g. "bag_linked").
func NewMetrics(namespace string, r *prometheus.Registry) (*Metrics, error) {
	m := &Metrics{
		allocated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "nodes_allocated",
			Help:      "nodes heap-allocated",
		}),
		reused: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "nodes_reused",
			Help:      "nodes taken from the free list",
		}),
		released: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "nodes_released",
			Help:      "nodes detached and returned",
		}),
	}
	for _, c := range []prometheus.Counter{m.allocated, m.reused, m.released} {
		if err := r.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) Allocated() { m.allocated.Inc() }

func (m *Metrics) Reused() { m.reused.Inc() }

func (m *Metrics) Released() { m.released.Inc() }
