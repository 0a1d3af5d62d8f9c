// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics are shared by every sampler built from the same Config. A nil
// *Metrics records nothing.
type Metrics struct {
	calls       *prometheus.CounterVec
	rounds      prometheus.Counter
	commits     prometheus.Counter
	conflicts   prometheus.Counter
	selectSteps prometheus.Counter
}

func NewMetrics(namespace string, registerer prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		calls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "sample_calls",
				Help:      "Number of Sample calls that passed validation",
			},
			[]string{"algorithm"},
		),
		rounds: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "permutation_rounds",
			Help:      "Number of reserve/commit rounds run by the permutation sampler",
		}),
		commits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "permutation_commits",
			Help:      "Number of swaps committed by the permutation sampler",
		}),
		conflicts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "permutation_conflicts",
			Help:      "Number of swaps deferred to a later round after losing a reservation",
		}),
		selectSteps: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "select_steps",
			Help:      "Number of parallel partition steps run by the priority sampler",
		}),
	}
	err := errors.Join(
		registerer.Register(m.calls),
		registerer.Register(m.rounds),
		registerer.Register(m.commits),
		registerer.Register(m.conflicts),
		registerer.Register(m.selectSteps),
	)
	return m, err
}

func (m *Metrics) observeCall(algorithm Algorithm) {
	if m == nil {
		return
	}
	m.calls.WithLabelValues(string(algorithm)).Inc()
}

func (m *Metrics) observeRound(commits, conflicts int) {
	if m == nil {
		return
	}
	m.rounds.Inc()
	m.commits.Add(float64(commits))
	m.conflicts.Add(float64(conflicts))
}

func (m *Metrics) observeSelectStep() {
	if m == nil {
		return
	}
	m.selectSteps.Inc()
}
