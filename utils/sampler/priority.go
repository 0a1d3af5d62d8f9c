// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"go.uber.org/zap"

	"github.com/ava-labs/parsampler/utils/scan"
)

var _ Sampler[int] = (*priority[int])(nil)

// priority assigns every element a random priority key and returns the k
// elements with the smallest keys, in population order.
//
// The k-th smallest key is found by parallel quickselect: elements ranking
// below a random pivot are flagged and packed with a prefix scan; with
// leq = below+1 elements at or below the pivot, the pivot is the answer if
// leq == k, otherwise the search continues in the elements below the pivot
// (leq > k) or above it (leq < k, looking for the (k-leq)-th). Every step
// drops the pivot, so the working set strictly shrinks.
type priority[T any] struct {
	seeder
	config Config
}

func NewPriority[T any](config Config) Sampler[T] {
	return &priority[T]{config: config.withDefaults()}
}

// Sample returns the population unchanged, in its original order, when k
// equals the population size.
func (p *priority[T]) Sample(population []T, k int) ([]T, error) {
	n := len(population)
	if err := verifyCount(n, k); err != nil {
		return nil, err
	}
	p.config.Metrics.observeCall(Priority)

	s := p.config.Scheduler
	switch k {
	case 0:
		return []T{}, nil
	case n:
		return clone(s, population), nil
	}

	seed := p.nextSeed()
	threshold := p.selectKth(rankAll(s, n, seed), k, newStream(seed, pivotStream))
	return scan.Filter(s, population, func(i int) bool {
		return !threshold.less(ranked{
			key:   priorityKey(seed, i),
			index: i,
		})
	}), nil
}

// selectKth returns the [k]-th smallest (1-based) element of [items]. [items]
// may be reordered.
func (p *priority[T]) selectKth(items []ranked, k int, r *rng) ranked {
	s := p.config.Scheduler
	for step := 1; ; step++ {
		if s.Serial(len(items)) {
			return quickselect(items, k, r)
		}
		p.config.Metrics.observeSelectStep()

		current := items
		pivot := current[r.Intn(len(current))]
		below := scan.Flags(s, len(current), func(i int) bool {
			return current[i].less(pivot)
		})
		count, offsets := scan.Scan(s, below)
		leq := count + 1

		p.config.Log.Verbo("select step",
			zap.Int("step", step),
			zap.Int("size", len(current)),
			zap.Int("k", k),
			zap.Int("leq", leq),
		)

		switch {
		case leq == k:
			return pivot
		case leq > k:
			items = scan.Compact(s, current, below, offsets, count)
		default:
			items = scan.Filter(s, current, func(i int) bool {
				return pivot.less(current[i])
			})
			k -= leq
		}
	}
}
