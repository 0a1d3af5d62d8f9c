// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import "github.com/ava-labs/parsampler/utils/parallel"

var _ Sampler[int] = (*sequentialPermutation[int])(nil)

// sequentialPermutation is the reference Knuth shuffle. It draws the same
// targets as the parallel permutation samplers for the same seed.
//
// Only the positions displaced by earlier swaps are tracked, so a call takes
// O(k) time and space beyond drawing the targets.
type sequentialPermutation[T any] struct {
	seeder
	config Config
}

func NewSequentialPermutation[T any](config Config) Sampler[T] {
	return &sequentialPermutation[T]{config: config.withDefaults()}
}

func (p *sequentialPermutation[T]) Sample(population []T, k int) ([]T, error) {
	n := len(population)
	if err := verifyCount(n, k); err != nil {
		return nil, err
	}
	p.config.Metrics.observeCall(SequentialPermutation)

	targets := swapTargets(parallel.Sequential(), n, k, p.nextSeed())
	return knuthPrefix(population, targets), nil
}

// knuthPrefix returns the first len(targets) positions of [population] after
// applying swap(i, targets[i]) in index order.
func knuthPrefix[T any](population []T, targets []int) []T {
	var (
		sample = make([]T, len(targets))
		// displaced maps a position to the value swapped into it.
		displaced = make(map[int]T)
		valueAt   = func(i int) T {
			if v, ok := displaced[i]; ok {
				return v
			}
			return population[i]
		}
	)
	for i, target := range targets {
		current := valueAt(i)
		sample[i] = valueAt(target)
		// Later swaps only touch positions after i.
		delete(displaced, i)
		if target != i {
			displaced[target] = current
		}
	}
	return sample
}
