// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import "github.com/ava-labs/parsampler/utils/parallel"

var _ Sampler[int] = (*sequentialPriority[int])(nil)

// sequentialPriority is the single-threaded reference for priority. For the
// same seed both return the same sample.
type sequentialPriority[T any] struct {
	seeder
	config Config
}

func NewSequentialPriority[T any](config Config) Sampler[T] {
	return &sequentialPriority[T]{config: config.withDefaults()}
}

func (p *sequentialPriority[T]) Sample(population []T, k int) ([]T, error) {
	n := len(population)
	if err := verifyCount(n, k); err != nil {
		return nil, err
	}
	p.config.Metrics.observeCall(SequentialPriority)

	switch k {
	case 0:
		return []T{}, nil
	case n:
		sample := make([]T, n)
		copy(sample, population)
		return sample, nil
	}

	seed := p.nextSeed()
	threshold := quickselect(rankAll(parallel.Sequential(), n, seed), k, newStream(seed, pivotStream))

	sample := make([]T, 0, k)
	for i, v := range population {
		if !threshold.less(ranked{key: priorityKey(seed, i), index: i}) {
			sample = append(sample, v)
		}
	}
	return sample, nil
}
