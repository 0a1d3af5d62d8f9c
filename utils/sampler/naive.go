// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import "slices"

var _ Sampler[int] = (*naive[int])(nil)

// naive removes a uniformly random element from a working copy k times.
//
// Sampling is performed in O(n*k) time and O(n) space.
type naive[T any] struct {
	seeder
	config Config
}

func NewNaive[T any](config Config) Sampler[T] {
	return &naive[T]{config: config.withDefaults()}
}

func (s *naive[T]) Sample(population []T, k int) ([]T, error) {
	if err := verifyCount(len(population), k); err != nil {
		return nil, err
	}
	s.config.Metrics.observeCall(Naive)

	var (
		r       = newStream(s.nextSeed(), 0)
		working = slices.Clone(population)
		sample  = make([]T, 0, k)
	)
	for range k {
		i := r.Intn(len(working))
		sample = append(sample, working[i])
		working = slices.Delete(working, i, i+1)
	}
	return sample, nil
}
