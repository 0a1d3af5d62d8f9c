// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

var _ Sampler[int] = (*resample[int])(nil)

// resample allows for sampling over a uniform distribution without
// replacement.
//
// Sampling is performed by sampling with replacement and resampling if a
// duplicate is sampled.
//
// Sampling is performed in expected O(k*n/(n-k)) time and O(k) space, which
// makes it the cheapest sequential sampler when k is far below n.
type resample[T any] struct {
	seeder
	config Config
}

func NewResample[T any](config Config) Sampler[T] {
	return &resample[T]{config: config.withDefaults()}
}

func (s *resample[T]) Sample(population []T, k int) ([]T, error) {
	n := len(population)
	if err := verifyCount(n, k); err != nil {
		return nil, err
	}
	s.config.Metrics.observeCall(Resample)

	var (
		r      = newStream(s.nextSeed(), 0)
		drawn  = make(map[int]struct{}, k)
		sample = make([]T, 0, k)
	)
	for len(sample) < k {
		draw := r.Intn(n)
		if _, ok := drawn[draw]; ok {
			continue
		}
		drawn[draw] = struct{}{}
		sample = append(sample, population[draw])
	}
	return sample, nil
}
