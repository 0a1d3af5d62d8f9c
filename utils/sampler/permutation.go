// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"go.uber.org/zap"

	"github.com/ava-labs/parsampler/utils/scan"
	"github.com/ava-labs/parsampler/utils/scatter"
)

var _ Sampler[int] = (*permutation[int])(nil)

// permutation applies the first k swaps of a Knuth shuffle in parallel and
// returns the first k positions.
//
// Swaps are scheduled with deterministic reservations: in every round a
// batch of the smallest pending indices claims both positions each swap
// touches, keeping the smallest claimant per position. An index that holds
// both of its positions cannot conflict with any earlier pending swap, so it
// commits; the rest are packed and retried. The smallest pending index always
// commits, so every round makes progress, and the result equals the
// sequential shuffle for the same targets.
type permutation[T any] struct {
	seeder
	config    Config
	algorithm Algorithm
	// full applies all n swaps before truncating to k.
	full bool
}

// NewPermutation returns a parallel sampler that applies only the k swaps
// that determine the first k positions.
func NewPermutation[T any](config Config) Sampler[T] {
	return &permutation[T]{
		config:    config.withDefaults(),
		algorithm: Permutation,
	}
}

// NewFullPermutation returns a parallel sampler that permutes the whole
// population and returns its first k elements.
func NewFullPermutation[T any](config Config) Sampler[T] {
	return &permutation[T]{
		config:    config.withDefaults(),
		algorithm: FullPermutation,
		full:      true,
	}
}

func (p *permutation[T]) Sample(population []T, k int) ([]T, error) {
	n := len(population)
	if err := verifyCount(n, k); err != nil {
		return nil, err
	}
	p.config.Metrics.observeCall(p.algorithm)

	steps := k
	if p.full {
		steps = n
	}
	targets := swapTargets(p.config.Scheduler, n, steps, p.nextSeed())
	working := clone(p.config.Scheduler, population)
	p.permute(working, targets)

	if k == n {
		return working, nil
	}
	sample := make([]T, k)
	copy(sample, working)
	return sample, nil
}

// permute applies swap(i, targets[i]) to [working] for every i in
// [0, len(targets)), with the same outcome as applying them in index order.
func (p *permutation[T]) permute(working []T, targets []int) {
	var (
		s            = p.config.Scheduler
		log          = p.config.Log
		reservations = scatter.NewReservations(len(working))
		buffer       scatter.Buffer[T]
	)
	if p.config.CheckWrites {
		buffer = scatter.NewChecked(working)
	} else {
		buffer = scatter.New(working)
	}

	// pending is always sorted, so every batch holds the smallest pending
	// indices.
	pending := make([]int, len(targets))
	s.For(0, len(pending), func(low, high int) {
		for i := low; i < high; i++ {
			pending[i] = i
		}
	})

	for round := 1; len(pending) > 0; round++ {
		size := min(len(pending), p.batchSize(len(pending)))
		batch := pending[:size]

		// Earlier rounds may have left claims on the positions this batch
		// touches.
		s.For(0, size, func(low, high int) {
			for _, i := range batch[low:high] {
				reservations.Release(i)
				reservations.Release(targets[i])
			}
		})

		s.For(0, size, func(low, high int) {
			for _, i := range batch[low:high] {
				reservations.Claim(i, i)
				reservations.Claim(targets[i], i)
			}
		})

		buffer.Begin()
		failed := make([]int, size)
		s.For(0, size, func(low, high int) {
			for j := low; j < high; j++ {
				i := batch[j]
				target := targets[i]
				if reservations.Holds(i, i) && reservations.Holds(target, i) {
					buffer.Swap(i, target)
				} else {
					failed[j] = 1
				}
			}
		})

		retry := scan.Pack(s, batch, failed)
		// retry is sorted and every index in it is smaller than the
		// unprocessed tail, so placing it right before the tail keeps
		// pending sorted.
		start := size - len(retry)
		copy(pending[start:size], retry)
		pending = pending[start:]

		p.config.Metrics.observeRound(start, len(retry))
		log.Verbo("permutation round",
			zap.Int("round", round),
			zap.Int("batch", size),
			zap.Int("committed", start),
			zap.Int("conflicts", len(retry)),
			zap.Int("pending", len(pending)),
		)
	}
}

// batchSize shrinks with the remaining work and never drops below MinBatch.
func (p *permutation[T]) batchSize(pending int) int {
	return max(pending/p.config.BatchDivisor, p.config.MinBatch)
}
