// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package sampler draws k elements of a population without replacement.
//
// Every algorithm implements Sampler. The parallel permutation sampler
// reproduces the sequential Knuth shuffle exactly for a given seed; the
// parallel priority sampler returns the k elements with the smallest random
// priority keys.
package sampler

import (
	"errors"
	"fmt"
)

var ErrOutOfRange = errors.New("out of range")

// Sampler draws samples without replacement.
type Sampler[T any] interface {
	// Sample returns [k] distinct positions of [population]. It returns
	// ErrOutOfRange if k is negative or larger than the population.
	// [population] is never modified.
	Sample(population []T, k int) ([]T, error)

	// Seed fixes the random draws of every following Sample call.
	Seed(seed uint64)
	// ClearSeed makes every following Sample call draw a fresh seed.
	ClearSeed()
}

func verifyCount(n, k int) error {
	if k < 0 || k > n {
		return fmt.Errorf("%w: cannot sample %d of %d elements", ErrOutOfRange, k, n)
	}
	return nil
}
