// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"errors"
	"fmt"
	"strings"
)

// Algorithm names a Sampler implementation.
type Algorithm string

const (
	Naive                 Algorithm = "naive"
	Resample              Algorithm = "resample"
	SequentialPriority    Algorithm = "seqpriority"
	Priority              Algorithm = "parpriority"
	SequentialPermutation Algorithm = "seqperm"
	Permutation           Algorithm = "parperm"
	FullPermutation       Algorithm = "parpermfull"
)

var ErrUnknownAlgorithm = errors.New("unknown algorithm")

// Algorithms returns every supported algorithm, sequential references first.
func Algorithms() []Algorithm {
	return []Algorithm{
		Naive,
		Resample,
		SequentialPriority,
		Priority,
		SequentialPermutation,
		Permutation,
		FullPermutation,
	}
}

func ParseAlgorithm(s string) (Algorithm, error) {
	name := Algorithm(strings.ToLower(strings.TrimSpace(s)))
	for _, algorithm := range Algorithms() {
		if algorithm == name {
			return algorithm, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// Parallel reports whether [a] uses the configured scheduler.
func (a Algorithm) Parallel() bool {
	switch a {
	case Priority, Permutation, FullPermutation:
		return true
	default:
		return false
	}
}

// New returns the sampler implementing [algorithm].
func New[T any](algorithm Algorithm, config Config) (Sampler[T], error) {
	switch algorithm {
	case Naive:
		return NewNaive[T](config), nil
	case Resample:
		return NewResample[T](config), nil
	case SequentialPriority:
		return NewSequentialPriority[T](config), nil
	case Priority:
		return NewPriority[T](config), nil
	case SequentialPermutation:
		return NewSequentialPermutation[T](config), nil
	case Permutation:
		return NewPermutation[T](config), nil
	case FullPermutation:
		return NewFullPermutation[T](config), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algorithm)
	}
}
