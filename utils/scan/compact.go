// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package scan

import (
	"github.com/ava-labs/parsampler/utils/parallel"
	"github.com/ava-labs/parsampler/utils/scatter"
)

// Flags returns a 0/1 array with flags[i] == 1 iff keep(i).
func Flags(s *parallel.Scheduler, n int, keep func(i int) bool) []int {
	flags := make([]int, n)
	out := scatter.New(flags)
	s.For(0, n, func(low, high int) {
		for i := low; i < high; i++ {
			if keep(i) {
				out.Write(i, 1)
			}
		}
	})
	return flags
}

// Pack returns the elements of [xs] whose flag is 1, in their original order.
// [flags] must hold only 0 and 1. Each kept element is written at its
// exclusive prefix over [flags], so writers never overlap.
func Pack[T any](s *parallel.Scheduler, xs []T, flags []int) []T {
	count, offsets := Scan(s, flags)
	return Compact(s, xs, flags, offsets, count)
}

// Compact is Pack for callers that already hold the scan of [flags].
func Compact[T any](s *parallel.Scheduler, xs []T, flags, offsets []int, count int) []T {
	packed := make([]T, count)
	out := scatter.New(packed)
	s.For(0, len(xs), func(low, high int) {
		for i := low; i < high; i++ {
			if flags[i] != 0 {
				out.Write(offsets[i], xs[i])
			}
		}
	})
	return packed
}

// Filter returns the elements xs[i] for which keep(i), in their original
// order.
func Filter[T any](s *parallel.Scheduler, xs []T, keep func(i int) bool) []T {
	return Pack(s, xs, Flags(s, len(xs), keep))
}
