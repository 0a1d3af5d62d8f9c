// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package scan implements a work-efficient parallel exclusive prefix sum and
// the stream compaction built on top of it.
package scan

import (
	"golang.org/x/exp/constraints"

	"github.com/ava-labs/parsampler/utils/parallel"
	"github.com/ava-labs/parsampler/utils/scatter"
)

// Scan returns the sum of [xs] and the exclusive prefix sums of [xs], so that
// prefix[i] is the sum of xs[0:i].
//
// The up-sweep records the sum of every left subtree at its split boundary in
// an auxiliary array of length len(xs)-1; the down-sweep uses those partial
// sums to hand each subtree its starting offset. Both sweeps share one split
// tree, cut off at the scheduler grain. An empty input returns a zero total
// and an empty prefix.
func Scan[N constraints.Integer](s *parallel.Scheduler, xs []N) (N, []N) {
	prefix := make([]N, len(xs))
	if len(xs) == 0 {
		return 0, prefix
	}

	partials := make([]N, len(xs)-1)
	total := upSweep(s, xs, scatter.New(partials))
	downSweep(s, xs, partials, scatter.New(prefix), 0)
	return total, prefix
}

// upSweep returns the sum of [xs]. [partials] covers the len(xs)-1 split
// boundaries of [xs].
func upSweep[N constraints.Integer](
	s *parallel.Scheduler,
	xs []N,
	partials scatter.Buffer[N],
) N {
	if s.Serial(len(xs)) {
		var sum N
		for _, x := range xs {
			sum += x
		}
		return sum
	}

	mid := len(xs) / 2
	leftPartials, rest := partials.Split(mid - 1)
	boundary, rightPartials := rest.Split(1)

	var left, right N
	s.Join(
		func() { left = upSweep(s, xs[:mid], leftPartials) },
		func() { right = upSweep(s, xs[mid:], rightPartials) },
	)
	boundary.Write(0, left)
	return left + right
}

func downSweep[N constraints.Integer](
	s *parallel.Scheduler,
	xs []N,
	partials []N,
	out scatter.Buffer[N],
	offset N,
) {
	if s.Serial(len(xs)) {
		acc := offset
		for i, x := range xs {
			out.Write(i, acc)
			acc += x
		}
		return
	}

	mid := len(xs) / 2
	leftOut, rightOut := out.Split(mid)
	s.Join(
		func() { downSweep(s, xs[:mid], partials[:mid-1], leftOut, offset) },
		func() { downSweep(s, xs[mid:], partials[mid:], rightOut, offset+partials[mid-1]) },
	)
}
