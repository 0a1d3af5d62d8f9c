// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"github.com/ava-labs/parsampler/utils/parallel"
	"github.com/ava-labs/parsampler/utils/scatter"
)

// targetBlock is the number of consecutive swap targets drawn from one
// stream. It is fixed so that targets never depend on the scheduler.
const targetBlock = 1 << 12

// SwapTargets returns target[i] drawn uniformly from [i, n) for every i in
// [0, n). Applying swap(i, target[i]) for i = 0, 1, ... is a Knuth shuffle.
func SwapTargets(s *parallel.Scheduler, n int, seed uint64) []int {
	return swapTargets(s, n, n, seed)
}

// swapTargets returns the first [count] targets of SwapTargets(s, n, seed).
func swapTargets(s *parallel.Scheduler, n, count int, seed uint64) []int {
	targets := make([]int, count)
	out := scatter.New(targets)
	blocks := (count + targetBlock - 1) / targetBlock
	s.ForGrain(0, blocks, 1, func(low, high int) {
		for block := low; block < high; block++ {
			r := newStream(seed, uint64(block))
			end := min((block+1)*targetBlock, count)
			for i := block * targetBlock; i < end; i++ {
				out.Write(i, i+int(r.Uint64Inclusive(uint64(n-1-i))))
			}
		}
	})
	return targets
}
