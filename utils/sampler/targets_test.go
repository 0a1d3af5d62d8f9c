// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/parsampler/utils/parallel"
)

func TestSwapTargetsInRange(t *testing.T) {
	require := require.New(t)

	const n = 1_000_000
	targets := SwapTargets(parallel.New(parallel.Config{}), n, 1)
	require.Len(targets, n)
	for i, target := range targets {
		require.GreaterOrEqual(target, i)
		require.Less(target, n)
	}
	require.Equal(n-1, targets[n-1])
}

func TestSwapTargetsIndependentOfScheduler(t *testing.T) {
	require := require.New(t)

	const n = 3*targetBlock + 17
	expected := SwapTargets(parallel.Sequential(), n, 5)
	for _, config := range []parallel.Config{
		{Workers: 2, Grain: 1},
		{Workers: 8, Grain: 3},
		{},
	} {
		require.Equal(expected, SwapTargets(parallel.New(config), n, 5))
	}
	require.NotEqual(expected, SwapTargets(parallel.Sequential(), n, 6))
}

func TestSwapTargetsPrefix(t *testing.T) {
	require := require.New(t)

	const n = 2*targetBlock + 5
	s := parallel.New(parallel.Config{Workers: 4})
	all := SwapTargets(s, n, 9)
	for _, count := range []int{0, 1, targetBlock, targetBlock + 1, n} {
		require.Equal(all[:count], swapTargets(s, n, count, 9))
	}
}

func TestSwapTargetsSmall(t *testing.T) {
	require := require.New(t)

	require.Empty(SwapTargets(parallel.Sequential(), 0, 1))
	require.Equal([]int{0}, SwapTargets(parallel.Sequential(), 1, 1))
}
