// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package scatter

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBufferWriteReadSwap(t *testing.T) {
	require := require.New(t)

	data := []int{0, 1, 2, 3}
	b := New(data)
	require.Equal(4, b.Len())
	require.False(b.Checked())

	b.Write(0, 10)
	require.Equal(10, b.Read(0))
	b.Swap(0, 3)
	require.Equal([]int{3, 1, 2, 10}, data)

	// Unchecked buffers never track phases.
	b.Write(0, 11)
	b.Write(0, 12)
	require.Equal(12, data[0])
}

func TestBufferSplit(t *testing.T) {
	require := require.New(t)

	data := make([]int, 10)
	b := NewChecked(data)
	left, right := b.Split(4)
	require.Equal(4, left.Len())
	require.Equal(6, right.Len())

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < left.Len(); i++ {
			left.Write(i, i+1)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < right.Len(); i++ {
			right.Write(i, 100+i)
		}
	}()
	wg.Wait()

	require.Equal([]int{1, 2, 3, 4, 100, 101, 102, 103, 104, 105}, data)
}

func TestCheckedBufferDetectsOverlap(t *testing.T) {
	require := require.New(t)

	b := NewChecked(make([]int, 4))
	require.True(b.Checked())

	b.Write(1, 1)
	require.PanicsWithError(
		"overlapping write: index 1 in phase 1",
		func() { b.Write(1, 2) },
	)

	b.Begin()
	b.Write(1, 3)
	b.Swap(2, 2)
	require.Panics(func() { b.Swap(0, 2) })

	b.Begin()
	left, right := b.Split(2)
	left.Write(1, 4)
	right.Write(0, 5)
	// Views share the phase with their parent.
	require.Panics(func() { b.Write(2, 6) })
}

func TestReservationsKeepMinimum(t *testing.T) {
	require := require.New(t)

	r := NewReservations(8)
	require.Equal(8, r.Len())
	_, ok := r.Owner(3)
	require.False(ok)

	r.Claim(3, 5)
	r.Claim(3, 7)
	require.True(r.Holds(3, 5))
	require.False(r.Holds(3, 7))

	r.Claim(3, 0)
	owner, ok := r.Owner(3)
	require.True(ok)
	require.Zero(owner)

	r.Release(3)
	_, ok = r.Owner(3)
	require.False(ok)
	require.False(r.Holds(3, 0))
}

func TestReservationsConcurrentClaims(t *testing.T) {
	require := require.New(t)

	const (
		slots     = 16
		claimants = 1024
	)
	r := NewReservations(claimants)

	var wg sync.WaitGroup
	for c := claimants - 1; c >= 0; c-- {
		wg.Add(1)
		go func(c int) {
			defer wg.Done()
			r.Claim(c%slots, c)
		}(c)
	}
	wg.Wait()

	for slot := 0; slot < slots; slot++ {
		require.True(r.Holds(slot, slot))
	}
}
