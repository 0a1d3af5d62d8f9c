// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"

	"github.com/ava-labs/parsampler/utils/parallel"
	"github.com/ava-labs/parsampler/utils/scatter"
)

// pivotStream is the stream used for quickselect pivots. Priority keys are
// derived by hashing and never use a stream.
const pivotStream = ^uint64(0)

// priorityKey returns the priority of the element at [index]. Keys are a
// hash of (seed, index), so they can be computed in any order or recomputed
// without storing them.
func priorityKey(seed uint64, index int) uint64 {
	var b [16]byte
	binary.LittleEndian.PutUint64(b[:8], seed)
	binary.LittleEndian.PutUint64(b[8:], uint64(index))
	return xxhash.Sum64(b[:])
}

// ranked orders elements by key. Two 64-bit keys collide with negligible
// probability; when they do, the smaller index ranks first, so the order is
// always strict and exactly k elements rank at or below the k-th.
type ranked struct {
	key   uint64
	index int
}

func (r ranked) less(o ranked) bool {
	if r.key != o.key {
		return r.key < o.key
	}
	return r.index < o.index
}

func rankAll(s *parallel.Scheduler, n int, seed uint64) []ranked {
	items := make([]ranked, n)
	out := scatter.New(items)
	s.For(0, n, func(low, high int) {
		for i := low; i < high; i++ {
			out.Write(i, ranked{
				key:   priorityKey(seed, i),
				index: i,
			})
		}
	})
	return items
}

// quickselect returns the [k]-th smallest (1-based) element of [items],
// reordering [items] in place.
func quickselect(items []ranked, k int, r *rng) ranked {
	var (
		lo     = 0
		hi     = len(items)
		target = k - 1
	)
	for hi-lo > 1 {
		p := lo + r.Intn(hi-lo)
		items[p], items[hi-1] = items[hi-1], items[p]
		pivot := items[hi-1]

		store := lo
		for i := lo; i < hi-1; i++ {
			if items[i].less(pivot) {
				items[store], items[i] = items[i], items[store]
				store++
			}
		}
		items[store], items[hi-1] = items[hi-1], items[store]

		switch {
		case store == target:
			return items[store]
		case store > target:
			hi = store
		default:
			lo = store + 1
		}
	}
	return items[lo]
}
