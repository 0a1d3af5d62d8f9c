// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package scatter lets concurrent tasks write to provably disjoint indices of
// one slice without locks.
//
// Disjointness is established either structurally, by splitting a Buffer
// into non-overlapping views before handing them to tasks, or by a
// reservation protocol over Reservations. A checked Buffer verifies the
// invariant at runtime.
package scatter

import (
	"errors"
	"fmt"
	"sync/atomic"
)

var ErrOverlappingWrite = errors.New("overlapping write")

// Buffer is a view over a slice. The zero value is an empty buffer.
//
// Write and Swap may be called concurrently as long as no two concurrent
// calls within the same phase touch the same index. Reads must not race with
// writes to the same index.
type Buffer[T any] struct {
	data []T

	// marks and epoch are nil unless the buffer is checked.
	marks []atomic.Uint32
	epoch *atomic.Uint32
}

// New returns an unchecked buffer over [data].
func New[T any](data []T) Buffer[T] {
	return Buffer[T]{data: data}
}

// NewChecked returns a buffer over [data] that panics with
// ErrOverlappingWrite when an index is written twice within a phase.
func NewChecked[T any](data []T) Buffer[T] {
	epoch := &atomic.Uint32{}
	epoch.Store(1)
	return Buffer[T]{
		data:  data,
		marks: make([]atomic.Uint32, len(data)),
		epoch: epoch,
	}
}

func (b Buffer[T]) Len() int { return len(b.data) }

func (b Buffer[T]) Checked() bool { return b.epoch != nil }

// Begin starts a new write phase. Every index may be written once per phase.
//
// Begin must not be called concurrently with Write or Swap on any view of
// the same buffer.
func (b Buffer[T]) Begin() {
	if b.epoch != nil {
		b.epoch.Add(1)
	}
}

func (b Buffer[T]) Read(i int) T { return b.data[i] }

func (b Buffer[T]) Write(i int, v T) {
	b.mark(i)
	b.data[i] = v
}

// Swap exchanges the values at [i] and [j]. The caller must own both
// indices for the current phase.
func (b Buffer[T]) Swap(i, j int) {
	b.mark(i)
	if i != j {
		b.mark(j)
	}
	b.data[i], b.data[j] = b.data[j], b.data[i]
}

// Split returns the views [0, i) and [i, Len()). Ownership of each view can
// be handed to a different task.
func (b Buffer[T]) Split(i int) (Buffer[T], Buffer[T]) {
	left := Buffer[T]{data: b.data[:i:i], epoch: b.epoch}
	right := Buffer[T]{data: b.data[i:], epoch: b.epoch}
	if b.marks != nil {
		left.marks = b.marks[:i:i]
		right.marks = b.marks[i:]
	}
	return left, right
}

func (b Buffer[T]) mark(i int) {
	if b.marks == nil {
		return
	}
	epoch := b.epoch.Load()
	if b.marks[i].Swap(epoch) == epoch {
		panic(fmt.Errorf("%w: index %d in phase %d", ErrOverlappingWrite, i, epoch))
	}
}
