// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package scatter

import "sync/atomic"

// Reservations holds one claimant per slot. Concurrent claims to a slot are
// linearized by keeping the numerically smallest claimant.
//
// A slot stores n-claimant, so the zero value means unclaimed and the
// smallest claimant is the largest stored value.
type Reservations struct {
	n     int64
	slots []atomic.Int64
}

// NewReservations returns [n] unclaimed slots. Claimants must be in [0, n).
func NewReservations(n int) *Reservations {
	return &Reservations{
		n:     int64(n),
		slots: make([]atomic.Int64, n),
	}
}

func (r *Reservations) Len() int { return len(r.slots) }

// Claim records [claimant] in [slot] unless a smaller claimant already holds
// it.
func (r *Reservations) Claim(slot, claimant int) {
	want := r.n - int64(claimant)
	cell := &r.slots[slot]
	for {
		current := cell.Load()
		if current >= want {
			return
		}
		if cell.CompareAndSwap(current, want) {
			return
		}
	}
}

// Holds reports whether [claimant] currently holds [slot].
func (r *Reservations) Holds(slot, claimant int) bool {
	return r.slots[slot].Load() == r.n-int64(claimant)
}

// Owner returns the current claimant of [slot], if any.
func (r *Reservations) Owner(slot int) (int, bool) {
	v := r.slots[slot].Load()
	if v == 0 {
		return 0, false
	}
	return int(r.n - v), true
}

// Release marks [slot] unclaimed.
func (r *Reservations) Release(slot int) {
	r.slots[slot].Store(0)
}
