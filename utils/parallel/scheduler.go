// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package parallel provides a fork-join scheduler with an explicit worker
// budget and a sequential cutoff.
package parallel

import (
	"runtime"
	"sync"

	"golang.org/x/sync/semaphore"
)

const DefaultGrain = 2048

// RangeFunc covers the half-open interval [low, high).
type RangeFunc func(low, high int)

type Config struct {
	// Workers is the maximum number of goroutines executing work at once,
	// including the caller. Defaults to GOMAXPROCS.
	Workers int
	// Grain is the largest range that is processed without further
	// splitting. Defaults to DefaultGrain.
	Grain int
}

// Scheduler executes fork-join work on at most [Workers] goroutines.
//
// A Scheduler holds no per-call state and may be shared by concurrent
// callers, who then share its worker budget.
type Scheduler struct {
	workers int
	grain   int
	// tokens bounds the number of forked goroutines. nil when the scheduler
	// is sequential.
	tokens *semaphore.Weighted
}

func New(config Config) *Scheduler {
	workers := config.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	grain := config.Grain
	if grain <= 0 {
		grain = DefaultGrain
	}
	s := &Scheduler{
		workers: workers,
		grain:   grain,
	}
	if workers > 1 {
		s.tokens = semaphore.NewWeighted(int64(workers - 1))
	}
	return s
}

// Sequential returns a scheduler that never forks.
func Sequential() *Scheduler {
	return New(Config{Workers: 1})
}

func (s *Scheduler) Workers() int { return s.workers }

func (s *Scheduler) Grain() int { return s.grain }

// Serial reports whether a problem of size [n] should run on the calling
// goroutine without further splitting.
func (s *Scheduler) Serial(n int) bool {
	return n <= s.grain || s.tokens == nil
}

// Join runs [left] and [right], possibly in parallel, and returns once both
// have completed.
//
// [right] is forked only if a worker token is immediately available;
// otherwise both run inline on the calling goroutine. Join never blocks
// waiting for a token, so nested joins cannot deadlock.
func (s *Scheduler) Join(left, right func()) {
	if s.tokens == nil || !s.tokens.TryAcquire(1) {
		left()
		right()
		return
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		defer s.tokens.Release(1)
		right()
	}()
	left()
	wg.Wait()
}

// For splits [low, high) in halves until every range is at most Grain wide
// and calls [fn] once per range.
func (s *Scheduler) For(low, high int, fn RangeFunc) {
	s.ForGrain(low, high, s.grain, fn)
}

// ForGrain is For with an explicit cutoff. It is used when each index
// carries much more work than a single element, such as a block of RNG
// draws.
func (s *Scheduler) ForGrain(low, high, grain int, fn RangeFunc) {
	if high <= low {
		return
	}
	if grain < 1 {
		grain = 1
	}
	s.forRange(low, high, grain, fn)
}

func (s *Scheduler) forRange(low, high, grain int, fn RangeFunc) {
	if high-low <= grain || s.tokens == nil {
		fn(low, high)
		return
	}
	mid := low + (high-low)/2
	s.Join(
		func() { s.forRange(low, mid, grain, fn) },
		func() { s.forRange(mid, high, grain, fn) },
	)
}
