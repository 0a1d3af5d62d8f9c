// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"github.com/ava-labs/parsampler/utils/logging"
	"github.com/ava-labs/parsampler/utils/parallel"
)

const (
	DefaultBatchDivisor = 50
	DefaultMinBatch     = 50
)

type Config struct {
	// Scheduler bounds the workers used by a Sample call. Defaults to a
	// scheduler using GOMAXPROCS workers.
	Scheduler *parallel.Scheduler

	// BatchDivisor sets the permutation round size to the number of pending
	// indices divided by BatchDivisor.
	BatchDivisor int
	// MinBatch is the smallest permutation round size.
	MinBatch int

	// CheckWrites verifies at runtime that concurrent writes to the working
	// buffer never overlap. It costs one atomic swap per write.
	CheckWrites bool

	Log     logging.Logger
	Metrics *Metrics
}

func (c Config) withDefaults() Config {
	if c.Scheduler == nil {
		c.Scheduler = parallel.New(parallel.Config{})
	}
	if c.BatchDivisor <= 0 {
		c.BatchDivisor = DefaultBatchDivisor
	}
	if c.MinBatch <= 0 {
		c.MinBatch = DefaultMinBatch
	}
	if c.Log == nil {
		c.Log = logging.NoLog{}
	}
	return c
}
