// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package bench

import (
	"os"

	"github.com/shirou/gopsutil/process"
)

// cpuTracker reports the CPU time consumed by the current process. Comparing
// it with wall-clock time gives the number of cores a sampler kept busy.
type cpuTracker struct {
	process *process.Process
}

func newCPUTracker() (*cpuTracker, error) {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return nil, err
	}
	return &cpuTracker{process: p}, nil
}

// CPUSeconds returns the user and system time consumed so far. A nil tracker
// always reports zero.
func (c *cpuTracker) CPUSeconds() float64 {
	if c == nil {
		return 0
	}
	times, err := c.process.Times()
	if err != nil {
		return 0
	}
	return times.User + times.System
}
