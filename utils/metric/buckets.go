// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metric

import "time"

// SampleLatencyBuckets spans a Sample call from a tiny sample to a full
// permutation of a large population, in seconds.
var SampleLatencyBuckets = []float64{
	(10 * time.Microsecond).Seconds(),
	(100 * time.Microsecond).Seconds(),
	time.Millisecond.Seconds(),
	(10 * time.Millisecond).Seconds(),
	(50 * time.Millisecond).Seconds(),
	(100 * time.Millisecond).Seconds(),
	(250 * time.Millisecond).Seconds(),
	(500 * time.Millisecond).Seconds(),
	time.Second.Seconds(),
	(5 * time.Second).Seconds(),
	(10 * time.Second).Seconds(),
	// anything larger than 10 seconds will be bucketed together
}
