// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import "github.com/ava-labs/parsampler/utils/parallel"

// clone copies [src] into a new slice using every worker of [s].
func clone[T any](s *parallel.Scheduler, src []T) []T {
	dst := make([]T, len(src))
	s.For(0, len(src), func(low, high int) {
		copy(dst[low:high], src[low:high])
	})
	return dst
}
