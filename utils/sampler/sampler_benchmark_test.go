// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"fmt"
	"testing"
)

func BenchmarkSamplers(b *testing.B) {
	const n = 1_000_000
	population := indices(n)
	for _, algorithm := range Algorithms() {
		if algorithm == Naive {
			continue
		}
		for _, k := range []int{n / 100, n / 10, n / 2} {
			b.Run(fmt.Sprintf("%s/%d", algorithm, k), func(b *testing.B) {
				SamplerBenchmark(b, algorithm, population, k)
			})
		}
	}
}

func SamplerBenchmark(b *testing.B, algorithm Algorithm, population []int, k int) {
	s, err := New[int](algorithm, Config{})
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = s.Sample(population, k)
	}
}
