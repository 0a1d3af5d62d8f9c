// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package bench

import (
	"errors"
	"fmt"
	"strings"
)

// DType is the element type of the sampled population.
type DType string

const (
	Int32   DType = "i32"
	Int64   DType = "i64"
	Float64 DType = "f64"
)

var ErrUnknownDType = errors.New("unknown dtype")

func ParseDType(s string) (DType, error) {
	switch d := DType(strings.ToLower(s)); d {
	case Int32, Int64, Float64:
		return d, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownDType, s)
	}
}

// element is a population element type the harness can generate.
type element interface {
	~int32 | ~int64 | ~float64
}

// population returns 0, 1, ..., n-1 converted to T.
func population[T element](n int) []T {
	p := make([]T, n)
	for i := range p {
		p[i] = T(i)
	}
	return p
}
