// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package bench times samplers over a grid of configurations and writes one
// Record per timed call.
package bench

import "strconv"

// Record is the timing of a single Sample call.
type Record struct {
	Algorithm     string `parquet:"algorithm,dict"`
	Threads       int32  `parquet:"threads"`
	N             int64  `parquet:"n"`
	K             int64  `parquet:"k"`
	Repetition    int32  `parquet:"repetition"`
	DType         string `parquet:"dtype,dict"`
	ElapsedMicros int64  `parquet:"elapsed_micros"`
}

var csvHeader = []string{
	"algorithm",
	"threads",
	"n",
	"k",
	"repetition",
	"dtype",
	"elapsed_micros",
}

func (r Record) csvRow() []string {
	return []string{
		r.Algorithm,
		strconv.FormatInt(int64(r.Threads), 10),
		strconv.FormatInt(r.N, 10),
		strconv.FormatInt(r.K, 10),
		strconv.FormatInt(int64(r.Repetition), 10),
		r.DType,
		strconv.FormatInt(r.ElapsedMicros, 10),
	}
}
