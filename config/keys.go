// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

const (
	// Shared
	ConfigFileKey   = "config-file"
	WorkersKey      = "workers"
	GrainKey        = "grain"
	BatchDivisorKey = "batch-divisor"
	MinBatchKey     = "min-batch"
	CheckWritesKey  = "check-writes"
	SeedKey         = "seed"
	LogLevelKey     = "log-level"
	LogFormatKey    = "log-format"
	LogFileKey      = "log-file"
	LogFileSizeKey  = "log-file-max-size"
	LogFilesKey     = "log-file-max-files"
	LogCompressKey  = "log-file-compress"
	VersionKey      = "version"

	// run
	NKey           = "n"
	RepetitionsKey = "reps"
	ThreadsKey     = "threads"
	KFractionsKey  = "k-fractions"
	AlgorithmsKey  = "algorithms"
	DTypeKey       = "dtype"
	OutputKey      = "output"
	FormatKey      = "format"
	MetricsAddrKey = "metrics-addr"

	// draw
	KKey         = "k"
	AlgorithmKey = "algorithm"
)
