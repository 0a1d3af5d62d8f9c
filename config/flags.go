// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/pflag"

	"github.com/ava-labs/parsampler/bench"
	"github.com/ava-labs/parsampler/utils/logging"
	"github.com/ava-labs/parsampler/utils/parallel"
	"github.com/ava-labs/parsampler/utils/sampler"
)

const EnvPrefix = "parsampler"

func algorithmNames() []string {
	algorithms := sampler.Algorithms()
	names := make([]string, len(algorithms))
	for i, algorithm := range algorithms {
		names[i] = string(algorithm)
	}
	return names
}

// AddSamplingFlags adds the flags shared by every command to [fs].
func AddSamplingFlags(fs *pflag.FlagSet) {
	fs.String(ConfigFileKey, "", fmt.Sprintf("Specifies a config file. Every flag may also be set with a %s_ prefixed environment variable", strings.ToUpper(EnvPrefix)))
	fs.Int(WorkersKey, 0, "Number of workers used by parallel samplers. Defaults to GOMAXPROCS")
	fs.Int(GrainKey, parallel.DefaultGrain, "Largest range processed by a worker without further splitting")
	fs.Int(BatchDivisorKey, sampler.DefaultBatchDivisor, "Permutation rounds process the pending swaps divided by this value")
	fs.Int(MinBatchKey, sampler.DefaultMinBatch, "Smallest number of swaps processed by a permutation round")
	fs.Bool(CheckWritesKey, false, "Verify at runtime that concurrent writes never overlap")
	fs.Uint64(SeedKey, 0, "Fixes the random draws. If unset, every sample draws a fresh seed")
	fs.String(LogLevelKey, "info", "The log level. Should be one of {verbo, debug, info, warn, error, fatal, off}")
	fs.String(LogFileKey, "", "If non-empty, also writes JSON logs to this file")
	fs.Int(LogFileSizeKey, logging.DefaultConfig().File.MaxSize, "Size in megabytes at which the log file is rotated")
	fs.Int(LogFilesKey, logging.DefaultConfig().File.MaxFiles, "Number of rotated log files to retain")
	fs.Bool(LogCompressKey, false, "Compress rotated log files")
	fs.String(LogFormatKey, "auto", "The structure of log format. Defaults to 'auto' which formats terminal-like logs, when the output is a terminal. Otherwise, should be one of {auto, plain, colors, json}")
}

// AddRunFlags adds the flags of the benchmark command to [fs].
func AddRunFlags(fs *pflag.FlagSet) {
	AddSamplingFlags(fs)
	fs.Int(NKey, 10_000_000, "Population size")
	fs.Int(RepetitionsKey, 5, "Number of timed repetitions of every configuration")
	fs.IntSlice(ThreadsKey, []int{1, runtime.GOMAXPROCS(0)}, "Worker counts to benchmark")
	fs.Float64Slice(KFractionsKey, []float64{0.001, 0.01, 0.1, 0.5}, "Sample sizes as fractions of the population size")
	fs.StringSlice(AlgorithmsKey, algorithmNames()[2:], fmt.Sprintf("Algorithms to benchmark. Should be a subset of {%s}", strings.Join(algorithmNames(), ", ")))
	fs.String(DTypeKey, string(bench.Int64), "Element type of the population. Should be one of {i32, i64, f64}")
	fs.String(OutputKey, "", "File to write records to. Defaults to stdout")
	fs.String(FormatKey, string(bench.CSV), "Encoding of the records. Should be one of {csv, parquet}")
	fs.String(MetricsAddrKey, "", "If non-empty, serves prometheus metrics at http://<addr>/metrics while running")
}

// AddDrawFlags adds the flags of the single sample command to [fs].
func AddDrawFlags(fs *pflag.FlagSet) {
	AddSamplingFlags(fs)
	fs.Int(NKey, 100, "Population size. The population is 0, 1, ..., n-1")
	fs.Int(KKey, 10, "Number of elements to sample")
	fs.String(AlgorithmKey, string(sampler.Permutation), fmt.Sprintf("Sampling algorithm. Should be one of {%s}", strings.Join(algorithmNames(), ", ")))
}
