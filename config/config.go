// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ava-labs/parsampler/bench"
	"github.com/ava-labs/parsampler/utils/logging"
	"github.com/ava-labs/parsampler/utils/parallel"
	"github.com/ava-labs/parsampler/utils/sampler"
)

var (
	errNegativeWorkers = errors.New("workers must not be negative")
	errNegativeGrain   = errors.New("grain must not be negative")
	errNegativeK       = errors.New("k must not be negative")

	errUnexpectedListType = errors.New("unexpected list type")
)

// Sampling is the configuration shared by every command.
type Sampling struct {
	Workers      int
	Grain        int
	BatchDivisor int
	MinBatch     int
	CheckWrites  bool
	// Seed is only applied when Seeded.
	Seeded bool
	Seed   uint64
	Log    logging.Config
}

// Sampler returns the sampler configuration described by [s].
func (s Sampling) Sampler(log logging.Logger, metrics *sampler.Metrics) sampler.Config {
	return sampler.Config{
		Scheduler: parallel.New(parallel.Config{
			Workers: s.Workers,
			Grain:   s.Grain,
		}),
		BatchDivisor: s.BatchDivisor,
		MinBatch:     s.MinBatch,
		CheckWrites:  s.CheckWrites,
		Log:          log,
		Metrics:      metrics,
	}
}

type Run struct {
	Sampling
	Bench       bench.Config
	Output      string
	Format      bench.Format
	MetricsAddr string
}

type Draw struct {
	Sampling
	N         int
	K         int
	Algorithm sampler.Algorithm
}

// BuildViper binds the parsed flags of [fs] to a viper environment. Values are
// taken, in decreasing priority, from flags, PARSAMPLER_ environment
// variables, and the config file named by --config-file.
func BuildViper(fs *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, err
	}

	if configFile := v.GetString(ConfigFileKey); configFile != "" {
		v.SetConfigFile(os.ExpandEnv(configFile))
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %q: %w", configFile, err)
		}
	}
	return v, nil
}

func getSamplingConfig(v *viper.Viper) (Sampling, error) {
	config := Sampling{
		Workers:      v.GetInt(WorkersKey),
		Grain:        v.GetInt(GrainKey),
		BatchDivisor: v.GetInt(BatchDivisorKey),
		MinBatch:     v.GetInt(MinBatchKey),
		CheckWrites:  v.GetBool(CheckWritesKey),
		Seeded:       v.IsSet(SeedKey),
		Seed:         v.GetUint64(SeedKey),
	}
	switch {
	case config.Workers < 0:
		return Sampling{}, errNegativeWorkers
	case config.Grain < 0:
		return Sampling{}, errNegativeGrain
	}

	config.Log.File = logging.FileConfig{
		Path:     v.GetString(LogFileKey),
		MaxSize:  v.GetInt(LogFileSizeKey),
		MaxFiles: v.GetInt(LogFilesKey),
		Compress: v.GetBool(LogCompressKey),
	}

	var err error
	config.Log.Level, err = logging.ToLevel(v.GetString(LogLevelKey))
	if err != nil {
		return Sampling{}, err
	}
	config.Log.Format, err = logging.ToFormat(v.GetString(LogFormatKey), os.Stderr.Fd())
	if err != nil {
		return Sampling{}, err
	}
	return config, nil
}

// GetRunConfig returns the benchmark configuration. The returned
// Bench.Sampler leaves Log and Metrics for the caller to set.
func GetRunConfig(v *viper.Viper) (Run, error) {
	sampling, err := getSamplingConfig(v)
	if err != nil {
		return Run{}, err
	}

	config := Run{
		Sampling:    sampling,
		Output:      v.GetString(OutputKey),
		MetricsAddr: v.GetString(MetricsAddrKey),
		Bench: bench.Config{
			N:           v.GetInt(NKey),
			Repetitions: v.GetInt(RepetitionsKey),
			Sampler: sampler.Config{
				BatchDivisor: sampling.BatchDivisor,
				MinBatch:     sampling.MinBatch,
				CheckWrites:  sampling.CheckWrites,
			},
			Grain:  sampling.Grain,
			Seeded: sampling.Seeded,
			Seed:   sampling.Seed,
		},
	}

	config.Format, err = bench.ParseFormat(v.GetString(FormatKey))
	if err != nil {
		return Run{}, err
	}
	config.Bench.DType, err = bench.ParseDType(v.GetString(DTypeKey))
	if err != nil {
		return Run{}, err
	}
	config.Bench.Threads, err = getSlice(v, ThreadsKey, strconv.Atoi)
	if err != nil {
		return Run{}, err
	}
	config.Bench.KFractions, err = getSlice(v, KFractionsKey, func(s string) (float64, error) {
		return strconv.ParseFloat(s, 64)
	})
	if err != nil {
		return Run{}, err
	}
	for _, name := range v.GetStringSlice(AlgorithmsKey) {
		algorithm, err := sampler.ParseAlgorithm(name)
		if err != nil {
			return Run{}, err
		}
		config.Bench.Algorithms = append(config.Bench.Algorithms, algorithm)
	}
	return config, config.Bench.Verify()
}

func GetDrawConfig(v *viper.Viper) (Draw, error) {
	sampling, err := getSamplingConfig(v)
	if err != nil {
		return Draw{}, err
	}

	config := Draw{
		Sampling: sampling,
		N:        v.GetInt(NKey),
		K:        v.GetInt(KKey),
	}
	if config.K < 0 {
		return Draw{}, errNegativeK
	}
	config.Algorithm, err = sampler.ParseAlgorithm(v.GetString(AlgorithmKey))
	return config, err
}

// getSlice parses a list that may have been set by a flag, a comma separated
// environment variable, or a config file array.
func getSlice[T any](v *viper.Viper, key string, parse func(string) (T, error)) ([]T, error) {
	var fields []string
	switch value := v.Get(key).(type) {
	case string:
		fields = strings.Split(strings.Trim(value, "[]"), ",")
	case []string:
		fields = value
	case []int:
		for _, e := range value {
			fields = append(fields, strconv.Itoa(e))
		}
	case []any:
		for _, e := range value {
			fields = append(fields, fmt.Sprint(e))
		}
	default:
		return nil, fmt.Errorf("%w: %q has type %T", errUnexpectedListType, key, value)
	}

	values := make([]T, 0, len(fields))
	for _, field := range fields {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		parsed, err := parse(field)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %q: %w", key, err)
		}
		values = append(values, parsed)
	}
	return values, nil
}
