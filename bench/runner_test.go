// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package bench

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/parsampler/utils/logging"
	"github.com/ava-labs/parsampler/utils/sampler"
)

var errTest = errors.New("non-nil error")

func testConfig() Config {
	return Config{
		N:           1000,
		Repetitions: 3,
		Threads:     []int{1, 2},
		KFractions:  []float64{0.01, 0.5},
		Algorithms:  []sampler.Algorithm{sampler.Permutation, sampler.Priority},
		DType:       Int64,
		Grain:       64,
		Seeded:      true,
		Seed:        1,
	}
}

func TestRunnerWritesEveryCell(t *testing.T) {
	for _, dtype := range []DType{Int32, Int64, Float64} {
		t.Run(string(dtype), func(t *testing.T) {
			require := require.New(t)
			ctrl := gomock.NewController(t)

			config := testConfig()
			config.DType = dtype

			var records []Record
			writer := NewMockWriter(ctrl)
			writer.EXPECT().Write(gomock.Any()).DoAndReturn(func(r Record) error {
				records = append(records, r)
				return nil
			}).Times(2 * 2 * 2 * 3)

			registry := prometheus.NewRegistry()
			runner, err := NewRunner(config, writer, logging.NoLog{}, registry)
			require.NoError(err)
			require.NoError(runner.Run(context.Background()))

			require.Equal(Record{
				Algorithm:  string(sampler.Permutation),
				Threads:    1,
				N:          1000,
				K:          10,
				Repetition: 0,
				DType:      string(dtype),
			}, withoutElapsed(records[0]))
			require.Equal(Record{
				Algorithm:  string(sampler.Priority),
				Threads:    2,
				N:          1000,
				K:          500,
				Repetition: 2,
				DType:      string(dtype),
			}, withoutElapsed(records[len(records)-1]))

			require.Equal(4, testutil.CollectAndCount(runner.elapsed))

			histogram, err := runner.elapsed.GetMetricWithLabelValues(string(sampler.Priority), "2")
			require.NoError(err)
			var metric dto.Metric
			require.NoError(histogram.(prometheus.Metric).Write(&metric))
			require.Equal(uint64(2*3), metric.GetHistogram().GetSampleCount())
		})
	}
}

func withoutElapsed(r Record) Record {
	r.ElapsedMicros = 0
	return r
}

func TestRunnerWriteError(t *testing.T) {
	require := require.New(t)
	ctrl := gomock.NewController(t)

	writer := NewMockWriter(ctrl)
	writer.EXPECT().Write(gomock.Any()).Return(errTest)

	runner, err := NewRunner(testConfig(), writer, logging.NoLog{}, prometheus.NewRegistry())
	require.NoError(err)
	require.ErrorIs(runner.Run(context.Background()), errTest)
}

func TestRunnerCancelled(t *testing.T) {
	require := require.New(t)
	ctrl := gomock.NewController(t)

	writer := NewMockWriter(ctrl)
	writer.EXPECT().Write(gomock.Any()).Return(nil).Times(0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	runner, err := NewRunner(testConfig(), writer, logging.NoLog{}, prometheus.NewRegistry())
	require.NoError(err)
	require.ErrorIs(runner.Run(ctx), context.Canceled)
}

func TestRunnerEmptyPopulation(t *testing.T) {
	require := require.New(t)
	ctrl := gomock.NewController(t)

	config := testConfig()
	config.KFractions = []float64{0.5}
	config.N = 0
	config.Algorithms = []sampler.Algorithm{sampler.Naive}
	config.Threads = []int{1}

	writer := NewMockWriter(ctrl)
	writer.EXPECT().Write(gomock.Any()).Return(nil).Times(config.Repetitions)

	runner, err := NewRunner(config, writer, logging.NoLog{}, prometheus.NewRegistry())
	require.NoError(err)
	require.NoError(runner.Run(context.Background()))
}

func TestConfigVerify(t *testing.T) {
	tests := []struct {
		name        string
		modify      func(*Config)
		expectedErr error
	}{
		{
			name:        "valid",
			modify:      func(*Config) {},
			expectedErr: nil,
		},
		{
			name:        "negative n",
			modify:      func(c *Config) { c.N = -1 },
			expectedErr: errBadN,
		},
		{
			name:        "no repetitions",
			modify:      func(c *Config) { c.Repetitions = 0 },
			expectedErr: errBadRepetitions,
		},
		{
			name:        "no threads",
			modify:      func(c *Config) { c.Threads = nil },
			expectedErr: errNoThreads,
		},
		{
			name:        "zero threads",
			modify:      func(c *Config) { c.Threads = []int{4, 0} },
			expectedErr: errBadThreads,
		},
		{
			name:        "no algorithms",
			modify:      func(c *Config) { c.Algorithms = nil },
			expectedErr: errNoAlgorithms,
		},
		{
			name:        "no k fractions",
			modify:      func(c *Config) { c.KFractions = nil },
			expectedErr: errNoKFractions,
		},
		{
			name:        "k fraction above one",
			modify:      func(c *Config) { c.KFractions = []float64{1.5} },
			expectedErr: errBadKFraction,
		},
		{
			name:        "unknown dtype",
			modify:      func(c *Config) { c.DType = "u16" },
			expectedErr: ErrUnknownDType,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			config := testConfig()
			test.modify(&config)
			err := config.Verify()
			require.ErrorIs(t, err, test.expectedErr)
		})
	}
}

func TestNewRunnerDuplicateRegistration(t *testing.T) {
	require := require.New(t)

	registry := prometheus.NewRegistry()
	_, err := NewRunner(testConfig(), nil, logging.NoLog{}, registry)
	require.NoError(err)
	_, err = NewRunner(testConfig(), nil, logging.NoLog{}, registry)
	require.Error(err)
}
