// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	require := require.New(t)

	registry := prometheus.NewRegistry()
	metrics, err := NewMetrics("sampler", registry)
	require.NoError(err)

	config := testConfig()
	config.Metrics = metrics

	const k = 700
	perm := NewPermutation[int](config)
	_, err = perm.Sample(indices(1000), k)
	require.NoError(err)
	_, err = perm.Sample(indices(1000), 1001)
	require.ErrorIs(err, ErrOutOfRange)

	require.InDelta(1, testutil.ToFloat64(metrics.calls.WithLabelValues(string(Permutation))), 0)
	require.InDelta(k, testutil.ToFloat64(metrics.commits), 0)
	require.Positive(testutil.ToFloat64(metrics.rounds))

	prio := NewPriority[int](config)
	_, err = prio.Sample(indices(10_000), 100)
	require.NoError(err)
	require.InDelta(1, testutil.ToFloat64(metrics.calls.WithLabelValues(string(Priority))), 0)
	require.Positive(testutil.ToFloat64(metrics.selectSteps))

	_, err = NewMetrics("sampler", registry)
	var alreadyRegistered prometheus.AlreadyRegisteredError
	require.ErrorAs(err, &alreadyRegistered)
}

func TestNilMetrics(t *testing.T) {
	var m *Metrics
	m.observeCall(Naive)
	m.observeRound(1, 2)
	m.observeSelectStep()
}
