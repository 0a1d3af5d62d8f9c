// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ava-labs/parsampler/bench"
	"github.com/ava-labs/parsampler/config"
	"github.com/ava-labs/parsampler/utils/sampler"
)

const (
	metricsNamespace       = "parsampler"
	metricsShutdownTimeout = 5 * time.Second
	readHeaderTimeout      = 10 * time.Second
)

func runCommand() *cobra.Command {
	c := &cobra.Command{
		Use:   "run",
		Short: "Times every sampler configuration and writes one record per call",
		Args:  cobra.NoArgs,
		RunE:  runFunc,
	}
	config.AddRunFlags(c.Flags())
	return c
}

func runFunc(c *cobra.Command, _ []string) error {
	v, err := config.BuildViper(c.Flags())
	if err != nil {
		return err
	}
	runConfig, err := config.GetRunConfig(v)
	if err != nil {
		return err
	}

	log := newLogger(runConfig.Log)
	defer log.Stop()

	registry := prometheus.NewRegistry()
	metrics, err := sampler.NewMetrics(metricsNamespace, registry)
	if err != nil {
		return err
	}
	if err := registry.Register(collectors.NewGoCollector()); err != nil {
		return err
	}
	runConfig.Bench.Sampler.Log = log
	runConfig.Bench.Sampler.Metrics = metrics

	out := c.OutOrStdout()
	if runConfig.Output != "" {
		file, err := os.Create(runConfig.Output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer file.Close()
		out = file
	}
	writer, err := bench.NewWriter(runConfig.Format, out)
	if err != nil {
		return err
	}

	runner, err := bench.NewRunner(runConfig.Bench, writer, log, registry)
	if err != nil {
		return err
	}

	ctx := c.Context()
	if runConfig.MetricsAddr == "" {
		return runAndClose(ctx, runner, writer)
	}

	server := &http.Server{
		Addr:              runConfig.MetricsAddr,
		Handler:           metricsHandler(registry),
		ReadHeaderTimeout: readHeaderTimeout,
	}
	eg, ctx := errgroup.WithContext(ctx)
	done := make(chan struct{})
	eg.Go(func() error {
		log.Info("serving metrics", zap.String("addr", runConfig.MetricsAddr))
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	eg.Go(func() error {
		select {
		case <-done:
		case <-ctx.Done():
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), metricsShutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})
	eg.Go(func() error {
		defer close(done)
		return runAndClose(ctx, runner, writer)
	})
	return eg.Wait()
}

func runAndClose(ctx context.Context, runner *bench.Runner, writer io.Closer) error {
	return errors.Join(
		runner.Run(ctx),
		writer.Close(),
	)
}

func metricsHandler(gatherer prometheus.Gatherer) http.Handler {
	router := mux.NewRouter()
	router.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet)
	return router
}
