// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ava-labs/parsampler/utils/logging"
	"github.com/ava-labs/parsampler/version"
)

// GitCommit is set at build time.
var GitCommit string

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "samplebench failed: %v\n", err)
		cancel()
		os.Exit(1)
	}
}

func newCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "samplebench",
		Short:        "Samples k of n elements without replacement and benchmarks the samplers",
		SilenceUsage: true,
	}
	cmd.AddCommand(
		runCommand(),
		drawCommand(),
		&cobra.Command{
			Use:   "version",
			Short: "Print version details",
			RunE: func(c *cobra.Command, _ []string) error {
				_, err := fmt.Fprintln(c.OutOrStdout(), version.String(GitCommit))
				return err
			},
		},
	)
	return cmd
}

// newLogger logs to stderr. Stopping the logger leaves stderr open.
func newLogger(config logging.Config) logging.Logger {
	return logging.New(config, nopCloser{Writer: os.Stderr})
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
