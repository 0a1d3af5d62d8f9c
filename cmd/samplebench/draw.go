// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"encoding/json"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ava-labs/parsampler/config"
	"github.com/ava-labs/parsampler/utils/sampler"
)

func drawCommand() *cobra.Command {
	c := &cobra.Command{
		Use:   "draw",
		Short: "Prints one sample of 0, 1, ..., n-1 as a JSON array",
		Args:  cobra.NoArgs,
		RunE:  drawFunc,
	}
	config.AddDrawFlags(c.Flags())
	return c
}

func drawFunc(c *cobra.Command, _ []string) error {
	v, err := config.BuildViper(c.Flags())
	if err != nil {
		return err
	}
	drawConfig, err := config.GetDrawConfig(v)
	if err != nil {
		return err
	}

	log := newLogger(drawConfig.Log)
	defer log.Stop()

	s, err := sampler.New[int](drawConfig.Algorithm, drawConfig.Sampler(log, nil))
	if err != nil {
		return err
	}
	if drawConfig.Seeded {
		s.Seed(drawConfig.Seed)
	}

	population := make([]int, drawConfig.N)
	for i := range population {
		population[i] = i
	}
	sample, err := s.Sample(population, drawConfig.K)
	if err != nil {
		return err
	}
	log.Debug("drew sample",
		zap.String("algorithm", string(drawConfig.Algorithm)),
		zap.Int("n", drawConfig.N),
		zap.Int("k", drawConfig.K),
	)
	return json.NewEncoder(c.OutOrStdout()).Encode(sample)
}
