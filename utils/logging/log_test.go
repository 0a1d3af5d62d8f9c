// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type bufferCloser struct {
	bytes.Buffer
	closed bool
}

func (b *bufferCloser) Close() error {
	b.closed = true
	return nil
}

func TestLogLevels(t *testing.T) {
	require := require.New(t)

	var out bufferCloser
	log := New(Config{Level: Info, Format: Plain}, &out)

	log.Debug("hidden")
	log.Verbo("hidden")
	require.Zero(out.Len())

	log.Info("shown", zap.Int("k", 10))
	require.Contains(out.String(), "INFO")
	require.Contains(out.String(), "shown")
	require.Contains(out.String(), `"k": 10`)

	require.False(log.Enabled(Debug))
	log.SetLevel(Verbo)
	require.True(log.Enabled(Verbo))
	log.Verbo("now shown")
	require.Contains(out.String(), "VERBO")

	// Fatal is logged without terminating the process.
	log.Fatal("still running")
	require.Contains(out.String(), "FATAL")

	log.Stop()
	require.True(out.closed)
}

func TestLogJSONWith(t *testing.T) {
	require := require.New(t)

	var out bufferCloser
	log := New(Config{Level: Debug, Format: JSON, Prefix: "sampler"}, &out)
	log.With(zap.String("algorithm", "parperm")).Debug("round")

	var entry map[string]any
	require.NoError(json.Unmarshal(out.Bytes(), &entry))
	require.Equal("round", entry["msg"])
	require.Equal("parperm", entry["algorithm"])
	require.Equal("sampler", entry["logger"])
	require.Equal("DEBUG", entry["level"])
}

func TestToFormat(t *testing.T) {
	require := require.New(t)

	tests := map[string]Format{
		"plain":  Plain,
		"COLORS": Colors,
		"json":   JSON,
	}
	for s, expected := range tests {
		f, err := ToFormat(s, os.Stdout.Fd())
		require.NoError(err)
		require.Equal(expected, f)
	}

	_, err := ToFormat("xml", os.Stdout.Fd())
	require.ErrorIs(err, errUnknownFormat)
}

func TestNoLog(t *testing.T) {
	require := require.New(t)

	var log Logger = NoLog{}
	log.Info("dropped")
	require.False(log.With(zap.Int("x", 1)).Enabled(Fatal))
	n, err := log.Write([]byte("abc"))
	require.NoError(err)
	require.Equal(3, n)
}

func TestLogFile(t *testing.T) {
	require := require.New(t)

	config := DefaultConfig()
	config.File.Path = filepath.Join(t.TempDir(), "samplebench.log")

	var out bufferCloser
	log := New(config, &out)
	log.Info("to both", zap.String("algorithm", "seqperm"))
	log.Debug("to neither")
	log.Stop()
	require.True(out.closed)
	require.Contains(out.String(), "to both")

	contents, err := os.ReadFile(config.File.Path)
	require.NoError(err)
	lines := strings.Split(strings.TrimSpace(string(contents)), "\n")
	require.Len(lines, 1)

	var entry map[string]any
	require.NoError(json.Unmarshal([]byte(lines[0]), &entry))
	require.Equal("to both", entry["msg"])
	require.Equal("seqperm", entry["algorithm"])
}
