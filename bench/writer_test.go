// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package bench

import (
	"bytes"
	"encoding/csv"
	"errors"
	"io"
	"testing"

	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/require"
)

var testRecords = []Record{
	{
		Algorithm:     "parperm",
		Threads:       4,
		N:             1000,
		K:             10,
		Repetition:    0,
		DType:         "i64",
		ElapsedMicros: 12,
	},
	{
		Algorithm:     "parpriority",
		Threads:       1,
		N:             1000,
		K:             500,
		Repetition:    1,
		DType:         "f64",
		ElapsedMicros: 345,
	},
}

func TestCSVWriter(t *testing.T) {
	require := require.New(t)

	var out bytes.Buffer
	w := NewCSVWriter(&out)
	for _, r := range testRecords {
		require.NoError(w.Write(r))
	}
	require.NoError(w.Close())

	rows, err := csv.NewReader(&out).ReadAll()
	require.NoError(err)
	require.Equal([][]string{
		csvHeader,
		{"parperm", "4", "1000", "10", "0", "i64", "12"},
		{"parpriority", "1", "1000", "500", "1", "f64", "345"},
	}, rows)
}

func TestCSVWriterEmpty(t *testing.T) {
	require := require.New(t)

	var out bytes.Buffer
	require.NoError(NewCSVWriter(&out).Close())

	rows, err := csv.NewReader(&out).ReadAll()
	require.NoError(err)
	require.Equal([][]string{csvHeader}, rows)
}

func TestParquetWriter(t *testing.T) {
	require := require.New(t)

	var out bytes.Buffer
	w := NewParquetWriter(&out)
	for _, r := range testRecords {
		require.NoError(w.Write(r))
	}
	require.NoError(w.Close())

	reader := parquet.NewGenericReader[Record](bytes.NewReader(out.Bytes()))
	defer reader.Close()
	require.Equal(int64(len(testRecords)), reader.NumRows())

	rows := make([]Record, len(testRecords))
	n, err := reader.Read(rows)
	if !errors.Is(err, io.EOF) {
		require.NoError(err)
	}
	require.Equal(len(testRecords), n)
	require.Equal(testRecords, rows)
}

func TestNewWriter(t *testing.T) {
	require := require.New(t)

	for _, format := range []Format{CSV, Parquet} {
		w, err := NewWriter(format, io.Discard)
		require.NoError(err)
		require.NoError(w.Close())
	}

	_, err := NewWriter("xml", io.Discard)
	require.ErrorIs(err, ErrUnknownFormat)
}

func TestParse(t *testing.T) {
	require := require.New(t)

	format, err := ParseFormat("PARQUET")
	require.NoError(err)
	require.Equal(Parquet, format)

	_, err = ParseFormat("tsv")
	require.ErrorIs(err, ErrUnknownFormat)

	dtype, err := ParseDType("F64")
	require.NoError(err)
	require.Equal(Float64, dtype)

	_, err = ParseDType("u8")
	require.ErrorIs(err, ErrUnknownDType)
}
