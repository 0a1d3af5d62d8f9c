// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package bench

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/parquet-go/parquet-go"
)

var (
	_ Writer = (*csvWriter)(nil)
	_ Writer = (*parquetWriter)(nil)

	ErrUnknownFormat = errors.New("unknown format")
)

// Writer persists benchmark records. Close flushes buffered records; it does
// not close the underlying io.Writer.
type Writer interface {
	Write(Record) error
	Close() error
}

// Format is the encoding of the benchmark output.
type Format string

const (
	CSV     Format = "csv"
	Parquet Format = "parquet"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case CSV, Parquet:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

func NewWriter(format Format, w io.Writer) (Writer, error) {
	switch format {
	case CSV:
		return NewCSVWriter(w), nil
	case Parquet:
		return NewParquetWriter(w), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

type csvWriter struct {
	w           *csv.Writer
	wroteHeader bool
}

// NewCSVWriter writes a header row followed by one row per record.
func NewCSVWriter(w io.Writer) Writer {
	return &csvWriter{w: csv.NewWriter(w)}
}

func (c *csvWriter) Write(r Record) error {
	if !c.wroteHeader {
		if err := c.w.Write(csvHeader); err != nil {
			return err
		}
		c.wroteHeader = true
	}
	return c.w.Write(r.csvRow())
}

func (c *csvWriter) Close() error {
	if !c.wroteHeader {
		if err := c.w.Write(csvHeader); err != nil {
			return err
		}
		c.wroteHeader = true
	}
	c.w.Flush()
	return c.w.Error()
}

type parquetWriter struct {
	w *parquet.GenericWriter[Record]
}

// NewParquetWriter writes records as rows of a single Parquet file.
func NewParquetWriter(w io.Writer) Writer {
	return &parquetWriter{
		w: parquet.NewGenericWriter[Record](w, parquet.Compression(&parquet.Snappy)),
	}
}

func (p *parquetWriter) Write(r Record) error {
	_, err := p.w.Write([]Record{r})
	return err
}

func (p *parquetWriter) Close() error {
	return p.w.Close()
}
