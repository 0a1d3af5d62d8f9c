// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap/zapcore"
	"golang.org/x/term"
)

// Output formats
const (
	Plain Format = iota
	Colors
	JSON
)

var errUnknownFormat = errors.New("unknown format")

// Format of the emitted log lines
type Format int

// ToFormat chooses a format. "auto" selects Colors when [fd] is a terminal
// and Plain otherwise.
func ToFormat(f string, fd uintptr) (Format, error) {
	switch strings.ToUpper(f) {
	case "PLAIN":
		return Plain, nil
	case "COLORS":
		return Colors, nil
	case "JSON":
		return JSON, nil
	case "AUTO":
		if !term.IsTerminal(int(fd)) {
			return Plain, nil
		}
		return Colors, nil
	default:
		return Plain, fmt.Errorf("%w: %q", errUnknownFormat, f)
	}
}

func (f Format) String() string {
	switch f {
	case Plain:
		return "plain"
	case Colors:
		return "colors"
	case JSON:
		return "json"
	default:
		return unknownStr
	}
}

// Encoder returns the zap encoder for this format.
func (f Format) Encoder() zapcore.Encoder {
	config := zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    levelEncoder,
		EncodeTime:     zapcore.TimeEncoderOfLayout(time.RFC3339Nano),
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
	switch f {
	case JSON:
		config.EncodeLevel = jsonLevelEncoder
		return zapcore.NewJSONEncoder(config)
	case Colors:
		config.EncodeLevel = colorLevelEncoder
		return zapcore.NewConsoleEncoder(config)
	default:
		return zapcore.NewConsoleEncoder(config)
	}
}

func jsonLevelEncoder(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(Level(l).String())
}

func colorLevelEncoder(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(Level(l).color() + Level(l).AlignedString() + resetColor)
}

const resetColor = "\033[0m"

func (l Level) color() string {
	switch l {
	case Fatal:
		return "\033[0;31m"
	case Error:
		return "\033[38;5;208m"
	case Warn:
		return "\033[0;33m"
	case Debug:
		return "\033[0;34m"
	case Verbo:
		return "\033[0;32m"
	default:
		return resetColor
	}
}
