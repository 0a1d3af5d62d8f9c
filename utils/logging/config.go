// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"io"

	"gopkg.in/natefinch/lumberjack.v2"
)

type Config struct {
	Level  Level  `json:"level"`
	Format Format `json:"format"`
	// Prefix names the root logger. Empty for no name.
	Prefix string     `json:"prefix"`
	File   FileConfig `json:"file"`
}

// FileConfig describes an optional size-rotated log file. Lines are always
// written as JSON.
type FileConfig struct {
	// Path of the active log file. Empty disables file logging.
	Path string `json:"path"`
	// MaxSize is the size in megabytes at which the file is rotated.
	MaxSize int `json:"maxSize"`
	// MaxFiles is the number of rotated files to retain.
	MaxFiles int  `json:"maxFiles"`
	Compress bool `json:"compress"`
}

func DefaultConfig() Config {
	return Config{
		Level:  Info,
		Format: Plain,
		File: FileConfig{
			MaxSize:  8,
			MaxFiles: 7,
		},
	}
}

// New returns a logger writing [config]-formatted lines to [w], and to the
// configured log file if any.
func New(config Config, w io.WriteCloser) Logger {
	cores := []WrappedCore{
		NewWrappedCore(config.Level, w, config.Format.Encoder()),
	}
	if config.File.Path != "" {
		cores = append(cores, NewFileCore(config.Level, config.File))
	}
	return NewLogger(config.Prefix, cores...)
}

func NewFileCore(level Level, config FileConfig) WrappedCore {
	rw := &lumberjack.Logger{
		Filename:   config.Path,
		MaxSize:    config.MaxSize,
		MaxBackups: config.MaxFiles,
		Compress:   config.Compress,
	}
	return NewWrappedCore(level, rw, JSON.Encoder())
}
