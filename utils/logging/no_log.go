// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"go.uber.org/zap"
)

var _ Logger = NoLog{}

// NoLog drops every message. It is the default for library callers that do
// not supply a logger.
type NoLog struct{}

func (NoLog) Write(b []byte) (int, error) { return len(b), nil }

func (NoLog) Fatal(string, ...zap.Field) {}

func (NoLog) Error(string, ...zap.Field) {}

func (NoLog) Warn(string, ...zap.Field) {}

func (NoLog) Info(string, ...zap.Field) {}

func (NoLog) Debug(string, ...zap.Field) {}

func (NoLog) Verbo(string, ...zap.Field) {}

func (n NoLog) With(...zap.Field) Logger { return n }

func (NoLog) Enabled(Level) bool { return false }

func (NoLog) SetLevel(Level) {}

func (NoLog) Stop() {}
