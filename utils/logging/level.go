// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap/zapcore"
)

const alignedStringLen = 5

// Level is a zapcore.Level extended with Verbo below Debug and Off above
// Fatal.
type Level zapcore.Level

const (
	Verbo Level = Level(zapcore.DebugLevel) - 1
	Debug Level = Level(zapcore.DebugLevel)
	Info  Level = Level(zapcore.InfoLevel)
	Warn  Level = Level(zapcore.WarnLevel)
	Error Level = Level(zapcore.ErrorLevel)
	// Fatal maps onto zap's DPanic level, which only panics for development
	// loggers. Fatal never terminates the process on its own.
	Fatal Level = Level(zapcore.DPanicLevel)
	Off   Level = Level(zapcore.FatalLevel) + 1
)

const (
	fatalStr   = "FATAL"
	errorStr   = "ERROR"
	warnStr    = "WARN"
	infoStr    = "INFO"
	debugStr   = "DEBUG"
	verboStr   = "VERBO"
	offStr     = "OFF"
	unknownStr = "UNKNO"
)

// Inverse of Level.String()
func ToLevel(l string) (Level, error) {
	switch strings.ToUpper(l) {
	case offStr:
		return Off, nil
	case fatalStr:
		return Fatal, nil
	case errorStr:
		return Error, nil
	case warnStr:
		return Warn, nil
	case infoStr:
		return Info, nil
	case debugStr:
		return Debug, nil
	case verboStr:
		return Verbo, nil
	default:
		return Off, fmt.Errorf("unknown log level: %q", l)
	}
}

func (l Level) String() string {
	switch l {
	case Fatal:
		return fatalStr
	case Error:
		return errorStr
	case Warn:
		return warnStr
	case Info:
		return infoStr
	case Debug:
		return debugStr
	case Verbo:
		return verboStr
	case Off:
		return offStr
	default:
		// This should never happen
		return unknownStr
	}
}

// String representation of this level as it will appear in log output.
// The returned value has length [alignedStringLen].
func (l Level) AlignedString() string {
	s := l.String()
	sLen := len(s)
	switch {
	case sLen < alignedStringLen:
		return s + strings.Repeat(" ", alignedStringLen-sLen)
	case sLen == alignedStringLen:
		return s
	default:
		return s[:alignedStringLen]
	}
}

func (l Level) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

func (l *Level) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return err
	}
	var err error
	*l, err = ToLevel(str)
	return err
}

func levelEncoder(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(Level(l).AlignedString())
}
