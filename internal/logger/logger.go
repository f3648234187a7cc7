// Copyright 2026 The litplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logger configures the process-wide zap logger used by
// litplot.
package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options controls how New builds a logger.
type Options struct {
	// JSON selects machine-readable output. Otherwise log lines are
	// written with a terse console encoder.
	JSON bool

	// Verbose enables debug-level messages, which include t-SNE
	// progress.
	Verbose bool
}

// New returns a logger writing to stderr. Standard output is
// reserved for plot data.
func New(o Options) (*zap.Logger, error) {
	level := zap.InfoLevel
	if o.Verbose {
		level = zap.DebugLevel
	}

	if o.JSON {
		config := zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(level)
		config.OutputPaths = []string{"stderr"}
		return config.Build()
	}

	enc := zap.NewDevelopmentEncoderConfig()
	enc.TimeKey = ""
	enc.CallerKey = ""
	enc.NameKey = "logger"
	enc.EncodeLevel = zapcore.CapitalLevelEncoder
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(enc),
		zapcore.Lock(os.Stderr),
		level,
	)
	return zap.New(core).Named("litplot"), nil
}

// OrNop returns l, or a no-op logger if l is nil. Library packages use
// it so callers may leave loggers unset.
func OrNop(l *zap.Logger) *zap.Logger {
	if l == nil {
		return zap.NewNop()
	}
	return l
}
