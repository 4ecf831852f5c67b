// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package logging builds the CLI's zap logger.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a console logger writing entries at level and above to w.
func New(level zapcore.Level, w zapcore.WriteSyncer) *zap.Logger {
	return zap.New(zapcore.NewCore(consoleEncoder(), w, level))
}

func consoleEncoder() zapcore.Encoder {
	conf := zap.NewDevelopmentEncoderConfig()
	conf.TimeKey = ""
	conf.CallerKey = ""
	conf.EncodeLevel = zapcore.LowercaseLevelEncoder
	return zapcore.NewConsoleEncoder(conf)
}
