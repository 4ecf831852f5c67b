// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNew_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(zapcore.InfoLevel, zapcore.AddSync(&buf))

	logger.Debug("hidden")
	logger.Warn("no targets requested", zap.String("input", "user.jddf"))

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "warn")
	assert.Contains(t, out, "no targets requested")
	assert.Contains(t, out, `"input": "user.jddf"`)
}

func TestNew_Debug(t *testing.T) {
	var buf bytes.Buffer
	logger := New(zapcore.DebugLevel, zapcore.AddSync(&buf))

	logger.Debug("wrote output", zap.String("path", "gen/user.go"))
	assert.Contains(t, buf.String(), "debug\twrote output")
}
