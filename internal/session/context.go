// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package session provides project configuration and logger loading for
// CLI commands.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/jddf/jddf-codegen/internal/config"
	"github.com/jddf/jddf-codegen/internal/logging"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// ErrConfigNotFound indicates an explicitly named config file does not exist.
	ErrConfigNotFound = errors.New("config file not found")

	// ErrInvalidConfig indicates the config file exists but is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// EnvConfig names the environment variable that overrides the config path.
const EnvConfig = "JDDF_CODEGEN_CONFIG"

// contextKey is used to store Context in context.Context.
type contextKey struct{}

// Context holds the resolved project configuration and the logger.
type Context struct {
	// Config is the loaded configuration, or the defaults when no file
	// was found.
	Config *config.Config

	// ConfigPath is the file Config was read from; empty for defaults.
	ConfigPath string

	Logger *zap.Logger
}

// Options control how Load resolves the session.
type Options struct {
	// ConfigPath names the config file explicitly. It must exist.
	ConfigPath string

	// Getenv looks up EnvConfig when ConfigPath is empty.
	Getenv func(string) string

	// Verbose forces debug logging regardless of the configured level.
	Verbose bool

	// LogOutput receives log entries. Defaults to os.Stderr.
	LogOutput io.Writer
}

// Load resolves the configuration and logger and returns a new
// context.Context with the session Context stored in it.
//
// The config file is, in order: opts.ConfigPath, $JDDF_CODEGEN_CONFIG, or
// jddf-codegen.yaml in the working directory if it exists. Without any of
// them the defaults are used.
func Load(ctx context.Context, opts Options) (context.Context, error) {
	path, explicit := opts.ConfigPath, opts.ConfigPath != ""
	if !explicit && opts.Getenv != nil {
		path = opts.Getenv(EnvConfig)
		explicit = path != ""
	}
	if !explicit {
		path = config.FileName
	}

	cfg, err := config.Load(path)
	switch {
	case errors.Is(err, fs.ErrNotExist) && explicit:
		return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
	case errors.Is(err, fs.ErrNotExist):
		cfg, path = config.Default(), ""
	case err != nil:
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
	}

	level := cfg.Log.Level
	if opts.Verbose {
		level = zapcore.DebugLevel
	}
	out := opts.LogOutput
	if out == nil {
		out = os.Stderr
	}
	logger := logging.New(level, zapcore.AddSync(out))
	if path != "" {
		logger.Debug("loaded config", zap.String("path", path))
	}

	return context.WithValue(ctx, contextKey{}, &Context{
		Config:     cfg,
		ConfigPath: path,
		Logger:     logger,
	}), nil
}

// From extracts the session Context from a context.Context.
// Returns nil if no Context is stored.
func From(ctx context.Context) *Context {
	if sctx, ok := ctx.Value(contextKey{}).(*Context); ok {
		return sctx
	}
	return nil
}
