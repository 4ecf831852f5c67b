// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package config handles jddf-codegen project configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"go.uber.org/multierr"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// CurrentConfigVersion is the current version of the config file format.
const CurrentConfigVersion = 1

// FileName is the name of the project configuration file.
const FileName = "jddf-codegen.yaml"

// Config represents the jddf-codegen.yaml project configuration file.
type Config struct {
	Version int                     `yaml:"version"`
	Targets map[string]TargetConfig `yaml:"targets,omitempty"`
	Log     LogConfig               `yaml:"log,omitempty"`
}

// TargetConfig holds the defaults for one output target.
type TargetConfig struct {
	Out string `yaml:"out"`
}

// LogConfig configures the CLI logger.
type LogConfig struct {
	Level zapcore.Level `yaml:"level"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{Version: CurrentConfigVersion, Log: LogConfig{Level: zapcore.InfoLevel}}
}

// Load reads a Config from a file path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	cfg := Default()
	if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the Config to a file path.
func (c *Config) Save(path string) (err error) {
	f, err := os.Create(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return err
	}
	defer func() { err = multierr.Append(err, f.Close()) }()

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return err
	}
	return enc.Close()
}

// Validate checks the configuration for required fields and valid values.
func (c *Config) Validate() error {
	if c.Version != CurrentConfigVersion {
		return errors.New("unsupported config version")
	}
	if c.Log.Level < zapcore.DebugLevel || c.Log.Level > zapcore.FatalLevel {
		return fmt.Errorf("unsupported log level %q", c.Log.Level)
	}
	for _, name := range c.TargetNames() {
		if c.Targets[name].Out == "" {
			return fmt.Errorf("target %q has no output directory", name)
		}
	}
	return nil
}

// TargetNames returns the configured target names, sorted.
func (c *Config) TargetNames() []string {
	names := make([]string, 0, len(c.Targets))
	for name := range c.Targets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
