// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"fmt"

	"github.com/jddf/jddf-codegen/internal/config"
	"github.com/jddf/jddf-codegen/internal/jddf"
	"github.com/jddf/jddf-codegen/internal/prompts"
	"github.com/jddf/jddf-codegen/internal/session"
	"github.com/jddf/jddf-codegen/internal/translate"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

type generateOptions struct {
	interactive bool
}

func runGenerate(cmd *cobra.Command, targets translate.Register, input string, opts *generateOptions) error {
	sctx, err := session.RequireFromCommand(cmd)
	if err != nil {
		return err
	}
	logger := sctx.Logger
	fs := cmd.Flags()

	if err := applyConfig(fs, sctx.Config, targets); err != nil {
		return err
	}

	names, gens, err := requested(fs, targets, input)
	if err != nil {
		return err
	}

	schema, err := jddf.Load(input)
	if err != nil {
		return err
	}
	logger.Debug("loaded schema",
		zap.String("input", input),
		zap.Int("definitions", len(schema.Definitions)))

	if len(gens) == 0 && opts.interactive {
		outs, err := prompts.RunTargetsForm(targets.Available(), defaultOuts(sctx.Config))
		if err != nil {
			return err
		}
		for name, out := range outs {
			if err := fs.Set(translate.OutFlag(name), out); err != nil {
				return err
			}
		}
		if names, gens, err = requested(fs, targets, input); err != nil {
			return err
		}
	}

	if len(gens) == 0 {
		logger.Warn("no targets requested; nothing to generate", zap.String("input", input))
		return nil
	}

	written, err := translate.Generate(logger, schema, gens)
	if err != nil {
		return err
	}

	fields := make([]prompts.ResultField, len(written))
	for i, path := range written {
		fields[i] = prompts.ResultField{Label: names[i], Value: path}
	}
	prompts.PrintResult(cmd.OutOrStdout(), fields, fmt.Sprintf("Generated %d file(s) from %s", len(written), input))
	return nil
}

// applyConfig fills target output flags the user left unset from cfg.
func applyConfig(fs *pflag.FlagSet, cfg *config.Config, targets translate.Register) error {
	for _, name := range cfg.TargetNames() {
		if _, err := targets.Get(name); err != nil {
			return fmt.Errorf("%w: %v in config", translate.ErrConfig, err)
		}
		flag := translate.OutFlag(name)
		if fs.Changed(flag) {
			continue
		}
		if err := fs.Set(flag, cfg.Targets[name].Out); err != nil {
			return err
		}
	}
	return nil
}

// requested returns the generators whose targets were asked for, with
// their target names, ordered by name.
func requested(fs *pflag.FlagSet, targets translate.Register, input string) ([]string, []translate.Generator, error) {
	var names []string
	var gens []translate.Generator
	for _, t := range targets.Targets() {
		g, err := t.FromFlags(fs, input)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", t.Name(), err)
		}
		if g == nil {
			continue
		}
		names = append(names, t.Name())
		gens = append(gens, g)
	}
	return names, gens, nil
}

func defaultOuts(cfg *config.Config) map[string]string {
	outs := make(map[string]string, len(cfg.Targets))
	for name, t := range cfg.Targets {
		outs[name] = t.Out
	}
	return outs
}
