// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/jddf/jddf-codegen/internal/config"
	"github.com/jddf/jddf-codegen/internal/prompts"
	"github.com/jddf/jddf-codegen/internal/session"
	"github.com/jddf/jddf-codegen/internal/translate"
	"github.com/spf13/cobra"
)

type initOptions struct {
	force          bool
	nonInteractive bool
}

func newInitCmd(targets translate.Register, getenv func(string) string) *cobra.Command {
	opts := &initOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a jddf-codegen.yaml project config",
		Long: `Create a jddf-codegen.yaml project config recording the output
directory of each target, so later runs only need the input schema.`,
		Example: `  # Interactive mode
  jddf-codegen init

  # Non-interactive
  jddf-codegen init --go-out gen/models --ts-out web/src/types --non-interactive`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, targets, getenv, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.force, "force", false, "overwrite an existing config")
	cmd.Flags().BoolVar(&opts.nonInteractive, "non-interactive", false, "run without prompts")
	for _, t := range targets.Targets() {
		t.RegisterFlags(cmd.Flags())
	}

	return cmd
}

func runInit(cmd *cobra.Command, targets translate.Register, getenv func(string) string, opts *initOptions) error {
	path := config.FileName
	if f := cmd.Flag(session.ConfigFlag); f != nil && f.Value.String() != "" {
		path = f.Value.String()
	} else if env := getenv(session.EnvConfig); env != "" {
		path = env
	}

	if _, err := os.Stat(path); err == nil && !opts.force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	cfg := config.Default()
	cfg.Targets = make(map[string]config.TargetConfig)
	for _, name := range targets.Available() {
		out, err := cmd.Flags().GetString(translate.OutFlag(name))
		if err != nil {
			return err
		}
		if out != "" {
			cfg.Targets[name] = config.TargetConfig{Out: out}
		}
	}

	if len(cfg.Targets) == 0 && !opts.nonInteractive {
		outs, err := prompts.RunTargetsForm(targets.Available(), nil)
		if err != nil {
			return err
		}
		for name, out := range outs {
			cfg.Targets[name] = config.TargetConfig{Out: out}
		}
	}

	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := cfg.Save(path); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	fields := make([]prompts.ResultField, 0, len(cfg.Targets))
	for _, name := range cfg.TargetNames() {
		fields = append(fields, prompts.ResultField{Label: name, Value: cfg.Targets[name].Out})
	}
	prompts.PrintResult(cmd.OutOrStdout(), fields, "Created "+path)
	return nil
}
