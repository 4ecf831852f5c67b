// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package commands contains all CLI command definitions.
package commands

import (
	"fmt"
	"strings"

	"github.com/jddf/jddf-codegen/internal/config"
	"github.com/jddf/jddf-codegen/internal/session"
	"github.com/jddf/jddf-codegen/internal/translate"
	"github.com/jddf/jddf-codegen/internal/version"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root command for the CLI. getenv is
// consulted for environment overrides.
func NewRootCmd(targets translate.Register, getenv func(string) string) *cobra.Command {
	if getenv == nil {
		getenv = func(string) string { return "" }
	}
	opts := &generateOptions{}

	rootCmd := &cobra.Command{
		Use:   "jddf-codegen [flags] INPUT",
		Short: "Generate data structures from JDDF schemas",
		Long: fmt.Sprintf(`Generate data structures from a JDDF schema.

Each target writes one file into its output directory. A target runs only
when its output directory is given on the command line or in %s.
Nothing is written unless every target compiles the schema.

Available targets: %s`, config.FileName, strings.Join(targets.Available(), ", ")),
		Example: `  # Go structs into ./gen/models/user.go
  jddf-codegen --go-out gen/models user.jddf.json

  # Go and TypeScript at once
  jddf-codegen --go-out gen/models --ts-out web/src/types user.jddf.json

  # Pick targets interactively
  jddf-codegen -i user.jddf.yaml`,
		Args:          cobra.ExactArgs(1),
		Version:       version.Short(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE:       session.PreRunLoad(getenv),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, targets, args[0], opts)
		},
	}

	rootCmd.PersistentFlags().String(session.ConfigFlag, "", "project config file (default ./jddf-codegen.yaml if present)")
	rootCmd.PersistentFlags().BoolP(session.VerboseFlag, "v", false, "enable debug logging")
	rootCmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "prompt for targets when none are requested")
	for _, t := range targets.Targets() {
		t.RegisterFlags(rootCmd.Flags())
	}

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newInitCmd(targets, getenv))

	return rootCmd
}
