// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package session

import (
	"errors"

	"github.com/spf13/cobra"
)

// Flag names read by PreRunLoad.
const (
	ConfigFlag  = "config"
	VerboseFlag = "verbose"
)

// FromCommand extracts the session Context from a cobra.Command's context.
// Returns nil if no Context is stored.
func FromCommand(cmd *cobra.Command) *Context {
	return From(cmd.Context())
}

// RequireFromCommand extracts the session Context from a cobra.Command's
// context, returning an error if not found.
func RequireFromCommand(cmd *cobra.Command) (*Context, error) {
	sctx := FromCommand(cmd)
	if sctx == nil {
		return nil, errors.New("session not loaded")
	}
	return sctx, nil
}

// PreRunLoad returns a PersistentPreRunE function that loads the session
// from the --config and --verbose flags and stores it in the command's
// context.
func PreRunLoad(getenv func(string) string) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		opts := Options{Getenv: getenv, LogOutput: cmd.ErrOrStderr()}
		if f := cmd.Flags().Lookup(ConfigFlag); f != nil {
			opts.ConfigPath = f.Value.String()
		}
		if f := cmd.Flags().Lookup(VerboseFlag); f != nil {
			opts.Verbose = f.Value.String() == "true"
		}

		ctx, err := Load(cmd.Context(), opts)
		if err != nil {
			return err
		}
		cmd.SetContext(ctx)
		return nil
	}
}
