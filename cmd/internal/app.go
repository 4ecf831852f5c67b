// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package internal contains the main application logic for the CLI.
package internal

import (
	"context"

	"github.com/jddf/jddf-codegen/internal/commands"
	"github.com/jddf/jddf-codegen/internal/translate"
	"github.com/jddf/jddf-codegen/internal/translate/gotypes"
	"github.com/jddf/jddf-codegen/internal/translate/typescript"
)

// Targets returns every output backend the CLI supports.
func Targets() translate.Register {
	targets := make(translate.Register)
	targets.Add(gotypes.Target{})
	targets.Add(typescript.Target{})
	return targets
}

// Run is the main application logic, extracted for testability.
// It accepts OS dependencies as parameters (context, env lookup).
func Run(ctx context.Context, getenv func(string) string) error {
	return commands.NewRootCmd(Targets(), getenv).ExecuteContext(ctx)
}
