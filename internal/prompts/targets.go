// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package prompts

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
)

// ErrNoTargets is returned when the user selects no targets.
var ErrNoTargets = errors.New("no targets selected")

// RunTargetsForm asks which targets to generate and where each one's
// output goes. defaults pre-fills output directories by target name.
// It returns the chosen output directory per selected target.
func RunTargetsForm(available []string, defaults map[string]string) (map[string]string, error) {
	// Step 1: targets
	var selected []string
	if err := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Targets").
				Options(huh.NewOptions(available...)...).
				Value(&selected).
				Validate(func(s []string) error {
					if len(s) == 0 {
						return ErrNoTargets
					}
					return nil
				}),
		),
	).WithTheme(Theme()).Run(); err != nil {
		return nil, err
	}

	// Step 2: one output directory per target
	outs := make(map[string]*string, len(selected))
	fields := make([]huh.Field, 0, len(selected))
	for _, name := range selected {
		out := defaults[name]
		outs[name] = &out
		fields = append(fields, outputInput(name, outs[name]))
	}
	if err := huh.NewForm(huh.NewGroup(fields...)).WithTheme(Theme()).Run(); err != nil {
		return nil, err
	}

	result := make(map[string]string, len(outs))
	for name, out := range outs {
		result[name] = *out
	}
	return result, nil
}

func outputInput(target string, value *string) *huh.Input {
	return huh.NewInput().
		Title(fmt.Sprintf("Output directory for %s", target)).
		Prompt(": ").
		Inline(true).
		Value(value).
		Validate(requiredValidator("output directory"))
}
