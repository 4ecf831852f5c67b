// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package translate compiles JDDF schemas into target-language declarations.
package translate

import (
	"fmt"
	"sort"

	"github.com/jddf/jddf-codegen/internal/jddf"
	"github.com/spf13/pflag"
)

// Target defines the interface all output language backends must implement.
type Target interface {
	// Name returns the target's identifier (e.g., "go", "ts").
	Name() string

	// RegisterFlags adds the target's options to fs.
	RegisterFlags(fs *pflag.FlagSet)

	// FromFlags builds a Generator from parsed flags. It returns a nil
	// Generator and no error when the target was not requested.
	// input is the path of the schema file.
	FromFlags(fs *pflag.FlagSet, input string) (Generator, error)
}

// Generator is a configured target, ready to compile one schema.
type Generator interface {
	// Transform compiles the schema into a Declaration Sequence.
	Transform(schema *jddf.Schema) (*Sequence, error)

	// Serialize renders seq and writes it to OutputPath.
	Serialize(seq *Sequence) error

	// OutputPath returns the file Serialize writes.
	OutputPath() string
}

// OutFlag returns the name of the output directory flag for a target.
func OutFlag(target string) string {
	return target + "-out"
}

// Register maps target names to targets.
type Register map[string]Target

// Add registers t under its name.
func (r Register) Add(t Target) {
	r[t.Name()] = t
}

// Get retrieves a target by name.
func (r Register) Get(name string) (Target, error) {
	t, ok := r[name]
	if !ok {
		return nil, fmt.Errorf("unknown target: %s", name)
	}
	return t, nil
}

// Available returns all registered target names, sorted.
func (r Register) Available() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Targets returns the registered targets ordered by name.
func (r Register) Targets() []Target {
	out := make([]Target, 0, len(r))
	for _, name := range r.Available() {
		out = append(out, r[name])
	}
	return out
}
