// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

import (
	"fmt"

	"github.com/jddf/jddf-codegen/internal/jddf"
	"go.uber.org/zap"
)

// Generate compiles schema with every generator and, only if all of them
// succeed, serializes each result in order. Serialization stops at the
// first failure; files written before it are kept. It returns the paths
// that were written.
func Generate(logger *zap.Logger, schema *jddf.Schema, gens []Generator) ([]string, error) {
	seqs := make([]*Sequence, len(gens))
	for i, g := range gens {
		seq, err := g.Transform(schema)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", g.OutputPath(), err)
		}
		logger.Debug("transformed schema",
			zap.String("output", g.OutputPath()),
			zap.Int("declarations", len(seq.Decls)))
		seqs[i] = seq
	}

	written := make([]string, 0, len(gens))
	for i, g := range gens {
		if err := g.Serialize(seqs[i]); err != nil {
			return written, fmt.Errorf("%s: %w", g.OutputPath(), err)
		}
		logger.Debug("wrote output", zap.String("path", g.OutputPath()))
		written = append(written, g.OutputPath())
	}
	return written, nil
}
