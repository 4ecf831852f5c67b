// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package jddf

import (
	"fmt"
	"sync"

	"github.com/google/jsonschema-go/jsonschema"
)

// MetaSchema returns a JSON Schema describing the structure of a JDDF
// schema document. It checks keyword shapes only; the rules that span
// several keywords (one form per node, ref targets, discriminator
// variants) are left to Verify.
func MetaSchema() *jsonschema.Schema {
	// Resolve requires the schema graph to be a tree, so every position
	// gets its own node.
	node := func() *jsonschema.Schema { return &jsonschema.Schema{Ref: "#/$defs/schema"} }
	nodeMap := func() *jsonschema.Schema { return &jsonschema.Schema{Type: "object", AdditionalProperties: node()} }
	deny := func() *jsonschema.Schema { return &jsonschema.Schema{Not: &jsonschema.Schema{}} }

	typeNames := make([]any, len(Types))
	for i, t := range Types {
		typeNames[i] = string(t)
	}
	minOne := 1

	schema := &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"definitions": nodeMap(),
			"ref":         {Type: "string"},
			"type":        {Type: "string", Enum: typeNames},
			"enum": {
				Type:        "array",
				Items:       &jsonschema.Schema{Type: "string"},
				MinItems:    &minOne,
				UniqueItems: true,
			},
			"elements":             node(),
			"properties":           nodeMap(),
			"optionalProperties":   nodeMap(),
			"additionalProperties": {Type: "boolean"},
			"values":               node(),
			"discriminator": {
				Type:     "object",
				Required: []string{"tag", "mapping"},
				Properties: map[string]*jsonschema.Schema{
					"tag":     {Type: "string"},
					"mapping": nodeMap(),
				},
				AdditionalProperties: deny(),
			},
			"metadata": {Type: "object"},
		},
		AdditionalProperties: deny(),
	}

	return &jsonschema.Schema{
		Ref:  "#/$defs/schema",
		Defs: map[string]*jsonschema.Schema{"schema": schema},
	}
}

var (
	metaOnce     sync.Once
	metaResolved *jsonschema.Resolved
	metaErr      error
)

// ValidateDocument checks a decoded JSON document (maps, slices, strings,
// float64, bools, nil) against MetaSchema.
func ValidateDocument(doc any) error {
	metaOnce.Do(func() {
		metaResolved, metaErr = MetaSchema().Resolve(nil)
	})
	if metaErr != nil {
		return fmt.Errorf("resolving meta-schema: %w", metaErr)
	}
	if err := metaResolved.Validate(doc); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSchema, err)
	}
	return nil
}
