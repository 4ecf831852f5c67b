// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package jddf

import "iter"

// Walk returns a pre-order iterator over s and all of its subschemas,
// definitions first. Refs are not followed.
func Walk(s *Schema) iter.Seq[*Schema] {
	return func(yield func(*Schema) bool) {
		walk(s, yield)
	}
}

func walk(s *Schema, yield func(*Schema) bool) bool {
	if s == nil {
		return true
	}
	if !yield(s) {
		return false
	}

	for _, d := range s.Definitions {
		if !walk(d.Schema, yield) {
			return false
		}
	}
	if !walk(s.Elements, yield) {
		return false
	}
	for _, p := range s.Properties {
		if !walk(p.Schema, yield) {
			return false
		}
	}
	for _, p := range s.OptionalProperties {
		if !walk(p.Schema, yield) {
			return false
		}
	}
	if !walk(s.Values, yield) {
		return false
	}
	if s.Discriminator != nil {
		for _, m := range s.Discriminator.Mapping {
			if !walk(m.Schema, yield) {
				return false
			}
		}
	}
	return true
}
