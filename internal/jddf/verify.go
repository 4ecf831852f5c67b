// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package jddf

import (
	"errors"
	"fmt"
)

// ErrInvalidSchema indicates a schema that is not a valid JDDF schema.
var ErrInvalidSchema = errors.New("invalid schema")

// Verify checks the rules of a JDDF schema that span several keywords.
// The root may carry definitions; no other node may.
func Verify(root *Schema) error {
	for _, def := range root.Definitions {
		if def.Schema == nil {
			return invalidf("definition %q is null", def.Name)
		}
	}

	first := true
	for s := range Walk(root) {
		if !first && s.Definitions != nil {
			return invalidf("definitions are only allowed on the root schema")
		}
		first = false

		if err := verifyNode(root, s); err != nil {
			return err
		}
	}
	return nil
}

func verifyNode(root, s *Schema) error {
	forms := 0
	for _, set := range []bool{
		s.Ref != nil,
		s.Type != "",
		s.Enum != nil,
		s.Elements != nil,
		s.Properties != nil || s.OptionalProperties != nil,
		s.Values != nil,
		s.Discriminator != nil,
	} {
		if set {
			forms++
		}
	}
	if forms > 1 {
		return invalidf("schema mixes %d forms", forms)
	}

	switch s.Form() {
	case FormRef:
		if _, ok := root.Definition(*s.Ref); !ok {
			return invalidf("ref %q has no matching definition", *s.Ref)
		}
	case FormType:
		if !s.Type.Valid() {
			return invalidf("unknown type %q", s.Type)
		}
	case FormEnum:
		if len(s.Enum) == 0 {
			return invalidf("enum must not be empty")
		}
		seen := make(map[string]struct{}, len(s.Enum))
		for _, v := range s.Enum {
			if _, dup := seen[v]; dup {
				return invalidf("enum value %q repeated", v)
			}
			seen[v] = struct{}{}
		}
	case FormProperties:
		if err := verifyMembers("property", s.Properties); err != nil {
			return err
		}
		if err := verifyMembers("optional property", s.OptionalProperties); err != nil {
			return err
		}
		for _, p := range s.OptionalProperties {
			if _, dup := s.Properties.Get(p.Name); dup {
				return invalidf("property %q is both required and optional", p.Name)
			}
		}
	case FormDiscriminator:
		return verifyDiscriminator(s.Discriminator)
	}
	return nil
}

func verifyDiscriminator(d *Discriminator) error {
	if err := verifyMembers("mapping entry", d.Mapping); err != nil {
		return err
	}
	for _, m := range d.Mapping {
		if m.Schema.Form() != FormProperties {
			return invalidf("mapping entry %q must be a properties schema, got %s", m.Name, m.Schema.Form())
		}
		_, required := m.Schema.Properties.Get(d.Tag)
		_, optional := m.Schema.OptionalProperties.Get(d.Tag)
		if required || optional {
			return invalidf("mapping entry %q redeclares tag %q", m.Name, d.Tag)
		}
	}
	return nil
}

func verifyMembers(kind string, members Members) error {
	for _, m := range members {
		if m.Schema == nil {
			return invalidf("%s %q is null", kind, m.Name)
		}
	}
	return nil
}

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidSchema, fmt.Sprintf(format, args...))
}
