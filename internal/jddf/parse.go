// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package jddf

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// serdeSchema mirrors the wire shape of a schema document.
type serdeSchema struct {
	Definitions          Members             `json:"definitions" yaml:"definitions"`
	Ref                  *string             `json:"ref" yaml:"ref"`
	Type                 Type                `json:"type" yaml:"type"`
	Enum                 []string            `json:"enum" yaml:"enum"`
	Elements             *Schema             `json:"elements" yaml:"elements"`
	Properties           Members             `json:"properties" yaml:"properties"`
	OptionalProperties   Members             `json:"optionalProperties" yaml:"optionalProperties"`
	AdditionalProperties bool                `json:"additionalProperties" yaml:"additionalProperties"`
	Values               *Schema             `json:"values" yaml:"values"`
	Discriminator        *serdeDiscriminator `json:"discriminator" yaml:"discriminator"`
	Metadata             map[string]any      `json:"metadata" yaml:"metadata"`
}

type serdeDiscriminator struct {
	Tag     string  `json:"tag" yaml:"tag"`
	Mapping Members `json:"mapping" yaml:"mapping"`
}

func (raw *serdeSchema) schema() Schema {
	s := Schema{
		Definitions:        raw.Definitions,
		Ref:                raw.Ref,
		Type:               raw.Type,
		Enum:               raw.Enum,
		Elements:           raw.Elements,
		Properties:         raw.Properties,
		OptionalProperties: raw.OptionalProperties,
		Values:             raw.Values,
		Metadata:           raw.Metadata,
	}
	if raw.Discriminator != nil {
		s.Discriminator = &Discriminator{
			Tag:     raw.Discriminator.Tag,
			Mapping: raw.Discriminator.Mapping,
		}
	}
	if desc, ok := raw.Metadata["description"].(string); ok {
		s.Description = desc
	}
	return s
}

// UnmarshalJSON decodes a schema node, rejecting unknown keywords.
func (s *Schema) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()

	var raw serdeSchema
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	*s = raw.schema()
	return nil
}

// UnmarshalYAML decodes a schema node from YAML.
func (s *Schema) UnmarshalYAML(n *yaml.Node) error {
	var raw serdeSchema
	if err := n.Decode(&raw); err != nil {
		return err
	}
	*s = raw.schema()
	return nil
}

// UnmarshalJSON decodes an object into members, keeping key order.
// Duplicate keys keep their first position and their last value.
func (m *Members) UnmarshalJSON(b []byte) error {
	if string(bytes.TrimSpace(b)) == "null" {
		return nil
	}

	keys, err := objectKeys(b)
	if err != nil {
		return err
	}

	var values map[string]*Schema
	if err := json.Unmarshal(b, &values); err != nil {
		return err
	}

	out := make(Members, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, key := range keys {
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, Member{Name: key, Schema: values[key]})
	}
	*m = out
	return nil
}

// UnmarshalYAML decodes a mapping node into members in document order.
func (m *Members) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: expected a mapping", n.Line)
	}

	out := make(Members, 0, len(n.Content)/2)
	index := make(map[string]int, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		var key string
		if err := n.Content[i].Decode(&key); err != nil {
			return err
		}
		var schema Schema
		if err := n.Content[i+1].Decode(&schema); err != nil {
			return err
		}
		if at, dup := index[key]; dup {
			out[at].Schema = &schema
			continue
		}
		index[key] = len(out)
		out = append(out, Member{Name: key, Schema: &schema})
	}
	*m = out
	return nil
}

// objectKeys returns the top-level keys of a JSON object in document order.
func objectKeys(b []byte) ([]string, error) {
	dec := json.NewDecoder(bytes.NewReader(b))

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("expected a JSON object, got %v", tok)
	}

	var keys []string
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("expected an object key, got %v", keyTok)
		}
		keys = append(keys, key)
		if err := skipValue(dec); err != nil {
			return nil, err
		}
	}
	return keys, nil
}

// skipValue consumes exactly one JSON value from dec.
func skipValue(dec *json.Decoder) error {
	depth := 0
	for {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		if delim, ok := tok.(json.Delim); ok {
			switch delim {
			case '{', '[':
				depth++
			case '}', ']':
				depth--
			}
		}
		if depth == 0 {
			return nil
		}
	}
}

// Parse decodes a JSON schema document. It does not validate it; see Verify.
func Parse(data []byte) (*Schema, error) {
	var s Schema
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// ParseYAML decodes a YAML schema document. It does not validate it; see Verify.
func ParseYAML(data []byte) (*Schema, error) {
	var s Schema
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return &s, nil
}
