// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package jddf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Forms(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want Form
	}{
		{name: "empty", doc: `{}`, want: FormEmpty},
		{name: "ref", doc: `{"ref":"user"}`, want: FormRef},
		{name: "ref to empty name", doc: `{"ref":""}`, want: FormRef},
		{name: "null ref", doc: `{"ref":null}`, want: FormEmpty},
		{name: "type", doc: `{"type":"uint8"}`, want: FormType},
		{name: "enum", doc: `{"enum":["A","B"]}`, want: FormEnum},
		{name: "elements", doc: `{"elements":{"type":"string"}}`, want: FormElements},
		{name: "properties", doc: `{"properties":{"a":{}}}`, want: FormProperties},
		{name: "empty properties", doc: `{"properties":{}}`, want: FormProperties},
		{name: "optional only", doc: `{"optionalProperties":{"a":{}}}`, want: FormProperties},
		{name: "values", doc: `{"values":{"type":"string"}}`, want: FormValues},
		{name: "discriminator", doc: `{"discriminator":{"tag":"t","mapping":{}}}`, want: FormDiscriminator},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Parse([]byte(tt.doc))
			require.NoError(t, err)
			assert.Equal(t, tt.want, s.Form())
		})
	}
}

func TestParse_KeepsKeyOrder(t *testing.T) {
	doc := `{
		"definitions": {"zeta": {}, "alpha": {}, "mid": {}},
		"properties": {"b": {"type": "string"}, "a": {"properties": {"y": {}, "x": {}}}},
		"optionalProperties": {"d": {}, "c": {}}
	}`

	s, err := Parse([]byte(doc))
	require.NoError(t, err)

	assert.Equal(t, []string{"zeta", "alpha", "mid"}, s.Definitions.Names())
	assert.Equal(t, []string{"b", "a"}, s.Properties.Names())
	assert.Equal(t, []string{"d", "c"}, s.OptionalProperties.Names())

	a, ok := s.Properties.Get("a")
	require.True(t, ok)
	assert.Equal(t, []string{"y", "x"}, a.Properties.Names())
}

func TestParse_DuplicateKeyKeepsFirstPosition(t *testing.T) {
	s, err := Parse([]byte(`{"properties": {"a": {"type": "string"}, "b": {}, "a": {"type": "uint8"}}}`))
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, s.Properties.Names())
	a, _ := s.Properties.Get("a")
	assert.Equal(t, TypeUint8, a.Type)
}

func TestParse_Discriminator(t *testing.T) {
	doc := `{"discriminator": {"tag": "type", "mapping": {
		"user_deleted": {"properties": {"userId": {"type": "string"}}},
		"user_created": {"properties": {"user": {"ref": "user"}}}
	}}}`

	s, err := Parse([]byte(doc))
	require.NoError(t, err)
	require.NotNil(t, s.Discriminator)
	assert.Equal(t, "type", s.Discriminator.Tag)
	assert.Equal(t, []string{"user_deleted", "user_created"}, s.Discriminator.Mapping.Names())
}

func TestParse_Description(t *testing.T) {
	s, err := Parse([]byte(`{"metadata": {"description": "A user."}, "properties": {}}`))
	require.NoError(t, err)
	assert.Equal(t, "A user.", s.Description)
}

func TestParse_UnknownKeyword(t *testing.T) {
	_, err := Parse([]byte(`{"typo": "string"}`))
	require.Error(t, err)
}

func TestParse_NotAnObject(t *testing.T) {
	_, err := Parse([]byte(`["string"]`))
	require.Error(t, err)
}

func TestParseYAML_KeepsKeyOrder(t *testing.T) {
	doc := `
definitions:
  status:
    enum: [B, A]
properties:
  name:
    type: string
  status:
    ref: status
optionalProperties:
  age:
    type: uint8
`
	s, err := ParseYAML([]byte(doc))
	require.NoError(t, err)

	assert.Equal(t, []string{"status"}, s.Definitions.Names())
	assert.Equal(t, []string{"name", "status"}, s.Properties.Names())
	assert.Equal(t, []string{"age"}, s.OptionalProperties.Names())

	status, _ := s.Definition("status")
	assert.Equal(t, []string{"B", "A"}, status.Enum)
	age, _ := s.OptionalProperties.Get("age")
	assert.Equal(t, TypeUint8, age.Type)
}
