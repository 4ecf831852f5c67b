// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package jddf provides the JDDF schema model together with loading,
// parsing, validation, and traversal utilities.
package jddf

// Form identifies the shape of a schema node.
type Form int

const (
	FormEmpty Form = iota
	FormRef
	FormType
	FormEnum
	FormElements
	FormProperties
	FormValues
	FormDiscriminator
)

var formNames = [...]string{
	FormEmpty:         "empty",
	FormRef:           "ref",
	FormType:          "type",
	FormEnum:          "enum",
	FormElements:      "elements",
	FormProperties:    "properties",
	FormValues:        "values",
	FormDiscriminator: "discriminator",
}

func (f Form) String() string {
	if f < 0 || int(f) >= len(formNames) {
		return "unknown"
	}
	return formNames[f]
}

// Type is a JDDF primitive type name.
type Type string

const (
	TypeBoolean   Type = "boolean"
	TypeString    Type = "string"
	TypeTimestamp Type = "timestamp"
	TypeInt8      Type = "int8"
	TypeUint8     Type = "uint8"
	TypeInt16     Type = "int16"
	TypeUint16    Type = "uint16"
	TypeInt32     Type = "int32"
	TypeUint32    Type = "uint32"
	TypeFloat32   Type = "float32"
	TypeFloat64   Type = "float64"
)

// Types lists every primitive type in declaration order.
var Types = []Type{
	TypeBoolean, TypeString, TypeTimestamp,
	TypeInt8, TypeUint8, TypeInt16, TypeUint16, TypeInt32, TypeUint32,
	TypeFloat32, TypeFloat64,
}

// Valid reports whether t names a known primitive type.
func (t Type) Valid() bool {
	for _, known := range Types {
		if t == known {
			return true
		}
	}
	return false
}

// Member is one entry of an ordered name → schema mapping.
type Member struct {
	Name   string
	Schema *Schema
}

// Members is a name → schema mapping that keeps document order.
// A nil Members means the keyword was absent; an empty, non-nil value
// means it was present with no entries.
type Members []Member

// Get returns the schema stored under name.
func (m Members) Get(name string) (*Schema, bool) {
	for _, e := range m {
		if e.Name == name {
			return e.Schema, true
		}
	}
	return nil, false
}

// Names returns the member names in order.
func (m Members) Names() []string {
	names := make([]string, len(m))
	for i, e := range m {
		names[i] = e.Name
	}
	return names
}

// Discriminator describes a tagged union.
type Discriminator struct {
	Tag     string
	Mapping Members
}

// Schema is a single JDDF schema node. At most one of the form keywords
// is set; see Form.
type Schema struct {
	// Definitions is only meaningful on the root schema.
	Definitions Members

	// Ref is nil when the keyword is absent; "" is a valid definition name.
	Ref                *string
	Type               Type
	Enum               []string
	Elements           *Schema
	Properties         Members
	OptionalProperties Members
	Values             *Schema
	Discriminator      *Discriminator

	// Description is taken from metadata.description when it is a string.
	Description string
	Metadata    map[string]any
}

// Form reports which form the schema is in.
func (s *Schema) Form() Form {
	switch {
	case s.Ref != nil:
		return FormRef
	case s.Type != "":
		return FormType
	case s.Enum != nil:
		return FormEnum
	case s.Elements != nil:
		return FormElements
	case s.Properties != nil || s.OptionalProperties != nil:
		return FormProperties
	case s.Values != nil:
		return FormValues
	case s.Discriminator != nil:
		return FormDiscriminator
	default:
		return FormEmpty
	}
}

// Definition looks up a root definition by name.
func (s *Schema) Definition(name string) (*Schema, bool) {
	return s.Definitions.Get(name)
}
