// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

// Node is an element of a Declaration Sequence. Type-position nodes
// (Primitive, Identifier, StringLiteral, Array, Map, OneOf) appear inside
// declarations; Decl nodes appear at the top level of a Sequence.
type Node interface {
	node()
}

// Decl is a top-level named declaration.
type Decl interface {
	Node
	// DeclaredNames returns every identifier the declaration introduces.
	DeclaredNames() []string
}

// Primitive is a target-language builtin type token, e.g. "uint8" or "number".
type Primitive struct {
	Name string
}

// Identifier refers to a declared name.
type Identifier struct {
	Name string
}

// StringLiteral is a string constant, used as a value or as a literal type.
type StringLiteral struct {
	Value string
}

// Array is a list of Elem.
type Array struct {
	Elem Node
}

// Map is a string-keyed map of Value.
type Map struct {
	Value Node
}

// OneOf is an inline union of its members.
type OneOf struct {
	Members []Node
}

// Alias declares Name as another name for Type.
type Alias struct {
	Name        string
	Type        Node
	Description string
}

// Field is one member of a Struct or Variant.
type Field struct {
	Name        string // target-language field name
	JSONName    string // key as it appears on the wire
	Required    bool
	Type        Node
	Description string
}

// Struct declares a record type (a Go struct or a TypeScript interface).
type Struct struct {
	Name        string
	Fields      []Field
	Description string
}

// EnumValue is one named constant of an Enum.
type EnumValue struct {
	Name  string
	Value string
}

// Enum declares a string-backed type together with one constant per value.
type Enum struct {
	Name        string
	Values      []EnumValue
	Description string
}

// Variant is one arm of a Union.
type Variant struct {
	Name     string
	TagValue string
	Fields   []Field
}

// Union declares a discriminated union whose arm is selected by the
// string value of a tag property.
type Union struct {
	Name        string
	TagType     string // name of the tag Enum
	TagField    string // target-language name of the tag field
	TagJSON     string // tag property as it appears on the wire
	Variants    []Variant
	Description string
}

// Sequence is the ordered output of one transform.
type Sequence struct {
	Decls []Decl
}

func (Primitive) node()     {}
func (Identifier) node()    {}
func (StringLiteral) node() {}
func (*Array) node()        {}
func (*Map) node()          {}
func (*OneOf) node()        {}
func (*Alias) node()        {}
func (*Struct) node()       {}
func (*Enum) node()         {}
func (*Union) node()        {}
func (*Sequence) node()     {}

func (a *Alias) DeclaredNames() []string  { return []string{a.Name} }
func (s *Struct) DeclaredNames() []string { return []string{s.Name} }

func (e *Enum) DeclaredNames() []string {
	names := make([]string, 0, len(e.Values)+1)
	names = append(names, e.Name)
	for _, v := range e.Values {
		names = append(names, v.Name)
	}
	return names
}

func (u *Union) DeclaredNames() []string {
	names := make([]string, 0, len(u.Variants)+1)
	names = append(names, u.Name)
	for _, v := range u.Variants {
		names = append(names, v.Name)
	}
	return names
}
