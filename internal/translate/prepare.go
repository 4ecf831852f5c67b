// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

import (
	"errors"
	"fmt"
	"slices"

	"github.com/jddf/jddf-codegen/internal/jddf"
)

var (
	// ErrConfig indicates a name or option could not be derived from the
	// supplied arguments.
	ErrConfig = errors.New("configuration error")

	// ErrNameCollision indicates two schema paths produced the same identifier.
	ErrNameCollision = errors.New("identifier collision")

	// ErrUnsupportedVariant indicates a discriminator mapping entry that is
	// not in properties form.
	ErrUnsupportedVariant = errors.New("unsupported discriminator variant")

	// ErrInvalidIdentifier indicates a derived name that the target
	// language cannot use as an identifier.
	ErrInvalidIdentifier = errors.New("invalid identifier")
)

// TransformFunc translates one subschema at path, appending any hoisted
// declarations to b, and returns the node that refers to it.
type TransformFunc func(b *Builder, path Path, schema *jddf.Schema) (Node, error)

// IdentifierFunc reports whether name is a valid identifier in the target
// language.
type IdentifierFunc func(name string) bool

// Builder accumulates hoisted declarations in emission order and rejects
// identifiers that are invalid or declared twice.
type Builder struct {
	decls    []Decl
	declared map[string]Path
	valid    IdentifierFunc

	// root is the naming root currently being compiled.
	root Path
}

// NewBuilder returns an empty Builder. A nil valid accepts every name.
func NewBuilder(valid IdentifierFunc) *Builder {
	return &Builder{declared: make(map[string]Path), valid: valid}
}

// Declare appends d, hoisted from path. It fails without appending if any
// name d introduces is invalid or already declared.
func (b *Builder) Declare(path Path, d Decl) error {
	names := d.DeclaredNames()
	if b.valid != nil {
		for _, name := range names {
			if !b.valid(name) {
				return fmt.Errorf("%w: %s produces %q", ErrInvalidIdentifier, path, name)
			}
		}
	}

	local := make(map[string]struct{}, len(names))
	for _, name := range names {
		if prev, ok := b.declared[name]; ok {
			return fmt.Errorf("%w: %q is produced by both %s and %s", ErrNameCollision, name, prev, path)
		}
		if _, ok := local[name]; ok {
			return fmt.Errorf("%w: %q is produced twice by %s", ErrNameCollision, name, path)
		}
		local[name] = struct{}{}
	}

	for _, name := range names {
		b.declared[name] = path
	}
	b.decls = append(b.decls, d)
	return nil
}

// EnsureHasName makes n addressable by Name(path). An Identifier that
// already carries that name denotes the hoisted declaration and is left
// alone; anything else, including a reference to some other declaration,
// is wrapped in a new Alias.
func (b *Builder) EnsureHasName(path Path, n Node, description string) error {
	if id, ok := n.(Identifier); ok && id.Name == Name(path) {
		return nil
	}
	return b.Declare(path, &Alias{Name: Name(path), Type: n, Description: description})
}

// ElementPath returns the path to transform the element or value schema
// of a container at path with. Elements share their container's path,
// except under a naming root: the root's name belongs to the alias of the
// container, so the element moves down by segment.
func (b *Builder) ElementPath(path Path, segment string) Path {
	if len(b.root) > 0 && slices.Equal(path, b.root) {
		return path.Append(segment)
	}
	return path
}

// Sequence returns the declarations collected so far.
func (b *Builder) Sequence() *Sequence {
	return &Sequence{Decls: slices.Clone(b.decls)}
}

// Compile runs transform over every root definition, in document order,
// and then over the root schema itself, giving each of them a name.
// The root is named after root. Every declared name must satisfy valid.
func Compile(schema *jddf.Schema, root string, valid IdentifierFunc, transform TransformFunc) (*Sequence, error) {
	b := NewBuilder(valid)

	name := func(path Path, s *jddf.Schema) error {
		b.root = path
		defer func() { b.root = nil }()

		n, err := transform(b, path, s)
		if err != nil {
			return err
		}
		return b.EnsureHasName(path, n, s.Description)
	}

	for _, def := range schema.Definitions {
		if err := name(NewPath(def.Name), def.Schema); err != nil {
			return nil, err
		}
	}
	if err := name(NewPath(root), schema); err != nil {
		return nil, err
	}

	return b.Sequence(), nil
}

// CheckFields fails if two fields share a target-language name.
func CheckFields(path Path, fields []Field) error {
	seen := make(map[string]string, len(fields))
	for _, f := range fields {
		if prev, ok := seen[f.Name]; ok {
			return fmt.Errorf("%w: properties %q and %q of %s are both named %s",
				ErrNameCollision, prev, f.JSONName, path, f.Name)
		}
		seen[f.Name] = f.JSONName
	}
	return nil
}
