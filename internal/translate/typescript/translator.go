// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package typescript generates TypeScript interfaces and type aliases from
// JDDF schemas.
package typescript

import (
	"fmt"
	"path/filepath"

	"github.com/jddf/jddf-codegen/internal/jddf"
	"github.com/jddf/jddf-codegen/internal/translate"
	"github.com/spf13/pflag"
)

const (
	targetName = "ts"
	fileName   = "index.ts"
)

// Target is the TypeScript backend.
type Target struct{}

// Name returns "ts".
func (Target) Name() string { return targetName }

// RegisterFlags adds --ts-out.
func (Target) RegisterFlags(fs *pflag.FlagSet) {
	fs.String(translate.OutFlag(targetName), "", "output directory for generated TypeScript code")
}

// FromFlags returns a Generator when --ts-out is set.
func (Target) FromFlags(fs *pflag.FlagSet, input string) (translate.Generator, error) {
	out, err := fs.GetString(translate.OutFlag(targetName))
	if err != nil {
		return nil, err
	}
	if out == "" {
		return nil, nil
	}
	g, err := New(input, out)
	if err != nil {
		return nil, err
	}
	return g, nil
}

// Generator compiles a schema into <dir>/index.ts.
type Generator struct {
	root string
	out  string
}

// New configures a Generator for the schema at input, writing into outDir.
func New(input, outDir string) (*Generator, error) {
	root, err := translate.RootName(input)
	if err != nil {
		return nil, err
	}
	if outDir == "" {
		return nil, fmt.Errorf("%w: empty output directory", translate.ErrConfig)
	}
	return &Generator{root: root, out: filepath.Join(outDir, fileName)}, nil
}

// OutputPath returns <dir>/index.ts.
func (g *Generator) OutputPath() string { return g.out }

// Transform compiles schema into TypeScript declarations.
func (g *Generator) Transform(schema *jddf.Schema) (*translate.Sequence, error) {
	return translate.Compile(schema, g.root, isIdentifier, transform)
}

// Serialize renders seq and writes it to OutputPath.
func (g *Generator) Serialize(seq *translate.Sequence) error {
	src, err := Render(seq)
	if err != nil {
		return err
	}
	return translate.WriteFile(g.out, src)
}

func transform(b *translate.Builder, path translate.Path, s *jddf.Schema) (translate.Node, error) {
	switch s.Form() {
	case jddf.FormEmpty:
		return translate.Primitive{Name: "any"}, nil

	case jddf.FormRef:
		return translate.Identifier{Name: translate.Name(translate.NewPath(*s.Ref))}, nil

	case jddf.FormType:
		switch s.Type {
		case jddf.TypeBoolean:
			return translate.Primitive{Name: "boolean"}, nil
		case jddf.TypeString, jddf.TypeTimestamp:
			return translate.Primitive{Name: "string"}, nil
		}
		if !s.Type.Valid() {
			return nil, fmt.Errorf("%s: no TypeScript type for %q", path, s.Type)
		}
		return translate.Primitive{Name: "number"}, nil

	case jddf.FormEnum:
		members := make([]translate.Node, 0, len(s.Enum))
		for _, v := range s.Enum {
			members = append(members, translate.StringLiteral{Value: v})
		}
		return &translate.OneOf{Members: members}, nil

	case jddf.FormElements:
		elem, err := transform(b, b.ElementPath(path, "item"), s.Elements)
		if err != nil {
			return nil, err
		}
		return &translate.Array{Elem: elem}, nil

	case jddf.FormValues:
		value, err := transform(b, b.ElementPath(path, "value"), s.Values)
		if err != nil {
			return nil, err
		}
		return &translate.Map{Value: value}, nil

	case jddf.FormProperties:
		fields, err := properties(b, path, s)
		if err != nil {
			return nil, err
		}
		name := translate.Name(path)
		if err := b.Declare(path, &translate.Struct{Name: name, Fields: fields, Description: s.Description}); err != nil {
			return nil, err
		}
		return translate.Identifier{Name: name}, nil

	case jddf.FormDiscriminator:
		return discriminator(b, path, s)
	}

	return nil, fmt.Errorf("%s: unhandled form %s", path, s.Form())
}

// discriminator declares one interface per variant, each led by its tag
// field, and returns their union.
func discriminator(b *translate.Builder, path translate.Path, s *jddf.Schema) (translate.Node, error) {
	tag := s.Discriminator.Tag
	union := &translate.OneOf{}

	for _, m := range s.Discriminator.Mapping {
		variantPath := path.Append(m.Name)
		if m.Schema.Form() != jddf.FormProperties {
			return nil, fmt.Errorf("%w: %s is in %s form", translate.ErrUnsupportedVariant, variantPath, m.Schema.Form())
		}
		fields, err := properties(b, variantPath, m.Schema)
		if err != nil {
			return nil, err
		}
		tagField := translate.Field{
			Name:     tag,
			JSONName: tag,
			Required: true,
			Type:     translate.StringLiteral{Value: m.Name},
		}
		fields = append([]translate.Field{tagField}, fields...)
		if err := translate.CheckFields(variantPath, fields); err != nil {
			return nil, err
		}

		name := translate.Name(variantPath)
		if err := b.Declare(variantPath, &translate.Struct{Name: name, Fields: fields, Description: m.Schema.Description}); err != nil {
			return nil, err
		}
		union.Members = append(union.Members, translate.Identifier{Name: name})
	}

	return union, nil
}

func properties(b *translate.Builder, path translate.Path, s *jddf.Schema) ([]translate.Field, error) {
	fields := make([]translate.Field, 0, len(s.Properties)+len(s.OptionalProperties))

	add := func(members jddf.Members, required bool) error {
		for _, m := range members {
			n, err := transform(b, path.Append(m.Name), m.Schema)
			if err != nil {
				return err
			}
			fields = append(fields, translate.Field{
				Name:        m.Name,
				JSONName:    m.Name,
				Required:    required,
				Type:        n,
				Description: m.Schema.Description,
			})
		}
		return nil
	}
	if err := add(s.Properties, true); err != nil {
		return nil, err
	}
	if err := add(s.OptionalProperties, false); err != nil {
		return nil, err
	}
	return fields, nil
}
