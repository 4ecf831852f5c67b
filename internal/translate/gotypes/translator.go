// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package gotypes generates Go type declarations, with JSON codecs for
// discriminated unions, from JDDF schemas.
package gotypes

import (
	"fmt"
	"go/token"
	"path/filepath"

	"github.com/jddf/jddf-codegen/internal/jddf"
	"github.com/jddf/jddf-codegen/internal/translate"
	"github.com/spf13/pflag"
)

const targetName = "go"

// Target is the Go backend.
type Target struct{}

// Name returns "go".
func (Target) Name() string { return targetName }

// RegisterFlags adds --go-out.
func (Target) RegisterFlags(fs *pflag.FlagSet) {
	fs.String(translate.OutFlag(targetName), "", "output directory for generated Go code")
}

// FromFlags returns a Generator when --go-out is set.
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

// Generator compiles a schema into a single Go source file.
type Generator struct {
	pkg  string
	root string
	out  string
}

// New configures a Generator for the schema at input, writing into outDir.
// The package is named after outDir and the file after input.
func New(input, outDir string) (*Generator, error) {
	root, err := translate.RootName(input)
	if err != nil {
		return nil, err
	}
	pkg, err := translate.DirName(outDir)
	if err != nil {
		return nil, err
	}
	if !token.IsIdentifier(pkg) {
		return nil, fmt.Errorf("%w: %q is not a valid Go package name", translate.ErrConfig, pkg)
	}

	return &Generator{
		pkg:  pkg,
		root: root,
		out:  filepath.Join(outDir, root+".go"),
	}, nil
}

// Package returns the name of the generated package.
func (g *Generator) Package() string { return g.pkg }

// OutputPath returns <dir>/<root>.go.
func (g *Generator) OutputPath() string { return g.out }

// Transform compiles schema into Go declarations.
func (g *Generator) Transform(schema *jddf.Schema) (*translate.Sequence, error) {
	return translate.Compile(schema, g.root, token.IsIdentifier, transform)
}

// Serialize renders seq and writes it to OutputPath.
func (g *Generator) Serialize(seq *translate.Sequence) error {
	src, err := Render(g.pkg, seq)
	if err != nil {
		return err
	}
	return translate.WriteFile(g.out, src)
}

func transform(b *translate.Builder, path translate.Path, s *jddf.Schema) (translate.Node, error) {
	switch s.Form() {
	case jddf.FormEmpty:
		return translate.Primitive{Name: "interface{}"}, nil

	case jddf.FormRef:
		return translate.Identifier{Name: translate.Name(translate.NewPath(*s.Ref))}, nil

	case jddf.FormType:
		t, ok := primitives[s.Type]
		if !ok {
			return nil, fmt.Errorf("%s: no Go type for %q", path, s.Type)
		}
		return translate.Primitive{Name: t}, nil

	case jddf.FormEnum:
		name := translate.Name(path)
		values := make([]translate.EnumValue, 0, len(s.Enum))
		for _, v := range s.Enum {
			values = append(values, translate.EnumValue{Name: translate.Name(path.Append(v)), Value: v})
		}
		if err := b.Declare(path, &translate.Enum{Name: name, Values: values, Description: s.Description}); err != nil {
			return nil, err
		}
		return translate.Identifier{Name: name}, nil

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

func discriminator(b *translate.Builder, path translate.Path, s *jddf.Schema) (translate.Node, error) {
	tag := s.Discriminator.Tag
	tagPath := path.Append(tag)
	tagType := translate.Name(tagPath)

	tagEnum := &translate.Enum{Name: tagType}
	for _, m := range s.Discriminator.Mapping {
		tagEnum.Values = append(tagEnum.Values, translate.EnumValue{
			Name:  translate.Name(tagPath.Append(m.Name)),
			Value: m.Name,
		})
	}
	if err := b.Declare(tagPath, tagEnum); err != nil {
		return nil, err
	}

	name := translate.Name(path)
	union := &translate.Union{
		Name:        name,
		TagType:     tagType,
		TagField:    translate.PascalCase(tag),
		TagJSON:     tag,
		Description: s.Description,
	}
	for _, m := range s.Discriminator.Mapping {
		variantPath := path.Append(m.Name)
		if m.Schema.Form() != jddf.FormProperties {
			return nil, fmt.Errorf("%w: %s is in %s form", translate.ErrUnsupportedVariant, variantPath, m.Schema.Form())
		}
		fields, err := properties(b, variantPath, m.Schema)
		if err != nil {
			return nil, err
		}
		union.Variants = append(union.Variants, translate.Variant{
			Name:     translate.Name(variantPath),
			TagValue: m.Name,
			Fields:   fields,
		})
	}

	if err := b.Declare(path, union); err != nil {
		return nil, err
	}
	return translate.Identifier{Name: name}, nil
}

// properties transforms the required and then the optional members of s.
func properties(b *translate.Builder, path translate.Path, s *jddf.Schema) ([]translate.Field, error) {
	fields := make([]translate.Field, 0, len(s.Properties)+len(s.OptionalProperties))

	add := func(members jddf.Members, required bool) error {
		for _, m := range members {
			n, err := transform(b, path.Append(m.Name), m.Schema)
			if err != nil {
				return err
			}
			fields = append(fields, translate.Field{
				Name:        translate.PascalCase(m.Name),
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

	for _, f := range fields {
		if !token.IsIdentifier(f.Name) {
			return nil, fmt.Errorf("%w: property %q of %s becomes %q", translate.ErrInvalidIdentifier, f.JSONName, path, f.Name)
		}
	}
	if err := translate.CheckFields(path, fields); err != nil {
		return nil, err
	}
	return fields, nil
}
