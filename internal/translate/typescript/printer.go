// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package typescript

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"
	"unicode"

	"github.com/goccy/go-json"
	"github.com/jddf/jddf-codegen/internal/translate"
)

//go:embed index.ts.tmpl
var tmplFS embed.FS

var tmpl = template.Must(template.New("typescript").Funcs(template.FuncMap{
	"comment":  comment,
	"tsType":   tsType,
	"key":      key,
	"asAlias":  asAlias,
	"asStruct": asStruct,
}).ParseFS(tmplFS, "index.ts.tmpl"))

// Render prints seq as a TypeScript module.
func Render(seq *translate.Sequence) ([]byte, error) {
	for _, d := range seq.Decls {
		if asAlias(d) == nil && asStruct(d) == nil {
			return nil, fmt.Errorf("cannot render %T as TypeScript", d)
		}
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "file", seq.Decls); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.Bytes(), nil
}

func asAlias(d translate.Decl) *translate.Alias {
	a, _ := d.(*translate.Alias)
	return a
}

func asStruct(d translate.Decl) *translate.Struct {
	s, _ := d.(*translate.Struct)
	return s
}

// tsType renders a type-position node as a TypeScript type expression.
func tsType(n translate.Node) (string, error) {
	switch n := n.(type) {
	case translate.Primitive:
		return n.Name, nil
	case translate.Identifier:
		return n.Name, nil
	case translate.StringLiteral:
		return literal(n.Value)
	case *translate.Array:
		elem, err := tsType(n.Elem)
		if err != nil {
			return "", err
		}
		if _, ok := n.Elem.(*translate.OneOf); ok {
			elem = "(" + elem + ")"
		}
		return elem + "[]", nil
	case *translate.Map:
		value, err := tsType(n.Value)
		if err != nil {
			return "", err
		}
		return "{ [key: string]: " + value + " }", nil
	case *translate.OneOf:
		if len(n.Members) == 0 {
			return "never", nil
		}
		members := make([]string, 0, len(n.Members))
		for _, m := range n.Members {
			s, err := tsType(m)
			if err != nil {
				return "", err
			}
			members = append(members, s)
		}
		return strings.Join(members, " | "), nil
	}
	return "", fmt.Errorf("cannot render %T as a TypeScript type", n)
}

func literal(s string) (string, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// key renders a property name, quoting it unless it is a plain identifier.
func key(name string) (string, error) {
	if isIdentifier(name) {
		return name, nil
	}
	return literal(name)
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_' || r == '$' || unicode.IsLetter(r):
		case i > 0 && unicode.IsDigit(r):
		default:
			return false
		}
	}
	return true
}

// comment renders text as a JSDoc block, each line prefixed by indent.
func comment(indent, text string) string {
	text = strings.TrimRight(text, "\n")
	if text == "" {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(indent + "/**\n")
	for _, line := range strings.Split(text, "\n") {
		line = strings.ReplaceAll(line, "*/", "*\\/")
		sb.WriteString(strings.TrimRight(indent+" * "+line, " ") + "\n")
	}
	sb.WriteString(indent + " */\n")
	return sb.String()
}
