// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package gotypes

import (
	"bytes"
	"embed"
	"fmt"
	"go/format"
	"strconv"
	"text/template"

	"github.com/jddf/jddf-codegen/internal/translate"
)

//go:embed gotypes.go.tmpl
var tmplFS embed.FS

var tmpl = template.Must(template.New("gotypes").Funcs(template.FuncMap{
	"quote":     strconv.Quote,
	"comment":   comment,
	"goType":    goType,
	"fieldType": fieldType,
	"structTag": structTag,
	"asAlias":   func(d translate.Decl) *translate.Alias { a, _ := d.(*translate.Alias); return a },
	"asStruct":  func(d translate.Decl) *translate.Struct { s, _ := d.(*translate.Struct); return s },
	"asEnum":    func(d translate.Decl) *translate.Enum { e, _ := d.(*translate.Enum); return e },
	"asUnion":   func(d translate.Decl) *translate.Union { u, _ := d.(*translate.Union); return u },
}).ParseFS(tmplFS, "gotypes.go.tmpl"))

type fileData struct {
	Package  string
	Imports  []string
	Sentinel string
	Decls    []translate.Decl
}

// Render prints seq as a formatted Go source file in package pkg.
func Render(pkg string, seq *translate.Sequence) ([]byte, error) {
	data := fileData{
		Package:  pkg,
		Imports:  imports(seq),
		Sentinel: pkg + ": unknown discriminator tag value",
		Decls:    seq.Decls,
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "file", data); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to format generated code: %w", err)
	}
	return src, nil
}

// imports lists the packages the rendered file needs, in import order.
func imports(seq *translate.Sequence) []string {
	var out []string
	if hasUnion(seq) {
		out = append(out, "encoding/json")
	}
	out = append(out, "errors")
	if usesType(seq, timeType) {
		out = append(out, "time")
	}
	return out
}
