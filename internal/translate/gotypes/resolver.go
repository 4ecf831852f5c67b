// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package gotypes

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jddf/jddf-codegen/internal/jddf"
	"github.com/jddf/jddf-codegen/internal/translate"
)

const timeType = "time.Time"

var primitives = map[jddf.Type]string{
	jddf.TypeBoolean:   "bool",
	jddf.TypeString:    "string",
	jddf.TypeTimestamp: timeType,
	jddf.TypeInt8:      "int8",
	jddf.TypeUint8:     "uint8",
	jddf.TypeInt16:     "int16",
	jddf.TypeUint16:    "uint16",
	jddf.TypeInt32:     "int32",
	jddf.TypeUint32:    "uint32",
	jddf.TypeFloat32:   "float32",
	jddf.TypeFloat64:   "float64",
}

// goType renders a type-position node as a Go type expression.
func goType(n translate.Node) (string, error) {
	switch n := n.(type) {
	case translate.Primitive:
		return n.Name, nil
	case translate.Identifier:
		return n.Name, nil
	case *translate.Array:
		elem, err := goType(n.Elem)
		if err != nil {
			return "", err
		}
		return "[]" + elem, nil
	case *translate.Map:
		value, err := goType(n.Value)
		if err != nil {
			return "", err
		}
		return "map[string]" + value, nil
	}
	return "", fmt.Errorf("cannot render %T as a Go type", n)
}

// fieldType is the type of a struct field: optional fields are pointers.
func fieldType(f translate.Field) (string, error) {
	t, err := goType(f.Type)
	if err != nil {
		return "", err
	}
	if !f.Required {
		t = "*" + t
	}
	return t, nil
}

// structTag renders a json struct tag for key.
func structTag(key string, omitempty bool) string {
	if omitempty {
		key += ",omitempty"
	}
	tag := "json:" + strconv.Quote(key)
	if strconv.CanBackquote(tag) {
		return "`" + tag + "`"
	}
	return strconv.Quote(tag)
}

// comment renders text as line comments, each line prefixed by indent.
func comment(indent, text string) string {
	text = strings.TrimRight(text, "\n")
	if text == "" {
		return ""
	}

	var sb strings.Builder
	for _, line := range strings.Split(text, "\n") {
		sb.WriteString(indent)
		sb.WriteString(strings.TrimRight("// "+line, " "))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// usesType reports whether any field or alias in seq mentions the primitive t.
func usesType(seq *translate.Sequence, t string) bool {
	var mentions func(translate.Node) bool
	mentions = func(n translate.Node) bool {
		switch n := n.(type) {
		case translate.Primitive:
			return n.Name == t
		case *translate.Array:
			return mentions(n.Elem)
		case *translate.Map:
			return mentions(n.Value)
		}
		return false
	}
	inFields := func(fields []translate.Field) bool {
		for _, f := range fields {
			if mentions(f.Type) {
				return true
			}
		}
		return false
	}

	for _, d := range seq.Decls {
		switch d := d.(type) {
		case *translate.Alias:
			if mentions(d.Type) {
				return true
			}
		case *translate.Struct:
			if inFields(d.Fields) {
				return true
			}
		case *translate.Union:
			for _, v := range d.Variants {
				if inFields(v.Fields) {
					return true
				}
			}
		}
	}
	return false
}

func hasUnion(seq *translate.Sequence) bool {
	for _, d := range seq.Decls {
		if _, ok := d.(*translate.Union); ok {
			return true
		}
	}
	return false
}
