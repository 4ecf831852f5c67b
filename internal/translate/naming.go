// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Path is the route from a naming root (a definition name or the root
// name) to the subschema being transformed. Paths are immutable: Append
// returns a new Path and never writes to the receiver's backing array.
type Path []string

// NewPath starts a path at seed.
func NewPath(seed string) Path {
	return Path{seed}
}

// Append returns p extended by segs.
func (p Path) Append(segs ...string) Path {
	out := make(Path, 0, len(p)+len(segs))
	out = append(out, p...)
	return append(out, segs...)
}

func (p Path) String() string {
	return strings.Join(p, "/")
}

// Name derives the type-position identifier for a path.
func Name(p Path) string {
	return PascalCase(strings.Join(p, "_"))
}

// PascalCase converts s to PascalCase. Words are split on any
// non-alphanumeric rune and on lower-to-upper transitions; the first rune
// of each word is title-cased and the rest are kept as written, so
// "user_id" becomes "UserId" and "enum_BAR" becomes "EnumBAR".
func PascalCase(s string) string {
	title := cases.Title(language.Und, cases.NoLower)

	var sb strings.Builder
	for _, w := range words(s) {
		sb.WriteString(title.String(w))
	}
	return sb.String()
}

// SnakeCase converts s to lower snake_case using the same word splitting
// as PascalCase.
func SnakeCase(s string) string {
	lower := cases.Lower(language.Und)

	ws := words(s)
	for i, w := range ws {
		ws[i] = lower.String(w)
	}
	return strings.Join(ws, "_")
}

func words(s string) []string {
	var out []string
	var cur []rune

	flush := func() {
		if len(cur) > 0 {
			out = append(out, string(cur))
			cur = cur[:0]
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			flush()
			continue
		}
		if len(cur) > 0 && unicode.IsUpper(r) {
			prev := cur[len(cur)-1]
			// fooBar | HTTPServer
			if unicode.IsLower(prev) || unicode.IsDigit(prev) ||
				(unicode.IsUpper(prev) && i+1 < len(runes) && unicode.IsLower(runes[i+1])) {
				flush()
			}
		}
		cur = append(cur, r)
	}
	flush()
	return out
}

// RootName infers the root type name from the input file name: the part
// of the base name before the first ".", snake_cased.
func RootName(input string) (string, error) {
	base := filepath.Base(input)
	if input == "" || base == "." || base == ".." || base == string(filepath.Separator) {
		return "", fmt.Errorf("%w: could not infer file name from input %q", ErrConfig, input)
	}
	if !utf8.ValidString(base) {
		return "", fmt.Errorf("%w: input file name %q is not valid UTF-8", ErrConfig, base)
	}

	stem, _, _ := strings.Cut(base, ".")
	name := SnakeCase(stem)
	if name == "" {
		return "", fmt.Errorf("%w: could not infer a root name from input %q", ErrConfig, input)
	}
	return name, nil
}

// DirName returns the snake_cased final element of an output directory.
// Relative paths are resolved against the working directory first, so
// "." names the directory it denotes.
func DirName(outDir string) (string, error) {
	if outDir == "" {
		return "", fmt.Errorf("%w: empty output directory", ErrConfig)
	}
	abs, err := filepath.Abs(outDir)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrConfig, err)
	}

	base := filepath.Base(abs)
	if base == string(filepath.Separator) || base == "." {
		return "", fmt.Errorf("%w: could not determine a name from output directory %q", ErrConfig, outDir)
	}
	if !utf8.ValidString(base) {
		return "", fmt.Errorf("%w: output directory %q is not valid UTF-8", ErrConfig, outDir)
	}

	name := SnakeCase(base)
	if name == "" {
		return "", fmt.Errorf("%w: could not determine a name from output directory %q", ErrConfig, outDir)
	}
	return name, nil
}
