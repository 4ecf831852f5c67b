// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package jddf

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Loader loads schemas from a filesystem.
type Loader struct {
	fsys fs.FS
}

// NewLoader creates a Loader that reads from the given filesystem.
func NewLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// LoadFile reads, parses, and validates a schema file.
// Files ending in .yaml or .yml are read as YAML; anything else as JSON.
func (l *Loader) LoadFile(filePath string) (*Schema, error) {
	f, err := l.fsys.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}

	schema, err := decode(data, filePath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filePath, err)
	}
	if err := Verify(schema); err != nil {
		return nil, fmt.Errorf("%s: %w", filePath, err)
	}
	return schema, nil
}

// Load reads a schema file from the local filesystem.
func Load(path string) (*Schema, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	return NewLoader(os.DirFS(filepath.Dir(abs))).LoadFile(filepath.Base(abs))
}

func isYAML(filePath string) bool {
	return strings.HasSuffix(filePath, ".yaml") || strings.HasSuffix(filePath, ".yml")
}

// decode checks the document against the meta-schema and parses it.
func decode(data []byte, filePath string) (*Schema, error) {
	var doc any
	if isYAML(filePath) {
		var y any
		if err := yaml.Unmarshal(data, &y); err != nil {
			return nil, err
		}
		// Round-trip through JSON so the validator sees JSON value types.
		b, err := json.Marshal(y)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(b, &doc); err != nil {
			return nil, err
		}
	} else if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	if err := ValidateDocument(doc); err != nil {
		return nil, err
	}

	if isYAML(filePath) {
		return ParseYAML(data)
	}
	return Parse(data)
}
