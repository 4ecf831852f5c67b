// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package gotypes

import (
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// typeCheck parses and type-checks src as a standalone package.
func typeCheck(t *testing.T, src string) *types.Package {
	t.Helper()
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, "models.go", src, parser.AllErrors|parser.ParseComments)
	require.NoError(t, err)

	conf := types.Config{Importer: importer.Default()}
	pkg, err := conf.Check("models", fset, []*ast.File{f}, nil)
	require.NoError(t, err, src)
	return pkg
}

func TestRender_TypeChecks(t *testing.T) {
	tests := []struct {
		name  string
		input string
		doc   string
	}{
		{name: "message", input: "message.json", doc: messageSchema},
		{name: "user", input: "user.json", doc: `{
			"properties": {"name": {"type": "string"}},
			"optionalProperties": {"age": {"type": "uint8"}, "seen": {"type": "timestamp"}}
		}`},
		{name: "enum", input: "user.json", doc: `{
			"definitions": {"status": {"enum": ["A", "B"]}},
			"properties": {"status": {"ref": "status"}, "history": {"elements": {"ref": "status"}}}
		}`},
		{name: "containers", input: "doc.json", doc: `{
			"properties": {
				"tags": {"elements": {"type": "string"}},
				"scores": {"values": {"type": "float64"}},
				"extra": {}
			}
		}`},
		{name: "root alias", input: "tags.json", doc: `{"elements": {"type": "timestamp"}}`},
		{name: "root elements", input: "list.json", doc: `{"elements": {"properties": {"id": {"type": "string"}}}}`},
		{name: "root values of a discriminator", input: "events.json", doc: `{"values": {"discriminator": {
			"tag": "kind",
			"mapping": {"click": {"properties": {"x": {"type": "int32"}}}, "key": {"properties": {}}}
		}}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, src := generate(t, tt.input, tt.doc)
			typeCheck(t, src)
		})
	}
}

func TestRender_UnionImplementsJSONCodecs(t *testing.T) {
	_, src := generate(t, "message.json", messageSchema)
	pkg := typeCheck(t, src)

	jsonPkg, err := importer.Default().Import("encoding/json")
	require.NoError(t, err)
	marshaler := jsonPkg.Scope().Lookup("Marshaler").Type().Underlying().(*types.Interface)
	unmarshaler := jsonPkg.Scope().Lookup("Unmarshaler").Type().Underlying().(*types.Interface)

	union := pkg.Scope().Lookup("MessageDetails")
	require.NotNil(t, union)
	assert.True(t, types.Implements(union.Type(), marshaler))
	assert.True(t, types.Implements(types.NewPointer(union.Type()), unmarshaler))
	assert.False(t, types.Implements(union.Type(), unmarshaler))

	sentinel := pkg.Scope().Lookup("ErrUnknownVariant")
	require.NotNil(t, sentinel)
	assert.Equal(t, "error", sentinel.Type().String())
}

const roundTripTest = `package models

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestRoundTrip(t *testing.T) {
	in := Message{
		MessageId: "m1",
		Details: MessageDetails{
			Type:                      MessageDetailsTypeUserCreated,
			MessageDetailsUserCreated: MessageDetailsUserCreated{User: User{Id: "u1"}},
		},
	}
	b, err := json.Marshal(in)
	if err != nil {
		t.Fatal(err)
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(b, &raw); err != nil {
		t.Fatal(err)
	}
	details, _ := raw["details"].(map[string]interface{})
	if details["type"] != "user_created" {
		t.Fatalf("tag not written: %s", b)
	}
	if _, ok := details["userId"]; ok {
		t.Fatalf("inactive variant written: %s", b)
	}

	var out Message
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatal(err)
	}
	if out.MessageId != in.MessageId || out.Details != in.Details || !out.Timestamp.Equal(in.Timestamp) {
		t.Fatalf("got %+v, want %+v", out, in)
	}
}

func TestUnmarshalDispatchesOnTag(t *testing.T) {
	var d MessageDetails
	if err := json.Unmarshal([]byte(` + "`" + `{"type": "user_deleted", "userId": "u2"}` + "`" + `), &d); err != nil {
		t.Fatal(err)
	}
	if d.Type != MessageDetailsTypeUserDeleted || d.MessageDetailsUserDeleted.UserId != "u2" {
		t.Fatalf("got %+v", d)
	}
}

func TestUnknownVariant(t *testing.T) {
	for _, doc := range []string{` + "`" + `{}` + "`" + `, ` + "`" + `{"type": "nope"}` + "`" + `, ` + "`" + `{"type": 1}` + "`" + `} {
		var d MessageDetails
		if err := json.Unmarshal([]byte(doc), &d); !errors.Is(err, ErrUnknownVariant) {
			t.Errorf("%s: got %v", doc, err)
		}
	}
	if _, err := json.Marshal(MessageDetails{}); !errors.Is(err, ErrUnknownVariant) {
		t.Errorf("marshal of untagged union: got %v", err)
	}
}
`

func TestRender_RoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("builds generated code")
	}
	goBin, err := exec.LookPath("go")
	if err != nil {
		t.Skip("go command not found")
	}

	dir := t.TempDir()
	_, src := generate(t, "message.json", messageSchema)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "go.mod"), []byte("module models\n\ngo 1.21\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "message.go"), []byte(src), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "message_test.go"), []byte(roundTripTest), 0o600))

	cmd := exec.Command(goBin, "test", "./...")
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), "GOWORK=off", "GOFLAGS=", "GOTOOLCHAIN=local")
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, string(out))
}
