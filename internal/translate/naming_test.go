// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPascalCase(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"user", "User"},
		{"user_id", "UserId"},
		{"userId", "UserId"},
		{"user-created", "UserCreated"},
		{"gamut_enum_BAR", "GamutEnumBAR"},
		{"HTTPServer", "HTTPServer"},
		{"status_A", "StatusA"},
		{"message_details_type_user_deleted", "MessageDetailsTypeUserDeleted"},
		{"a b.c", "ABC"},
		{"v2_api", "V2Api"},
		{"", ""},
		{"__", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, PascalCase(tt.input))
		})
	}
}

func TestSnakeCase(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"user", "user"},
		{"UserProfile", "user_profile"},
		{"my-models", "my_models"},
		{"userID", "user_id"},
		{"Models", "models"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, SnakeCase(tt.input))
		})
	}
}

func TestPath_AppendDoesNotAlias(t *testing.T) {
	base := NewPath("user").Append("address")
	zip := base.Append("zip")
	city := base.Append("city")

	assert.Equal(t, Path{"user", "address"}, base)
	assert.Equal(t, Path{"user", "address", "zip"}, zip)
	assert.Equal(t, Path{"user", "address", "city"}, city)
	assert.Equal(t, "user/address/zip", zip.String())
}

func TestName(t *testing.T) {
	assert.Equal(t, "User", Name(NewPath("user")))
	assert.Equal(t, "UserAddressZip", Name(Path{"user", "address", "zip"}))
	assert.Equal(t, "StatusA", Name(Path{"Status", "A"}))
}

func TestName_SiblingsDiffer(t *testing.T) {
	parent := NewPath("order")
	assert.NotEqual(t, Name(parent.Append("billing")), Name(parent.Append("shipping")))
}

func TestRootName(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{input: "user.jddf", want: "user"},
		{input: "schemas/user.jddf.json", want: "user"},
		{input: "/abs/UserProfile.json", want: "user_profile"},
		{input: "message", want: "message"},
		{input: ".jddf", wantErr: true},
		{input: "", wantErr: true},
		{input: "/", wantErr: true},
		{input: "bad\xffname.json", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := RootName(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrConfig)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDirName(t *testing.T) {
	got, err := DirName("gen/my-models")
	require.NoError(t, err)
	assert.Equal(t, "my_models", got)

	got, err = DirName("gen/models/")
	require.NoError(t, err)
	assert.Equal(t, "models", got)

	_, err = DirName("/")
	assert.ErrorIs(t, err, ErrConfig)

	_, err = DirName("")
	assert.ErrorIs(t, err, ErrConfig)

	_, err = DirName("out/\xff")
	assert.ErrorIs(t, err, ErrConfig)
}
