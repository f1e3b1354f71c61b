//
// Waldiez is pleased to support the open source community by making waldiez-go available.
//
// Copyright (C) 2025 Waldiez.  All rights reserved.
//
// waldiez-go is licensed under the Apache License Version 2.0.
//
package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValuesScalars(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want any
	}{
		{name: "int", in: "42", want: 42},
		{name: "negative_int", in: "-7", want: -7},
		{name: "float", in: "3.14", want: 3.14},
		{name: "bool_true", in: "true", want: true},
		{name: "bool_false", in: "False", want: false},
		{name: "null", in: "null", want: nil},
		{name: "none", in: "None", want: nil},
		{name: "nil_alias", in: "nil", want: nil},
		{name: "undefined", in: "undefined", want: nil},
		{name: "plain_text", in: "some text", want: "some text"},
		{name: "quoted_text", in: `"hello"`, want: "hello"},
		{name: "quoted_number", in: `'42'`, want: 42},
		{name: "non_string_passthrough", in: 99, want: 99},
		{name: "paren_scalar_stays_string", in: "(42)", want: "(42)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Values(map[string]any{"a": tt.in})
			assert.Equal(t, tt.want, got["a"])
		})
	}
}

func TestValuesContainers(t *testing.T) {
	got := Values(map[string]any{
		"json_list":   "[1, 2, 3]",
		"json_dict":   `{"a": 1}`,
		"py_dict":     "{'a': True, 'b': None}",
		"py_tuple":    "(1, 'two')",
		"py_set":      "{1, 2}",
		"broken_list": "[1, 2",
	})
	assert.Equal(t, []any{float64(1), float64(2), float64(3)}, got["json_list"])
	assert.Equal(t, map[string]any{"a": float64(1)}, got["json_dict"])
	assert.Equal(t, map[string]any{"a": true, "b": nil}, got["py_dict"])
	assert.Equal(t, []any{1, "two"}, got["py_tuple"])
	assert.Equal(t, []any{1, 2}, got["py_set"])
	assert.Equal(t, "[1, 2", got["broken_list"])
}

func TestValuesIdempotent(t *testing.T) {
	in := map[string]any{
		"a": "42",
		"b": "true",
		"c": "[1, 2]",
		"d": "plain",
		"e": "3.14",
	}
	once := Values(in)
	twice := Values(once)
	require.Equal(t, once, twice)
}

func TestParseLiteralNested(t *testing.T) {
	v, err := ParseLiteral(`{'outer': {'inner': [1, 2.5, 'x'], 'flag': False}}`)
	require.NoError(t, err)
	outer, ok := v.(map[string]any)
	require.True(t, ok)
	inner, ok := outer["outer"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, []any{1, 2.5, "x"}, inner["inner"])
	assert.Equal(t, false, inner["flag"])
}

func TestParseLiteralErrors(t *testing.T) {
	for _, in := range []string{"{1: ", "[1,", "'open", "{'a' 1}", "foo"} {
		if _, err := ParseLiteral(in); err == nil {
			t.Errorf("ParseLiteral(%q) should fail", in)
		}
	}
}

func TestValuesNilMap(t *testing.T) {
	assert.Nil(t, Values(nil))
}
