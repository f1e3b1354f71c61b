//
// Waldiez is pleased to support the open source community by making waldiez-go available.
//
// Copyright (C) 2025 Waldiez.  All rights reserved.
//
// waldiez-go is licensed under the Apache License Version 2.0.
//
package pycode

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckFunctionSuccess(t *testing.T) {
	ok, body := CheckFunction("def f(x):\n    return x", "f", []string{"x"})
	require.True(t, ok, body)
	assert.Equal(t, "    return x", body)
}

func TestCheckFunctionMultilineSignature(t *testing.T) {
	src := strings.Join([]string{
		"def callable_message(",
		"    sender,",
		"    recipient,",
		"    context,",
		"):",
		"    # pick a greeting",
		"    return 'hello'",
		"",
	}, "\n")
	ok, body := CheckFunction(src, "callable_message", []string{"sender", "recipient", "context"})
	require.True(t, ok, body)
	assert.Equal(t, "    # pick a greeting\n    return 'hello'", body)
}

func TestCheckFunctionAnnotatedParams(t *testing.T) {
	src := "def is_termination_message(message: dict[str, Any]) -> bool:\n    return False"
	ok, body := CheckFunction(src, "is_termination_message", []string{"message"})
	require.True(t, ok, body)
	assert.Equal(t, "    return False", body)
}

func TestCheckFunctionKeepsDocstring(t *testing.T) {
	src := "def f(x):\n    \"\"\"Doc.\n\n    More.\n    \"\"\"\n    return x\n"
	ok, body := CheckFunction(src, "f", []string{"x"})
	require.True(t, ok, body)
	assert.True(t, strings.HasPrefix(body, "    \"\"\"Doc."))
	assert.True(t, strings.HasSuffix(body, "    return x"))
}

func TestCheckFunctionErrors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		fn      string
		args    []string
		wantMsg string
	}{
		{
			name:    "wrong_arity",
			src:     "def f(a,b):\n    pass",
			fn:      "f",
			args:    []string{"x"},
			wantMsg: "Invalid number of arguments",
		},
		{
			name:    "wrong_name",
			src:     "def f(x):\n    pass",
			fn:      "g",
			args:    []string{"x"},
			wantMsg: "No method with name 'g' and arguments 'x' found",
		},
		{
			name:    "wrong_arg_name",
			src:     "def f(y):\n    pass",
			fn:      "f",
			args:    []string{"x"},
			wantMsg: "Invalid argument name: y",
		},
		{
			name:    "syntax_error",
			src:     "def f(x:\n    pass",
			fn:      "f",
			args:    []string{"x"},
			wantMsg: "SyntaxError",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, msg := CheckFunction(tt.src, tt.fn, tt.args)
			require.False(t, ok)
			assert.Contains(t, msg, tt.wantMsg)
		})
	}
}

func TestCheckFunctionIgnoresOtherDefs(t *testing.T) {
	src := "def helper(a):\n    return a\n\ndef f(x):\n    return helper(x)\n"
	ok, body := CheckFunction(src, "f", []string{"x"})
	require.True(t, ok, body)
	assert.Equal(t, "    return helper(x)", body)
}

func TestCheckFunctionIgnoresDocstringDefs(t *testing.T) {
	src := strings.Join([]string{
		`"""Termination helpers.`,
		"",
		"def is_termination_message(a, b):",
		"    an old example, kept for reference",
		`"""`,
		"",
		"",
		"def is_termination_message(message):",
		"    return False",
	}, "\n")
	ok, body := CheckFunction(src, "is_termination_message", []string{"message"})
	require.True(t, ok, body)
	assert.Equal(t, "    return False", body)
}

func TestInsideStringMask(t *testing.T) {
	lines := []string{
		`x = """start`,
		"def not_code(a):",
		`end"""`,
		"def real(a):",
		`y = "'''" # not an opener`,
		"def also_real(b):",
	}
	mask := InsideStringMask(lines)
	assert.Equal(t, []bool{false, true, true, false, false, false}, mask)
}

func TestGenerateFunction(t *testing.T) {
	got := GenerateFunction("f", []string{"a", "b"}, []string{"int", "str"}, "bool", "    return True")
	want := "def f(\n    a: int,\n    b: str,\n) -> bool:\n    return True\n"
	assert.Equal(t, want, got)
}

func TestGenerateFunctionNoArgs(t *testing.T) {
	got := GenerateFunction("f", nil, nil, "None", "    pass")
	assert.Equal(t, "def f() -> None:\n    pass\n", got)
}

func TestGenerateFunctionTypesAsComments(t *testing.T) {
	got := GenerateFunction(
		"f", []string{"a"}, []string{"int"}, "bool", "    return True",
		WithTypesAsComments(),
	)
	want := "def f(\n    a,  # type: int\n):\n    # type: (int) -> bool\n    return True\n"
	assert.Equal(t, want, got)
}

func TestGenerateFunctionNameCap(t *testing.T) {
	long := strings.Repeat("x", 100)
	got := GenerateFunction(long, nil, nil, "None", "    pass")
	assert.True(t, strings.HasPrefix(got, "def "+strings.Repeat("x", 64)+"()"))
}

func TestGetFunction(t *testing.T) {
	src := "import os\n\n\ndef tool_name():\n    return os.getcwd()\n\n\nprint(tool_name())\n"
	got := GetFunction(src, "tool_name")
	assert.Equal(t, "def tool_name():\n    return os.getcwd()", got)
}

func TestGetFunctionToleratesBrokenSurroundings(t *testing.T) {
	src := "this is not python }{\n\ndef handler(x):\n    return x\n"
	got := GetFunction(src, "handler")
	assert.Equal(t, "def handler(x):\n    return x", got)
}

func TestGetFunctionMissing(t *testing.T) {
	assert.Equal(t, "", GetFunction("def other():\n    pass", "missing"))
	assert.Equal(t, "", GetFunction("", "missing"))
}

func TestFunctionName(t *testing.T) {
	assert.Equal(t, "get_weather", FunctionName("", "get_weather", ""))
	assert.Equal(t, "wa_1_get_weather", FunctionName("wa_1", "get_weather", ""))
	assert.Equal(t, "get_weather_wc_2", FunctionName("", "get_weather", "wc_2"))
	assert.Equal(t, "a_b_c", FunctionName("a", "b", "c"))
}
