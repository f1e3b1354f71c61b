//
// Waldiez is pleased to support the open source community by making waldiez-go available.
//
// Copyright (C) 2025 Waldiez.  All rights reserved.
//
// waldiez-go is licensed under the Apache License Version 2.0.
//
package pycode

import (
	"fmt"
	"strings"
)

// DefaultNameCap is the maximum length of generated function names.
const DefaultNameCap = 64

// CheckFunction verifies that source defines a function named name
// whose positional parameters match argNames exactly, in order. On
// success it returns true and the function body only (no signature
// line), original indentation, comments and docstrings preserved, with
// leading and trailing blank-line padding removed. On failure it
// returns false and a human-readable reason identifying which check
// failed: syntax, name lookup, arity, or argument naming.
func CheckFunction(source, name string, argNames []string) (bool, string) {
	if err := checkSyntax(source); err != nil {
		return false, fmt.Sprintf("SyntaxError: %s", err)
	}

	funcs := scanFunctions(source)
	var found *function
	for i := range funcs {
		if funcs[i].Name == name {
			found = &funcs[i]
			break
		}
	}
	if found == nil {
		return false, fmt.Sprintf(
			"No method with name '%s' and arguments '%s' found",
			name, strings.Join(argNames, ", "),
		)
	}
	if len(found.Args) != len(argNames) {
		return false, fmt.Sprintf(
			"Invalid number of arguments: expected %d (%s), got %d",
			len(argNames), strings.Join(argNames, ", "), len(found.Args),
		)
	}
	for i, actual := range found.Args {
		if actual != argNames[i] {
			return false, fmt.Sprintf("Invalid argument name: %s", actual)
		}
	}

	lines := strings.Split(source, "\n")
	body := lines[found.SigEndLine+1 : found.EndLine]
	body = trimBlankLines(body)
	return true, strings.Join(body, "\n")
}

// GetFunction returns the entire definition of the function named name
// (signature and body) as found in source, or the empty string when no
// such function exists. Unlike CheckFunction it tolerates syntactically
// invalid surrounding code: only the def statement itself must scan.
func GetFunction(source, name string) string {
	lines := strings.Split(source, "\n")
	for idx := 0; idx < len(lines); idx++ {
		m := defPattern.FindStringSubmatch(lines[idx])
		if m == nil || m[2] != name {
			continue
		}
		fn, ok := scanOneFunction(lines, idx, len(m[1]), name)
		if !ok {
			continue
		}
		block := trimBlankLines(lines[fn.DefLine:fn.EndLine])
		return strings.Join(block, "\n")
	}
	return ""
}

// generateOptions controls GenerateFunction output.
type generateOptions struct {
	nameCap         int
	typesAsComments bool
}

// GenerateOption is a functional option for GenerateFunction.
type GenerateOption func(*generateOptions)

// WithNameCap overrides the generated-name length cap.
func WithNameCap(n int) GenerateOption {
	return func(o *generateOptions) {
		o.nameCap = n
	}
}

// WithTypesAsComments emits parameter types as "# type:" comments
// instead of inline annotations, for Python 2 style type hints.
func WithTypesAsComments() GenerateOption {
	return func(o *generateOptions) {
		o.typesAsComments = true
	}
}

// GenerateFunction emits a complete function definition with the given
// name, positional arguments and types, return type and body. Each
// parameter goes on its own line with its positional type annotation;
// the body follows the signature after exactly one newline and the
// result always ends with a trailing newline. Names longer than the cap
// are truncated.
func GenerateFunction(
	name string,
	argNames []string,
	argTypes []string,
	returnType string,
	body string,
	opts ...GenerateOption,
) string {
	o := &generateOptions{nameCap: DefaultNameCap}
	for _, opt := range opts {
		opt(o)
	}
	if len(name) > o.nameCap {
		name = name[:o.nameCap]
	}

	var b strings.Builder
	b.WriteString("def ")
	b.WriteString(name)
	b.WriteString("(")
	if len(argNames) == 0 {
		b.WriteString(")")
	} else {
		b.WriteString("\n")
		for i, arg := range argNames {
			argType := "Any"
			if i < len(argTypes) && argTypes[i] != "" {
				argType = argTypes[i]
			}
			if o.typesAsComments {
				b.WriteString(fmt.Sprintf("    %s,  # type: %s\n", arg, argType))
			} else {
				b.WriteString(fmt.Sprintf("    %s: %s,\n", arg, argType))
			}
		}
		b.WriteString(")")
	}
	if o.typesAsComments {
		b.WriteString(":\n")
		b.WriteString(fmt.Sprintf(
			"    # type: (%s) -> %s\n",
			strings.Join(padTypes(argTypes, len(argNames)), ", "), returnType,
		))
	} else {
		b.WriteString(fmt.Sprintf(" -> %s:\n", returnType))
	}

	body = strings.Trim(body, "\n")
	b.WriteString(body)
	b.WriteString("\n")
	return b.String()
}

// FunctionName joins an optional prefix and suffix around a base name
// with underscores and applies the default length cap.
func FunctionName(prefix, base, suffix string) string {
	parts := make([]string, 0, 3)
	if prefix != "" {
		parts = append(parts, prefix)
	}
	parts = append(parts, base)
	if suffix != "" {
		parts = append(parts, suffix)
	}
	name := strings.Join(parts, "_")
	if len(name) > DefaultNameCap {
		name = name[:DefaultNameCap]
	}
	return name
}

// padTypes extends types with "Any" entries up to n elements.
func padTypes(types []string, n int) []string {
	out := make([]string, n)
	for i := 0; i < n; i++ {
		if i < len(types) && types[i] != "" {
			out[i] = types[i]
		} else {
			out[i] = "Any"
		}
	}
	return out
}

// trimBlankLines removes leading and trailing blank lines.
func trimBlankLines(lines []string) []string {
	start := 0
	for start < len(lines) && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	end := len(lines)
	for end > start && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	return lines[start:end]
}
