//
// Waldiez is pleased to support the open source community by making waldiez-go available.
//
// Copyright (C) 2025 Waldiez.  All rights reserved.
//
// waldiez-go is licensed under the Apache License Version 2.0.
//

// Package normalize coerces loosely-typed string values coming from the
// flow JSON into typed Go values. Context-variable dictionaries are
// stored by the editor with every value as a string ("42", "true",
// "[1, 2]"); generated Python expects real numbers, booleans and
// containers, so the strings are interpreted before code emission.
package normalize

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// nullAliases are tokens treated as null regardless of case.
var nullAliases = map[string]bool{
	"none":      true,
	"null":      true,
	"nil":       true,
	"undefined": true,
}

var intPattern = regexp.MustCompile(`^[-+]?\d+$`)

// Values returns a copy of the mapping with every string value coerced.
// Non-string values pass through unchanged. The operation is idempotent:
// Values(Values(m)) equals Values(m).
func Values(in map[string]any) map[string]any {
	if in == nil {
		return nil
	}
	out := make(map[string]any, len(in))
	for k, v := range in {
		if s, ok := v.(string); ok {
			out[k] = Value(s)
		} else {
			out[k] = v
		}
	}
	return out
}

// Value coerces a single string using the rules from Values.
func Value(s string) any {
	s = stripOuterQuotes(s)
	token := strings.TrimSpace(s)
	lower := strings.ToLower(token)

	if nullAliases[lower] {
		return nil
	}
	if lower == "true" {
		return true
	}
	if lower == "false" {
		return false
	}
	if v, ok := parseDelimited(token); ok {
		return v
	}
	if intPattern.MatchString(token) {
		if n, err := strconv.Atoi(token); err == nil {
			return n
		}
	}
	if f, err := strconv.ParseFloat(token, 64); err == nil {
		return f
	}
	return s
}

// stripOuterQuotes removes one pair of matching outer quotes, if any.
func stripOuterQuotes(s string) string {
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if first == last && (first == '"' || first == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}

// parseDelimited attempts a structured parse of a bracket, brace or
// paren delimited token. JSON is tried first; when that fails, the
// permissive Python-literal parser takes over. The parsed value is kept
// only when it is itself a container (mapping, sequence, tuple-like or
// set-like); a parenthesized scalar such as "(42)" stays a string.
func parseDelimited(token string) (any, bool) {
	if len(token) < 2 {
		return nil, false
	}
	open, closing := token[0], token[len(token)-1]
	switch {
	case open == '[' && closing == ']',
		open == '{' && closing == '}',
		open == '(' && closing == ')':
	default:
		return nil, false
	}

	if open != '(' && gjson.Valid(token) {
		var v any
		if err := json.Unmarshal([]byte(token), &v); err == nil {
			if isContainer(v) {
				return v, true
			}
			return nil, false
		}
	}

	v, err := ParseLiteral(token)
	if err != nil {
		return nil, false
	}
	if !isContainer(v) {
		return nil, false
	}
	return v, true
}

func isContainer(v any) bool {
	switch v.(type) {
	case map[string]any, []any:
		return true
	default:
		return false
	}
}
