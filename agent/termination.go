//
// Waldiez is pleased to support the open source community by making waldiez-go available.
//
// Copyright (C) 2025 Waldiez.  All rights reserved.
//
// waldiez-go is licensed under the Apache License Version 2.0.
//
package agent

import (
	"fmt"
	"strings"

	"github.com/waldiez/waldiez-go/internal/pycode"
)

// TerminationType enumerates termination-check kinds.
type TerminationType string

// Termination kinds.
const (
	TerminationNone    TerminationType = "none"
	TerminationKeyword TerminationType = "keyword"
	TerminationMethod  TerminationType = "method"
)

// TerminationCriterion enumerates how keywords match message content.
type TerminationCriterion string

// Keyword matching criteria.
const (
	CriterionFound  TerminationCriterion = "found"
	CriterionEnding TerminationCriterion = "ending"
	CriterionExact  TerminationCriterion = "exact"
)

// TerminationFunctionName is the expected snippet function name.
const TerminationFunctionName = "is_termination_message"

// TerminationFunctionArgs is the expected snippet signature.
var TerminationFunctionArgs = []string{"message"}

// Termination configures when an agent considers the conversation
// finished: never, when keywords match, or via a user snippet.
type Termination struct {
	Type      TerminationType      `json:"type,omitempty"`
	Keywords  []string             `json:"keywords,omitempty"`
	Criterion TerminationCriterion `json:"criterion,omitempty"`
	// MethodContent is the snippet source for method type.
	MethodContent *string `json:"methodContent,omitempty"`

	body string
}

// Validate checks the kind-specific contract and, for method type, the
// snippet signature.
func (t *Termination) Validate() error {
	if t.Type == "" {
		t.Type = TerminationNone
	}
	switch t.Type {
	case TerminationNone:
		return nil
	case TerminationKeyword:
		if len(t.Keywords) == 0 {
			return fmt.Errorf("keyword termination requires at least one keyword")
		}
		switch t.Criterion {
		case CriterionFound, CriterionEnding, CriterionExact:
			return nil
		case "":
			t.Criterion = CriterionFound
			return nil
		default:
			return fmt.Errorf("unknown termination criterion %q", t.Criterion)
		}
	case TerminationMethod:
		if t.MethodContent == nil || *t.MethodContent == "" {
			return fmt.Errorf("method termination requires content")
		}
		ok, result := pycode.CheckFunction(*t.MethodContent, TerminationFunctionName, TerminationFunctionArgs)
		if !ok {
			return fmt.Errorf("invalid termination method: %s", result)
		}
		t.body = result
		return nil
	default:
		return fmt.Errorf("unknown termination type %q", t.Type)
	}
}

// GetTerminationFunction emits the termination check under a
// synthesized name. Keyword type synthesizes the body; method type
// re-emits the validated snippet body. None type returns empty code.
func (t *Termination) GetTerminationFunction(namePrefix, nameSuffix string) (string, string) {
	name := pycode.FunctionName(namePrefix, TerminationFunctionName, nameSuffix)
	var body string
	switch t.Type {
	case TerminationMethod:
		body = t.body
	case TerminationKeyword:
		body = t.keywordBody()
	default:
		return "", name
	}
	code := pycode.GenerateFunction(
		name,
		TerminationFunctionArgs,
		[]string{"dict[str, Any]"},
		"bool",
		body,
	)
	return code, name
}

// keywordBody synthesizes the keyword-matching check.
func (t *Termination) keywordBody() string {
	keywords := pyStringList(t.Keywords)
	var b strings.Builder
	b.WriteString("    content = message.get(\"content\")\n")
	b.WriteString("    if not isinstance(content, str):\n")
	b.WriteString("        return False\n")
	switch t.Criterion {
	case CriterionEnding:
		fmt.Fprintf(&b, "    return any(content.rstrip().endswith(keyword) for keyword in %s)", keywords)
	case CriterionExact:
		fmt.Fprintf(&b, "    return content in %s", keywords)
	default:
		fmt.Fprintf(&b, "    return any(keyword in content for keyword in %s)", keywords)
	}
	return b.String()
}

// pyStringList renders a Python list literal of string values.
func pyStringList(values []string) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = pyString(v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// pyString renders a double-quoted Python string literal.
func pyString(v string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range v {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}
