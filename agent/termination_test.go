//
// Waldiez is pleased to support the open source community by making waldiez-go available.
//
// Copyright (C) 2025 Waldiez.  All rights reserved.
//
// waldiez-go is licensed under the Apache License Version 2.0.
//
package agent

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerminationValidate(t *testing.T) {
	tests := []struct {
		name    string
		term    Termination
		wantErr bool
	}{
		{name: "empty defaults to none", term: Termination{}},
		{name: "none", term: Termination{Type: TerminationNone}},
		{
			name: "keyword",
			term: Termination{Type: TerminationKeyword, Keywords: []string{"TERMINATE"}},
		},
		{
			name:    "keyword without keywords",
			term:    Termination{Type: TerminationKeyword},
			wantErr: true,
		},
		{
			name: "keyword bad criterion",
			term: Termination{
				Type: TerminationKeyword, Keywords: []string{"done"}, Criterion: "fuzzy",
			},
			wantErr: true,
		},
		{
			name:    "method without content",
			term:    Termination{Type: TerminationMethod},
			wantErr: true,
		},
		{
			name:    "unknown type",
			term:    Termination{Type: "sometimes"},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.term.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTerminationKeywordDefaultsCriterion(t *testing.T) {
	term := Termination{Type: TerminationKeyword, Keywords: []string{"stop"}}
	require.NoError(t, term.Validate())
	assert.Equal(t, CriterionFound, term.Criterion)
}

func TestTerminationKeywordFunction(t *testing.T) {
	term := Termination{
		Type:      TerminationKeyword,
		Keywords:  []string{"TERMINATE", `say "bye"`},
		Criterion: CriterionEnding,
	}
	require.NoError(t, term.Validate())
	code, name := term.GetTerminationFunction("wa", "agent_1")
	assert.Equal(t, "wa_is_termination_message_agent_1", name)
	assert.Contains(t, code, "def wa_is_termination_message_agent_1(")
	assert.Contains(t, code, "message: dict[str, Any],")
	assert.Contains(t, code, ") -> bool:")
	assert.Contains(t, code, `content.rstrip().endswith(keyword)`)
	assert.Contains(t, code, `["TERMINATE", "say \"bye\""]`)
}

func TestTerminationMethodFunction(t *testing.T) {
	source := strings.Join([]string{
		"def is_termination_message(message):",
		`    return message.get("content") == "DONE"`,
	}, "\n")
	term := Termination{Type: TerminationMethod, MethodContent: &source}
	require.NoError(t, term.Validate())
	code, name := term.GetTerminationFunction("wa", "agent_2")
	assert.Equal(t, "wa_is_termination_message_agent_2", name)
	assert.Contains(t, code, `return message.get("content") == "DONE"`)
}

func TestTerminationNoneFunction(t *testing.T) {
	term := Termination{Type: TerminationNone}
	code, name := term.GetTerminationFunction("wa", "agent_3")
	assert.Empty(t, code)
	assert.Equal(t, "wa_is_termination_message_agent_3", name)
}

func TestTerminationMethodBadSignature(t *testing.T) {
	source := "def is_termination_message(msg):\n    return False\n"
	term := Termination{Type: TerminationMethod, MethodContent: &source}
	err := term.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid argument name: msg")
}
