//
// Waldiez is pleased to support the open source community by making waldiez-go available.
//
// Copyright (C) 2025 Waldiez.  All rights reserved.
//
// waldiez-go is licensed under the Apache License Version 2.0.
//
package jsonx

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCamelKey(t *testing.T) {
	tests := []struct{ in, want string }{
		{"agent_type", "agentType"},
		{"agentType", "agentType"},
		{"max_consecutive_auto_reply", "maxConsecutiveAutoReply"},
		{"id", "id"},
		{"_private", "private"},
		{"__", "__"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CamelKey(tt.in), "CamelKey(%q)", tt.in)
	}
}

func TestCamelizeNested(t *testing.T) {
	in := []byte(`{"agent_type": "assistant", "data": {"model_ids": ["m1"], "nested": [{"is_reply": true}]}, "cache_seed": 42}`)
	out, err := Camelize(in)
	require.NoError(t, err)

	var v map[string]any
	require.NoError(t, json.Unmarshal(out, &v))
	assert.Equal(t, "assistant", v["agentType"])
	data := v["data"].(map[string]any)
	assert.Contains(t, data, "modelIds")
	nested := data["nested"].([]any)
	assert.Contains(t, nested[0].(map[string]any), "isReply")
	assert.Equal(t, float64(42), v["cacheSeed"])
}

func TestCamelizeKeepsExistingCamel(t *testing.T) {
	in := []byte(`{"agentType": "assistant", "agent_type": "ignored"}`)
	out, err := Camelize(in)
	require.NoError(t, err)
	var v map[string]any
	require.NoError(t, json.Unmarshal(out, &v))
	assert.Equal(t, "assistant", v["agentType"])
}

func TestCamelizeKeepsPayloadKeys(t *testing.T) {
	in := []byte(`{
		"data": {
			"context_variables": {"my_var": 42, "another_one": "x"},
			"secrets": {"GOOGLE_SEARCH_API_KEY": "k", "my_secret_key": "v"},
			"kwargs": {"base_url": "http://localhost"},
			"default_headers": {"X-Custom_Header": "1"},
			"extras": {"top_k": 3},
			"allowed_or_disallowed_transitions": {"agent_1": ["agent_2"]}
		}
	}`)
	out, err := Camelize(in)
	require.NoError(t, err)

	var v map[string]any
	require.NoError(t, json.Unmarshal(out, &v))
	data := v["data"].(map[string]any)

	ctx := data["contextVariables"].(map[string]any)
	assert.Contains(t, ctx, "my_var")
	assert.Contains(t, ctx, "another_one")
	secrets := data["secrets"].(map[string]any)
	assert.Contains(t, secrets, "GOOGLE_SEARCH_API_KEY")
	assert.Contains(t, secrets, "my_secret_key")
	assert.Contains(t, data["kwargs"].(map[string]any), "base_url")
	assert.Contains(t, data["defaultHeaders"].(map[string]any), "X-Custom_Header")
	assert.Contains(t, data["extras"].(map[string]any), "top_k")
	transitions := data["allowedOrDisallowedTransitions"].(map[string]any)
	assert.Contains(t, transitions, "agent_1")
}

func TestCamelizeKeepsConditionData(t *testing.T) {
	in := []byte(`{
		"condition": {
			"condition_type": "string_llm",
			"prompt": "go on?",
			"data": {"my_key": 1}
		},
		"data": {"model_ids": []}
	}`)
	out, err := Camelize(in)
	require.NoError(t, err)

	var v map[string]any
	require.NoError(t, json.Unmarshal(out, &v))
	cond := v["condition"].(map[string]any)
	assert.Equal(t, "string_llm", cond["conditionType"])
	assert.Contains(t, cond["data"].(map[string]any), "my_key")
	// Entity-level data is still schema and gets rewritten.
	assert.Contains(t, v["data"].(map[string]any), "modelIds")
}

func TestCamelizeInvalid(t *testing.T) {
	_, err := Camelize([]byte(`{"broken":`))
	assert.Error(t, err)
}
