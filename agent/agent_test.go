//
// Waldiez is pleased to support the open source community by making waldiez-go available.
//
// Copyright (C) 2025 Waldiez.  All rights reserved.
//
// waldiez-go is licensed under the Apache License Version 2.0.
//
package agent

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/waldiez/waldiez-go/handoff"
)

func strPtr(s string) *string { return &s }

func TestAgentValidate(t *testing.T) {
	a := &Agent{ID: "a1", AgentType: TypeAssistant, Name: "assistant"}
	require.NoError(t, a.Validate())

	assert.Error(t, (&Agent{AgentType: TypeAssistant, Name: "x"}).Validate())
	assert.Error(t, (&Agent{ID: "a1", AgentType: TypeAssistant}).Validate())
	assert.Error(t, (&Agent{ID: "a1", AgentType: "bogus", Name: "x"}).Validate())
}

func TestDeprecatedTypeAliases(t *testing.T) {
	tests := []struct {
		in   Type
		want Type
	}{
		{TypeSwarm, TypeAssistant},
		{"swarm_agent", TypeAssistant},
		{"user", TypeUserProxy},
		{"rag_user", TypeRAGUserProxy},
		{"manager", TypeGroupManager},
	}
	for _, tt := range tests {
		a := &Agent{ID: "a1", AgentType: tt.in, Name: "x"}
		require.NoError(t, a.Validate(), "type %s", tt.in)
		assert.Equal(t, tt.want, a.AgentType, "type %s", tt.in)
	}
}

func TestRemoteAgentRequiresURL(t *testing.T) {
	a := &Agent{ID: "a1", AgentType: TypeRemote, Name: "remote"}
	assert.Error(t, a.Validate())
	a.Data.URL = "https://example.com/agent"
	assert.NoError(t, a.Validate())
}

func TestDocAgentDefaults(t *testing.T) {
	a := &Agent{ID: "a1", AgentType: TypeDocAgent, Name: "docs"}
	require.NoError(t, a.Validate())
	assert.Equal(t, DefaultCollectionName, a.Data.CollectionName)
}

func TestIsGroupMember(t *testing.T) {
	a := &Agent{ID: "a1", AgentType: TypeAssistant, Name: "x"}
	assert.False(t, a.IsGroupMember())
	a.Data.ParentID = strPtr("gm1")
	assert.True(t, a.IsGroupMember())
}

func TestSetHandoffsOnce(t *testing.T) {
	a := &Agent{ID: "a1", AgentType: TypeAssistant, Name: "x"}
	assert.False(t, a.HandoffsGathered())
	require.NoError(t, a.SetHandoffs([]*handoff.Handoff{
		{Target: handoff.NewAgentTarget("a2")},
	}))
	assert.True(t, a.HandoffsGathered())
	assert.Len(t, a.Handoffs(), 1)
	assert.Error(t, a.SetHandoffs(nil))
}

func TestGroupOrderTwoPhase(t *testing.T) {
	a := &Agent{ID: "gm", AgentType: TypeGroupManager, Name: "manager"}
	_, err := a.GroupOrder()
	assert.Error(t, err)
	a.SetGroupOrder([]string{"a1", "a2"})
	order, err := a.GroupOrder()
	require.NoError(t, err)
	assert.Equal(t, []string{"a1", "a2"}, order)
}

func TestContextVariableNormalization(t *testing.T) {
	a := &Agent{
		ID: "a1", AgentType: TypeAssistant, Name: "x",
		Data: Data{ContextVariables: map[string]any{"count": "3", "label": "text"}},
	}
	require.NoError(t, a.Validate())
	assert.Equal(t, 3, a.Data.ContextVariables["count"])
	assert.Equal(t, "text", a.Data.ContextVariables["label"])
}

func TestCodeExecutionUnmarshalFalse(t *testing.T) {
	var c CodeExecution
	require.NoError(t, json.Unmarshal([]byte(`false`), &c))
	assert.False(t, c.Enabled())

	require.NoError(t, json.Unmarshal([]byte(`{"workDir": "coding"}`), &c))
	assert.True(t, c.Enabled())
	assert.Equal(t, "coding", c.WorkDir)

	var nilCfg *CodeExecution
	assert.False(t, nilCfg.Enabled())
}
