//
// Waldiez is pleased to support the open source community by making waldiez-go available.
//
// Copyright (C) 2025 Waldiez.  All rights reserved.
//
// waldiez-go is licensed under the Apache License Version 2.0.
//
package handoff

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransitionTargetValidate(t *testing.T) {
	tests := []struct {
		name    string
		target  TransitionTarget
		wantErr bool
	}{
		{name: "agent_ok", target: TransitionTarget{TargetType: AgentTarget, Value: []string{"a1"}}},
		{name: "agent_too_many", target: TransitionTarget{TargetType: AgentTarget, Value: []string{"a1", "a2"}}, wantErr: true},
		{name: "agent_empty", target: TransitionTarget{TargetType: AgentTarget}, wantErr: true},
		{name: "random_ok", target: TransitionTarget{TargetType: RandomAgentTarget, Value: []string{"a1", "a2"}}},
		{name: "random_too_few", target: TransitionTarget{TargetType: RandomAgentTarget, Value: []string{"a1"}}, wantErr: true},
		{name: "nested_ok", target: TransitionTarget{TargetType: NestedChatTarget, Value: []string{"c1"}}},
		{name: "nested_empty", target: TransitionTarget{TargetType: NestedChatTarget}, wantErr: true},
		{name: "group_ok", target: TransitionTarget{TargetType: GroupChatTarget, Value: []string{"g1"}}},
		{name: "terminate_ok", target: TransitionTarget{TargetType: TerminateTarget}},
		{name: "terminate_with_value", target: TransitionTarget{TargetType: TerminateTarget, Value: []string{"x"}}, wantErr: true},
		{name: "stay_ok", target: TransitionTarget{TargetType: StayTarget}},
		{name: "missing_type", target: TransitionTarget{}, wantErr: true},
		{name: "unknown_type", target: TransitionTarget{TargetType: "Bogus"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.target.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConditionIsEmpty(t *testing.T) {
	var nilCond *Condition
	assert.True(t, nilCond.IsEmpty())
	assert.True(t, (&Condition{}).IsEmpty())
	assert.True(t, (&Condition{ConditionType: StringLLMCondition}).IsEmpty())
	assert.False(t, (&Condition{ConditionType: StringLLMCondition, Prompt: "go?"}).IsEmpty())
	assert.False(t, (&Condition{ConditionType: StringContextCondition, VariableName: "done"}).IsEmpty())
	assert.False(t, (&Condition{ConditionType: ExpressionContextCondition, Expression: "${a} and ${b}"}).IsEmpty())
}

func TestAvailabilityValidate(t *testing.T) {
	assert.NoError(t, (&Availability{}).Validate())
	assert.NoError(t, (&Availability{Type: AvailabilityNone}).Validate())
	assert.NoError(t, (&Availability{Type: AvailabilityString, Value: "ready"}).Validate())
	assert.Error(t, (&Availability{Type: AvailabilityString}).Validate())
	assert.Error(t, (&Availability{Type: "bogus"}).Validate())
}

func TestHandoffValidate(t *testing.T) {
	h := &Handoff{Target: NewAgentTarget("a1")}
	assert.NoError(t, h.Validate())

	assert.Error(t, (&Handoff{}).Validate())

	bad := &Handoff{
		Target:    NewAgentTarget("a1"),
		Available: &Availability{Type: "bogus"},
	}
	assert.Error(t, bad.Validate())
}
