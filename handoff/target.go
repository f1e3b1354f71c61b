//
// Waldiez is pleased to support the open source community by making waldiez-go available.
//
// Copyright (C) 2025 Waldiez.  All rights reserved.
//
// waldiez-go is licensed under the Apache License Version 2.0.
//

// Package handoff models transition rules between agents: where control
// goes (target), when the transfer applies (condition) and whether the
// rule is currently eligible (availability). The same shape backs both
// per-agent handoff lists and the chat-edge derived equivalents.
package handoff

import "fmt"

// TargetType discriminates the transition target variants.
type TargetType string

// Transition target variants. AgentTarget through NestedChatTarget
// carry agent/chat ids in Value; the remaining variants are payload-free
// markers resolved by the runtime.
const (
	AgentTarget        TargetType = "AgentTarget"
	RandomAgentTarget  TargetType = "RandomAgentTarget"
	GroupChatTarget    TargetType = "GroupChatTarget"
	NestedChatTarget   TargetType = "NestedChatTarget"
	AskUserTarget      TargetType = "AskUserTarget"
	GroupManagerTarget TargetType = "GroupManagerTarget"
	RevertToUserTarget TargetType = "RevertToUserTarget"
	StayTarget         TargetType = "StayTarget"
	TerminateTarget    TargetType = "TerminateTarget"
)

// TransitionTarget is a tagged variant describing where a handoff
// transfers control. Value carries agent ids (AgentTarget,
// RandomAgentTarget), a group manager or nested-chat grouping id
// (GroupChatTarget, NestedChatTarget), or nothing for the simple
// variants.
type TransitionTarget struct {
	TargetType TargetType `json:"targetType"`
	Value      []string   `json:"value,omitempty"`
}

// Validate checks the variant-specific arity rules.
func (t *TransitionTarget) Validate() error {
	switch t.TargetType {
	case AgentTarget:
		if len(t.Value) != 1 {
			return fmt.Errorf("AgentTarget requires exactly one agent id, got %d", len(t.Value))
		}
	case RandomAgentTarget:
		if len(t.Value) < 2 {
			return fmt.Errorf("RandomAgentTarget requires at least two agent ids, got %d", len(t.Value))
		}
	case GroupChatTarget, NestedChatTarget:
		if len(t.Value) < 1 {
			return fmt.Errorf("%s requires at least one id", t.TargetType)
		}
	case AskUserTarget, GroupManagerTarget, RevertToUserTarget, StayTarget, TerminateTarget:
		if len(t.Value) != 0 {
			return fmt.Errorf("%s does not take a value", t.TargetType)
		}
	case "":
		return fmt.Errorf("transition target type is required")
	default:
		return fmt.Errorf("unknown transition target type %q", t.TargetType)
	}
	return nil
}

// NewAgentTarget builds an AgentTarget for the given agent id.
func NewAgentTarget(agentID string) *TransitionTarget {
	return &TransitionTarget{TargetType: AgentTarget, Value: []string{agentID}}
}

// NewNestedChatTarget builds a NestedChatTarget over the given nested
// chat message ids.
func NewNestedChatTarget(ids []string) *TransitionTarget {
	return &TransitionTarget{TargetType: NestedChatTarget, Value: ids}
}
