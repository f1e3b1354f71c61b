//
// Waldiez is pleased to support the open source community by making waldiez-go available.
//
// Copyright (C) 2025 Waldiez.  All rights reserved.
//
// waldiez-go is licensed under the Apache License Version 2.0.
//
package handoff

import "fmt"

// ConditionType discriminates the handoff condition variants.
type ConditionType string

// Condition variants. The two LLM variants carry a prompt (literal or
// context-variable backed) to be judged by the model; the two context
// variants are evaluated against the workflow's context variables.
const (
	StringLLMCondition         ConditionType = "string_llm"
	ContextStrLLMCondition     ConditionType = "context_str_llm"
	StringContextCondition     ConditionType = "string_context"
	ExpressionContextCondition ConditionType = "expression_context"
)

// Condition gates a handoff. An empty condition is treated as always
// true by the resolver.
type Condition struct {
	ConditionType ConditionType  `json:"conditionType"`
	// Prompt is the literal LLM prompt (string_llm).
	Prompt string `json:"prompt,omitempty"`
	// ContextStr names the context variable holding the prompt
	// (context_str_llm).
	ContextStr string `json:"contextStr,omitempty"`
	// VariableName names the boolean context variable to test
	// (string_context).
	VariableName string `json:"variableName,omitempty"`
	// Expression is a boolean expression over context variables
	// (expression_context).
	Expression string `json:"expression,omitempty"`
	// Data is an arbitrary payload passed through to the runtime.
	Data map[string]any `json:"data,omitempty"`
}

// IsEmpty reports whether the condition carries no payload, in which
// case it is treated as always true.
func (c *Condition) IsEmpty() bool {
	if c == nil {
		return true
	}
	switch c.ConditionType {
	case StringLLMCondition:
		return c.Prompt == ""
	case ContextStrLLMCondition:
		return c.ContextStr == ""
	case StringContextCondition:
		return c.VariableName == ""
	case ExpressionContextCondition:
		return c.Expression == ""
	default:
		return true
	}
}

// Validate checks the discriminator and that a non-empty condition
// carries the payload its variant requires.
func (c *Condition) Validate() error {
	switch c.ConditionType {
	case StringLLMCondition, ContextStrLLMCondition, StringContextCondition, ExpressionContextCondition, "":
		return nil
	default:
		return fmt.Errorf("unknown condition type %q", c.ConditionType)
	}
}

// AvailabilityType discriminates the availability gate variants.
type AvailabilityType string

// Availability variants: no gate, a named boolean context variable, or
// a boolean expression over context variables.
const (
	AvailabilityNone       AvailabilityType = "none"
	AvailabilityString     AvailabilityType = "string"
	AvailabilityExpression AvailabilityType = "expression"
)

// Availability gates whether a handoff is currently eligible.
type Availability struct {
	Type  AvailabilityType `json:"type"`
	Value string           `json:"value,omitempty"`
}

// IsEmpty reports whether the gate is absent.
func (a *Availability) IsEmpty() bool {
	return a == nil || a.Type == "" || a.Type == AvailabilityNone || a.Value == ""
}

// Validate checks the discriminator and payload pairing.
func (a *Availability) Validate() error {
	switch a.Type {
	case "", AvailabilityNone:
		return nil
	case AvailabilityString, AvailabilityExpression:
		if a.Value == "" {
			return fmt.Errorf("availability of type %q requires a value", a.Type)
		}
		return nil
	default:
		return fmt.Errorf("unknown availability type %q", a.Type)
	}
}
