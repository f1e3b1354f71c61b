//
// Waldiez is pleased to support the open source community by making waldiez-go available.
//
// Copyright (C) 2025 Waldiez.  All rights reserved.
//
// waldiez-go is licensed under the Apache License Version 2.0.
//
package handoff

import "fmt"

// Handoff couples a transition target with the condition under which
// the transfer applies and an availability gate. Agents hold resolved
// handoff lists; chat edges produce the equivalent via AsHandoff.
type Handoff struct {
	Target    *TransitionTarget `json:"target"`
	Condition *Condition        `json:"condition,omitempty"`
	Available *Availability     `json:"available,omitempty"`
}

// Validate checks the target and both gates.
func (h *Handoff) Validate() error {
	if h.Target == nil {
		return fmt.Errorf("handoff target is required")
	}
	if err := h.Target.Validate(); err != nil {
		return fmt.Errorf("handoff target: %w", err)
	}
	if h.Condition != nil {
		if err := h.Condition.Validate(); err != nil {
			return fmt.Errorf("handoff condition: %w", err)
		}
	}
	if h.Available != nil {
		if err := h.Available.Validate(); err != nil {
			return fmt.Errorf("handoff availability: %w", err)
		}
	}
	return nil
}
