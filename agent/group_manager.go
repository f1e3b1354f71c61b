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
	"fmt"

	"github.com/waldiez/waldiez-go/internal/pycode"
)

// SelectionMethod enumerates how a group manager picks the next
// speaker.
type SelectionMethod string

// Speaker selection methods.
const (
	SelectionAuto       SelectionMethod = "auto"
	SelectionManual     SelectionMethod = "manual"
	SelectionRandom     SelectionMethod = "random"
	SelectionRoundRobin SelectionMethod = "round_robin"
	SelectionDefault    SelectionMethod = "default"
	SelectionCustom     SelectionMethod = "custom"
)

// SpeakerSelectionFunctionName is the expected snippet function name
// for custom speaker selection.
const SpeakerSelectionFunctionName = "custom_speaker_selection"

// SpeakerSelectionFunctionArgs is the expected snippet signature.
var SpeakerSelectionFunctionArgs = []string{"last_speaker", "groupchat"}

// AllowRepeat is either a blanket boolean or an explicit agent-id
// allowlist on the wire.
type AllowRepeat struct {
	// Flag is set when the wire value was a boolean.
	Flag *bool
	// AgentIDs is set when the wire value was an id list.
	AgentIDs []string
}

// UnmarshalJSON accepts both the boolean and the list form.
func (a *AllowRepeat) UnmarshalJSON(data []byte) error {
	var flag bool
	if err := json.Unmarshal(data, &flag); err == nil {
		a.Flag = &flag
		a.AgentIDs = nil
		return nil
	}
	var ids []string
	if err := json.Unmarshal(data, &ids); err == nil {
		a.Flag = nil
		a.AgentIDs = ids
		return nil
	}
	return fmt.Errorf("allowRepeat must be a boolean or a list of agent ids")
}

// MarshalJSON emits the original form.
func (a AllowRepeat) MarshalJSON() ([]byte, error) {
	if a.Flag != nil {
		return json.Marshal(*a.Flag)
	}
	return json.Marshal(a.AgentIDs)
}

// Speakers configures a group manager's next-speaker arbitration.
type Speakers struct {
	// SelectionMethod picks the arbitration strategy.
	SelectionMethod SelectionMethod `json:"selectionMethod,omitempty"`
	// SelectionCustomMethod is the snippet source for custom method.
	SelectionCustomMethod string `json:"selectionCustomMethod,omitempty"`
	// MaxRetriesForSelecting bounds reprompting on invalid selections.
	MaxRetriesForSelecting *int `json:"maxRetriesForSelecting,omitempty"`
	// SelectionMode is "repeat" or "transition".
	SelectionMode string `json:"selectionMode,omitempty"`
	// AllowRepeat applies in repeat mode.
	AllowRepeat *AllowRepeat `json:"allowRepeat,omitempty"`
	// AllowedOrDisallowedTransitions is the adjacency map for
	// transition mode.
	AllowedOrDisallowedTransitions map[string][]string `json:"allowedOrDisallowedTransitions,omitempty"`
	// TransitionsType says whether the map lists allowed or disallowed
	// transitions.
	TransitionsType string `json:"transitionsType,omitempty"`
	// Order is the explicit speaker order for round_robin.
	Order []string `json:"order,omitempty"`

	selectionBody string
}

// Validate applies defaults and checks the custom-selection snippet.
func (s *Speakers) Validate() error {
	if s.SelectionMethod == "" {
		s.SelectionMethod = SelectionAuto
	}
	switch s.SelectionMethod {
	case SelectionAuto, SelectionManual, SelectionRandom,
		SelectionRoundRobin, SelectionDefault:
	case SelectionCustom:
		if s.SelectionCustomMethod == "" {
			return fmt.Errorf("custom speaker selection requires content")
		}
		ok, result := pycode.CheckFunction(
			s.SelectionCustomMethod, SpeakerSelectionFunctionName, SpeakerSelectionFunctionArgs,
		)
		if !ok {
			return fmt.Errorf("invalid speaker selection: %s", result)
		}
		s.selectionBody = result
	default:
		return fmt.Errorf("unknown speaker selection method %q", s.SelectionMethod)
	}

	if s.SelectionMode == "" {
		s.SelectionMode = "repeat"
	}
	switch s.SelectionMode {
	case "repeat", "transition":
	default:
		return fmt.Errorf("unknown selection mode %q", s.SelectionMode)
	}
	if s.TransitionsType == "" {
		s.TransitionsType = "allowed"
	}
	switch s.TransitionsType {
	case "allowed", "disallowed":
	default:
		return fmt.Errorf("unknown transitions type %q", s.TransitionsType)
	}
	return nil
}

// ValidateTransitions checks that every agent id referenced by the
// repeat allowlist and the transition adjacency map resolves within
// agentIDs. It only applies in transition mode.
func (s *Speakers) ValidateTransitions(agentIDs map[string]bool) error {
	if s.SelectionMode != "transition" {
		return nil
	}
	if s.AllowRepeat != nil {
		for _, id := range s.AllowRepeat.AgentIDs {
			if !agentIDs[id] {
				return fmt.Errorf("allow-repeat agent %s not found in flow", id)
			}
		}
	}
	for from, targets := range s.AllowedOrDisallowedTransitions {
		if !agentIDs[from] {
			return fmt.Errorf("transition source agent %s not found in flow", from)
		}
		for _, to := range targets {
			if !agentIDs[to] {
				return fmt.Errorf("transition target agent %s not found in flow", to)
			}
		}
	}
	return nil
}

// GetCustomSpeakerSelectionFunction re-emits the custom selection
// snippet under a synthesized name.
func (s *Speakers) GetCustomSpeakerSelectionFunction(namePrefix, nameSuffix string) (string, string) {
	name := pycode.FunctionName(namePrefix, SpeakerSelectionFunctionName, nameSuffix)
	if s.SelectionMethod != SelectionCustom || s.selectionBody == "" {
		return "", name
	}
	code := pycode.GenerateFunction(
		name,
		SpeakerSelectionFunctionArgs,
		[]string{"ConversableAgent", "GroupChat"},
		"Union[ConversableAgent, str, None]",
		s.selectionBody,
	)
	return code, name
}
