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
)

func TestSpeakersValidateDefaults(t *testing.T) {
	s := &Speakers{}
	require.NoError(t, s.Validate())
	assert.Equal(t, SelectionAuto, s.SelectionMethod)
	assert.Equal(t, "repeat", s.SelectionMode)
	assert.Equal(t, "allowed", s.TransitionsType)
}

func TestSpeakersCustomSelection(t *testing.T) {
	s := &Speakers{
		SelectionMethod: SelectionCustom,
		SelectionCustomMethod: "def custom_speaker_selection(last_speaker, groupchat):\n" +
			"    return None\n",
	}
	require.NoError(t, s.Validate())
	code, name := s.GetCustomSpeakerSelectionFunction("wa", "gm")
	assert.Equal(t, "wa_custom_speaker_selection_gm", name)
	assert.Contains(t, code, "last_speaker: ConversableAgent,")
	assert.Contains(t, code, "groupchat: GroupChat,")
	assert.Contains(t, code, ") -> Union[ConversableAgent, str, None]:")
	assert.Contains(t, code, "return None")
}

func TestSpeakersCustomSelectionMissingContent(t *testing.T) {
	s := &Speakers{SelectionMethod: SelectionCustom}
	assert.Error(t, s.Validate())
}

func TestSpeakersNonCustomEmitsNoFunction(t *testing.T) {
	s := &Speakers{SelectionMethod: SelectionRoundRobin}
	require.NoError(t, s.Validate())
	code, _ := s.GetCustomSpeakerSelectionFunction("wa", "gm")
	assert.Empty(t, code)
}

func TestSpeakersValidateTransitions(t *testing.T) {
	agents := map[string]bool{"a1": true, "a2": true}

	s := &Speakers{
		SelectionMode:                  "transition",
		AllowedOrDisallowedTransitions: map[string][]string{"a1": {"a2"}},
	}
	assert.NoError(t, s.ValidateTransitions(agents))

	s.AllowedOrDisallowedTransitions = map[string][]string{"a1": {"ghost"}}
	assert.Error(t, s.ValidateTransitions(agents))

	s.AllowedOrDisallowedTransitions = map[string][]string{"ghost": {"a1"}}
	assert.Error(t, s.ValidateTransitions(agents))

	// Repeat mode skips the check entirely.
	s.SelectionMode = "repeat"
	assert.NoError(t, s.ValidateTransitions(agents))
}

func TestAllowRepeatJSON(t *testing.T) {
	var a AllowRepeat
	require.NoError(t, json.Unmarshal([]byte(`true`), &a))
	require.NotNil(t, a.Flag)
	assert.True(t, *a.Flag)

	require.NoError(t, json.Unmarshal([]byte(`["a1", "a2"]`), &a))
	assert.Nil(t, a.Flag)
	assert.Equal(t, []string{"a1", "a2"}, a.AgentIDs)

	assert.Error(t, json.Unmarshal([]byte(`42`), &a))

	out, err := json.Marshal(AllowRepeat{AgentIDs: []string{"a1"}})
	require.NoError(t, err)
	assert.JSONEq(t, `["a1"]`, string(out))
}

func TestUpdateSystemMessage(t *testing.T) {
	u := &UpdateSystemMessage{Type: "string", Content: "Focus on {topic}."}
	require.NoError(t, u.Validate())
	code, _ := u.GetUpdateFunction("wa", "agent_1")
	assert.Empty(t, code)

	u = &UpdateSystemMessage{
		Type: "callable",
		Content: "def custom_update_system_message(agent, messages):\n" +
			"    return \"updated\"\n",
	}
	require.NoError(t, u.Validate())
	code, name := u.GetUpdateFunction("wa", "agent_1")
	assert.Equal(t, "wa_custom_update_system_message_agent_1", name)
	assert.Contains(t, code, `return "updated"`)

	assert.Error(t, (&UpdateSystemMessage{Type: "magic"}).Validate())
}

func TestReasoningConfigDefaults(t *testing.T) {
	r := &ReasoningConfig{}
	require.NoError(t, r.Validate())
	assert.Equal(t, "beam_search", r.Method)
	assert.Equal(t, "pool", r.AnswerApproach)

	assert.Error(t, (&ReasoningConfig{Method: "guess"}).Validate())
}
