//
// Waldiez is pleased to support the open source community by making waldiez-go available.
//
// Copyright (C) 2025 Waldiez.  All rights reserved.
//
// waldiez-go is licensed under the Apache License Version 2.0.
//

// Package flow holds the aggregate root of a multi-agent conversation
// graph. A flow carries the agents (partitioned by variant on the
// wire), the models and tools they reference, and the chat edges
// connecting them. Flow validation performs every cross-entity check
// the per-entity validators cannot: id uniqueness, reference
// resolution, group membership, and main-sequence ordering. It also
// resolves derived state on the entities it owns: per-agent handoff
// lists, group speaker orders, and (for async flows) dense chat ids.
package flow

import (
	"time"

	"github.com/waldiez/waldiez-go/agent"
	"github.com/waldiez/waldiez-go/chat"
	"github.com/waldiez/waldiez-go/model"
	"github.com/waldiez/waldiez-go/tool"
)

// Agents partitions the flow's agents by variant, matching the wire
// format's named arrays.
type Agents struct {
	UserProxyAgents    []*agent.Agent `json:"userProxyAgents,omitempty"`
	AssistantAgents    []*agent.Agent `json:"assistantAgents,omitempty"`
	RAGUserProxyAgents []*agent.Agent `json:"ragUserProxyAgents,omitempty"`
	ReasoningAgents    []*agent.Agent `json:"reasoningAgents,omitempty"`
	CaptainAgents      []*agent.Agent `json:"captainAgents,omitempty"`
	GroupManagerAgents []*agent.Agent `json:"groupManagerAgents,omitempty"`
	DocAgents          []*agent.Agent `json:"docAgents,omitempty"`
	RemoteAgents       []*agent.Agent `json:"remoteAgents,omitempty"`
}

// partitions returns each variant array with the type it implies when
// an agent arrives without one.
func (a *Agents) partitions() []struct {
	agents []*agent.Agent
	kind   agent.Type
} {
	return []struct {
		agents []*agent.Agent
		kind   agent.Type
	}{
		{a.UserProxyAgents, agent.TypeUserProxy},
		{a.AssistantAgents, agent.TypeAssistant},
		{a.RAGUserProxyAgents, agent.TypeRAGUserProxy},
		{a.ReasoningAgents, agent.TypeReasoning},
		{a.CaptainAgents, agent.TypeCaptain},
		{a.GroupManagerAgents, agent.TypeGroupManager},
		{a.DocAgents, agent.TypeDocAgent},
		{a.RemoteAgents, agent.TypeRemote},
	}
}

// All returns every agent in partition order.
func (a *Agents) All() []*agent.Agent {
	var out []*agent.Agent
	for _, p := range a.partitions() {
		out = append(out, p.agents...)
	}
	return out
}

// Data is the flow's payload.
type Data struct {
	Agents Agents         `json:"agents"`
	Models []*model.Model `json:"models,omitempty"`
	Tools  []*tool.Tool   `json:"tools,omitempty"`
	Chats  []*chat.Chat   `json:"chats,omitempty"`
	// IsAsync switches the generated flow to async chat queueing, which
	// requires dense chat ids and integer prerequisites.
	IsAsync   bool `json:"isAsync,omitempty"`
	CacheSeed *int `json:"cacheSeed,omitempty"`
}

// Flow is the aggregate root of a conversation graph.
type Flow struct {
	ID           string    `json:"id"`
	Type         string    `json:"type,omitempty"`
	StorageID    string    `json:"storageId,omitempty"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	Tags         []string  `json:"tags,omitempty"`
	Requirements []string  `json:"requirements,omitempty"`
	CreatedAt    time.Time `json:"createdAt,omitempty"`
	UpdatedAt    time.Time `json:"updatedAt,omitempty"`
	Data         Data      `json:"data"`
}

// Link is one resolved step of the main execution sequence.
type Link struct {
	Source *agent.Agent
	Target *agent.Agent
	Chat   *chat.Chat
}

// AgentByID returns the agent with the given id, nil when absent.
func (f *Flow) AgentByID(id string) *agent.Agent {
	for _, a := range f.Data.Agents.All() {
		if a.ID == id {
			return a
		}
	}
	return nil
}

// ModelByID returns the model with the given id, nil when absent.
func (f *Flow) ModelByID(id string) *model.Model {
	for _, m := range f.Data.Models {
		if m.ID == id {
			return m
		}
	}
	return nil
}

// ToolByID returns the tool with the given id, nil when absent.
func (f *Flow) ToolByID(id string) *tool.Tool {
	for _, t := range f.Data.Tools {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// ChatByID returns the chat with the given id, nil when absent.
func (f *Flow) ChatByID(id string) *chat.Chat {
	for _, c := range f.Data.Chats {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// SingleAgentMode reports whether the flow has exactly one agent.
func (f *Flow) SingleAgentMode() bool {
	return len(f.Data.Agents.All()) == 1
}

// GroupChatMode reports whether the flow contains a group manager.
func (f *Flow) GroupChatMode() bool {
	return len(f.Data.Agents.GroupManagerAgents) > 0
}
