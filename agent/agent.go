//
// Waldiez is pleased to support the open source community by making waldiez-go available.
//
// Copyright (C) 2025 Waldiez.  All rights reserved.
//
// waldiez-go is licensed under the Apache License Version 2.0.
//

// Package agent models the participant nodes of a flow. An agent is a
// typed record (user proxy, assistant, group manager, RAG user proxy,
// reasoning, captain, doc agent, remote) whose data payload carries the
// variant-specific configuration: system message, linked models and
// tools, termination policy, nested-chat triggers, handoff ids.
//
// Agents validate their own invariants at construction; cross-entity
// reference checks and handoff resolution happen at flow level, which
// populates the resolved sidecar state exactly once.
package agent

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/waldiez/waldiez-go/handoff"
	"github.com/waldiez/waldiez-go/internal/normalize"
)

// Type enumerates the agent variants.
type Type string

// Agent variants. TypeSwarm is deprecated and normalized to
// TypeAssistant on input.
const (
	TypeUserProxy    Type = "user_proxy"
	TypeAssistant    Type = "assistant"
	TypeGroupManager Type = "group_manager"
	TypeRAGUserProxy Type = "rag_user_proxy"
	TypeReasoning    Type = "reasoning"
	TypeCaptain      Type = "captain"
	TypeDocAgent     Type = "doc_agent"
	TypeRemote       Type = "remote"
	TypeSwarm        Type = "swarm"
)

// deprecatedAliases maps legacy type spellings to current variants.
var deprecatedAliases = map[Type]Type{
	"user":            TypeUserProxy,
	"rag_user":        TypeRAGUserProxy,
	"manager":         TypeGroupManager,
	TypeSwarm:         TypeAssistant,
	"swarm_agent":     TypeAssistant,
	"reasoning_agent": TypeReasoning,
}

var validTypes = map[Type]bool{
	TypeUserProxy: true, TypeAssistant: true, TypeGroupManager: true,
	TypeRAGUserProxy: true, TypeReasoning: true, TypeCaptain: true,
	TypeDocAgent: true, TypeRemote: true,
}

// ToolRef links an agent to a tool and names the agent executing it.
type ToolRef struct {
	ID         string `json:"id"`
	ExecutorID string `json:"executorId,omitempty"`
}

// CodeExecution configures local code execution for an agent. The wire
// value may also be the literal false, which disables execution.
type CodeExecution struct {
	WorkDir       string   `json:"workDir,omitempty"`
	UseDocker     *bool    `json:"useDocker,omitempty"`
	Timeout       *float64 `json:"timeout,omitempty"`
	LastNMessages *int     `json:"lastNMessages,omitempty"`
	// Functions are tool ids exposed to the executor.
	Functions []string `json:"functions,omitempty"`

	disabled bool
}

// Enabled reports whether code execution is active.
func (c *CodeExecution) Enabled() bool {
	return c != nil && !c.disabled
}

// UnmarshalJSON accepts either a config object or the literal false.
func (c *CodeExecution) UnmarshalJSON(data []byte) error {
	var flag bool
	if err := json.Unmarshal(data, &flag); err == nil {
		*c = CodeExecution{disabled: !flag}
		return nil
	}
	type plain CodeExecution
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*c = CodeExecution(p)
	return nil
}

// Data is the agent's payload. Variant-specific blocks are pointers
// and only set for the matching agent type.
type Data struct {
	SystemMessage           string           `json:"systemMessage,omitempty"`
	HumanInputMode          string           `json:"humanInputMode,omitempty"`
	CodeExecutionConfig     *CodeExecution   `json:"codeExecutionConfig,omitempty"`
	AgentDefaultAutoReply   string           `json:"agentDefaultAutoReply,omitempty"`
	MaxConsecutiveAutoReply *int             `json:"maxConsecutiveAutoReply,omitempty"`
	Termination             Termination      `json:"termination,omitempty"`
	ModelIDs                []string         `json:"modelIds,omitempty"`
	Tools                   []ToolRef        `json:"tools,omitempty"`
	NestedChats             []NestedChatSpec `json:"nestedChats,omitempty"`
	ContextVariables        map[string]any   `json:"contextVariables,omitempty"`

	// UpdateAgentStateBeforeReply runs before each reply to refresh
	// the system message.
	UpdateAgentStateBeforeReply []UpdateSystemMessage `json:"updateAgentStateBeforeReply,omitempty"`

	// Handoffs are transition ids: chat ids plus the nested-chat
	// sentinel. The flow resolver rewrites this list during handoff
	// synthesis.
	Handoffs []string `json:"handoffs,omitempty"`

	// ParentID links a group member to its group manager.
	ParentID *string `json:"parentId,omitempty"`

	// AfterWork is the transition taken when the agent finishes.
	AfterWork *handoff.TransitionTarget `json:"afterWork,omitempty"`

	// Variant blocks.
	RetrieveConfig *RetrieveConfig  `json:"retrieveConfig,omitempty"`
	ReasonConfig   *ReasoningConfig `json:"reasonConfig,omitempty"`
	Verbose        *bool            `json:"verbose,omitempty"`

	// Captain fields.
	AgentLib string `json:"agentLib,omitempty"`
	ToolLib  string `json:"toolLib,omitempty"`
	MaxRound *int   `json:"maxRound,omitempty"`
	MaxTurns *int   `json:"maxTurns,omitempty"`

	// Doc agent fields.
	CollectionName  string       `json:"collectionName,omitempty"`
	ResetCollection bool         `json:"resetCollection,omitempty"`
	ParsedDocsPath  string       `json:"parsedDocsPath,omitempty"`
	QueryEngine     *QueryEngine `json:"queryEngine,omitempty"`

	// Group manager fields.
	AdminName      string    `json:"adminName,omitempty"`
	InitialAgentID string    `json:"initialAgentId,omitempty"`
	GroupName      string    `json:"groupName,omitempty"`
	Speakers       *Speakers `json:"speakers,omitempty"`

	// Remote agent fields.
	URL string `json:"url,omitempty"`
}

// Agent is a participant node in the flow graph.
type Agent struct {
	ID           string    `json:"id"`
	AgentType    Type      `json:"agentType"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	Tags         []string  `json:"tags,omitempty"`
	Requirements []string  `json:"requirements,omitempty"`
	CreatedAt    time.Time `json:"createdAt,omitempty"`
	UpdatedAt    time.Time `json:"updatedAt,omitempty"`
	Data         Data      `json:"data"`

	resolved resolvedState
}

// resolvedState is the derived sidecar populated by flow resolution.
type resolvedState struct {
	handoffsGathered bool
	handoffs         []*handoff.Handoff
	groupOrderSet    bool
	groupOrder       []string
}

// Validate checks the agent's own invariants: a known type, required
// fields, and every embedded snippet's signature contract. Context
// variables are normalized in place.
func (a *Agent) Validate() error {
	if a.ID == "" {
		return fmt.Errorf("agent id is required")
	}
	if alias, ok := deprecatedAliases[a.AgentType]; ok {
		a.AgentType = alias
	}
	if !validTypes[a.AgentType] {
		return fmt.Errorf("agent %s: unknown agent type %q", a.ID, a.AgentType)
	}
	if a.Name == "" {
		return fmt.Errorf("agent %s: name is required", a.ID)
	}
	if err := a.Data.Termination.Validate(); err != nil {
		return fmt.Errorf("agent %s: %w", a.ID, err)
	}
	for i := range a.Data.UpdateAgentStateBeforeReply {
		if err := a.Data.UpdateAgentStateBeforeReply[i].Validate(); err != nil {
			return fmt.Errorf("agent %s: %w", a.ID, err)
		}
	}
	for i := range a.Data.NestedChats {
		if err := a.Data.NestedChats[i].Validate(); err != nil {
			return fmt.Errorf("agent %s: %w", a.ID, err)
		}
	}
	if a.Data.AfterWork != nil {
		if err := a.Data.AfterWork.Validate(); err != nil {
			return fmt.Errorf("agent %s: after work: %w", a.ID, err)
		}
	}
	if err := a.validateVariant(); err != nil {
		return fmt.Errorf("agent %s: %w", a.ID, err)
	}
	a.Data.ContextVariables = normalize.Values(a.Data.ContextVariables)
	return nil
}

func (a *Agent) validateVariant() error {
	switch a.AgentType {
	case TypeRAGUserProxy:
		if a.Data.RetrieveConfig == nil {
			a.Data.RetrieveConfig = &RetrieveConfig{}
		}
		return a.Data.RetrieveConfig.Validate()
	case TypeReasoning:
		if a.Data.ReasonConfig == nil {
			a.Data.ReasonConfig = &ReasoningConfig{}
		}
		return a.Data.ReasonConfig.Validate()
	case TypeGroupManager:
		if a.Data.Speakers == nil {
			a.Data.Speakers = &Speakers{}
		}
		return a.Data.Speakers.Validate()
	case TypeDocAgent:
		if a.Data.CollectionName == "" {
			a.Data.CollectionName = DefaultCollectionName
		}
		if a.Data.QueryEngine != nil {
			return a.Data.QueryEngine.Validate()
		}
		return nil
	case TypeRemote:
		if a.Data.URL == "" {
			return fmt.Errorf("remote agents require a url")
		}
		return nil
	default:
		return nil
	}
}

// IsGroupMember reports whether the agent belongs to a group.
func (a *Agent) IsGroupMember() bool {
	return a.Data.ParentID != nil && *a.Data.ParentID != ""
}

// SetHandoffs records the resolved handoff list. The resolver runs
// exactly once per agent; a second call is rejected so stale results
// cannot be silently overwritten.
func (a *Agent) SetHandoffs(handoffs []*handoff.Handoff) error {
	if a.resolved.handoffsGathered {
		return fmt.Errorf("agent %s: handoffs already gathered", a.ID)
	}
	a.resolved.handoffs = handoffs
	a.resolved.handoffsGathered = true
	return nil
}

// HandoffsGathered reports whether handoff resolution ran.
func (a *Agent) HandoffsGathered() bool {
	return a.resolved.handoffsGathered
}

// Handoffs returns the resolved handoff list. Empty until the flow
// resolver ran.
func (a *Agent) Handoffs() []*handoff.Handoff {
	return a.resolved.handoffs
}

// SetGroupOrder records the resolved member order for a group manager.
func (a *Agent) SetGroupOrder(order []string) {
	a.resolved.groupOrder = order
	a.resolved.groupOrderSet = true
}

// GroupOrder returns the resolved member order. It errors until flow
// resolution has run; the order is only meaningful afterwards.
func (a *Agent) GroupOrder() ([]string, error) {
	if !a.resolved.groupOrderSet {
		return nil, fmt.Errorf("agent %s: group order not resolved yet", a.ID)
	}
	return a.resolved.groupOrder, nil
}
