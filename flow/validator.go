//
// Waldiez is pleased to support the open source community by making waldiez-go available.
//
// Copyright (C) 2025 Waldiez.  All rights reserved.
//
// waldiez-go is licensed under the Apache License Version 2.0.
//
package flow

import (
	"fmt"

	"github.com/waldiez/waldiez-go/agent"
)

// Validate runs the full validation pipeline: per-entity validation,
// cross-entity structural checks, group resolution, handoff synthesis,
// and (for async flows) chat-id assignment. Any violation fails the
// whole flow; there is no partial validation.
func (f *Flow) Validate() error {
	if f.ID == "" {
		return fmt.Errorf("flow id is required")
	}
	if f.Name == "" {
		return fmt.Errorf("flow %s: name is required", f.ID)
	}
	if err := f.validateEntities(); err != nil {
		return fmt.Errorf("flow %s: %w", f.ID, err)
	}
	if err := f.validateStructure(); err != nil {
		return fmt.Errorf("flow %s: %w", f.ID, err)
	}
	if err := f.resolveGroups(); err != nil {
		return fmt.Errorf("flow %s: %w", f.ID, err)
	}
	if err := f.GatherHandoffs(); err != nil {
		return fmt.Errorf("flow %s: %w", f.ID, err)
	}
	if f.Data.IsAsync {
		if err := f.assignChatIDs(); err != nil {
			return fmt.Errorf("flow %s: %w", f.ID, err)
		}
	}
	return nil
}

// validateEntities runs each owned entity's own validator. Agents that
// arrive without a type take the one their partition implies.
func (f *Flow) validateEntities() error {
	for _, p := range f.Data.Agents.partitions() {
		for _, a := range p.agents {
			if a.AgentType == "" {
				a.AgentType = p.kind
			}
			if err := a.Validate(); err != nil {
				return fmt.Errorf("validate agents: %w", err)
			}
		}
	}
	for _, m := range f.Data.Models {
		if err := m.Validate(); err != nil {
			return fmt.Errorf("validate models: %w", err)
		}
	}
	for _, t := range f.Data.Tools {
		if err := t.Validate(); err != nil {
			return fmt.Errorf("validate tools: %w", err)
		}
	}
	for _, c := range f.Data.Chats {
		if err := c.Validate(); err != nil {
			return fmt.Errorf("validate chats: %w", err)
		}
	}
	return nil
}

// validateStructure performs the cross-entity checks in a fixed order,
// failing fast on the first violation.
func (f *Flow) validateStructure() error {
	agents := f.Data.Agents.All()
	if len(agents) == 0 {
		return fmt.Errorf("flow has no agents")
	}
	agentIDs := make(map[string]bool, len(agents))
	for _, a := range agents {
		if agentIDs[a.ID] {
			return fmt.Errorf("duplicate agent id %s", a.ID)
		}
		agentIDs[a.ID] = true
	}

	if f.SingleAgentMode() {
		if agents[0].AgentType == agent.TypeGroupManager {
			return fmt.Errorf("a single-agent flow cannot consist of a group manager")
		}
	} else if !f.GroupChatMode() && len(f.mainSequence()) == 0 {
		return fmt.Errorf("flow has no ordered chats")
	}

	modelIDs := make(map[string]bool, len(f.Data.Models))
	for _, m := range f.Data.Models {
		if modelIDs[m.ID] {
			return fmt.Errorf("duplicate model id %s", m.ID)
		}
		modelIDs[m.ID] = true
	}
	toolIDs := make(map[string]bool, len(f.Data.Tools))
	for _, t := range f.Data.Tools {
		if toolIDs[t.ID] {
			return fmt.Errorf("duplicate tool id %s", t.ID)
		}
		toolIDs[t.ID] = true
	}

	for _, a := range agents {
		if err := validateAgentRefs(a, agentIDs, modelIDs, toolIDs); err != nil {
			return err
		}
	}

	for _, c := range f.Data.Chats {
		if !agentIDs[c.EffectiveSource()] {
			return fmt.Errorf("chat %s: source agent %s not found in flow", c.ID, c.EffectiveSource())
		}
		if !agentIDs[c.EffectiveTarget()] {
			return fmt.Errorf("chat %s: target agent %s not found in flow", c.ID, c.EffectiveTarget())
		}
	}

	for _, gm := range f.Data.Agents.GroupManagerAgents {
		if err := f.validateGroupManager(gm, agentIDs); err != nil {
			return err
		}
	}

	if !f.SingleAgentMode() {
		if err := f.validateConnectivity(); err != nil {
			return err
		}
	}
	return nil
}

// validateAgentRefs checks that every id an agent links to resolves in
// the flow's entity sets.
func validateAgentRefs(a *agent.Agent, agentIDs, modelIDs, toolIDs map[string]bool) error {
	for _, id := range a.Data.ModelIDs {
		if !modelIDs[id] {
			return fmt.Errorf("agent %s: model %s not found in flow", a.ID, id)
		}
	}
	for _, ref := range a.Data.Tools {
		if !toolIDs[ref.ID] {
			return fmt.Errorf("agent %s: tool %s not found in flow", a.ID, ref.ID)
		}
		if ref.ExecutorID != "" && !agentIDs[ref.ExecutorID] {
			return fmt.Errorf("agent %s: tool executor %s not found in flow", a.ID, ref.ExecutorID)
		}
	}
	if cfg := a.Data.CodeExecutionConfig; cfg.Enabled() {
		for _, id := range cfg.Functions {
			if !toolIDs[id] {
				return fmt.Errorf("agent %s: code execution function %s not found in flow", a.ID, id)
			}
		}
	}
	return nil
}

// validateGroupManager checks the manager's initial agent and group
// membership, plus its transition map when in transition mode.
func (f *Flow) validateGroupManager(gm *agent.Agent, agentIDs map[string]bool) error {
	if gm.Data.InitialAgentID == "" {
		return fmt.Errorf("group manager %s: initial agent id is required", gm.ID)
	}
	if !agentIDs[gm.Data.InitialAgentID] {
		return fmt.Errorf("group manager %s: initial agent %s not found in flow", gm.ID, gm.Data.InitialAgentID)
	}
	if len(f.groupMembers(gm.ID)) == 0 {
		return fmt.Errorf("group manager %s: group has no members", gm.ID)
	}
	if gm.Data.Speakers != nil {
		if err := gm.Data.Speakers.ValidateTransitions(agentIDs); err != nil {
			return fmt.Errorf("group manager %s: %w", gm.ID, err)
		}
	}
	return nil
}

// validateConnectivity requires every non-group-member agent to appear
// as source or target of at least one chat.
func (f *Flow) validateConnectivity() error {
	connected := make(map[string]bool)
	for _, c := range f.Data.Chats {
		connected[c.EffectiveSource()] = true
		connected[c.EffectiveTarget()] = true
	}
	for _, a := range f.Data.Agents.All() {
		if a.IsGroupMember() || a.AgentType == agent.TypeGroupManager {
			continue
		}
		if !connected[a.ID] {
			return fmt.Errorf("agent %s is not connected to any chat", a.ID)
		}
	}
	return nil
}

// groupMembers returns the agents whose parent is the given manager,
// in declaration order.
func (f *Flow) groupMembers(managerID string) []*agent.Agent {
	var members []*agent.Agent
	for _, a := range f.Data.Agents.All() {
		if a.Data.ParentID != nil && *a.Data.ParentID == managerID {
			members = append(members, a)
		}
	}
	return members
}

// resolveGroups records each manager's member order. Round-robin
// selection honors the manager's explicit order list; the initial
// agent always speaks first.
func (f *Flow) resolveGroups() error {
	for _, gm := range f.Data.Agents.GroupManagerAgents {
		members := f.groupMembers(gm.ID)
		order := make([]string, 0, len(members))
		for _, m := range members {
			order = append(order, m.ID)
		}
		if gm.Data.Speakers != nil && gm.Data.Speakers.SelectionMethod == agent.SelectionRoundRobin {
			order = applyExplicitOrder(order, gm.Data.Speakers.Order)
		}
		order = moveToFront(order, gm.Data.InitialAgentID)
		gm.SetGroupOrder(order)
	}
	return nil
}

// applyExplicitOrder reorders ids to follow the explicit list, keeping
// unlisted ids in their original relative order at the end.
func applyExplicitOrder(ids, explicit []string) []string {
	present := make(map[string]bool, len(ids))
	for _, id := range ids {
		present[id] = true
	}
	out := make([]string, 0, len(ids))
	picked := make(map[string]bool, len(ids))
	for _, id := range explicit {
		if present[id] && !picked[id] {
			out = append(out, id)
			picked[id] = true
		}
	}
	for _, id := range ids {
		if !picked[id] {
			out = append(out, id)
		}
	}
	return out
}

// moveToFront moves id to the head of ids when present.
func moveToFront(ids []string, id string) []string {
	for i, v := range ids {
		if v == id {
			out := make([]string, 0, len(ids))
			out = append(out, id)
			out = append(out, ids[:i]...)
			out = append(out, ids[i+1:]...)
			return out
		}
	}
	return ids
}

// assignChatIDs gives every chat a dense integer id in declaration
// order and resolves string prerequisites to those ids. Async flows
// need both to queue chats.
func (f *Flow) assignChatIDs() error {
	idOf := make(map[string]int, len(f.Data.Chats))
	for i, c := range f.Data.Chats {
		if err := c.SetChatID(i); err != nil {
			return err
		}
		idOf[c.ID] = i
	}
	for _, c := range f.Data.Chats {
		if len(c.Data.Prerequisites) == 0 {
			continue
		}
		ids := make([]int, 0, len(c.Data.Prerequisites))
		for _, pre := range c.Data.Prerequisites {
			id, ok := idOf[pre]
			if !ok {
				return fmt.Errorf("chat %s: prerequisite chat %s not found in flow", c.ID, pre)
			}
			ids = append(ids, id)
		}
		c.SetPrerequisites(ids)
	}
	return nil
}
