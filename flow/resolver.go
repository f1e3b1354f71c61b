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
	"sort"

	"github.com/waldiez/waldiez-go/agent"
	"github.com/waldiez/waldiez-go/chat"
	"github.com/waldiez/waldiez-go/handoff"
)

// nestedChatSentinel marks a handoff-id entry that targets the agent's
// nested chat instead of a group chat edge.
const nestedChatSentinel = "nested-chat"

// mainSequence returns the chats forming the main conversation
// sequence: non-negative orders sorted ascending, or the single chat
// when no chat carries an order and exactly one exists.
func (f *Flow) mainSequence() []*chat.Chat {
	var ordered []*chat.Chat
	for _, c := range f.Data.Chats {
		if c.Order() >= 0 {
			ordered = append(ordered, c)
		}
	}
	if len(ordered) == 0 && len(f.Data.Chats) == 1 {
		return []*chat.Chat{f.Data.Chats[0]}
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Order() < ordered[j].Order()
	})
	return ordered
}

// OrderedFlow returns the resolved main execution sequence as
// source/target/chat links.
func (f *Flow) OrderedFlow() []Link {
	seq := f.mainSequence()
	links := make([]Link, 0, len(seq))
	for _, c := range seq {
		source := f.AgentByID(c.EffectiveSource())
		target := f.AgentByID(c.EffectiveTarget())
		if source == nil || target == nil {
			continue
		}
		links = append(links, Link{Source: source, Target: target, Chat: c})
	}
	return links
}

// GetGroupChatMembers returns the manager's group in resolved speaking
// order, or declaration order when resolution has not run.
func (f *Flow) GetGroupChatMembers(managerID string) []*agent.Agent {
	manager := f.AgentByID(managerID)
	if manager == nil || manager.AgentType != agent.TypeGroupManager {
		return nil
	}
	members := f.groupMembers(managerID)
	order, err := manager.GroupOrder()
	if err != nil {
		return members
	}
	byID := make(map[string]*agent.Agent, len(members))
	for _, m := range members {
		byID[m.ID] = m
	}
	out := make([]*agent.Agent, 0, len(members))
	for _, id := range order {
		if m, ok := byID[id]; ok {
			out = append(out, m)
		}
	}
	return out
}

// GetRootGroupManager returns the group manager that is not itself a
// member of another group.
func (f *Flow) GetRootGroupManager() (*agent.Agent, error) {
	for _, gm := range f.Data.Agents.GroupManagerAgents {
		if !gm.IsGroupMember() {
			return gm, nil
		}
	}
	return nil, fmt.Errorf("flow has no root group manager")
}

// GatherHandoffs computes every agent's effective outgoing handoff
// list. Group members combine their declared handoff ids with the ids
// implied by their outgoing chats; agents already resolved are left
// untouched, so the pass is idempotent.
func (f *Flow) GatherHandoffs() error {
	for _, a := range f.Data.Agents.All() {
		if a.HandoffsGathered() {
			continue
		}
		if !a.IsGroupMember() {
			if err := a.SetHandoffs(nil); err != nil {
				return err
			}
			continue
		}
		if err := f.gatherMemberHandoffs(a); err != nil {
			return fmt.Errorf("agent %s: %w", a.ID, err)
		}
	}
	return nil
}

// gatherMemberHandoffs resolves one group member's handoffs. Outgoing
// chats split into group chats (target inside a group) and nested
// chats (target outside); nested chats that have no declared spec get
// one synthesized, and the handoff-id list is rewritten to the
// surviving chat ids plus the nested-chat marker before each id is
// materialized into a concrete handoff.
func (f *Flow) gatherMemberHandoffs(a *agent.Agent) error {
	var groupChats, groupNested []*chat.Chat
	for _, c := range f.Data.Chats {
		if c.EffectiveSource() != a.ID {
			continue
		}
		target := f.AgentByID(c.EffectiveTarget())
		if target != nil && target.IsGroupMember() {
			groupChats = append(groupChats, c)
		} else {
			groupNested = append(groupNested, c)
		}
	}

	if len(a.Data.NestedChats) == 0 && len(groupNested) > 0 {
		a.Data.NestedChats = []agent.NestedChatSpec{synthesizeNestedChat(a.ID, groupNested)}
	}

	groupChatIDs := make(map[string]*chat.Chat, len(groupChats))
	for _, c := range groupChats {
		groupChatIDs[c.ID] = c
	}
	hasNested := false
	for _, nc := range a.Data.NestedChats {
		if len(nc.Messages) > 0 {
			hasNested = true
			break
		}
	}

	ids := append([]string(nil), a.Data.Handoffs...)
	for _, c := range groupChats {
		if !containsString(ids, c.ID) {
			ids = append(ids, c.ID)
		}
	}
	if hasNested && !containsString(ids, nestedChatSentinel) {
		ids = append(ids, nestedChatSentinel)
	}
	kept := ids[:0]
	for _, id := range ids {
		if _, ok := groupChatIDs[id]; ok {
			kept = append(kept, id)
		} else if id == nestedChatSentinel && hasNested {
			kept = append(kept, id)
		}
	}
	a.Data.Handoffs = kept

	handoffs := make([]*handoff.Handoff, 0, len(kept))
	for _, id := range kept {
		if id == nestedChatSentinel {
			nc := &a.Data.NestedChats[0]
			handoffs = append(handoffs, &handoff.Handoff{
				Target:    handoff.NewNestedChatTarget(nc.MessageIDs()),
				Condition: nc.Condition,
				Available: nc.Available,
			})
			continue
		}
		handoffs = append(handoffs, groupChatIDs[id].AsHandoff())
	}
	return a.SetHandoffs(handoffs)
}

// synthesizeNestedChat builds the implicit nested-chat spec for a
// group member whose chats leave the group: triggered by the agent
// itself, running the chats in discovery order, gated by the first
// non-empty condition among them.
func synthesizeNestedChat(agentID string, chats []*chat.Chat) agent.NestedChatSpec {
	spec := agent.NestedChatSpec{TriggeredBy: []string{agentID}}
	for _, c := range chats {
		spec.Messages = append(spec.Messages, agent.NestedChatMessage{ID: c.ID})
	}
	pick := chats[0]
	for _, c := range chats {
		if c.Data.Condition != nil && !c.Data.Condition.IsEmpty() {
			pick = c
			break
		}
	}
	spec.Condition = pick.Data.Condition
	spec.Available = pick.Data.Available
	return spec
}

func containsString(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}
