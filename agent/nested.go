//
// Waldiez is pleased to support the open source community by making waldiez-go available.
//
// Copyright (C) 2025 Waldiez.  All rights reserved.
//
// waldiez-go is licensed under the Apache License Version 2.0.
//
package agent

import (
	"fmt"

	"github.com/waldiez/waldiez-go/handoff"
)

// NestedChatMessage references one chat to run inside a nested chat,
// either as a queued message or as a reply hook.
type NestedChatMessage struct {
	// ID is the referenced chat's id.
	ID string `json:"id"`
	// IsReply runs the chat as a reply to the trigger instead of a
	// queued message.
	IsReply bool `json:"isReply,omitempty"`
}

// NestedChatSpec declares a nested chat on an agent: which incoming
// senders trigger it and which chats it runs. The flow resolver may
// synthesize one of these for group members with outgoing chats that
// leave the group.
type NestedChatSpec struct {
	// TriggeredBy are agent ids whose messages start the nested chat.
	TriggeredBy []string `json:"triggeredBy,omitempty"`
	// Messages are the chats run by the nested chat, in order.
	Messages []NestedChatMessage `json:"messages,omitempty"`
	// Condition gates the nested chat when used as a handoff.
	Condition *handoff.Condition `json:"condition,omitempty"`
	// Available gates eligibility when used as a handoff.
	Available *handoff.Availability `json:"available,omitempty"`
}

// Validate checks the referenced ids are present.
func (n *NestedChatSpec) Validate() error {
	for i, msg := range n.Messages {
		if msg.ID == "" {
			return fmt.Errorf("nested chat message %d: chat id is required", i)
		}
	}
	if n.Condition != nil {
		if err := n.Condition.Validate(); err != nil {
			return fmt.Errorf("nested chat: %w", err)
		}
	}
	if n.Available != nil {
		if err := n.Available.Validate(); err != nil {
			return fmt.Errorf("nested chat: %w", err)
		}
	}
	return nil
}

// MessageIDs returns the referenced chat ids in declaration order.
func (n *NestedChatSpec) MessageIDs() []string {
	ids := make([]string, 0, len(n.Messages))
	for _, m := range n.Messages {
		ids = append(ids, m.ID)
	}
	return ids
}
