//
// Waldiez is pleased to support the open source community by making waldiez-go available.
//
// Copyright (C) 2025 Waldiez.  All rights reserved.
//
// waldiez-go is licensed under the Apache License Version 2.0.
//

// Package chat models the directed communication edges of a flow. A
// chat links two agents, carries the initial message (literal text or
// a user snippet), the summary policy, and the condition/availability
// pair that makes the edge usable as a handoff.
package chat

import (
	"fmt"

	"github.com/waldiez/waldiez-go/handoff"
	"github.com/waldiez/waldiez-go/internal/normalize"
	"github.com/waldiez/waldiez-go/internal/pycode"
)

// Type enumerates the chat edge kinds.
type Type string

// Chat kinds. Plain chats form the main sequence, nested chats run as
// sub-steps, group chats connect group members, and hidden chats exist
// only for the editor.
const (
	TypeChat   Type = "chat"
	TypeNested Type = "nested"
	TypeGroup  Type = "group"
	TypeHidden Type = "hidden"
)

// MessageType enumerates how a chat's initial message is produced.
type MessageType string

// Message kinds.
const (
	MessageNone         MessageType = "none"
	MessageString       MessageType = "string"
	MessageMethod       MessageType = "method"
	MessageRAGGenerator MessageType = "rag_message_generator"
)

// MessageFunctionName is the expected name of a method-typed message
// snippet, and MessageFunctionArgs its positional arguments.
const MessageFunctionName = "callable_message"

// MessageFunctionArgs is the expected signature of a message snippet.
var MessageFunctionArgs = []string{"sender", "recipient", "context"}

// Expected names of nested-chat message and reply snippets.
const (
	NestedChatMessageFunctionName = "nested_chat_message"
	NestedChatReplyFunctionName   = "nested_chat_reply"
)

// NestedChatFunctionArgs is the expected signature of nested-chat
// message and reply snippets.
var NestedChatFunctionArgs = []string{"recipient", "messages", "sender", "config"}

// nestedChatFunctionTypes are the emitted annotations for nested-chat
// snippets.
var nestedChatFunctionTypes = []string{
	"ConversableAgent",
	"list[dict[str, Any]]",
	"ConversableAgent",
	"dict[str, Any]",
}

// messageFunctionTypes are the emitted annotations for the snippet.
var messageFunctionTypes = []string{
	"ConversableAgent",
	"ConversableAgent",
	"dict[str, Any]",
}

// Message is a chat's initial message description.
type Message struct {
	Type MessageType `json:"type"`
	// Content is the literal text (string) or the snippet source
	// (method).
	Content *string `json:"content,omitempty"`
	// Context is passed to the receiving agent; values arrive as
	// strings and are normalized to typed values.
	Context map[string]any `json:"context,omitempty"`
	// UseCarryover appends carryover from previous chats.
	UseCarryover bool `json:"useCarryover,omitempty"`
}

// Summary is a chat's summarization policy.
type Summary struct {
	Method string            `json:"method,omitempty"`
	Prompt string            `json:"prompt,omitempty"`
	Args   map[string]string `json:"args,omitempty"`
}

// NestedChatMessages configures the message/reply pair of a nested
// type chat.
type NestedChatMessages struct {
	Message *Message `json:"message,omitempty"`
	Reply   *Message `json:"reply,omitempty"`
}

// Data is the chat's payload.
type Data struct {
	Name          string                `json:"name,omitempty"`
	Description   string                `json:"description,omitempty"`
	Order         *int                  `json:"order,omitempty"`
	Position      int                   `json:"position,omitempty"`
	ClearHistory  bool                  `json:"clearHistory,omitempty"`
	Message       Message               `json:"message"`
	NestedChat    *NestedChatMessages   `json:"nestedChat,omitempty"`
	Summary       Summary               `json:"summary,omitempty"`
	MaxTurns      *int                  `json:"maxTurns,omitempty"`
	Silent        bool                  `json:"silent,omitempty"`
	Prerequisites []string              `json:"prerequisites,omitempty"`
	Condition     *handoff.Condition    `json:"condition,omitempty"`
	Available     *handoff.Availability `json:"available,omitempty"`
	RealSource    *string               `json:"realSource,omitempty"`
	RealTarget    *string               `json:"realTarget,omitempty"`
}

// Chat is a directed edge between two agents.
type Chat struct {
	ID     string `json:"id"`
	Type   Type   `json:"type,omitempty"`
	Source string `json:"source"`
	Target string `json:"target"`
	Data   Data   `json:"data"`

	// Resolved state, populated once by the flow validator.
	resolved resolved
}

// resolved holds derived state assigned during flow validation.
type resolved struct {
	chatIDSet       bool
	chatID          int
	prerequisites   []int
	messageBody     string
	nestedBody      string
	nestedReplyBody string
}

// Validate checks the chat's own invariants and, for method-typed
// messages, the snippet's signature contract. Context values are
// normalized in place.
func (c *Chat) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("chat id is required")
	}
	if c.Source == "" || c.Target == "" {
		return fmt.Errorf("chat %s: source and target are required", c.ID)
	}
	if c.Type == "" {
		c.Type = TypeChat
	}
	switch c.Type {
	case TypeChat, TypeNested, TypeGroup, TypeHidden:
	default:
		return fmt.Errorf("chat %s: unknown chat type %q", c.ID, c.Type)
	}
	if err := c.validateMessage(); err != nil {
		return fmt.Errorf("chat %s: %w", c.ID, err)
	}
	if err := c.validateNestedChat(); err != nil {
		return fmt.Errorf("chat %s: %w", c.ID, err)
	}
	if c.Data.Condition != nil {
		if err := c.Data.Condition.Validate(); err != nil {
			return fmt.Errorf("chat %s: %w", c.ID, err)
		}
	}
	if c.Data.Available != nil {
		if err := c.Data.Available.Validate(); err != nil {
			return fmt.Errorf("chat %s: %w", c.ID, err)
		}
	}
	c.Data.Message.Context = normalize.Values(c.Data.Message.Context)
	return nil
}

func (c *Chat) validateMessage() error {
	if c.Data.Message.Type == "" {
		c.Data.Message.Type = MessageNone
	}
	switch c.Data.Message.Type {
	case MessageNone, MessageString, MessageRAGGenerator:
		return nil
	case MessageMethod:
		if c.Data.Message.Content == nil || *c.Data.Message.Content == "" {
			return fmt.Errorf("method message requires content")
		}
		ok, result := pycode.CheckFunction(*c.Data.Message.Content, MessageFunctionName, MessageFunctionArgs)
		if !ok {
			return fmt.Errorf("invalid message: %s", result)
		}
		c.resolved.messageBody = result
		return nil
	default:
		return fmt.Errorf("unknown message type %q", c.Data.Message.Type)
	}
}

// validateNestedChat checks the message and reply snippets of a
// nested chat when they are method typed.
func (c *Chat) validateNestedChat() error {
	nc := c.Data.NestedChat
	if nc == nil {
		return nil
	}
	var err error
	c.resolved.nestedBody, err = nestedChatBody(nc.Message, NestedChatMessageFunctionName)
	if err != nil {
		return err
	}
	c.resolved.nestedReplyBody, err = nestedChatBody(nc.Reply, NestedChatReplyFunctionName)
	return err
}

func nestedChatBody(m *Message, name string) (string, error) {
	if m == nil || m.Type != MessageMethod {
		return "", nil
	}
	if m.Content == nil || *m.Content == "" {
		return "", fmt.Errorf("method %s requires content", name)
	}
	ok, result := pycode.CheckFunction(*m.Content, name, NestedChatFunctionArgs)
	if !ok {
		return "", fmt.Errorf("invalid %s: %s", name, result)
	}
	return result, nil
}

// Order returns the chat's main-sequence order, -1 when unset.
// Negative orders exclude the chat from the main sequence.
func (c *Chat) Order() int {
	if c.Data.Order == nil {
		return -1
	}
	return *c.Data.Order
}

// EffectiveSource returns the real source when the nominal endpoint is
// overridden.
func (c *Chat) EffectiveSource() string {
	if c.Data.RealSource != nil && *c.Data.RealSource != "" {
		return *c.Data.RealSource
	}
	return c.Source
}

// EffectiveTarget returns the real target when the nominal endpoint is
// overridden.
func (c *Chat) EffectiveTarget() string {
	if c.Data.RealTarget != nil && *c.Data.RealTarget != "" {
		return *c.Data.RealTarget
	}
	return c.Target
}

// AsHandoff materializes the edge as an agent-targeted handoff using
// the chat's own condition and availability gate.
func (c *Chat) AsHandoff() *handoff.Handoff {
	return &handoff.Handoff{
		Target:    handoff.NewAgentTarget(c.EffectiveTarget()),
		Condition: c.Data.Condition,
		Available: c.Data.Available,
	}
}

// GetMessageFunction re-emits a method-typed message snippet under a
// synthesized name, returning the code and the name. Chats without a
// method message return empty code and the base name.
func (c *Chat) GetMessageFunction(namePrefix, nameSuffix string) (string, string) {
	name := pycode.FunctionName(namePrefix, MessageFunctionName, nameSuffix)
	if c.Data.Message.Type != MessageMethod || c.resolved.messageBody == "" {
		return "", name
	}
	code := pycode.GenerateFunction(
		name,
		MessageFunctionArgs,
		messageFunctionTypes,
		"Union[dict[str, Any], str, None]",
		c.resolved.messageBody,
	)
	return code, name
}

// GetNestedChatMessageFunction re-emits a method-typed nested-chat
// message snippet under a synthesized name.
func (c *Chat) GetNestedChatMessageFunction(namePrefix, nameSuffix string) (string, string) {
	return c.nestedChatFunction(NestedChatMessageFunctionName, c.resolved.nestedBody, namePrefix, nameSuffix)
}

// GetNestedChatReplyFunction re-emits a method-typed nested-chat reply
// snippet under a synthesized name.
func (c *Chat) GetNestedChatReplyFunction(namePrefix, nameSuffix string) (string, string) {
	return c.nestedChatFunction(NestedChatReplyFunctionName, c.resolved.nestedReplyBody, namePrefix, nameSuffix)
}

func (c *Chat) nestedChatFunction(base, body, namePrefix, nameSuffix string) (string, string) {
	name := pycode.FunctionName(namePrefix, base, nameSuffix)
	if body == "" {
		return "", name
	}
	code := pycode.GenerateFunction(
		name,
		NestedChatFunctionArgs,
		nestedChatFunctionTypes,
		"Union[dict[str, Any], str]",
		body,
	)
	return code, name
}

// SetChatID records the dense integer id assigned during async flow
// validation. It may be set only once.
func (c *Chat) SetChatID(id int) error {
	if c.resolved.chatIDSet {
		return fmt.Errorf("chat %s: chat id already assigned", c.ID)
	}
	c.resolved.chatID = id
	c.resolved.chatIDSet = true
	return nil
}

// ChatID returns the dense integer id, or -1 when not assigned.
func (c *Chat) ChatID() int {
	if !c.resolved.chatIDSet {
		return -1
	}
	return c.resolved.chatID
}

// SetPrerequisites records the integer prerequisite ids resolved from
// Data.Prerequisites during async flow validation.
func (c *Chat) SetPrerequisites(ids []int) {
	c.resolved.prerequisites = ids
}

// Prerequisites returns the resolved integer prerequisite ids.
func (c *Chat) Prerequisites() []int {
	return c.resolved.prerequisites
}
