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

	"github.com/waldiez/waldiez-go/internal/pycode"
)

// UpdateFunctionName is the expected snippet function name for
// callable system-message updates.
const UpdateFunctionName = "custom_update_system_message"

// UpdateFunctionArgs is the expected snippet signature.
var UpdateFunctionArgs = []string{"agent", "messages"}

// UpdateSystemMessage refreshes an agent's system message before each
// reply, either from a template string (with {variable} placeholders)
// or from a user snippet.
type UpdateSystemMessage struct {
	// Type is "string" or "callable".
	Type string `json:"type"`
	// Content is the template text or the snippet source.
	Content string `json:"content"`

	body string
}

// Validate checks the kind and, for callables, the snippet signature.
func (u *UpdateSystemMessage) Validate() error {
	switch u.Type {
	case "string":
		if u.Content == "" {
			return fmt.Errorf("string system-message update requires content")
		}
		return nil
	case "callable":
		ok, result := pycode.CheckFunction(u.Content, UpdateFunctionName, UpdateFunctionArgs)
		if !ok {
			return fmt.Errorf("invalid system-message update: %s", result)
		}
		u.body = result
		return nil
	default:
		return fmt.Errorf("unknown system-message update type %q", u.Type)
	}
}

// GetUpdateFunction re-emits a callable update under a synthesized
// name. String-typed updates return empty code; the exporter inlines
// the template directly.
func (u *UpdateSystemMessage) GetUpdateFunction(namePrefix, nameSuffix string) (string, string) {
	name := pycode.FunctionName(namePrefix, UpdateFunctionName, nameSuffix)
	if u.Type != "callable" || u.body == "" {
		return "", name
	}
	code := pycode.GenerateFunction(
		name,
		UpdateFunctionArgs,
		[]string{"ConversableAgent", "list[dict[str, Any]]"},
		"str",
		u.body,
	)
	return code, name
}
