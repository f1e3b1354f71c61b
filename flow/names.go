//
// Waldiez is pleased to support the open source community by making waldiez-go available.
//
// Copyright (C) 2025 Waldiez.  All rights reserved.
//
// waldiez-go is licensed under the Apache License Version 2.0.
//
package flow

import (
	"github.com/waldiez/waldiez-go/internal/naming"
)

// Names maps entity ids to the unique Python identifiers the exporter
// uses for them.
type Names struct {
	Agents map[string]string
	Models map[string]string
	Tools  map[string]string
	Chats  map[string]string
}

// UniqueNames assigns a collision-free identifier to every entity in
// the flow. Identifiers are prefixed per kind (wa, wm, wt, wc) and
// share one namespace, so an agent and a tool with the same display
// name still get distinct identifiers.
func (f *Flow) UniqueNames() Names {
	taken := make(map[string]bool)

	agents := f.Data.Agents.All()
	agentEntries := make([]naming.Entry, 0, len(agents))
	for _, a := range agents {
		agentEntries = append(agentEntries, naming.Entry{ID: a.ID, Name: a.Name})
	}
	modelEntries := make([]naming.Entry, 0, len(f.Data.Models))
	for _, m := range f.Data.Models {
		modelEntries = append(modelEntries, naming.Entry{ID: m.ID, Name: m.Name})
	}
	toolEntries := make([]naming.Entry, 0, len(f.Data.Tools))
	for _, t := range f.Data.Tools {
		toolEntries = append(toolEntries, naming.Entry{ID: t.ID, Name: t.Name})
	}
	chatEntries := make([]naming.Entry, 0, len(f.Data.Chats))
	for _, c := range f.Data.Chats {
		name := c.Data.Name
		if name == "" {
			name = c.ID
		}
		chatEntries = append(chatEntries, naming.Entry{ID: c.ID, Name: name})
	}

	return Names{
		Agents: naming.Resolve("wa", agentEntries, taken),
		Models: naming.Resolve("wm", modelEntries, taken),
		Tools:  naming.Resolve("wt", toolEntries, taken),
		Chats:  naming.Resolve("wc", chatEntries, taken),
	}
}
