//
// Waldiez is pleased to support the open source community by making waldiez-go available.
//
// Copyright (C) 2025 Waldiez.  All rights reserved.
//
// waldiez-go is licensed under the Apache License Version 2.0.
//

// Package waldiez loads, validates, and queries multi-agent flow
// documents. A flow arrives as a single JSON file describing agents,
// models, tools, and the chats connecting them; this package is the
// façade the exporter and the CLI build on: it wraps the validated
// flow graph and answers the aggregate questions that cut across
// entities, such as the merged pip requirements and the environment
// variables the generated code will need.
package waldiez

import (
	"sort"

	"github.com/waldiez/waldiez-go/agent"
	"github.com/waldiez/waldiez-go/flow"
	"github.com/waldiez/waldiez-go/model"
)

// Waldiez wraps a validated flow.
type Waldiez struct {
	Flow *flow.Flow
}

// New validates the flow and wraps it. The flow is rejected as a whole
// on the first violation.
func New(f *flow.Flow) (*Waldiez, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &Waldiez{Flow: f}, nil
}

// Name returns the flow's name.
func (w *Waldiez) Name() string { return w.Flow.Name }

// Description returns the flow's description.
func (w *Waldiez) Description() string { return w.Flow.Description }

// Tags returns the flow's tags.
func (w *Waldiez) Tags() []string { return w.Flow.Tags }

// IsAsync reports whether the flow queues chats asynchronously.
func (w *Waldiez) IsAsync() bool { return w.Flow.Data.IsAsync }

// CacheSeed returns the flow's LLM cache seed, nil when caching is
// disabled.
func (w *Waldiez) CacheSeed() *int { return w.Flow.Data.CacheSeed }

// HasRAG reports whether the flow contains a RAG user proxy.
func (w *Waldiez) HasRAG() bool {
	return len(w.Flow.Data.Agents.RAGUserProxyAgents) > 0
}

// HasCaptain reports whether the flow contains a captain agent.
func (w *Waldiez) HasCaptain() bool {
	return len(w.Flow.Data.Agents.CaptainAgents) > 0
}

// HasDocAgents reports whether the flow contains a doc agent.
func (w *Waldiez) HasDocAgents() bool {
	return len(w.Flow.Data.Agents.DocAgents) > 0
}

// HasRemoteAgents reports whether the flow contains a remote agent.
func (w *Waldiez) HasRemoteAgents() bool {
	return len(w.Flow.Data.Agents.RemoteAgents) > 0
}

func (w *Waldiez) agents() []*agent.Agent {
	return w.Flow.Data.Agents.All()
}

// EnvVar is one environment variable the generated flow expects.
type EnvVar struct {
	Name  string
	Value string
}

// GetFlowEnvVars collects every environment variable the generated
// code relies on: tool secrets plus each model's resolved API key.
// Keys that resolve to nothing are still listed with an empty value so
// callers can report what is missing.
func (w *Waldiez) GetFlowEnvVars(resolver model.SecretResolver) []EnvVar {
	var vars []EnvVar
	seen := make(map[string]bool)
	for _, t := range w.Flow.Data.Tools {
		for _, pair := range t.EnvVars() {
			if seen[pair[0]] {
				continue
			}
			seen[pair[0]] = true
			vars = append(vars, EnvVar{Name: pair[0], Value: pair[1]})
		}
	}
	for _, m := range w.Flow.Data.Models {
		name := m.APIKeyEnvVar()
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		vars = append(vars, EnvVar{Name: name, Value: m.ResolveAPIKey(resolver)})
	}
	sort.Slice(vars, func(i, j int) bool { return vars[i].Name < vars[j].Name })
	return vars
}
