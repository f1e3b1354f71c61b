//
// Waldiez is pleased to support the open source community by making waldiez-go available.
//
// Copyright (C) 2025 Waldiez.  All rights reserved.
//
// waldiez-go is licensed under the Apache License Version 2.0.
//
package waldiez

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// AG2Version is the ag2 release the generated code targets. The merged
// ag2 requirement is always pinned to it.
const AG2Version = "0.9.9"

// ag2Pattern matches an ag2/autogen requirement string with optional
// extras and an optional version pin.
var ag2Pattern = regexp.MustCompile(`^(?:ag2|autogen|pyautogen)(?:\[([^\]]*)\])?(?:[=<>!~].*)?$`)

// Requirements returns the deduplicated, alphabetically sorted pip
// requirements of the whole flow. Every ag2/autogen entry is merged
// into a single pinned entry carrying the union of their extras; the
// openai extra is always present, and agent variants contribute the
// extras they need (retrievechat for RAG, autobuild for captain, rag
// for doc agents). All other requirement strings pass through
// verbatim.
func (w *Waldiez) Requirements() []string {
	extras := map[string]bool{"openai": true}
	other := make(map[string]bool)

	collect := func(reqs []string) {
		for _, req := range reqs {
			req = strings.TrimSpace(req)
			if req == "" {
				continue
			}
			if m := ag2Pattern.FindStringSubmatch(req); m != nil {
				for _, extra := range strings.Split(m[1], ",") {
					if extra = strings.TrimSpace(extra); extra != "" {
						extras[extra] = true
					}
				}
				continue
			}
			other[req] = true
		}
	}

	collect(w.Flow.Requirements)
	for _, a := range w.agents() {
		collect(a.Requirements)
	}
	for _, m := range w.Flow.Data.Models {
		collect(m.Requirements)
		collect(m.DefaultRequirements())
	}
	for _, t := range w.Flow.Data.Tools {
		collect(t.Requirements)
	}
	if w.HasRAG() {
		extras["retrievechat"] = true
	}
	if w.HasCaptain() {
		extras["autobuild"] = true
	}
	if w.HasDocAgents() {
		extras["rag"] = true
	}

	names := make([]string, 0, len(extras))
	for extra := range extras {
		names = append(names, extra)
	}
	sort.Strings(names)
	ag2 := fmt.Sprintf("ag2[%s]==%s", strings.Join(names, ","), AG2Version)

	out := make([]string, 0, len(other)+1)
	out = append(out, ag2)
	for req := range other {
		out = append(out, req)
	}
	sort.Strings(out)
	return out
}
