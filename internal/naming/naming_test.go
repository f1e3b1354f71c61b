//
// Waldiez is pleased to support the open source community by making waldiez-go available.
//
// Copyright (C) 2025 Waldiez.  All rights reserved.
//
// waldiez-go is licensed under the Apache License Version 2.0.
//
package naming

import (
	"strings"
	"testing"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: "assistant", want: "assistant"},
		{name: "spaces_and_case", in: "My Agent", want: "my_agent"},
		{name: "punctuation", in: "web-search (v2)", want: "web_search_v2"},
		{name: "accents", in: "café agenté", want: "cafe_agente"},
		{name: "leading_digit", in: "2nd agent", want: "w_2nd_agent"},
		{name: "keyword", in: "class", want: "w_class"},
		{name: "empty", in: "", want: "w"},
		{name: "only_symbols", in: "@#$", want: "w"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sanitize(tt.in)
			if got != tt.want {
				t.Fatalf("Sanitize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSanitizeCapsLength(t *testing.T) {
	got := Sanitize(strings.Repeat("a", 200))
	if len(got) != MaxNameLength {
		t.Fatalf("expected %d runes, got %d", MaxNameLength, len(got))
	}
}

func TestResolveUniqueness(t *testing.T) {
	entries := []Entry{
		{ID: "a1", Name: "agent"},
		{ID: "a2", Name: "agent"},
		{ID: "a3", Name: "Agent"},
	}
	got := Resolve("wa", entries, nil)
	if got["a1"] != "wa_agent" {
		t.Errorf("first entry should keep base name, got %q", got["a1"])
	}
	if got["a2"] != "wa_agent_1" {
		t.Errorf("second entry should get _1 suffix, got %q", got["a2"])
	}
	if got["a3"] != "wa_agent_2" {
		t.Errorf("third entry should get _2 suffix, got %q", got["a3"])
	}
}

func TestResolveSharedTakenSet(t *testing.T) {
	taken := make(map[string]bool)
	first := Resolve("wt", []Entry{{ID: "t1", Name: "search"}}, taken)
	second := Resolve("wt", []Entry{{ID: "t2", Name: "search"}}, taken)
	if first["t1"] == second["t2"] {
		t.Fatalf("names should not collide across calls sharing a taken set: %q", first["t1"])
	}
}
