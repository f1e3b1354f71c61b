//
// Waldiez is pleased to support the open source community by making waldiez-go available.
//
// Copyright (C) 2025 Waldiez.  All rights reserved.
//
// waldiez-go is licensed under the Apache License Version 2.0.
//
package tool

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomToolValidate(t *testing.T) {
	ok := &Tool{
		ID:       "t1",
		ToolType: TypeCustom,
		Name:     "get_weather",
		Data:     Data{Content: "def get_weather(city):\n    return 'sunny'\n"},
	}
	require.NoError(t, ok.Validate())

	missing := &Tool{
		ID:       "t2",
		ToolType: TypeCustom,
		Name:     "get_weather",
		Data:     Data{Content: "def other():\n    pass\n"},
	}
	assert.Error(t, missing.Validate())

	empty := &Tool{ID: "t3", ToolType: TypeCustom, Name: "x"}
	assert.Error(t, empty.Validate())
}

func TestToolTypeDefaultsToCustom(t *testing.T) {
	tl := &Tool{ID: "t1", Name: "f", Data: Data{Content: "def f():\n    pass\n"}}
	require.NoError(t, tl.Validate())
	assert.Equal(t, TypeCustom, tl.ToolType)
}

func TestLangchainToolValidate(t *testing.T) {
	ok := &Tool{
		ID:       "t1",
		ToolType: TypeLangchain,
		Name:     "wiki_tool",
		Data:     Data{Content: "from langchain_community.tools import WikipediaQueryRun\n\nwiki_tool = WikipediaQueryRun()\n"},
	}
	require.NoError(t, ok.Validate())

	noAssign := &Tool{
		ID:       "t2",
		ToolType: TypeLangchain,
		Name:     "wiki_tool",
		Data:     Data{Content: "x = 1\n"},
	}
	assert.Error(t, noAssign.Validate())

	converts := &Tool{
		ID:       "t3",
		ToolType: TypeCrewAI,
		Name:     "scraper",
		Data:     Data{Content: "scraper = ScrapeTool()\ninterop = Interoperability()\n"},
	}
	assert.Error(t, converts.Validate())
}

func TestPredefinedToolValidate(t *testing.T) {
	ok := &Tool{
		ID:       "t1",
		ToolType: TypePredefined,
		Name:     "google_search",
		Data: Data{Secrets: map[string]string{
			"GOOGLE_SEARCH_API_KEY":   "k",
			"GOOGLE_SEARCH_ENGINE_ID": "cx",
		}},
	}
	require.NoError(t, ok.Validate())

	missingSecret := &Tool{
		ID:       "t2",
		ToolType: TypePredefined,
		Name:     "google_search",
		Data:     Data{Secrets: map[string]string{"GOOGLE_SEARCH_API_KEY": "k"}},
	}
	err := missingSecret.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GOOGLE_SEARCH_ENGINE_ID")

	unknown := &Tool{ID: "t3", ToolType: TypePredefined, Name: "not_a_tool"}
	assert.Error(t, unknown.Validate())

	missingKwarg := &Tool{ID: "t4", ToolType: TypePredefined, Name: "searxng_search"}
	assert.Error(t, missingKwarg.Validate())
}

func TestContentWithoutImports(t *testing.T) {
	tl := &Tool{
		ID:       "t1",
		ToolType: TypeCustom,
		Name:     "tool_name",
		Data: Data{Content: strings.Join([]string{
			"import os",
			"import requests",
			"",
			"def tool_name():",
			"    return requests.get(os.environ['URL'])",
			"",
		}, "\n")},
	}
	require.NoError(t, tl.Validate())

	got := tl.ContentWithoutImports()
	assert.NotContains(t, got, "import os")
	assert.NotContains(t, got, "import requests")
	assert.True(t, strings.HasPrefix(got, "def tool_name():"))
}

func TestGetContentRenames(t *testing.T) {
	tl := &Tool{
		ID:       "t1",
		ToolType: TypeCustom,
		Name:     "get_weather",
		Data:     Data{Content: "def get_weather(city):\n    return city\n"},
	}
	code, name := tl.GetContent("wt_1", "")
	assert.Equal(t, "wt_1_get_weather", name)
	assert.True(t, strings.HasPrefix(code, "def wt_1_get_weather(city):"))
}

func TestRegistry(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(PredefinedSpec{Name: "echo"}))
	assert.Error(t, reg.Register(PredefinedSpec{Name: "echo"}))
	assert.Error(t, reg.Register(PredefinedSpec{}))
	assert.True(t, reg.Has("echo"))
	_, ok := reg.Get("missing")
	assert.False(t, ok)
	assert.Equal(t, []string{"echo"}, reg.List())
}

func TestEnvVarsSorted(t *testing.T) {
	tl := &Tool{
		ID: "t1", Name: "x", ToolType: TypeShared,
		Data: Data{Secrets: map[string]string{"B_KEY": "2", "A_KEY": "1"}},
	}
	got := tl.EnvVars()
	require.Len(t, got, 2)
	assert.Equal(t, [2]string{"A_KEY", "1"}, got[0])
	assert.Equal(t, [2]string{"B_KEY", "2"}, got[1])
}
