//
// Waldiez is pleased to support the open source community by making waldiez-go available.
//
// Copyright (C) 2025 Waldiez.  All rights reserved.
//
// waldiez-go is licensed under the Apache License Version 2.0.
//
package tool

func init() {
	for _, spec := range builtinTools {
		PredefinedTools.MustRegister(spec)
	}
}

// builtinTools are the search tools shipped with the framework. The
// implementations live in the exporter's template assets; validation
// only needs the contract side.
var builtinTools = []PredefinedSpec{
	{
		Name:         "wikipedia_search",
		Description:  "Search Wikipedia articles.",
		Requirements: []string{"wikipedia"},
	},
	{
		Name:            "google_search",
		Description:     "Search the web with the Google Custom Search API.",
		RequiredSecrets: []string{"GOOGLE_SEARCH_API_KEY", "GOOGLE_SEARCH_ENGINE_ID"},
		Requirements:    []string{"google-api-python-client"},
	},
	{
		Name:            "youtube_search",
		Description:     "Search YouTube videos.",
		RequiredSecrets: []string{"YOUTUBE_API_KEY"},
		Requirements:    []string{"google-api-python-client"},
	},
	{
		Name:            "tavily_search",
		Description:     "Search the web with Tavily.",
		RequiredSecrets: []string{"TAVILY_API_KEY"},
		Requirements:    []string{"tavily-python"},
	},
	{
		Name:         "duckduckgo_search",
		Description:  "Search the web with DuckDuckGo.",
		Requirements: []string{"ddgs"},
	},
	{
		Name:            "perplexity_search",
		Description:     "Query the Perplexity API.",
		RequiredSecrets: []string{"PERPLEXITY_API_KEY"},
	},
	{
		Name:           "searxng_search",
		Description:    "Search a SearxNG instance.",
		RequiredKwargs: []string{"base_url"},
	},
}
