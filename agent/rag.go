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
	"os"
	"path/filepath"

	"github.com/waldiez/waldiez-go/internal/pycode"
)

// Expected snippet names and signatures for the RAG overrides.
const (
	EmbeddingFunctionName  = "custom_embedding_function"
	TokenCountFunctionName = "custom_token_count_function"
	TextSplitFunctionName  = "custom_text_split_function"
)

// Expected positional arguments for the RAG override snippets.
var (
	EmbeddingFunctionArgs  []string
	TokenCountFunctionArgs = []string{"text", "model"}
	TextSplitFunctionArgs  = []string{
		"text", "max_tokens", "chunk_mode", "must_break_at_empty_line", "overlap",
	}
)

// VectorDBConfig configures the retrieval backend connection.
type VectorDBConfig struct {
	Model                  string   `json:"model,omitempty"`
	UseMemory              bool     `json:"useMemory,omitempty"`
	UseLocalStorage        bool     `json:"useLocalStorage,omitempty"`
	LocalStoragePath       string   `json:"localStoragePath,omitempty"`
	ConnectionURL          string   `json:"connectionUrl,omitempty"`
	WaitUntilIndexReady    *float64 `json:"waitUntilIndexReady,omitempty"`
	WaitUntilDocumentReady *float64 `json:"waitUntilDocumentReady,omitempty"`
}

// RetrieveConfig configures a RAG user proxy: the task kind, document
// sources, chunking parameters, vector db connection, and optional
// snippet overrides for embedding, token counting and text splitting.
type RetrieveConfig struct {
	Task           string          `json:"task,omitempty"`
	VectorDB       string          `json:"vectorDb,omitempty"`
	DBConfig       *VectorDBConfig `json:"dbConfig,omitempty"`
	DocsPath       []string        `json:"docsPath,omitempty"`
	CollectionName string          `json:"collectionName,omitempty"`

	ChunkTokenSize       *int     `json:"chunkTokenSize,omitempty"`
	ContextMaxTokens     *int     `json:"contextMaxTokens,omitempty"`
	ChunkMode            string   `json:"chunkMode,omitempty"`
	MustBreakAtEmptyLine bool     `json:"mustBreakAtEmptyLine,omitempty"`
	Model                string   `json:"model,omitempty"`
	DistanceThreshold    *float64 `json:"distanceThreshold,omitempty"`
	NResults             *int     `json:"nResults,omitempty"`

	UseCustomEmbedding bool    `json:"useCustomEmbedding,omitempty"`
	EmbeddingFunction  *string `json:"embeddingFunction,omitempty"`

	UseCustomTokenCount      bool    `json:"useCustomTokenCount,omitempty"`
	CustomTokenCountFunction *string `json:"customTokenCountFunction,omitempty"`

	UseCustomTextSplit      bool    `json:"useCustomTextSplit,omitempty"`
	CustomTextSplitFunction *string `json:"customTextSplitFunction,omitempty"`

	embeddingBody  string
	tokenCountBody string
	textSplitBody  string
}

// Validate checks defaults and every enabled snippet override.
func (r *RetrieveConfig) Validate() error {
	if r.Task == "" {
		r.Task = "default"
	}
	switch r.Task {
	case "code", "qa", "default":
	default:
		return fmt.Errorf("unknown retrieve task %q", r.Task)
	}
	if r.VectorDB == "" {
		r.VectorDB = "chroma"
	}
	switch r.VectorDB {
	case "chroma", "pgvector", "mongodb", "qdrant":
	default:
		return fmt.Errorf("unknown vector db %q", r.VectorDB)
	}
	if r.CollectionName == "" {
		r.CollectionName = "autogen-docs"
	}

	checks := []struct {
		enabled bool
		source  *string
		name    string
		args    []string
		dest    *string
	}{
		{r.UseCustomEmbedding, r.EmbeddingFunction, EmbeddingFunctionName, EmbeddingFunctionArgs, &r.embeddingBody},
		{r.UseCustomTokenCount, r.CustomTokenCountFunction, TokenCountFunctionName, TokenCountFunctionArgs, &r.tokenCountBody},
		{r.UseCustomTextSplit, r.CustomTextSplitFunction, TextSplitFunctionName, TextSplitFunctionArgs, &r.textSplitBody},
	}
	for _, c := range checks {
		if !c.enabled {
			continue
		}
		if c.source == nil || *c.source == "" {
			return fmt.Errorf("custom %s enabled but no content given", c.name)
		}
		ok, result := pycode.CheckFunction(*c.source, c.name, c.args)
		if !ok {
			return fmt.Errorf("invalid %s: %s", c.name, result)
		}
		*c.dest = result
	}
	return nil
}

// EnsureStoragePath resolves the local storage path for the vector db,
// defaulting under baseDir and creating the directory when missing.
func (r *RetrieveConfig) EnsureStoragePath(baseDir string) (string, error) {
	path := ""
	if r.DBConfig != nil {
		path = r.DBConfig.LocalStoragePath
	}
	if path == "" {
		path = filepath.Join(baseDir, r.VectorDB)
	}
	if err := os.MkdirAll(path, 0o755); err != nil {
		return "", fmt.Errorf("failed to create storage path %s: %w", path, err)
	}
	return path, nil
}

// GetEmbeddingFunction re-emits the embedding override.
func (r *RetrieveConfig) GetEmbeddingFunction(namePrefix, nameSuffix string) (string, string) {
	name := pycode.FunctionName(namePrefix, EmbeddingFunctionName, nameSuffix)
	if !r.UseCustomEmbedding || r.embeddingBody == "" {
		return "", name
	}
	return pycode.GenerateFunction(name, nil, nil, "Callable[..., Any]", r.embeddingBody), name
}

// GetTokenCountFunction re-emits the token-count override.
func (r *RetrieveConfig) GetTokenCountFunction(namePrefix, nameSuffix string) (string, string) {
	name := pycode.FunctionName(namePrefix, TokenCountFunctionName, nameSuffix)
	if !r.UseCustomTokenCount || r.tokenCountBody == "" {
		return "", name
	}
	return pycode.GenerateFunction(
		name, TokenCountFunctionArgs, []string{"str", "str"}, "int", r.tokenCountBody,
	), name
}

// GetTextSplitFunction re-emits the text-split override.
func (r *RetrieveConfig) GetTextSplitFunction(namePrefix, nameSuffix string) (string, string) {
	name := pycode.FunctionName(namePrefix, TextSplitFunctionName, nameSuffix)
	if !r.UseCustomTextSplit || r.textSplitBody == "" {
		return "", name
	}
	return pycode.GenerateFunction(
		name,
		TextSplitFunctionArgs,
		[]string{"str", "int", "str", "bool", "int"},
		"list[str]",
		r.textSplitBody,
	), name
}
