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
)

// DefaultCollectionName is the doc agent's collection when none is
// configured.
const DefaultCollectionName = "docling-parsed-docs"

// QueryEngine configures how a doc agent queries parsed documents.
type QueryEngine struct {
	// Type is the engine implementation: VectorChromaQueryEngine,
	// VectorChromaCitationQueryEngine or InMemoryQueryEngine.
	Type string `json:"type,omitempty"`
	// DBPath is the chroma persistence directory.
	DBPath string `json:"dbPath,omitempty"`
	// EnableQueryCitations turns on citation output.
	EnableQueryCitations bool `json:"enableQueryCitations,omitempty"`
	// CitationChunkSize sets the chunk size used for citations.
	CitationChunkSize *int `json:"citationChunkSize,omitempty"`
}

// Validate checks the engine type.
func (q *QueryEngine) Validate() error {
	if q.Type == "" {
		q.Type = "VectorChromaQueryEngine"
	}
	switch q.Type {
	case "VectorChromaQueryEngine", "VectorChromaCitationQueryEngine", "InMemoryQueryEngine":
		return nil
	default:
		return fmt.Errorf("unknown query engine type %q", q.Type)
	}
}

// EnsureParsedDocsPath resolves the doc agent's parsed-docs directory,
// defaulting under baseDir and creating it when missing.
func (a *Agent) EnsureParsedDocsPath(baseDir string) (string, error) {
	path := a.Data.ParsedDocsPath
	if path == "" {
		path = filepath.Join(baseDir, "parsed_docs")
	}
	if err := os.MkdirAll(path, 0o755); err != nil {
		return "", fmt.Errorf("failed to create parsed docs path %s: %w", path, err)
	}
	return path, nil
}
