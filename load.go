//
// Waldiez is pleased to support the open source community by making waldiez-go available.
//
// Copyright (C) 2025 Waldiez.  All rights reserved.
//
// waldiez-go is licensed under the Apache License Version 2.0.
//
package waldiez

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/waldiez/waldiez-go/flow"
	"github.com/waldiez/waldiez-go/internal/jsonx"
	"github.com/waldiez/waldiez-go/log"
)

// Sentinel errors for the loading boundary.
var (
	// ErrNotFound reports a missing flow file.
	ErrNotFound = errors.New("flow file not found")
	// ErrInvalidFlow reports a document that parsed but failed
	// validation.
	ErrInvalidFlow = errors.New("invalid flow")
)

// Load reads and validates a flow document from disk.
func Load(path string) (*Waldiez, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	w, err := FromBytes(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return w, nil
}

// FromBytes parses and validates a flow document. Both camelCase and
// snake_case field names are accepted on input.
func FromBytes(data []byte) (*Waldiez, error) {
	normalized, err := jsonx.Camelize(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFlow, err)
	}
	var f flow.Flow
	if err := json.Unmarshal(normalized, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFlow, err)
	}
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	w, err := New(&f)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFlow, err)
	}
	log.Debugf("loaded flow %s: %d agents, %d chats",
		f.ID, len(f.Data.Agents.All()), len(f.Data.Chats))
	return w, nil
}

// Save writes the flow document to disk, UTF-8 with LF line endings,
// optionally pretty-printed.
func (w *Waldiez) Save(path string, pretty bool) error {
	var (
		data []byte
		err  error
	)
	if pretty {
		data, err = json.MarshalIndent(w.Flow, "", "  ")
	} else {
		data, err = json.Marshal(w.Flow)
	}
	if err != nil {
		return fmt.Errorf("encode flow: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
