//
// Waldiez is pleased to support the open source community by making waldiez-go available.
//
// Copyright (C) 2025 Waldiez.  All rights reserved.
//
// waldiez-go is licensed under the Apache License Version 2.0.
//

// Package jsonx normalizes flow JSON before decoding. The wire format
// is camelCase, but older editors and hand-written files use
// snake_case; schema keys are rewritten to camelCase recursively so
// that the entity structs only need one set of tags. Keys inside
// user-data payloads (context variables, tool secrets and kwargs,
// model extras and headers, transition maps) are opaque data and pass
// through untouched. Output marshalling always goes through the struct
// tags and stays camelCase.
package jsonx

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// payloadKeys name the fields whose values carry user-chosen keys.
// Rewriting stops at these boundaries: the field name itself is
// normalized, everything below it is kept verbatim.
var payloadKeys = map[string]bool{
	"contextVariables":               true,
	"secrets":                        true,
	"kwargs":                         true,
	"extras":                         true,
	"defaultHeaders":                 true,
	"args":                           true,
	"context":                        true,
	"allowedOrDisallowedTransitions": true,
}

// Camelize rewrites every snake_case schema key in the JSON document
// to camelCase. Existing camelCase keys win on conflict; payload
// values keep their keys as written.
func Camelize(data []byte) ([]byte, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	var v any
	if err := decoder.Decode(&v); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	return json.Marshal(camelizeValue(v))
}

func camelizeValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		// A condition's "data" field is an arbitrary payload; every
		// other "data" key in the document is entity schema.
		_, isCondition := val["conditionType"]
		if !isCondition {
			_, isCondition = val["condition_type"]
		}
		out := make(map[string]any, len(val))
		for k, inner := range val {
			ck := CamelKey(k)
			if ck != k {
				if _, exists := val[ck]; exists {
					// The camelCase spelling is already present.
					continue
				}
			}
			if payloadKeys[ck] || (isCondition && ck == "data") {
				out[ck] = inner
				continue
			}
			out[ck] = camelizeValue(inner)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, inner := range val {
			out[i] = camelizeValue(inner)
		}
		return out
	default:
		return v
	}
}

// CamelKey converts one snake_case key to camelCase. Keys without
// underscores are returned unchanged.
func CamelKey(k string) string {
	if !strings.Contains(k, "_") {
		return k
	}
	parts := strings.Split(k, "_")
	var b strings.Builder
	wrote := false
	for _, p := range parts {
		if p == "" {
			continue
		}
		if !wrote {
			b.WriteString(p)
			wrote = true
			continue
		}
		b.WriteString(strings.ToUpper(p[:1]))
		b.WriteString(p[1:])
	}
	if !wrote {
		return k
	}
	return b.String()
}
