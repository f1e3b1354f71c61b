//
// Waldiez is pleased to support the open source community by making waldiez-go available.
//
// Copyright (C) 2025 Waldiez.  All rights reserved.
//
// waldiez-go is licensed under the Apache License Version 2.0.
//

// Package tool models the reusable code units agents can call. A tool
// is raw Python source plus metadata; validation guarantees the source
// actually defines what the tool type promises (a function named after
// the tool, a langchain/crewai variable assignment, or a predefined
// registry entry with its required secrets).
package tool

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/waldiez/waldiez-go/internal/pycode"
	"github.com/waldiez/waldiez-go/internal/pyimports"
)

// Type enumerates the tool kinds.
type Type string

// Tool kinds. Shared tools are plain helper source included verbatim;
// custom tools define a callable; langchain and crewai tools assign an
// interop object; predefined tools come from the built-in registry.
const (
	TypeShared     Type = "shared"
	TypeCustom     Type = "custom"
	TypeLangchain  Type = "langchain"
	TypeCrewAI     Type = "crewai"
	TypePredefined Type = "predefined"
)

// Data is the tool's payload.
type Data struct {
	// Content is the raw Python source.
	Content string `json:"content"`
	// Secrets maps environment variable names to values the tool needs
	// at runtime.
	Secrets map[string]string `json:"secrets,omitempty"`
	// Kwargs are extra keyword arguments for predefined tools.
	Kwargs map[string]any `json:"kwargs,omitempty"`
}

// Tool is a reusable code unit.
type Tool struct {
	ID           string    `json:"id"`
	Type         string    `json:"type,omitempty"`
	ToolType     Type      `json:"toolType"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	Tags         []string  `json:"tags,omitempty"`
	Requirements []string  `json:"requirements,omitempty"`
	CreatedAt    time.Time `json:"createdAt,omitempty"`
	UpdatedAt    time.Time `json:"updatedAt,omitempty"`
	Data         Data      `json:"data"`
}

// Validate checks the tool's type-specific content contract.
func (t *Tool) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("tool id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("tool %s: name is required", t.ID)
	}
	if t.ToolType == "" {
		t.ToolType = TypeCustom
	}
	switch t.ToolType {
	case TypeShared:
		return nil
	case TypeCustom:
		return t.validateCustom()
	case TypeLangchain, TypeCrewAI:
		return t.validateInterop()
	case TypePredefined:
		return t.validatePredefined()
	default:
		return fmt.Errorf("tool %s: unknown tool type %q", t.ID, t.ToolType)
	}
}

// validateCustom requires a function named exactly as the tool to be
// present in the content.
func (t *Tool) validateCustom() error {
	if strings.TrimSpace(t.Data.Content) == "" {
		return fmt.Errorf("tool %s: content is required", t.ID)
	}
	if pycode.GetFunction(t.Data.Content, t.Name) == "" {
		return fmt.Errorf("tool %s: no function named %q found in content", t.ID, t.Name)
	}
	return nil
}

// validateInterop requires an assignment to a variable named as the
// tool, and forbids the content from doing the interop conversion or
// registration itself; the exporter injects those.
func (t *Tool) validateInterop() error {
	if !hasAssignment(t.Data.Content, t.Name) {
		return fmt.Errorf("tool %s: content must assign to a variable named %q", t.ID, t.Name)
	}
	for _, forbidden := range []string{"Interoperability(", "register_function("} {
		if strings.Contains(t.Data.Content, forbidden) {
			return fmt.Errorf("tool %s: content must not call %s; the conversion is injected at export time", t.ID, strings.TrimSuffix(forbidden, "("))
		}
	}
	return nil
}

// validatePredefined checks the registry entry and its required
// secrets and kwargs.
func (t *Tool) validatePredefined() error {
	spec, ok := PredefinedTools.Get(t.Name)
	if !ok {
		return fmt.Errorf("tool %s: no predefined tool named %q", t.ID, t.Name)
	}
	for _, secret := range spec.RequiredSecrets {
		if t.Data.Secrets[secret] == "" {
			return fmt.Errorf("tool %s: predefined tool %q requires secret %s", t.ID, t.Name, secret)
		}
	}
	for _, kwarg := range spec.RequiredKwargs {
		if _, present := t.Data.Kwargs[kwarg]; !present {
			return fmt.Errorf("tool %s: predefined tool %q requires kwarg %s", t.ID, t.Name, kwarg)
		}
	}
	return nil
}

// hasAssignment reports whether content assigns to the given variable
// name at the top level.
func hasAssignment(content, name string) bool {
	for _, line := range strings.Split(content, "\n") {
		if len(line) > 0 && (line[0] == ' ' || line[0] == '\t') {
			continue
		}
		rest, found := strings.CutPrefix(strings.TrimSpace(line), name)
		if !found {
			continue
		}
		rest = strings.TrimLeft(rest, " \t")
		if strings.HasPrefix(rest, "=") && !strings.HasPrefix(rest, "==") {
			return true
		}
		// Annotated assignment: "name: BaseTool = ...".
		if strings.HasPrefix(rest, ":") && strings.Contains(rest, "=") {
			return true
		}
	}
	return false
}

// Imports gathers the content's import statements split into standard
// library and third-party groups. Langchain and crewai tools force the
// interop import into the third-party group.
func (t *Tool) Imports() (stdlib, thirdParty []string) {
	forceInterop := t.ToolType == TypeLangchain || t.ToolType == TypeCrewAI
	return pyimports.GatherCodeImports(t.Data.Content, forceInterop)
}

// ContentWithoutImports returns the tool source with its import lines
// stripped, ready to be embedded below the hoisted import block.
func (t *Tool) ContentWithoutImports() string {
	stdlib, thirdParty := t.Imports()
	return pyimports.StripImports(t.Data.Content, stdlib, thirdParty)
}

// GetContent re-emits a custom tool's function under a prefixed or
// suffixed name, returning the code and the synthesized name. Tools of
// other kinds return their import-stripped content and the tool name
// unchanged.
func (t *Tool) GetContent(namePrefix, nameSuffix string) (string, string) {
	name := pycode.FunctionName(namePrefix, t.Name, nameSuffix)
	if t.ToolType != TypeCustom {
		return t.ContentWithoutImports(), t.Name
	}
	fn := pycode.GetFunction(t.Data.Content, t.Name)
	if fn == "" {
		return "", name
	}
	if name != t.Name {
		fn = strings.Replace(fn, "def "+t.Name, "def "+name, 1)
	}
	return fn, name
}

// EnvVars returns the tool's secret pairs in deterministic order.
func (t *Tool) EnvVars() [][2]string {
	if len(t.Data.Secrets) == 0 {
		return nil
	}
	keys := make([]string, 0, len(t.Data.Secrets))
	for k := range t.Data.Secrets {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([][2]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, [2]string{k, t.Data.Secrets[k]})
	}
	return out
}
