//
// Waldiez is pleased to support the open source community by making waldiez-go available.
//
// Copyright (C) 2025 Waldiez.  All rights reserved.
//
// waldiez-go is licensed under the Apache License Version 2.0.
//

// Package pyimports extracts and classifies import statements from
// user-supplied Python source. Tool content carries its own imports;
// the exporter hoists them to the top of the generated script, so they
// have to be collected, split into standard-library and third-party
// groups, and stripped from the body text.
package pyimports

import (
	"sort"
	"strings"

	"github.com/waldiez/waldiez-go/internal/pycode"
)

// InteropImport is the interoperability import injected when a
// langchain or crewai tool is converted in the generated script.
const InteropImport = "from autogen.interop import Interoperability"

// GatherCodeImports collects every top-level import statement from the
// source and partitions the exact statement texts into standard-library
// and third-party groups. Both groups are sorted with plain "import X"
// statements before "from X import Y" statements, each alphabetically.
// When forceInterop is set and the third-party group lacks the interop
// import, it is appended.
func GatherCodeImports(source string, forceInterop bool) (stdlib, thirdParty []string) {
	for _, stmt := range importStatements(source) {
		root := rootModule(stmt)
		if root == "" {
			continue
		}
		if IsStandardLibrary(root) {
			stdlib = append(stdlib, stmt)
		} else {
			thirdParty = append(thirdParty, stmt)
		}
	}
	if forceInterop && !contains(thirdParty, InteropImport) {
		thirdParty = append(thirdParty, InteropImport)
	}
	sortImports(stdlib)
	sortImports(thirdParty)
	return stdlib, thirdParty
}

// StripImports removes every line of content that begins with one of
// the given import statements and trims leading and trailing blank
// lines, leaving import-free body text.
func StripImports(content string, importGroups ...[]string) string {
	var prefixes []string
	for _, group := range importGroups {
		for _, stmt := range group {
			// Multi-line "from x import (...)" statements match on the
			// first physical line.
			first := stmt
			if i := strings.IndexByte(stmt, '\n'); i >= 0 {
				first = stmt[:i]
			}
			prefixes = append(prefixes, first)
		}
	}

	lines := strings.Split(content, "\n")
	inString := pycode.InsideStringMask(lines)
	kept := make([]string, 0, len(lines))
	skipParen := false
	for li, line := range lines {
		if inString[li] {
			kept = append(kept, line)
			continue
		}
		if skipParen {
			if strings.Contains(line, ")") {
				skipParen = false
			}
			continue
		}
		trimmed := strings.TrimSpace(line)
		matched := false
		for _, p := range prefixes {
			if strings.HasPrefix(trimmed, p) || trimmed == strings.TrimSpace(p) {
				matched = true
				break
			}
		}
		if matched {
			if strings.Contains(trimmed, "(") && !strings.Contains(trimmed, ")") {
				skipParen = true
			}
			continue
		}
		kept = append(kept, line)
	}

	out := strings.Join(kept, "\n")
	return strings.Trim(out, "\n")
}

// importStatements returns the exact text of every top-level import
// statement, multi-line parenthesized forms flattened to one line.
// Import-looking lines inside triple-quoted strings are docstring text
// and skipped.
func importStatements(source string) []string {
	lines := strings.Split(source, "\n")
	inString := pycode.InsideStringMask(lines)
	var stmts []string
	for i := 0; i < len(lines); i++ {
		if inString[i] {
			continue
		}
		line := lines[i]
		trimmed := strings.TrimSpace(line)
		if line != trimmed && len(line) > 0 && (line[0] == ' ' || line[0] == '\t') {
			// Indented imports are function-local; the exporter leaves
			// those where they are.
			continue
		}
		if !strings.HasPrefix(trimmed, "import ") && !strings.HasPrefix(trimmed, "from ") {
			continue
		}
		if strings.HasPrefix(trimmed, "from ") && !strings.Contains(trimmed, " import") {
			continue
		}
		stmt := trimmed
		if strings.Contains(trimmed, "(") && !strings.Contains(trimmed, ")") {
			// Parenthesized import list spanning lines.
			parts := []string{trimmed}
			for i+1 < len(lines) {
				i++
				parts = append(parts, strings.TrimSpace(lines[i]))
				if strings.Contains(lines[i], ")") {
					break
				}
			}
			stmt = flattenImport(parts)
		}
		if idx := strings.Index(stmt, "  #"); idx >= 0 {
			stmt = strings.TrimSpace(stmt[:idx])
		}
		stmts = append(stmts, stmt)
	}
	return stmts
}

// flattenImport joins the physical lines of a parenthesized import into
// a single normalized statement.
func flattenImport(parts []string) string {
	joined := strings.Join(parts, " ")
	joined = strings.ReplaceAll(joined, "( ", "(")
	joined = strings.ReplaceAll(joined, " )", ")")
	joined = strings.ReplaceAll(joined, ", )", ")")
	joined = strings.ReplaceAll(joined, ",)", ")")
	return strings.Join(strings.Fields(joined), " ")
}

// rootModule extracts the root module name an import statement refers to.
func rootModule(stmt string) string {
	fields := strings.Fields(stmt)
	if len(fields) < 2 {
		return ""
	}
	module := fields[1]
	if dot := strings.IndexByte(module, '.'); dot >= 0 {
		module = module[:dot]
	}
	return strings.TrimSpace(module)
}

// sortImports orders statements with "import X" before "from X import
// Y", each group alphabetically.
func sortImports(stmts []string) {
	sort.SliceStable(stmts, func(i, j int) bool {
		iFrom := strings.HasPrefix(stmts[i], "from ")
		jFrom := strings.HasPrefix(stmts[j], "from ")
		if iFrom != jFrom {
			return !iFrom
		}
		return stmts[i] < stmts[j]
	})
}

func contains(in []string, s string) bool {
	for _, v := range in {
		if v == s {
			return true
		}
	}
	return false
}
