//
// Waldiez is pleased to support the open source community by making waldiez-go available.
//
// Copyright (C) 2025 Waldiez.  All rights reserved.
//
// waldiez-go is licensed under the Apache License Version 2.0.
//

// Package pycode validates and re-emits user-supplied Python snippets.
// Every "callable" field on a flow entity (termination checks, message
// generators, speaker selection overrides, ...) is free-form Python
// source typed as a string; this package checks that the source defines
// a function with the expected name and positional arguments, extracts
// its body, and can regenerate a fully-annotated definition under a
// synthesized name for the generated script.
//
// The scanner understands just enough Python structure for those jobs:
// def statements (possibly with multi-line signatures), string and
// comment skipping, bracket balance, and indentation-based block
// extent. Snippet bodies are opaque and carried verbatim.
package pycode

import (
	"fmt"
	"regexp"
	"strings"
)

// function describes one def statement found in a snippet.
type function struct {
	// Name is the defined function's name.
	Name string
	// Args are the positional parameter names, annotation and default
	// stripped, in declaration order. Star and double-star parameters
	// and everything after a bare "*" are excluded.
	Args []string
	// DefLine is the 0-based line index of the "def" keyword.
	DefLine int
	// SigEndLine is the 0-based index of the line holding the closing
	// parenthesis of the signature.
	SigEndLine int
	// EndLine is the 0-based index one past the last line of the
	// function block.
	EndLine int
	// Indent is the def statement's leading whitespace width.
	Indent int
}

var defPattern = regexp.MustCompile(`^(\s*)(?:async\s+)?def\s+([A-Za-z_][A-Za-z0-9_]*)\s*\(`)

// checkSyntax verifies bracket and quote balance over the whole source.
// It is not a Python parser; it rejects the malformed inputs that would
// make function scanning meaningless (unterminated strings, unbalanced
// brackets) with a message mirroring the interpreter's wording.
func checkSyntax(source string) error {
	var stack []rune
	runes := []rune(source)
	i := 0
	for i < len(runes) {
		c := runes[i]
		switch c {
		case '#':
			for i < len(runes) && runes[i] != '\n' {
				i++
			}
			continue
		case '\'', '"':
			end, err := skipString(runes, i)
			if err != nil {
				return err
			}
			i = end
			continue
		case '(', '[', '{':
			stack = append(stack, c)
		case ')', ']', '}':
			if len(stack) == 0 {
				return fmt.Errorf("unmatched %q", string(c))
			}
			open := stack[len(stack)-1]
			if !bracketsMatch(open, c) {
				return fmt.Errorf("closing parenthesis %q does not match opening parenthesis %q", string(c), string(open))
			}
			stack = stack[:len(stack)-1]
		}
		i++
	}
	if len(stack) > 0 {
		return fmt.Errorf("%q was never closed", string(stack[len(stack)-1]))
	}
	return nil
}

func bracketsMatch(open, closing rune) bool {
	switch open {
	case '(':
		return closing == ')'
	case '[':
		return closing == ']'
	default:
		return closing == '}'
	}
}

// skipString advances past the string literal starting at i and returns
// the index just after it. Triple-quoted strings are handled.
func skipString(runes []rune, i int) (int, error) {
	quote := runes[i]
	if i+2 < len(runes) && runes[i+1] == quote && runes[i+2] == quote {
		// Triple-quoted.
		for j := i + 3; j <= len(runes)-3; j++ {
			if runes[j] == '\\' {
				j++
				continue
			}
			if runes[j] == quote && runes[j+1] == quote && runes[j+2] == quote {
				return j + 3, nil
			}
		}
		return 0, fmt.Errorf("unterminated triple-quoted string literal")
	}
	for j := i + 1; j < len(runes); j++ {
		switch runes[j] {
		case '\\':
			j++
		case '\n':
			return 0, fmt.Errorf("unterminated string literal")
		case quote:
			return j + 1, nil
		}
	}
	return 0, fmt.Errorf("unterminated string literal")
}

// InsideStringMask reports, per line, whether the line begins inside a
// triple-quoted string literal. Line scanners use it to skip def and
// import lines that are really docstring text.
func InsideStringMask(lines []string) []bool {
	mask := make([]bool, len(lines))
	var delim byte
	for li, line := range lines {
		mask[li] = delim != 0
		var quote byte
		for i := 0; i < len(line); i++ {
			c := line[i]
			if delim != 0 {
				if c == '\\' {
					i++
					continue
				}
				if c == delim && i+2 < len(line) && line[i+1] == delim && line[i+2] == delim {
					delim = 0
					i += 2
				}
				continue
			}
			if quote != 0 {
				if c == '\\' {
					i++
				} else if c == quote {
					quote = 0
				}
				continue
			}
			switch c {
			case '#':
				i = len(line)
			case '\'', '"':
				if i+2 < len(line) && line[i+1] == c && line[i+2] == c {
					delim = c
					i += 2
				} else {
					quote = c
				}
			}
		}
	}
	return mask
}

// scanFunctions finds every def statement in the source, at any nesting
// depth, and records its signature and block extent. Def lines inside
// triple-quoted strings are docstring text and ignored.
func scanFunctions(source string) []function {
	lines := strings.Split(source, "\n")
	inString := InsideStringMask(lines)
	var funcs []function
	for idx := 0; idx < len(lines); idx++ {
		if inString[idx] {
			continue
		}
		m := defPattern.FindStringSubmatch(lines[idx])
		if m == nil {
			continue
		}
		fn, ok := scanOneFunction(lines, idx, len(m[1]), m[2])
		if !ok {
			continue
		}
		funcs = append(funcs, fn)
	}
	return funcs
}

// scanOneFunction collects the signature starting on line defLine and
// determines the block extent by indentation.
func scanOneFunction(lines []string, defLine, indent int, name string) (function, bool) {
	openIdx := strings.Index(lines[defLine], "(")
	if openIdx < 0 {
		return function{}, false
	}

	var sig strings.Builder
	depth := 0
	sigEnd := -1
	done := false
	var quote byte
	for li := defLine; li < len(lines) && !done; li++ {
		line := lines[li]
		start := 0
		if li == defLine {
			start = openIdx
		}
		for ci := start; ci < len(line); ci++ {
			c := line[ci]
			if quote != 0 {
				if c == '\\' {
					sig.WriteByte(c)
					ci++
					if ci < len(line) {
						sig.WriteByte(line[ci])
					}
					continue
				}
				if c == quote {
					quote = 0
				}
				sig.WriteByte(c)
				continue
			}
			switch c {
			case '\'', '"':
				quote = c
			case '(', '[', '{':
				depth++
				if li == defLine && ci == openIdx {
					continue
				}
			case ')', ']', '}':
				depth--
				if depth == 0 {
					sigEnd = li
					done = true
				}
			case '#':
				ci = len(line)
				continue
			}
			if done {
				break
			}
			sig.WriteByte(c)
		}
		if !done {
			sig.WriteByte('\n')
		}
	}
	if sigEnd < 0 {
		return function{}, false
	}

	end := len(lines)
	for li := sigEnd + 1; li < len(lines); li++ {
		trimmed := strings.TrimSpace(lines[li])
		if trimmed == "" {
			continue
		}
		if indentOf(lines[li]) <= indent {
			end = li
			break
		}
	}

	return function{
		Name:       name,
		Args:       parseParams(sig.String()),
		DefLine:    defLine,
		SigEndLine: sigEnd,
		EndLine:    end,
		Indent:     indent,
	}, true
}

func indentOf(line string) int {
	n := 0
	for _, c := range line {
		if c == ' ' {
			n++
		} else if c == '\t' {
			n += 8
		} else {
			break
		}
	}
	return n
}

// parseParams extracts positional parameter names from raw signature
// text (the content between the outer parentheses). Annotations and
// defaults are stripped; "*", "*args", "**kwargs" and keyword-only
// parameters are skipped.
func parseParams(sig string) []string {
	parts := splitTopLevel(sig, ',')
	var args []string
	for _, part := range parts {
		p := strings.TrimSpace(part)
		if p == "" {
			continue
		}
		if strings.HasPrefix(p, "*") {
			// Bare star, *args or **kwargs: no positional params follow.
			break
		}
		if i := strings.IndexAny(p, ":="); i >= 0 {
			p = strings.TrimSpace(p[:i])
		}
		if p != "" {
			args = append(args, p)
		}
	}
	return args
}

// splitTopLevel splits s on sep occurrences outside brackets/strings.
func splitTopLevel(s string, sep byte) []string {
	var parts []string
	depth := 0
	var quote byte
	last := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if quote != 0 {
			if c == '\\' {
				i++
			} else if c == quote {
				quote = 0
			}
			continue
		}
		switch c {
		case '\'', '"':
			quote = c
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
		case sep:
			if depth == 0 {
				parts = append(parts, s[last:i])
				last = i + 1
			}
		}
	}
	parts = append(parts, s[last:])
	return parts
}
