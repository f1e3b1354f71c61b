//
// Waldiez is pleased to support the open source community by making waldiez-go available.
//
// Copyright (C) 2025 Waldiez.  All rights reserved.
//
// waldiez-go is licensed under the Apache License Version 2.0.
//

// Package naming derives collision-free Python identifiers for flow
// entities. Generated code refers to agents, models, tools and chats by
// these names, so they must be valid Python identifiers, unique within
// the flow, and stable for a given input order.
package naming

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// MaxNameLength caps derived identifiers. Longer names are truncated
// before uniqueness suffixes are applied.
const MaxNameLength = 64

// pythonKeywords are names that cannot be used as Python identifiers.
var pythonKeywords = map[string]bool{
	"False": true, "None": true, "True": true, "and": true, "as": true,
	"assert": true, "async": true, "await": true, "break": true,
	"class": true, "continue": true, "def": true, "del": true,
	"elif": true, "else": true, "except": true, "finally": true,
	"for": true, "from": true, "global": true, "if": true,
	"import": true, "in": true, "is": true, "lambda": true,
	"nonlocal": true, "not": true, "or": true, "pass": true,
	"raise": true, "return": true, "try": true, "while": true,
	"with": true, "yield": true,
}

// stripMarks removes combining marks after NFKD decomposition so that
// accented display names still map onto ASCII identifiers.
var stripMarks = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Sanitize converts an arbitrary display name into a valid Python
// identifier: diacritics are stripped, any rune that is not a letter,
// digit or underscore becomes an underscore, repeated underscores are
// collapsed, and the result is lowercased. Names that would start with
// a digit, are empty, or collide with a Python keyword get a "w_"
// prefix. The result never exceeds MaxNameLength runes.
func Sanitize(name string) string {
	flat, _, err := transform.String(stripMarks, name)
	if err != nil {
		flat = name
	}

	var b strings.Builder
	lastUnderscore := false
	for _, r := range flat {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(unicode.ToLower(r))
			lastUnderscore = false
		default:
			if !lastUnderscore {
				b.WriteByte('_')
			}
			lastUnderscore = true
		}
	}

	out := strings.Trim(b.String(), "_")
	if out == "" || pythonKeywords[out] || unicode.IsDigit(rune(out[0])) {
		out = "w_" + out
		out = strings.TrimSuffix(out, "_")
	}
	if runeCount := len([]rune(out)); runeCount > MaxNameLength {
		out = string([]rune(out)[:MaxNameLength])
		out = strings.TrimSuffix(out, "_")
	}
	return out
}

// Entry pairs an entity id with its display name.
type Entry struct {
	ID   string
	Name string
}

// Resolve assigns a unique identifier to every entry, keyed by entry id.
// Each identifier is "<prefix>_<sanitized name>"; on collision a numeric
// suffix is appended ("_1", "_2", ...). Entries are processed in order,
// so the first occurrence of a name keeps the unsuffixed form. The taken
// set carries names already claimed by other entity kinds and is updated
// in place.
func Resolve(prefix string, entries []Entry, taken map[string]bool) map[string]string {
	if taken == nil {
		taken = make(map[string]bool)
	}
	out := make(map[string]string, len(entries))
	for _, e := range entries {
		base := prefix + "_" + Sanitize(e.Name)
		name := base
		for i := 1; taken[name]; i++ {
			name = fmt.Sprintf("%s_%d", base, i)
		}
		taken[name] = true
		out[e.ID] = name
	}
	return out
}
