//
// Waldiez is pleased to support the open source community by making waldiez-go available.
//
// Copyright (C) 2025 Waldiez.  All rights reserved.
//
// waldiez-go is licensed under the Apache License Version 2.0.
//
package normalize

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// ParseLiteral parses a Python-style literal: strings with single or
// double quotes, numbers, True/False/None, dicts, lists, tuples and
// sets. Tuples and sets are returned as []any; dicts require string (or
// stringable scalar) keys. The whole input must be consumed.
func ParseLiteral(text string) (any, error) {
	p := &literalParser{text: []rune(text)}
	v, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.i < len(p.text) {
		return nil, fmt.Errorf("unexpected character %q at position %d", p.text[p.i], p.i)
	}
	return v, nil
}

type literalParser struct {
	text []rune
	i    int
}

func (p *literalParser) skipSpace() {
	for p.i < len(p.text) && unicode.IsSpace(p.text[p.i]) {
		p.i++
	}
}

func (p *literalParser) peek() (rune, bool) {
	if p.i >= len(p.text) {
		return 0, false
	}
	return p.text[p.i], true
}

func (p *literalParser) parseValue() (any, error) {
	p.skipSpace()
	c, ok := p.peek()
	if !ok {
		return nil, fmt.Errorf("unexpected end of literal at position %d", p.i)
	}
	switch {
	case c == '\'' || c == '"':
		return p.parseString()
	case c == '[':
		return p.parseSequence('[', ']')
	case c == '(':
		return p.parseTuple()
	case c == '{':
		return p.parseBraced()
	case c == '-' || c == '+' || unicode.IsDigit(c):
		return p.parseNumber()
	default:
		return p.parseKeyword()
	}
}

func (p *literalParser) parseString() (string, error) {
	quote := p.text[p.i]
	p.i++
	var b strings.Builder
	for p.i < len(p.text) {
		c := p.text[p.i]
		switch c {
		case '\\':
			if p.i+1 >= len(p.text) {
				return "", fmt.Errorf("unterminated escape at position %d", p.i)
			}
			p.i++
			switch esc := p.text[p.i]; esc {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case 'r':
				b.WriteByte('\r')
			default:
				b.WriteRune(esc)
			}
			p.i++
		case quote:
			p.i++
			return b.String(), nil
		default:
			b.WriteRune(c)
			p.i++
		}
	}
	return "", fmt.Errorf("unterminated string starting with %q", string(quote))
}

// parseSequence parses a bracketed list of values.
func (p *literalParser) parseSequence(open, closing rune) ([]any, error) {
	p.i++ // consume open
	items := []any{}
	for {
		p.skipSpace()
		c, ok := p.peek()
		if !ok {
			return nil, fmt.Errorf("unterminated %q literal", string(open))
		}
		if c == closing {
			p.i++
			return items, nil
		}
		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		items = append(items, v)
		p.skipSpace()
		c, ok = p.peek()
		if !ok {
			return nil, fmt.Errorf("unterminated %q literal", string(open))
		}
		switch c {
		case ',':
			p.i++
		case closing:
		default:
			return nil, fmt.Errorf("expected ',' or %q at position %d", string(closing), p.i)
		}
	}
}

// parseTuple parses a paren-delimited tuple, returned as []any. A
// parenthesized value without a comma, like "(42)", is not a tuple in
// Python; the inner value is returned as-is.
func (p *literalParser) parseTuple() (any, error) {
	p.i++ // consume '('
	p.skipSpace()
	if c, ok := p.peek(); ok && c == ')' {
		p.i++
		return []any{}, nil
	}
	first, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	c, ok := p.peek()
	if !ok {
		return nil, fmt.Errorf("unterminated tuple literal")
	}
	if c == ')' {
		p.i++
		return first, nil
	}
	if c != ',' {
		return nil, fmt.Errorf("expected ',' or ')' at position %d", p.i)
	}
	items := []any{first}
	for {
		p.i++ // consume ','
		p.skipSpace()
		if c2, ok2 := p.peek(); ok2 && c2 == ')' {
			p.i++
			return items, nil
		}
		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		items = append(items, v)
		p.skipSpace()
		c, ok = p.peek()
		if !ok {
			return nil, fmt.Errorf("unterminated tuple literal")
		}
		if c == ')' {
			p.i++
			return items, nil
		}
		if c != ',' {
			return nil, fmt.Errorf("expected ',' or ')' at position %d", p.i)
		}
	}
}

// parseBraced parses either a dict or a set. The decision is made at
// the first element: a ':' after the first value means dict.
func (p *literalParser) parseBraced() (any, error) {
	p.i++ // consume '{'
	p.skipSpace()
	if c, ok := p.peek(); ok && c == '}' {
		p.i++
		return map[string]any{}, nil
	}

	first, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	c, ok := p.peek()
	if !ok {
		return nil, fmt.Errorf("unterminated brace literal")
	}

	if c == ':' {
		return p.parseDictRest(first)
	}

	// Set literal: collect remaining values as a sequence.
	items := []any{first}
	for {
		p.skipSpace()
		c, ok = p.peek()
		if !ok {
			return nil, fmt.Errorf("unterminated set literal")
		}
		switch c {
		case '}':
			p.i++
			return items, nil
		case ',':
			p.i++
			p.skipSpace()
			if c2, ok2 := p.peek(); ok2 && c2 == '}' {
				p.i++
				return items, nil
			}
			v, err := p.parseValue()
			if err != nil {
				return nil, err
			}
			items = append(items, v)
		default:
			return nil, fmt.Errorf("expected ',' or '}' at position %d", p.i)
		}
	}
}

func (p *literalParser) parseDictRest(firstKey any) (map[string]any, error) {
	out := make(map[string]any)
	key, err := dictKey(firstKey)
	if err != nil {
		return nil, err
	}
	p.i++ // consume ':'
	val, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	out[key] = val
	for {
		p.skipSpace()
		c, ok := p.peek()
		if !ok {
			return nil, fmt.Errorf("unterminated dict literal")
		}
		switch c {
		case '}':
			p.i++
			return out, nil
		case ',':
			p.i++
			p.skipSpace()
			if c2, ok2 := p.peek(); ok2 && c2 == '}' {
				p.i++
				return out, nil
			}
			k, err := p.parseValue()
			if err != nil {
				return nil, err
			}
			key, err = dictKey(k)
			if err != nil {
				return nil, err
			}
			p.skipSpace()
			if c2, ok2 := p.peek(); !ok2 || c2 != ':' {
				return nil, fmt.Errorf("expected ':' at position %d", p.i)
			}
			p.i++
			val, err = p.parseValue()
			if err != nil {
				return nil, err
			}
			out[key] = val
		default:
			return nil, fmt.Errorf("expected ',' or '}' at position %d", p.i)
		}
	}
}

// dictKey converts a parsed key value into a string map key.
func dictKey(v any) (string, error) {
	switch k := v.(type) {
	case string:
		return k, nil
	case int:
		return strconv.Itoa(k), nil
	case float64:
		return strconv.FormatFloat(k, 'g', -1, 64), nil
	case bool:
		return strconv.FormatBool(k), nil
	default:
		return "", fmt.Errorf("unhashable dict key of type %T", v)
	}
}

func (p *literalParser) parseNumber() (any, error) {
	start := p.i
	if c, ok := p.peek(); ok && (c == '-' || c == '+') {
		p.i++
	}
	isFloat := false
	for p.i < len(p.text) {
		c := p.text[p.i]
		if unicode.IsDigit(c) {
			p.i++
			continue
		}
		if c == '.' || c == 'e' || c == 'E' {
			isFloat = true
			p.i++
			continue
		}
		if (c == '-' || c == '+') && isFloat {
			prev := p.text[p.i-1]
			if prev == 'e' || prev == 'E' {
				p.i++
				continue
			}
		}
		break
	}
	token := string(p.text[start:p.i])
	if !isFloat {
		if n, err := strconv.Atoi(token); err == nil {
			return n, nil
		}
	}
	f, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid number %q", token)
	}
	return f, nil
}

func (p *literalParser) parseKeyword() (any, error) {
	start := p.i
	for p.i < len(p.text) && (unicode.IsLetter(p.text[p.i]) || p.text[p.i] == '_') {
		p.i++
	}
	switch word := string(p.text[start:p.i]); word {
	case "True", "true":
		return true, nil
	case "False", "false":
		return false, nil
	case "None", "null":
		return nil, nil
	default:
		return nil, fmt.Errorf("unexpected token %q at position %d", word, start)
	}
}
