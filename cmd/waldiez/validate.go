//
// Waldiez is pleased to support the open source community by making waldiez-go available.
//
// Copyright (C) 2025 Waldiez.  All rights reserved.
//
// waldiez-go is licensed under the Apache License Version 2.0.
//
package main

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/waldiez/waldiez-go"
	"github.com/waldiez/waldiez-go/log"
)

var validateCmd = &cobra.Command{
	Use:   "validate <pattern>...",
	Short: "Validate flow files",
	Long: `Validate checks each matched flow file for structural issues:
broken references, duplicate ids, unordered chats, and invalid
embedded code snippets.

Patterns support doublestar globs.

Examples:
  waldiez validate flow.waldiez
  waldiez validate 'flows/**/*.waldiez'`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		paths, err := expandPatterns(args)
		if err != nil {
			return fail(err)
		}
		if len(paths) == 0 {
			return fail(fmt.Errorf("no files match the given patterns"))
		}
		for _, path := range paths {
			log.Debugf("validating %s", path)
			if _, err := waldiez.Load(path); err != nil {
				return fail(err)
			}
			fmt.Printf("✓ %s is valid\n", path)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

// expandPatterns resolves each doublestar pattern, passing through
// plain paths unchanged.
func expandPatterns(patterns []string) ([]string, error) {
	var paths []string
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			// A non-glob argument names a file directly; let the
			// loader report it when it does not exist.
			if !hasGlobMeta(pattern) {
				paths = append(paths, pattern)
			}
			continue
		}
		paths = append(paths, matches...)
	}
	return paths, nil
}

func hasGlobMeta(pattern string) bool {
	for _, r := range pattern {
		switch r {
		case '*', '?', '[', '{':
			return true
		}
	}
	return false
}
