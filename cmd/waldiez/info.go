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

	"github.com/spf13/cobra"

	"github.com/waldiez/waldiez-go"
)

var infoCmd = &cobra.Command{
	Use:   "info <file>",
	Short: "Show a flow's contents and runtime needs",
	Long: `Info validates a flow file and prints its entity counts, the pip
requirements the generated code depends on, and the environment
variables it expects at runtime.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := waldiez.Load(args[0])
		if err != nil {
			return fail(err)
		}
		resolver, err := secretResolver()
		if err != nil {
			return fail(err)
		}

		fmt.Printf("Name:        %s\n", w.Name())
		if w.Description() != "" {
			fmt.Printf("Description: %s\n", w.Description())
		}
		fmt.Printf("Agents:      %d\n", len(w.Flow.Data.Agents.All()))
		fmt.Printf("Models:      %d\n", len(w.Flow.Data.Models))
		fmt.Printf("Tools:       %d\n", len(w.Flow.Data.Tools))
		fmt.Printf("Chats:       %d\n", len(w.Flow.Data.Chats))
		fmt.Printf("Async:       %t\n", w.IsAsync())

		fmt.Println("Requirements:")
		for _, req := range w.Requirements() {
			fmt.Printf("  %s\n", req)
		}

		vars := w.GetFlowEnvVars(resolver)
		if len(vars) > 0 {
			fmt.Println("Environment:")
			for _, v := range vars {
				state := "set"
				if v.Value == "" {
					state = "missing"
				}
				fmt.Printf("  %s (%s)\n", v.Name, state)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
