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
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/waldiez/waldiez-go/log"
	"github.com/waldiez/waldiez-go/model"
)

var (
	verbose bool
	envFile string
)

var rootCmd = &cobra.Command{
	Use:   "waldiez",
	Short: "Validate and inspect waldiez flow files",
	Long: `waldiez works with .waldiez flow documents: JSON descriptions of
multi-agent conversations (agents, models, tools, and the chats
connecting them). It validates flows and reports what the generated
code will need to run them.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetLevel(log.LevelDebug)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "load secrets from a dotenv file")
}

// secretResolver builds the secret source for model API keys: the
// dotenv file when given, falling back to the process environment.
func secretResolver() (model.SecretResolver, error) {
	if envFile == "" {
		return model.EnvResolver{}, nil
	}
	values, err := godotenv.Read(envFile)
	if err != nil {
		return nil, fmt.Errorf("read env file %s: %w", envFile, err)
	}
	return model.ChainResolver{model.MapResolver(values), model.EnvResolver{}}, nil
}

func fail(err error) error {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return err
}
