//
// Waldiez is pleased to support the open source community by making waldiez-go available.
//
// Copyright (C) 2025 Waldiez.  All rights reserved.
//
// waldiez-go is licensed under the Apache License Version 2.0.
//
package model

import "os"

// SecretResolver supplies values for placeholder credentials. It is an
// explicit collaborator so the core never mutates process state; the
// caller decides whether secrets come from the environment, a .env
// file, or a fixed map in tests.
type SecretResolver interface {
	// Resolve returns the value for the named secret and whether it
	// was found.
	Resolve(name string) (string, bool)
}

// EnvResolver resolves secrets from the process environment.
type EnvResolver struct{}

// Resolve implements SecretResolver.
func (EnvResolver) Resolve(name string) (string, bool) {
	return os.LookupEnv(name)
}

// MapResolver resolves secrets from a fixed map.
type MapResolver map[string]string

// Resolve implements SecretResolver.
func (m MapResolver) Resolve(name string) (string, bool) {
	v, ok := m[name]
	return v, ok
}

// ChainResolver tries each resolver in order.
type ChainResolver []SecretResolver

// Resolve implements SecretResolver.
func (c ChainResolver) Resolve(name string) (string, bool) {
	for _, r := range c {
		if v, ok := r.Resolve(name); ok {
			return v, true
		}
	}
	return "", false
}
