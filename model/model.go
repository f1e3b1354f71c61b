//
// Waldiez is pleased to support the open source community by making waldiez-go available.
//
// Copyright (C) 2025 Waldiez.  All rights reserved.
//
// waldiez-go is licensed under the Apache License Version 2.0.
//

// Package model describes the LLM configuration records referenced by
// agents. A model never talks to a provider from here; it only carries
// the credentials and sampling parameters that end up in the generated
// script's llm_config.
package model

import (
	"fmt"
	"time"
)

// APIType enumerates the supported providers.
type APIType string

// Supported provider types.
const (
	APITypeOpenAI    APIType = "openai"
	APITypeAzure     APIType = "azure"
	APITypeDeepSeek  APIType = "deepseek"
	APITypeGoogle    APIType = "google"
	APITypeAnthropic APIType = "anthropic"
	APITypeMistral   APIType = "mistral"
	APITypeGroq      APIType = "groq"
	APITypeTogether  APIType = "together"
	APITypeNIM       APIType = "nim"
	APITypeCohere    APIType = "cohere"
	APITypeBedrock   APIType = "bedrock"
	APITypeOther     APIType = "other"
)

var validAPITypes = map[APIType]bool{
	APITypeOpenAI: true, APITypeAzure: true, APITypeDeepSeek: true,
	APITypeGoogle: true, APITypeAnthropic: true, APITypeMistral: true,
	APITypeGroq: true, APITypeTogether: true, APITypeNIM: true,
	APITypeCohere: true, APITypeBedrock: true, APITypeOther: true,
}

// Price is the optional per-1k-token price pair. Both components must
// be present for the price to be used.
type Price struct {
	PromptPricePer1K     *float64 `json:"promptPricePer1k"`
	CompletionTokenPrice *float64 `json:"completionTokenPricePer1k"`
}

// IsComplete reports whether both price components are set.
func (p *Price) IsComplete() bool {
	return p != nil && p.PromptPricePer1K != nil && p.CompletionTokenPrice != nil
}

// AWS holds the bedrock-specific connection block. Unset fields fall
// back to the conventional AWS_* environment variables at config time.
type AWS struct {
	Region       string `json:"region,omitempty"`
	AccessKey    string `json:"accessKey,omitempty"`
	SecretKey    string `json:"secretKey,omitempty"`
	SessionToken string `json:"sessionToken,omitempty"`
	ProfileName  string `json:"profileName,omitempty"`
}

// Data is the model's configuration payload.
type Data struct {
	BaseURL        string            `json:"baseUrl,omitempty"`
	APIKey         string            `json:"apiKey,omitempty"`
	APIType        APIType           `json:"apiType"`
	APIVersion     string            `json:"apiVersion,omitempty"`
	Temperature    *float64          `json:"temperature,omitempty"`
	TopP           *float64          `json:"topP,omitempty"`
	MaxTokens      *int              `json:"maxTokens,omitempty"`
	DefaultHeaders map[string]string `json:"defaultHeaders,omitempty"`
	Extras         map[string]any    `json:"extras,omitempty"`
	AWS            *AWS              `json:"aws,omitempty"`
	Price          *Price            `json:"price,omitempty"`
}

// Model is an LLM configuration record.
type Model struct {
	ID           string    `json:"id"`
	Type         string    `json:"type,omitempty"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	Tags         []string  `json:"tags,omitempty"`
	Requirements []string  `json:"requirements,omitempty"`
	CreatedAt    time.Time `json:"createdAt,omitempty"`
	UpdatedAt    time.Time `json:"updatedAt,omitempty"`
	Data         Data      `json:"data"`
}

// Validate checks the record's own invariants. Cross-entity reference
// checks happen at flow level.
func (m *Model) Validate() error {
	if m.ID == "" {
		return fmt.Errorf("model id is required")
	}
	if m.Name == "" {
		return fmt.Errorf("model %s: name is required", m.ID)
	}
	if m.Data.APIType == "" {
		m.Data.APIType = APITypeOther
	}
	if !validAPITypes[m.Data.APIType] {
		return fmt.Errorf("model %s: unknown api type %q", m.ID, m.Data.APIType)
	}
	if m.Data.Price != nil && !m.Data.Price.IsComplete() {
		// A half-specified price resolves to no price at all.
		m.Data.Price = nil
	}
	if m.Data.APIType == APITypeAzure && m.Data.BaseURL == "" {
		return fmt.Errorf("model %s: azure models require a base url", m.ID)
	}
	return nil
}

// APIKeyEnvVar returns the conventional environment variable holding
// the provider's API key.
func (m *Model) APIKeyEnvVar() string {
	switch m.Data.APIType {
	case APITypeOpenAI:
		return "OPENAI_API_KEY"
	case APITypeAzure:
		return "AZURE_API_KEY"
	case APITypeDeepSeek:
		return "DEEPSEEK_API_KEY"
	case APITypeGoogle:
		return "GOOGLE_GEMINI_API_KEY"
	case APITypeAnthropic:
		return "ANTHROPIC_API_KEY"
	case APITypeMistral:
		return "MISTRAL_API_KEY"
	case APITypeGroq:
		return "GROQ_API_KEY"
	case APITypeTogether:
		return "TOGETHER_API_KEY"
	case APITypeNIM:
		return "NIM_API_KEY"
	case APITypeCohere:
		return "COHERE_API_KEY"
	case APITypeBedrock:
		return "AWS_SECRET_ACCESS_KEY"
	default:
		return "OPENAI_API_KEY"
	}
}

// isPlaceholder reports whether a configured key still needs resolving.
func isPlaceholder(key string) bool {
	switch key {
	case "", "REPLACE_ME", "replace_me", "your-api-key", "YOUR_API_KEY":
		return true
	}
	return false
}

// ResolveAPIKey returns the model's API key, falling back to the
// provider's conventional environment variable through the resolver
// when the configured key is empty or a placeholder.
func (m *Model) ResolveAPIKey(resolver SecretResolver) string {
	if !isPlaceholder(m.Data.APIKey) {
		return m.Data.APIKey
	}
	if resolver == nil {
		resolver = EnvResolver{}
	}
	if v, ok := resolver.Resolve(m.APIKeyEnvVar()); ok {
		return v
	}
	return ""
}
