//
// Waldiez is pleased to support the open source community by making waldiez-go available.
//
// Copyright (C) 2025 Waldiez.  All rights reserved.
//
// waldiez-go is licensed under the Apache License Version 2.0.
//
package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(f float64) *float64 { return &f }

func TestModelValidate(t *testing.T) {
	m := &Model{ID: "m1", Name: "gpt-4o", Data: Data{APIType: APITypeOpenAI}}
	require.NoError(t, m.Validate())

	assert.Error(t, (&Model{Name: "x"}).Validate())
	assert.Error(t, (&Model{ID: "m1"}).Validate())
	assert.Error(t, (&Model{ID: "m1", Name: "x", Data: Data{APIType: "bogus"}}).Validate())

	// Azure requires a base url.
	azure := &Model{ID: "m2", Name: "gpt", Data: Data{APIType: APITypeAzure}}
	assert.Error(t, azure.Validate())
	azure.Data.BaseURL = "https://example.azure.com"
	assert.NoError(t, azure.Validate())
}

func TestModelValidateDefaultsAPIType(t *testing.T) {
	m := &Model{ID: "m1", Name: "local"}
	require.NoError(t, m.Validate())
	assert.Equal(t, APITypeOther, m.Data.APIType)
}

func TestHalfPriceResolvesToNone(t *testing.T) {
	m := &Model{
		ID: "m1", Name: "gpt",
		Data: Data{APIType: APITypeOpenAI, Price: &Price{PromptPricePer1K: floatPtr(0.01)}},
	}
	require.NoError(t, m.Validate())
	assert.Nil(t, m.Data.Price)
}

func TestLLMConfigBasics(t *testing.T) {
	m := &Model{
		ID: "m1", Name: "gpt-4o",
		Data: Data{
			APIType:     APITypeOpenAI,
			APIKey:      "sk-test",
			Temperature: floatPtr(0.4),
			Price: &Price{
				PromptPricePer1K:     floatPtr(0.01),
				CompletionTokenPrice: floatPtr(0.03),
			},
		},
	}
	cfg := m.LLMConfig(MapResolver{})
	assert.Equal(t, "gpt-4o", cfg["model"])
	assert.Equal(t, "openai", cfg["api_type"])
	assert.Equal(t, "sk-test", cfg["api_key"])
	assert.Equal(t, 0.4, cfg["temperature"])
	assert.Equal(t, []float64{0.01, 0.03}, cfg["price"])
}

func TestLLMConfigBedrockEnvFallback(t *testing.T) {
	m := &Model{ID: "m1", Name: "claude", Data: Data{APIType: APITypeBedrock}}
	t.Setenv("AWS_REGION", "us-east-1")
	cfg := m.LLMConfig(nil)
	assert.Equal(t, "us-east-1", cfg["aws_region"])
}

func TestLLMConfigBedrockExplicitBlockWins(t *testing.T) {
	m := &Model{
		ID: "m1", Name: "claude",
		Data: Data{APIType: APITypeBedrock, AWS: &AWS{Region: "eu-west-1"}},
	}
	cfg := m.LLMConfig(MapResolver{"AWS_REGION": "us-east-1"})
	assert.Equal(t, "eu-west-1", cfg["aws_region"])
}

func TestResolveAPIKeyPlaceholder(t *testing.T) {
	m := &Model{ID: "m1", Name: "gpt", Data: Data{APIType: APITypeOpenAI, APIKey: "REPLACE_ME"}}
	got := m.ResolveAPIKey(MapResolver{"OPENAI_API_KEY": "sk-env"})
	assert.Equal(t, "sk-env", got)

	m.Data.APIKey = "sk-real"
	assert.Equal(t, "sk-real", m.ResolveAPIKey(MapResolver{"OPENAI_API_KEY": "sk-env"}))
}

func TestChainResolver(t *testing.T) {
	chain := ChainResolver{
		MapResolver{},
		MapResolver{"KEY": "second"},
	}
	v, ok := chain.Resolve("KEY")
	require.True(t, ok)
	assert.Equal(t, "second", v)

	_, ok = chain.Resolve("MISSING")
	assert.False(t, ok)
}

func TestDefaultRequirements(t *testing.T) {
	m := &Model{ID: "m", Name: "n", Data: Data{APIType: APITypeAnthropic}}
	assert.Equal(t, []string{"ag2[anthropic]"}, m.DefaultRequirements())
	m.Data.APIType = APITypeOpenAI
	assert.Nil(t, m.DefaultRequirements())
}
