//
// Waldiez is pleased to support the open source community by making waldiez-go available.
//
// Copyright (C) 2025 Waldiez.  All rights reserved.
//
// waldiez-go is licensed under the Apache License Version 2.0.
//
package model

// LLMConfig builds the provider config entry emitted into the
// generated script's llm_config["config_list"]. Placeholder credentials
// are resolved through the resolver; a nil resolver falls back to the
// process environment.
func (m *Model) LLMConfig(resolver SecretResolver) map[string]any {
	if resolver == nil {
		resolver = EnvResolver{}
	}
	cfg := map[string]any{
		"model": m.Name,
	}
	if m.Data.APIType != APITypeOther {
		cfg["api_type"] = string(m.Data.APIType)
	}
	if m.Data.BaseURL != "" {
		cfg["base_url"] = m.Data.BaseURL
	}
	if key := m.ResolveAPIKey(resolver); key != "" {
		cfg["api_key"] = key
	}
	if m.Data.APIVersion != "" {
		cfg["api_version"] = m.Data.APIVersion
	}
	if m.Data.Temperature != nil {
		cfg["temperature"] = *m.Data.Temperature
	}
	if m.Data.TopP != nil {
		cfg["top_p"] = *m.Data.TopP
	}
	if m.Data.MaxTokens != nil {
		cfg["max_tokens"] = *m.Data.MaxTokens
	}
	if len(m.Data.DefaultHeaders) > 0 {
		headers := make(map[string]any, len(m.Data.DefaultHeaders))
		for k, v := range m.Data.DefaultHeaders {
			headers[k] = v
		}
		cfg["default_headers"] = headers
	}
	if m.Data.Price.IsComplete() {
		cfg["price"] = []float64{
			*m.Data.Price.PromptPricePer1K,
			*m.Data.Price.CompletionTokenPrice,
		}
	}
	if m.Data.APIType == APITypeBedrock {
		m.addBedrockConfig(cfg, resolver)
	}
	for k, v := range m.Data.Extras {
		cfg[k] = v
	}
	return cfg
}

// addBedrockConfig fills in the AWS block, falling back to the
// conventional environment variables for unset fields.
func (m *Model) addBedrockConfig(cfg map[string]any, resolver SecretResolver) {
	aws := m.Data.AWS
	if aws == nil {
		aws = &AWS{}
	}
	put := func(key, configured, envVar string) {
		if configured != "" {
			cfg[key] = configured
			return
		}
		if v, ok := resolver.Resolve(envVar); ok && v != "" {
			cfg[key] = v
		}
	}
	put("aws_region", aws.Region, "AWS_REGION")
	put("aws_access_key", aws.AccessKey, "AWS_ACCESS_KEY_ID")
	put("aws_secret_key", aws.SecretKey, "AWS_SECRET_ACCESS_KEY")
	put("aws_session_token", aws.SessionToken, "AWS_SESSION_TOKEN")
	put("aws_profile_name", aws.ProfileName, "AWS_PROFILE")
}

// DefaultRequirements returns the pip extra each provider needs on top
// of the base framework package.
func (m *Model) DefaultRequirements() []string {
	switch m.Data.APIType {
	case APITypeGoogle:
		return []string{"ag2[gemini]"}
	case APITypeAnthropic:
		return []string{"ag2[anthropic]"}
	case APITypeMistral:
		return []string{"ag2[mistral]"}
	case APITypeGroq:
		return []string{"ag2[groq]"}
	case APITypeTogether:
		return []string{"ag2[together]"}
	case APITypeCohere:
		return []string{"ag2[cohere]"}
	case APITypeBedrock:
		return []string{"ag2[bedrock]"}
	default:
		return nil
	}
}
