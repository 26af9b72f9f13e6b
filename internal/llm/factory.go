package llm

import (
	"fmt"
	"strings"

	"dateline/internal/model"
)

// NewProvider creates a new LLM provider based on configuration
func NewProvider(config Config) (Provider, error) {
	provider := strings.ToLower(config.Provider)

	switch provider {
	case "openai":
		return NewOpenAIProvider(config)

	case "anthropic", "claude":
		return NewAnthropicProvider(config)

	case "ollama":
		return NewOllamaProvider(config)

	case "":
		// No provider configured - return nil (LLM disabled)
		return nil, nil

	default:
		return nil, fmt.Errorf("unknown LLM provider: %s (supported: openai, anthropic, ollama)", config.Provider)
	}
}

// ConfigFromModel converts model configuration to llm.Config
func ConfigFromModel(llmConfig model.LLMConfig, httpConfig model.HTTPConfig) Config {
	return Config{
		Provider:    llmConfig.Provider,
		Model:       llmConfig.Model,
		APIKey:      llmConfig.APIKey,
		BaseURL:     llmConfig.BaseURL,
		Timeout:     llmConfig.Timeout,
		RedactInput: llmConfig.RedactInput,
		MaxTokens:   llmConfig.MaxTokens,
		HTTPProxy:   httpConfig.HTTPProxy,
		HTTPSProxy:  httpConfig.HTTPSProxy,
		NoProxy:     httpConfig.NoProxy,
	}
}
