package llm

import (
	"context"
	"fmt"
	"strings"
)

// Provider defines the interface for LLM rewrite providers
type Provider interface {
	// Name returns the provider name
	Name() string

	// Rewrite performs a rewrite or headline task on redacted copy
	Rewrite(ctx context.Context, req RewriteRequest) (*RewriteResponse, error)

	// IsAvailable checks if the provider is properly configured and accessible
	IsAvailable(ctx context.Context) bool
}

// Task selects what the provider is asked to produce
type Task string

const (
	// TaskRewrite rewrites article copy into clean publishable prose
	TaskRewrite Task = "rewrite"

	// TaskHeadline condenses overlong or verbose copy into a short headline
	TaskHeadline Task = "headline"
)

// RewriteRequest contains the input for an LLM rewrite call
type RewriteRequest struct {
	// Text is the article copy, ALREADY redacted. Tenant names and
	// explicit dates must never reach this field.
	Text string

	// Task is the kind of output wanted
	Task Task

	// Prompt is an optional custom prompt (if empty, use the default)
	Prompt string

	// Model is the specific model to use (provider-specific)
	Model string

	// MaxTokens limits the response length
	MaxTokens int
}

// RewriteResponse contains the LLM's output
type RewriteResponse struct {
	// Text is the rewritten copy or suggested headline
	Text string

	// Model is the model that generated the response
	Model string

	// TokensUsed tracks token consumption
	TokensUsed int
}

// Config holds LLM provider configuration
type Config struct {
	// Provider name: "openai", "anthropic", "ollama", ""
	Provider string

	// Model name (provider-specific)
	Model string

	// APIKey for OpenAI/Anthropic
	APIKey string

	// BaseURL for custom endpoints (e.g., Ollama)
	BaseURL string

	// Timeout for API requests
	Timeout int // seconds

	// RedactInput runs the sensitive-text stripper on every prompt
	// before it leaves the process (should always be true)
	RedactInput bool

	// MaxTokens for response generation
	MaxTokens int

	// Proxy settings
	HTTPProxy  string
	HTTPSProxy string
	NoProxy    string
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Provider:    "", // Disabled by default
		Model:       "",
		Timeout:     30,
		RedactInput: true, // CRITICAL: Always enforce
		MaxTokens:   1000,
	}
}

const systemPrompt = "You are a news copy editor. You rewrite citizen-reporter " +
	"copy into clean publishable prose without inventing facts, names, dates, or places."

// BuildPrompt constructs the default prompt for the given task
func BuildPrompt(task Task, body string) string {
	switch task {
	case TaskHeadline:
		return fmt.Sprintf(`Suggest one short news headline (at most 10 words) for the copy below.
Reply in the language of the copy, with the headline only: no quotes, no commentary.

Copy:
%s`, body)
	default:
		return fmt.Sprintf(`Rewrite the news copy below into clean, neutral, publishable prose.
Keep every fact; do not add names, dates, places, or opinions.
Reply in the language of the copy, with the rewritten text only.

Copy:
%s`, body)
	}
}

// cleanResponse trims whitespace and the quote marks models like to add
func cleanResponse(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, "\"'“”")
	return strings.TrimSpace(s)
}
