package model

import "time"

// Config holds the complete dateline configuration
type Config struct {
	Tenant      Tenant            `json:"tenant" yaml:"tenant"`
	HTTP        HTTPConfig        `json:"http" yaml:"http"`
	Cache       CacheConfig       `json:"cache" yaml:"cache"`
	LLM         LLMConfig         `json:"llm" yaml:"llm"`
	Places      PlacesConfig      `json:"places" yaml:"places"`
	Concurrency ConcurrencyConfig `json:"concurrency" yaml:"concurrency"`
	Output      OutputConfig      `json:"output" yaml:"output"`
}

// HTTPConfig controls outbound HTTP behavior (LLM and location search)
type HTTPConfig struct {
	Timeout      time.Duration `json:"timeout" yaml:"timeout"`
	UserAgent    string        `json:"user_agent" yaml:"user_agent"`
	MaxBodyBytes int64         `json:"max_body_bytes" yaml:"max_body_bytes"`

	// Proxy settings (fall back to environment when empty)
	HTTPProxy  string `json:"http_proxy,omitempty" yaml:"http_proxy"`
	HTTPSProxy string `json:"https_proxy,omitempty" yaml:"https_proxy"`
	NoProxy    string `json:"no_proxy,omitempty" yaml:"no_proxy"`
}

// CacheConfig controls the layered cache used by the location-search client
type CacheConfig struct {
	Enabled   bool          `json:"enabled" yaml:"enabled"`
	Dir       string        `json:"dir" yaml:"dir"`
	MemoryTTL time.Duration `json:"memory_ttl" yaml:"memory_ttl"`
	DiskTTL   time.Duration `json:"disk_ttl" yaml:"disk_ttl"`
}

// LLMConfig holds rewrite-provider configuration
type LLMConfig struct {
	// Provider name: "openai", "anthropic", "ollama", "" (disabled)
	Provider string `json:"provider" yaml:"provider"`

	// Model name (provider-specific)
	Model string `json:"model" yaml:"model"`

	// APIKey for OpenAI/Anthropic
	APIKey string `json:"-" yaml:"-"`

	// BaseURL for custom endpoints (e.g., Ollama)
	BaseURL string `json:"base_url,omitempty" yaml:"base_url"`

	// Timeout for API requests, in seconds
	Timeout int `json:"timeout" yaml:"timeout"`

	// MaxTokens for response generation
	MaxTokens int `json:"max_tokens" yaml:"max_tokens"`

	// RedactInput runs the sensitive-text stripper before any prompt
	// leaves the process (should always be true)
	RedactInput bool `json:"redact_input" yaml:"redact_input"`

	// HeadlineRuneLimit: titles longer than this trigger an LLM headline
	// suggestion when a provider is configured
	HeadlineRuneLimit int `json:"headline_rune_limit" yaml:"headline_rune_limit"`
}

// PlacesConfig controls the location-search client
type PlacesConfig struct {
	Enabled        bool          `json:"enabled" yaml:"enabled"`
	BaseURL        string        `json:"base_url" yaml:"base_url"`
	RatePerSecond  float64       `json:"rate_per_second" yaml:"rate_per_second"`
	Burst          int           `json:"burst" yaml:"burst"`
	MaxResults     int           `json:"max_results" yaml:"max_results"`
	RequestTimeout time.Duration `json:"request_timeout" yaml:"request_timeout"`
}

// ConcurrencyConfig controls worker counts
type ConcurrencyConfig struct {
	ParseWorkers int `json:"parse_workers" yaml:"parse_workers"`
}

// OutputConfig controls rendering
type OutputConfig struct {
	Verbose       bool `json:"verbose" yaml:"verbose"`
	IncludeFooter bool `json:"include_footer" yaml:"include_footer"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Timeout:      30 * time.Second,
			UserAgent:    "Dateline/0.1 (+https://github.com/dateline/dateline)",
			MaxBodyBytes: 2_000_000,
		},
		Cache: CacheConfig{
			Enabled:   true,
			MemoryTTL: 15 * time.Minute,
			DiskTTL:   24 * time.Hour,
		},
		LLM: LLMConfig{
			Provider:          "",
			Timeout:           30,
			MaxTokens:         1000,
			RedactInput:       true,
			HeadlineRuneLimit: 80,
		},
		Places: PlacesConfig{
			Enabled:        false,
			BaseURL:        "https://nominatim.openstreetmap.org",
			RatePerSecond:  1,
			Burst:          2,
			MaxResults:     5,
			RequestTimeout: 10 * time.Second,
		},
		Concurrency: ConcurrencyConfig{
			ParseWorkers: 4,
		},
		Output: OutputConfig{
			IncludeFooter: true,
		},
	}
}
