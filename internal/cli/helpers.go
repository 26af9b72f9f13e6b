package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"dateline/internal/model"
)

// applyTenant fills tenant names from flags, falling back to the config file
func applyTenant(cfg *model.Config, name, nativeName string) {
	if name == "" {
		name = viper.GetString("tenant.name")
	}
	if nativeName == "" {
		nativeName = viper.GetString("tenant.native_name")
	}
	cfg.Tenant = model.Tenant{Name: name, NativeName: nativeName}
}

// configureLLM enables the configured provider, pulling the API key from
// the environment. Keys never live in config files.
func configureLLM(cfg *model.Config, provider, llmModel string) error {
	cfg.LLM.Provider = provider
	cfg.LLM.Model = llmModel
	cfg.LLM.RedactInput = true // Always enforce

	switch provider {
	case "openai":
		cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
		if cfg.LLM.APIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
	case "anthropic", "claude":
		cfg.LLM.APIKey = os.Getenv("ANTHROPIC_API_KEY")
		if cfg.LLM.APIKey == "" {
			return fmt.Errorf("ANTHROPIC_API_KEY environment variable not set")
		}
	case "ollama":
		// Ollama doesn't need an API key
		if baseURL := os.Getenv("OLLAMA_BASE_URL"); baseURL != "" {
			cfg.LLM.BaseURL = baseURL
		}
	}

	return nil
}

// defaultCacheDir returns the on-disk cache location
func defaultCacheDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".dateline", "cache")
}

// readInput reads pasted copy from the file argument, or stdin when the
// argument is missing or "-"
func readInput(args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("read file: %w", err)
	}
	return string(data), nil
}

// outputSlug derives an output file stem from an input path
func outputSlug(path string) string {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	return base[:len(base)-len(ext)]
}
