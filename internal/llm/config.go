package llm

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config selects and configures an LLM provider.
type Config struct {
	// Provider is one of: mistral, anthropic, openai, gemini, openrouter, mock.
	Provider string

	Mistral    MistralConfig
	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig

	Retry RetryConfig
}

// MistralConfig configures the Mistral provider.
type MistralConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// AnthropicConfig configures the Anthropic provider.
type AnthropicConfig struct {
	APIKey string
	Model  string
}

// OpenAIConfig configures the OpenAI provider (and the
// OpenAI-compatible wrappers, which set BaseURL).
type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// GeminiConfig configures the Gemini provider.
type GeminiConfig struct {
	APIKey string
	Model  string
}

// OpenRouterConfig configures the OpenRouter provider.
type OpenRouterConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// RetryConfig controls the retry decorator.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig returns the default provider configuration. Retries are
// off by default: generation either succeeds or surfaces its error.
func DefaultConfig() Config {
	return Config{
		Provider: "mistral",
		Mistral: MistralConfig{
			Model: "mistral-medium",
		},
		Retry: RetryConfig{
			MaxAttempts: 1,
			InitialWait: 1 * time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
	}
}

// ConfigFromEnv builds a Config from LEARNMATE_* environment variables,
// falling back to the standard provider key variables.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if p := os.Getenv("LEARNMATE_LLM_PROVIDER"); p != "" {
		cfg.Provider = p
	}
	if m := os.Getenv("LEARNMATE_LLM_MODEL"); m != "" {
		cfg.Mistral.Model = m
		cfg.Anthropic.Model = m
		cfg.OpenAI.Model = m
		cfg.Gemini.Model = m
		cfg.OpenRouter.Model = m
	}
	if n := os.Getenv("LEARNMATE_LLM_MAX_ATTEMPTS"); n != "" {
		if attempts, err := strconv.Atoi(n); err == nil && attempts > 0 {
			cfg.Retry.MaxAttempts = attempts
		}
	}

	cfg.Mistral.APIKey = os.Getenv("MISTRAL_API_KEY")
	cfg.Mistral.BaseURL = os.Getenv("LEARNMATE_MISTRAL_BASE_URL")
	cfg.Anthropic.APIKey = os.Getenv("ANTHROPIC_API_KEY")
	cfg.OpenAI.APIKey = os.Getenv("OPENAI_API_KEY")
	cfg.Gemini.APIKey = os.Getenv("GEMINI_API_KEY")
	cfg.OpenRouter.APIKey = os.Getenv("OPENROUTER_API_KEY")

	return cfg
}

// DiscoverConfig picks a provider by scanning for API keys when the
// configured provider has none. Mistral wins ties as the default
// upstream; the rest follow in discovery order.
func DiscoverConfig() (Config, bool) {
	cfg := ConfigFromEnv()

	switch {
	case cfg.Mistral.APIKey != "":
		cfg.Provider = "mistral"
	case cfg.Gemini.APIKey != "":
		cfg.Provider = "gemini"
	case cfg.OpenAI.APIKey != "":
		cfg.Provider = "openai"
	case cfg.Anthropic.APIKey != "":
		cfg.Provider = "anthropic"
	case cfg.OpenRouter.APIKey != "":
		cfg.Provider = "openrouter"
	default:
		return cfg, false
	}
	return cfg, true
}

// Validate checks that the selected provider has what it needs.
func (c Config) Validate() error {
	switch c.Provider {
	case "mistral":
		if c.Mistral.APIKey == "" {
			return fmt.Errorf("MISTRAL_API_KEY is required for the mistral provider")
		}
	case "anthropic":
		if c.Anthropic.APIKey == "" {
			return fmt.Errorf("ANTHROPIC_API_KEY is required for the anthropic provider")
		}
	case "openai":
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY is required for the openai provider")
		}
	case "gemini":
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY is required for the gemini provider")
		}
	case "openrouter":
		if c.OpenRouter.APIKey == "" {
			return fmt.Errorf("OPENROUTER_API_KEY is required for the openrouter provider")
		}
	case "mock":
		// No key needed.
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	return nil
}
