package llm

import "fmt"

const defaultMistralBaseURL = "https://api.mistral.ai/v1"

// mistralModels maps friendly names to Mistral model IDs.
var mistralModels = map[string]string{
	"mistral-small":  "mistral-small-latest",
	"mistral-medium": "mistral-medium-latest",
	"mistral-large":  "mistral-large-latest",
}

// MistralProvider wraps OpenAIProvider with Mistral-specific defaults.
// La Plateforme exposes an OpenAI-compatible API, so the underlying SDK
// is reused the same way the OpenRouter provider does.
type MistralProvider struct {
	*OpenAIProvider
}

// NewMistralProvider creates a provider targeting the Mistral API.
func NewMistralProvider(cfg MistralConfig) (*MistralProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("mistral API key is required")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultMistralBaseURL
	}

	inner, err := newOpenAIProviderRaw(OpenAIConfig{
		APIKey:  cfg.APIKey,
		Model:   resolveModel(cfg.Model, mistralModels),
		BaseURL: baseURL,
	})
	if err != nil {
		return nil, err
	}

	return &MistralProvider{OpenAIProvider: inner}, nil
}
