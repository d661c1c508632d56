package factory

import (
	"fmt"

	"shopbot-be/pkg/llm"
	"shopbot-be/pkg/llm/ollama"
	"shopbot-be/pkg/llm/openai"
)

// NewLLMProvider selects the configured LLM backend.
func NewLLMProvider(provider, model, ollamaBaseURL, openAIKey string) (llm.LLMProvider, error) {
	switch provider {
	case "openai":
		if openAIKey == "" {
			return nil, fmt.Errorf("openai provider requires an API key")
		}
		return openai.NewOpenAIProvider(openAIKey, model), nil
	case "ollama":
		return ollama.NewOllamaProvider(ollamaBaseURL, model), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %s", provider)
	}
}
