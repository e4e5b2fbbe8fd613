package service

import (
	"context"
	"fmt"

	"github.com/pageza/pantrychef/backend/config"
)

// NewGeneratorFromConfig builds the generator for cfg.LLMProvider. It
// returns nil when the provider is "none" or its API key is missing.
func NewGeneratorFromConfig(ctx context.Context, cfg *config.Config) (RecipeGenerator, error) {
	switch cfg.LLMProvider {
	case config.ProviderGemini:
		if cfg.GeminiAPIKey == "" {
			return nil, nil
		}
		g, err := NewGeminiGenerator(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			return nil, err
		}
		return g, nil
	case config.ProviderDeepSeek:
		if cfg.DeepSeekAPIKey == "" {
			return nil, nil
		}
		return NewDeepSeekGenerator(cfg.DeepSeekAPIKey, cfg.DeepSeekAPIURL, cfg.DeepSeekModel), nil
	case config.ProviderNone, "":
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", cfg.LLMProvider)
	}
}
