package llm

import (
	"career_coach_backend/internal/config"
	"context"
	"fmt"
)

// NewCompleter builds the configured provider, wrapped with metrics
// instrumentation.
func NewCompleter(ctx context.Context, cfg config.AIConfig) (Completer, error) {
	var (
		inner Completer
		err   error
	)

	switch cfg.Provider {
	case "gemini", "":
		inner, err = NewGeminiCompleter(ctx, cfg.APIKey, cfg.Model)
	case "openai":
		inner = NewOpenAICompleter(cfg.BaseURL, cfg.APIKey, cfg.Model)
	default:
		return nil, fmt.Errorf("unknown AI provider %q", cfg.Provider)
	}
	if err != nil {
		return nil, err
	}

	return instrumented{inner: inner}, nil
}
