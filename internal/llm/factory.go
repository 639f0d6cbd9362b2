package llm

import (
	"context"
	"fmt"
	"strings"
)

type ClientOptions struct {
	Provider string
	APIKey   string
	Model    string
	BaseURL  string
}

func NewClient(ctx context.Context, opts ClientOptions) (Client, error) {
	provider := strings.ToLower(strings.TrimSpace(opts.Provider))
	if provider == "" {
		provider = "gemini"
	}

	switch provider {
	case "gemini":
		return NewGeminiClient(ctx, opts.APIKey, opts.Model)
	case "openai":
		return NewOpenAIClient(opts.APIKey, opts.Model, opts.BaseURL), nil
	default:
		return nil, fmt.Errorf("unsupported completion provider: %s", opts.Provider)
	}
}
