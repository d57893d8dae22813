package repositories

import (
	"context"

	"github.com/commitlens/commitlens/internal/domain/entities"
)

// AnalyzerRepository abstracts the language-model provider that turns an
// analysis prompt into a summary.
type AnalyzerRepository interface {
	// Name returns the provider identifier (e.g. "openai").
	Name() string

	// Analyze sends the system and user prompts to the provider and
	// returns the generated summary text.
	Analyze(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// AnalyzerFactory builds a provider from the runtime LLM settings.
type AnalyzerFactory interface {
	Create(settings entities.LLMSettings) AnalyzerRepository
}
