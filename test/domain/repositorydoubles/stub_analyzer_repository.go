package repositorydoubles

import (
	"context"

	"github.com/commitlens/commitlens/internal/domain/entities"
	"github.com/commitlens/commitlens/internal/domain/repositories"
)

// StubAnalyzerFactory implements repositories.AnalyzerFactory, handing out
// a single shared stub analyzer.
type StubAnalyzerFactory struct {
	Analyzer *StubAnalyzerRepository
	// spy: settings passed to Create
	CreatedWith []entities.LLMSettings
}

func (s *StubAnalyzerFactory) Create(settings entities.LLMSettings) repositories.AnalyzerRepository {
	s.CreatedWith = append(s.CreatedWith, settings)
	return s.Analyzer
}

// StubAnalyzerRepository implements repositories.AnalyzerRepository with a
// canned summary or error.
type StubAnalyzerRepository struct {
	Summary string
	Err     error
	// spy: call tracking
	CallCount      int
	LastUserPrompt string
}

func (s *StubAnalyzerRepository) Name() string { return "stub" }

func (s *StubAnalyzerRepository) Analyze(
	_ context.Context,
	_, userPrompt string,
) (string, error) {
	s.CallCount++
	s.LastUserPrompt = userPrompt
	if s.Err != nil {
		return "", s.Err
	}
	return s.Summary, nil
}
