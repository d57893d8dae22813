package commands

import (
	"context"
	"errors"

	logger "github.com/sirupsen/logrus"

	"github.com/commitlens/commitlens/internal/domain/entities"
	"github.com/commitlens/commitlens/internal/domain/repositories"
)

// ErrMissingHash indicates a change set without a commit hash.
var ErrMissingHash = errors.New("change set is missing the commit hash")

// Analyze is the interface for the commit analysis command.
type Analyze interface {
	Execute(
		ctx context.Context,
		settings *entities.Settings,
		changeSet entities.CommitChangeSet,
	) (string, error)
}

// AnalyzeCommand turns a commit change set into a four-section review
// summary. Results are cached per commit hash; when the provider call
// fails, a deterministic fallback summary is produced instead of an error
// so the caller always receives an analysis.
type AnalyzeCommand struct {
	analyzers repositories.AnalyzerFactory
	store     repositories.SummaryRepository
}

// NewAnalyzeCommand creates a new AnalyzeCommand with the given provider
// factory and summary store.
func NewAnalyzeCommand(
	analyzers repositories.AnalyzerFactory,
	store repositories.SummaryRepository,
) *AnalyzeCommand {
	return &AnalyzeCommand{
		analyzers: analyzers,
		store:     store,
	}
}

// Execute analyzes one commit change set and returns the summary text.
func (it *AnalyzeCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	changeSet entities.CommitChangeSet,
) (string, error) {
	if changeSet.Hash == "" {
		return "", ErrMissingHash
	}

	if cached, ok := it.store.Get(changeSet.Hash); ok {
		logger.Infof("Found cached analysis for commit %s", changeSet.Hash)
		return cached.Summary, nil
	}

	logger.Infof(
		"Analyzing commit %s by %s (%d files changed)",
		changeSet.Hash, changeSet.AuthorName, len(changeSet.Changes),
	)

	analyzer := it.analyzers.Create(settings.LLM)

	summary, err := analyzer.Analyze(
		ctx,
		entities.AnalysisSystemPrompt,
		entities.AnalysisPrompt(changeSet),
	)
	if err != nil {
		logger.Warnf(
			"Provider %q failed for commit %s, using fallback summary: %v",
			analyzer.Name(), changeSet.Hash, err,
		)
		summary = entities.FallbackSummary(changeSet)
	}

	it.store.Put(changeSet.Hash, repositories.AnalyzedCommit{
		ChangeSet: changeSet,
		Summary:   summary,
	})

	return summary, nil
}
