package repositories

import "github.com/commitlens/commitlens/internal/domain/entities"

// AnalyzedCommit pairs a stored change set with its analysis summary.
type AnalyzedCommit struct {
	ChangeSet entities.CommitChangeSet
	Summary   string
}

// SummaryRepository stores analysis results keyed by short commit hash so
// repeated analyze calls for the same commit are served from the store.
// Implementations must be safe for concurrent use.
type SummaryRepository interface {
	Get(hash string) (AnalyzedCommit, bool)
	Put(hash string, analyzed AnalyzedCommit)
	All() []AnalyzedCommit
}
