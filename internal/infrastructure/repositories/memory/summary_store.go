// Package memory holds the in-memory analysis store used by the serve mode.
package memory

import (
	"sync"

	"github.com/commitlens/commitlens/internal/domain/repositories"
)

// SummaryStore is a mutex-guarded map from short commit hash to analysis.
type SummaryStore struct {
	mu    sync.RWMutex
	byID  map[string]repositories.AnalyzedCommit
	order []string // insertion order, for stable listings
}

// NewSummaryStore creates an empty SummaryStore.
func NewSummaryStore() repositories.SummaryRepository {
	return &SummaryStore{
		byID: make(map[string]repositories.AnalyzedCommit),
	}
}

// Get returns the stored analysis for the given hash.
func (it *SummaryStore) Get(hash string) (repositories.AnalyzedCommit, bool) {
	it.mu.RLock()
	defer it.mu.RUnlock()

	analyzed, ok := it.byID[hash]
	return analyzed, ok
}

// Put stores or replaces the analysis for the given hash.
func (it *SummaryStore) Put(hash string, analyzed repositories.AnalyzedCommit) {
	it.mu.Lock()
	defer it.mu.Unlock()

	if _, exists := it.byID[hash]; !exists {
		it.order = append(it.order, hash)
	}
	it.byID[hash] = analyzed
}

// All returns every stored analysis in insertion order.
func (it *SummaryStore) All() []repositories.AnalyzedCommit {
	it.mu.RLock()
	defer it.mu.RUnlock()

	all := make([]repositories.AnalyzedCommit, 0, len(it.order))
	for _, hash := range it.order {
		all = append(all, it.byID[hash])
	}
	return all
}
