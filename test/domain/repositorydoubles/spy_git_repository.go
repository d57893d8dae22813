// Package repositorydoubles provides hand-crafted test doubles (spies,
// stubs, dummies) for the domain repository interfaces.
package repositorydoubles

import (
	"context"

	"github.com/commitlens/commitlens/internal/domain/entities"
)

// SpyGitRepository implements repositories.GitRepository as a configurable
// spy. Configure the response fields for the methods your test exercises,
// then inspect the call-tracking fields to verify behavior.
type SpyGitRepository struct {
	// --- RepoName ---
	RepoNameValue string

	// --- ListUnpushedCommits ---
	Commits []entities.Commit
	ListErr error
	// spy: repo dirs that were scanned
	ListedDirs []string

	// --- ChangedFiles ---
	FilesByCommit    map[string][]entities.ChangedFile
	FilesErrByCommit map[string]error

	// --- FileDiff ---
	DiffsByKey   map[string]string // "<hash>:<path>" -> diff text
	DiffErrByKey map[string]error
	// spy: keys requested, in order
	DiffRequests []string
}

func (s *SpyGitRepository) RepoName(string) string {
	return s.RepoNameValue
}

func (s *SpyGitRepository) ListUnpushedCommits(
	_ context.Context,
	repoDir, _ string,
	_ int,
) ([]entities.Commit, error) {
	s.ListedDirs = append(s.ListedDirs, repoDir)
	if s.ListErr != nil {
		return nil, s.ListErr
	}
	return s.Commits, nil
}

func (s *SpyGitRepository) ChangedFiles(
	_ context.Context,
	_, commitHash string,
) ([]entities.ChangedFile, error) {
	if err := s.FilesErrByCommit[commitHash]; err != nil {
		return nil, err
	}
	return s.FilesByCommit[commitHash], nil
}

func (s *SpyGitRepository) FileDiff(
	_ context.Context,
	_, commitHash, path string,
) (string, error) {
	key := commitHash + ":" + path
	s.DiffRequests = append(s.DiffRequests, key)
	if err := s.DiffErrByKey[key]; err != nil {
		return "", err
	}
	return s.DiffsByKey[key], nil
}
