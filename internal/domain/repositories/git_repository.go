package repositories

import (
	"context"

	"github.com/commitlens/commitlens/internal/domain/entities"
)

// GitRepository abstracts the version-control side of change extraction:
// finding unpushed commits and producing the two diff views the aggregator
// consumes (name-status listing and per-file zero-context diff text).
type GitRepository interface {
	// RepoName returns a human-readable name for the repository, derived
	// from the origin remote when one exists.
	RepoName(repoDir string) string

	// ListUnpushedCommits returns the commits reachable from HEAD but not
	// from its upstream tracking ref, oldest first. The walk never collects
	// more than maxCommits commits; an absent upstream makes the whole
	// branch count as unpushed.
	ListUnpushedCommits(ctx context.Context, repoDir, remote string, maxCommits int) ([]entities.Commit, error)

	// ChangedFiles lists the files touched by a single commit together
	// with their name-status letter, in the order git emits them.
	ChangedFiles(ctx context.Context, repoDir, commitHash string) ([]entities.ChangedFile, error)

	// FileDiff returns the zero-context unified diff of one file within
	// one commit. An empty string means the file carries no textual diff.
	FileDiff(ctx context.Context, repoDir, commitHash, path string) (string, error)
}
