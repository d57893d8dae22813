// Package git implements the version-control boundary on top of a local
// checkout: go-git for log traversal and metadata, the git binary for the
// name-status and zero-context diff views.
package git

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"
	logger "github.com/sirupsen/logrus"

	"github.com/commitlens/commitlens/internal/domain/entities"
	"github.com/commitlens/commitlens/internal/domain/repositories"
)

// CLIRepository implements repositories.GitRepository against a repository
// on the local filesystem.
type CLIRepository struct{}

// NewCLIRepository creates a new CLIRepository.
func NewCLIRepository() repositories.GitRepository {
	return &CLIRepository{}
}

// RepoName derives a repository name from the origin remote URL, falling
// back to the directory base name when no usable remote exists.
func (it *CLIRepository) RepoName(repoDir string) string {
	repo, err := gogit.PlainOpen(repoDir)
	if err != nil {
		return filepath.Base(repoDir)
	}

	remote, remoteErr := repo.Remote(gogit.DefaultRemoteName)
	if remoteErr != nil || len(remote.Config().URLs) == 0 {
		return filepath.Base(repoDir)
	}

	if name := repoNameFromURL(remote.Config().URLs[0]); name != "" {
		return name
	}
	return filepath.Base(repoDir)
}

// repoNameFromURL extracts the repository name from an HTTPS or SSH remote
// URL (last path segment, ".git" suffix stripped).
func repoNameFromURL(rawURL string) string {
	cleaned := strings.TrimSuffix(strings.TrimSuffix(rawURL, "/"), ".git")

	// SSH form: git@host:org/repo
	if idx := strings.LastIndex(cleaned, ":"); idx >= 0 && !strings.Contains(cleaned[idx:], "/") {
		return cleaned[idx+1:]
	}

	segments := strings.Split(cleaned, "/")
	return segments[len(segments)-1]
}

// ListUnpushedCommits returns the commits reachable from HEAD but not from
// the upstream tracking ref on the given remote, oldest first. A missing
// upstream means the whole branch is unpushed; the walk never collects more
// than maxCommits commits either way.
func (it *CLIRepository) ListUnpushedCommits(
	ctx context.Context,
	repoDir, remote string,
	maxCommits int,
) ([]entities.Commit, error) {
	repo, err := gogit.PlainOpen(repoDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open repository %q: %w", repoDir, err)
	}

	head, headErr := repo.Head()
	if headErr != nil {
		return nil, fmt.Errorf("failed to resolve HEAD: %w", headErr)
	}

	pushed, pushedErr := it.pushedHashes(repo, head, remote)
	if pushedErr != nil {
		return nil, pushedErr
	}

	commits, walkErr := walkUntilPushed(ctx, repo, head.Hash(), pushed, maxCommits)
	if walkErr != nil {
		return nil, walkErr
	}

	// Oldest first, so downstream consumers see commits in commit order.
	for i, j := 0, len(commits)-1; i < j; i, j = i+1, j-1 {
		commits[i], commits[j] = commits[j], commits[i]
	}

	return commits, nil
}

// pushedHashes collects every commit hash reachable from the upstream
// tracking ref of the current branch. An absent upstream yields an empty
// set: nothing on the branch has been pushed.
func (it *CLIRepository) pushedHashes(
	repo *gogit.Repository,
	head *plumbing.Reference,
	remote string,
) (map[plumbing.Hash]bool, error) {
	pushed := make(map[plumbing.Hash]bool)

	if !head.Name().IsBranch() {
		logger.Debug("HEAD is detached, treating all reachable commits as unpushed")
		return pushed, nil
	}

	upstreamName := plumbing.NewRemoteReferenceName(remote, head.Name().Short())
	upstream, err := repo.Reference(upstreamName, true)
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			logger.Debugf("No upstream ref %s, treating the branch as unpushed", upstreamName)
			return pushed, nil
		}
		return nil, fmt.Errorf("failed to resolve upstream ref %s: %w", upstreamName, err)
	}

	iter, logErr := repo.Log(&gogit.LogOptions{From: upstream.Hash()})
	if logErr != nil {
		return nil, fmt.Errorf("failed to walk upstream history: %w", logErr)
	}
	defer iter.Close()

	forEachErr := iter.ForEach(func(commit *object.Commit) error {
		pushed[commit.Hash] = true
		return nil
	})
	if forEachErr != nil {
		return nil, fmt.Errorf("failed to walk upstream history: %w", forEachErr)
	}

	return pushed, nil
}

// walkUntilPushed walks the local history from head, collecting commits
// until a pushed commit or the maxCommits bound is reached.
func walkUntilPushed(
	ctx context.Context,
	repo *gogit.Repository,
	head plumbing.Hash,
	pushed map[plumbing.Hash]bool,
	maxCommits int,
) ([]entities.Commit, error) {
	iter, err := repo.Log(&gogit.LogOptions{From: head})
	if err != nil {
		return nil, fmt.Errorf("failed to walk local history: %w", err)
	}
	defer iter.Close()

	var commits []entities.Commit

	walkErr := iter.ForEach(func(commit *object.Commit) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if pushed[commit.Hash] || len(commits) >= maxCommits {
			return storer.ErrStop
		}

		commits = append(commits, entities.Commit{
			Hash:        commit.Hash.String(),
			AuthorName:  commit.Author.Name,
			AuthorEmail: commit.Author.Email,
			Message:     strings.TrimSpace(commit.Message),
			Date:        commit.Author.When.Format(time.RFC3339),
		})
		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("failed to walk local history: %w", walkErr)
	}

	return commits, nil
}

// ChangedFiles runs a name-status diff of one commit against its parent.
func (it *CLIRepository) ChangedFiles(
	ctx context.Context,
	repoDir, commitHash string,
) ([]entities.ChangedFile, error) {
	output, err := runGit(ctx, repoDir, "show", "--name-status", "--pretty=format:", commitHash)
	if err != nil {
		return nil, fmt.Errorf("git show --name-status %s: %w", commitHash, err)
	}

	return entities.ParseNameStatus(output), nil
}

// FileDiff returns the zero-context unified diff of one file within one
// commit. Binary files and pure renames produce no hunks; the empty result
// simply yields a zero-change record downstream.
func (it *CLIRepository) FileDiff(
	ctx context.Context,
	repoDir, commitHash, path string,
) (string, error) {
	output, err := runGit(
		ctx, repoDir,
		"show", "--unified=0", "--pretty=format:", commitHash, "--", path,
	)
	if err != nil {
		return "", fmt.Errorf("git show -U0 %s -- %s: %w", commitHash, path, err)
	}

	return output, nil
}

// runGit executes one git invocation inside repoDir and returns stdout.
func runGit(ctx context.Context, repoDir string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = repoDir

	output, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
			return "", fmt.Errorf("%w: %s", err, strings.TrimSpace(string(exitErr.Stderr)))
		}
		return "", err
	}

	return string(output), nil
}
