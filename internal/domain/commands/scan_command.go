package commands

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	logger "github.com/sirupsen/logrus"

	"github.com/commitlens/commitlens/internal/domain/entities"
	"github.com/commitlens/commitlens/internal/domain/repositories"
)

// Scan is the interface for the scan command.
type Scan interface {
	Execute(ctx context.Context, settings *entities.Settings, opts ScanOptions) error
}

// ScanOptions holds runtime options for a single scan.
type ScanOptions struct {
	RepoDir string
	DryRun  bool
	Verbose bool
}

// ScanCommand orchestrates the full extraction flow: list unpushed commits,
// build one change set per commit, publish each to the configured endpoint.
// Failures are isolated to their smallest scope — a file that cannot be
// diffed degrades to a zero-change record, a commit that cannot be listed
// or delivered is logged and skipped — so one bad item never aborts the run.
type ScanCommand struct {
	git        repositories.GitRepository
	publishers repositories.PublisherFactory
}

// NewScanCommand creates a new ScanCommand with the given collaborators.
func NewScanCommand(
	git repositories.GitRepository,
	publishers repositories.PublisherFactory,
) *ScanCommand {
	return &ScanCommand{
		git:        git,
		publishers: publishers,
	}
}

// Execute runs one scan over the repository at opts.RepoDir.
func (it *ScanCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts ScanOptions,
) error {
	if opts.Verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	repoDir, err := filepath.Abs(opts.RepoDir)
	if err != nil {
		return fmt.Errorf("invalid path: %w", err)
	}

	if settings.Endpoint == "" && !opts.DryRun {
		return errors.New("no publish endpoint configured; set endpoint in the config file or use --dry-run")
	}
	publisher := it.publishers.Create(settings.Endpoint)

	commits, listErr := it.git.ListUnpushedCommits(ctx, repoDir, settings.Remote, settings.MaxCommits)
	if listErr != nil {
		return fmt.Errorf("failed to list unpushed commits: %w", listErr)
	}

	if len(commits) == 0 {
		logger.Info("No unpushed commits found, nothing to do.")
		return nil
	}

	repoName := it.git.RepoName(repoDir)
	logger.Infof("Found %d unpushed commits in %q", len(commits), repoName)

	published := 0
	errorCount := 0

	for _, commit := range commits {
		changeSet, buildErr := it.buildChangeSet(ctx, repoDir, repoName, commit)
		if buildErr != nil {
			logger.Errorf("Failed to extract changes for %s: %v", commit.ShortHash(), buildErr)
			errorCount++
			continue
		}

		logger.Debugf(
			"[%s] %d files changed: %q",
			changeSet.Hash, len(changeSet.Changes), changeSet.Message,
		)

		if opts.DryRun {
			logger.Infof("[DRY RUN] Would publish change set for %s (%d files)",
				changeSet.Hash, len(changeSet.Changes))
			continue
		}

		if publishErr := publisher.Publish(ctx, changeSet); publishErr != nil {
			logger.Errorf("Failed to publish change set for %s: %v", changeSet.Hash, publishErr)
			errorCount++
			continue
		}

		published++
	}

	logger.Infof(
		"Scan complete: %d unpushed commits, %d published, %d errors",
		len(commits), published, errorCount,
	)
	return nil
}

// buildChangeSet assembles the change set for a single commit. Per-file
// diff failures are logged and recorded as zero-change entries; only a
// failing name-status listing aborts the commit.
func (it *ScanCommand) buildChangeSet(
	ctx context.Context,
	repoDir, repoName string,
	commit entities.Commit,
) (entities.CommitChangeSet, error) {
	changeSet := entities.CommitChangeSet{
		RepoName:    repoName,
		AuthorName:  commit.AuthorName,
		AuthorEmail: commit.AuthorEmail,
		Hash:        commit.ShortHash(),
		Message:     commit.Message,
		Date:        commit.Date,
		Changes:     []entities.FileChange{},
	}

	files, err := it.git.ChangedFiles(ctx, repoDir, commit.Hash)
	if err != nil {
		return entities.CommitChangeSet{}, fmt.Errorf("name-status diff: %w", err)
	}

	seen := make(map[string]bool, len(files))
	for _, file := range files {
		if seen[file.Path] {
			continue
		}
		seen[file.Path] = true

		changeSet.Changes = append(changeSet.Changes, it.buildFileChange(ctx, repoDir, commit, file))
	}

	return changeSet, nil
}

func (it *ScanCommand) buildFileChange(
	ctx context.Context,
	repoDir string,
	commit entities.Commit,
	file entities.ChangedFile,
) entities.FileChange {
	fileChange := entities.FileChange{
		FilePath: file.Path,
		Status:   file.Status,
		Changes:  []entities.LineChange{},
	}

	diffText, err := it.git.FileDiff(ctx, repoDir, commit.Hash, file.Path)
	if err != nil {
		logger.Errorf(
			"[%s] Failed to diff %s, recording it without line changes: %v",
			commit.ShortHash(), file.Path, err,
		)
		return fileChange
	}

	parsed := entities.ParseUnifiedDiff(diffText)
	fileChange.Additions = parsed.Additions
	fileChange.Deletions = parsed.Deletions
	if parsed.Changes != nil {
		fileChange.Changes = parsed.Changes
	}

	return fileChange
}
