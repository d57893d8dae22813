//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/commitlens/commitlens/internal/domain/commands"
	"github.com/commitlens/commitlens/internal/domain/entities"
	doubles "github.com/commitlens/commitlens/test/domain/repositorydoubles"
)

func scanSettings() *entities.Settings {
	settings := entities.DefaultSettings()
	settings.Endpoint = "https://example.com/commits"
	return settings
}

func newScanFixture(git *doubles.SpyGitRepository) (*commands.ScanCommand, *doubles.SpyPublisherRepository) {
	publisher := &doubles.SpyPublisherRepository{}
	factory := &doubles.SpyPublisherFactory{Publisher: publisher}
	return commands.NewScanCommand(git, factory), publisher
}

func TestScanCommandExecute(t *testing.T) {
	t.Parallel()

	t.Run("should publish one change set per unpushed commit", func(t *testing.T) {
		// given
		git := &doubles.SpyGitRepository{
			RepoNameValue: "demo",
			Commits: []entities.Commit{
				{Hash: "aaaaaaaaaa1", AuthorName: "dev", AuthorEmail: "dev@x.io", Message: "first", Date: "2026-08-01T10:00:00Z"},
				{Hash: "bbbbbbbbbb2", AuthorName: "dev", AuthorEmail: "dev@x.io", Message: "second", Date: "2026-08-02T10:00:00Z"},
			},
			FilesByCommit: map[string][]entities.ChangedFile{
				"aaaaaaaaaa1": {{Status: "M", Path: "main.go"}},
				"bbbbbbbbbb2": {{Status: "A", Path: "new.go"}},
			},
			DiffsByKey: map[string]string{
				"aaaaaaaaaa1:main.go": "@@ -1,1 +1,1 @@\n-old\n+new\n",
				"bbbbbbbbbb2:new.go":  "@@ -0,0 +1,1 @@\n+package main\n",
			},
		}
		cmd, publisher := newScanFixture(git)

		// when
		err := cmd.Execute(context.Background(), scanSettings(), commands.ScanOptions{RepoDir: "."})

		// then
		require.NoError(t, err)
		require.Len(t, publisher.Published, 2)

		first := publisher.Published[0]
		assert.Equal(t, "demo", first.RepoName)
		assert.Equal(t, "aaaaaaa", first.Hash)
		require.Len(t, first.Changes, 1)
		assert.Equal(t, "main.go", first.Changes[0].FilePath)
		assert.Equal(t, 1, first.Changes[0].Additions)
		assert.Equal(t, 1, first.Changes[0].Deletions)

		second := publisher.Published[1]
		assert.Equal(t, "bbbbbbb", second.Hash)
		require.Len(t, second.Changes, 1)
		assert.Equal(t, entities.StatusAdded, second.Changes[0].Status)
	})

	t.Run("should record a file without line changes when its diff fails", func(t *testing.T) {
		// given
		git := &doubles.SpyGitRepository{
			RepoNameValue: "demo",
			Commits:       []entities.Commit{{Hash: "aaaaaaaaaa1", Message: "mixed"}},
			FilesByCommit: map[string][]entities.ChangedFile{
				"aaaaaaaaaa1": {
					{Status: "M", Path: "ok.go"},
					{Status: "M", Path: "broken.go"},
				},
			},
			DiffsByKey: map[string]string{
				"aaaaaaaaaa1:ok.go": "@@ -1,0 +2,1 @@\n+added\n",
			},
			DiffErrByKey: map[string]error{
				"aaaaaaaaaa1:broken.go": errors.New("binary file"),
			},
		}
		cmd, publisher := newScanFixture(git)

		// when
		err := cmd.Execute(context.Background(), scanSettings(), commands.ScanOptions{RepoDir: "."})

		// then
		require.NoError(t, err)
		require.Len(t, publisher.Published, 1)
		require.Len(t, publisher.Published[0].Changes, 2)

		broken := publisher.Published[0].Changes[1]
		assert.Equal(t, "broken.go", broken.FilePath)
		assert.Zero(t, broken.Additions)
		assert.Zero(t, broken.Deletions)
		assert.Empty(t, broken.Changes)
	})

	t.Run("should continue with remaining commits when one cannot be listed", func(t *testing.T) {
		// given
		git := &doubles.SpyGitRepository{
			RepoNameValue: "demo",
			Commits: []entities.Commit{
				{Hash: "aaaaaaaaaa1", Message: "broken"},
				{Hash: "bbbbbbbbbb2", Message: "fine"},
			},
			FilesErrByCommit: map[string]error{
				"aaaaaaaaaa1": errors.New("object not found"),
			},
			FilesByCommit: map[string][]entities.ChangedFile{
				"bbbbbbbbbb2": {{Status: "M", Path: "main.go"}},
			},
			DiffsByKey: map[string]string{
				"bbbbbbbbbb2:main.go": "@@ -1,1 +1,1 @@\n-a\n+b\n",
			},
		}
		cmd, publisher := newScanFixture(git)

		// when
		err := cmd.Execute(context.Background(), scanSettings(), commands.ScanOptions{RepoDir: "."})

		// then
		require.NoError(t, err)
		require.Len(t, publisher.Published, 1)
		assert.Equal(t, "bbbbbbb", publisher.Published[0].Hash)
	})

	t.Run("should continue with remaining commits when publishing one fails", func(t *testing.T) {
		// given
		git := &doubles.SpyGitRepository{
			RepoNameValue: "demo",
			Commits: []entities.Commit{
				{Hash: "aaaaaaaaaa1", Message: "rejected"},
				{Hash: "bbbbbbbbbb2", Message: "accepted"},
			},
			FilesByCommit: map[string][]entities.ChangedFile{},
		}
		publisher := &doubles.SpyPublisherRepository{
			ErrByHash: map[string]error{"aaaaaaa": errors.New("503 Service Unavailable")},
		}
		factory := &doubles.SpyPublisherFactory{Publisher: publisher}
		cmd := commands.NewScanCommand(git, factory)

		// when
		err := cmd.Execute(context.Background(), scanSettings(), commands.ScanOptions{RepoDir: "."})

		// then
		require.NoError(t, err)
		require.Len(t, publisher.Published, 1)
		assert.Equal(t, "bbbbbbb", publisher.Published[0].Hash)
	})

	t.Run("should publish an empty change list for a commit touching no files", func(t *testing.T) {
		// given
		git := &doubles.SpyGitRepository{
			RepoNameValue: "demo",
			Commits:       []entities.Commit{{Hash: "aaaaaaaaaa1", Message: "empty"}},
			FilesByCommit: map[string][]entities.ChangedFile{},
		}
		cmd, publisher := newScanFixture(git)

		// when
		err := cmd.Execute(context.Background(), scanSettings(), commands.ScanOptions{RepoDir: "."})

		// then
		require.NoError(t, err)
		require.Len(t, publisher.Published, 1)
		assert.NotNil(t, publisher.Published[0].Changes)
		assert.Empty(t, publisher.Published[0].Changes)
	})

	t.Run("should not publish anything in dry-run mode", func(t *testing.T) {
		// given
		git := &doubles.SpyGitRepository{
			RepoNameValue: "demo",
			Commits:       []entities.Commit{{Hash: "aaaaaaaaaa1", Message: "x"}},
			FilesByCommit: map[string][]entities.ChangedFile{},
		}
		cmd, publisher := newScanFixture(git)

		// when
		err := cmd.Execute(context.Background(), scanSettings(), commands.ScanOptions{
			RepoDir: ".",
			DryRun:  true,
		})

		// then
		require.NoError(t, err)
		assert.Empty(t, publisher.Published)
	})

	t.Run("should fail without an endpoint unless dry-run", func(t *testing.T) {
		// given
		git := &doubles.SpyGitRepository{RepoNameValue: "demo"}
		cmd, _ := newScanFixture(git)
		settings := entities.DefaultSettings()

		// when
		err := cmd.Execute(context.Background(), settings, commands.ScanOptions{RepoDir: "."})

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "endpoint")
	})

	t.Run("should fail when the unpushed commits cannot be listed", func(t *testing.T) {
		// given
		git := &doubles.SpyGitRepository{ListErr: errors.New("not a git repository")}
		cmd, _ := newScanFixture(git)

		// when
		err := cmd.Execute(context.Background(), scanSettings(), commands.ScanOptions{RepoDir: "."})

		// then
		require.Error(t, err)
	})

	t.Run("should do nothing when there are no unpushed commits", func(t *testing.T) {
		// given
		git := &doubles.SpyGitRepository{RepoNameValue: "demo"}
		cmd, publisher := newScanFixture(git)

		// when
		err := cmd.Execute(context.Background(), scanSettings(), commands.ScanOptions{RepoDir: "."})

		// then
		require.NoError(t, err)
		assert.Empty(t, publisher.Published)
	})

	t.Run("should keep only the first entry for a duplicated path", func(t *testing.T) {
		// given
		git := &doubles.SpyGitRepository{
			RepoNameValue: "demo",
			Commits:       []entities.Commit{{Hash: "aaaaaaaaaa1", Message: "dup"}},
			FilesByCommit: map[string][]entities.ChangedFile{
				"aaaaaaaaaa1": {
					{Status: "M", Path: "same.go"},
					{Status: "M", Path: "same.go"},
				},
			},
			DiffsByKey: map[string]string{
				"aaaaaaaaaa1:same.go": "@@ -1,0 +1,1 @@\n+x\n",
			},
		}
		cmd, publisher := newScanFixture(git)

		// when
		err := cmd.Execute(context.Background(), scanSettings(), commands.ScanOptions{RepoDir: "."})

		// then
		require.NoError(t, err)
		require.Len(t, publisher.Published, 1)
		assert.Len(t, publisher.Published[0].Changes, 1)
	})
}
