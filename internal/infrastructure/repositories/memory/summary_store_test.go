//go:build unit

package memory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/commitlens/commitlens/internal/domain/entities"
	"github.com/commitlens/commitlens/internal/domain/repositories"
	"github.com/commitlens/commitlens/internal/infrastructure/repositories/memory"
)

func analyzed(hash, summary string) repositories.AnalyzedCommit {
	return repositories.AnalyzedCommit{
		ChangeSet: entities.CommitChangeSet{Hash: hash, Message: "msg " + hash},
		Summary:   summary,
	}
}

func TestSummaryStore(t *testing.T) {
	t.Parallel()

	t.Run("should miss on a hash that was never stored", func(t *testing.T) {
		// given
		store := memory.NewSummaryStore()

		// when
		_, ok := store.Get("abc1234")

		// then
		assert.False(t, ok)
	})

	t.Run("should return what was stored for a hash", func(t *testing.T) {
		// given
		store := memory.NewSummaryStore()
		store.Put("abc1234", analyzed("abc1234", "summary"))

		// when
		got, ok := store.Get("abc1234")

		// then
		require.True(t, ok)
		assert.Equal(t, "summary", got.Summary)
		assert.Equal(t, "abc1234", got.ChangeSet.Hash)
	})

	t.Run("should replace an existing entry without duplicating it", func(t *testing.T) {
		// given
		store := memory.NewSummaryStore()
		store.Put("abc1234", analyzed("abc1234", "first"))
		store.Put("abc1234", analyzed("abc1234", "second"))

		// when
		got, ok := store.Get("abc1234")

		// then
		require.True(t, ok)
		assert.Equal(t, "second", got.Summary)
		assert.Len(t, store.All(), 1)
	})

	t.Run("should list entries in insertion order", func(t *testing.T) {
		// given
		store := memory.NewSummaryStore()
		store.Put("ccc0003", analyzed("ccc0003", "third"))
		store.Put("aaa0001", analyzed("aaa0001", "first"))
		store.Put("bbb0002", analyzed("bbb0002", "second"))

		// when
		all := store.All()

		// then
		require.Len(t, all, 3)
		assert.Equal(t, "ccc0003", all[0].ChangeSet.Hash)
		assert.Equal(t, "aaa0001", all[1].ChangeSet.Hash)
		assert.Equal(t, "bbb0002", all[2].ChangeSet.Hash)
	})
}
