//go:build unit

package transport_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/commitlens/commitlens/internal/domain/entities"
	"github.com/commitlens/commitlens/internal/infrastructure/repositories/transport"
)

func sampleChangeSet() entities.CommitChangeSet {
	return entities.CommitChangeSet{
		RepoName:    "demo",
		AuthorName:  "dev",
		AuthorEmail: "dev@x.io",
		Hash:        "abc1234",
		Message:     "fix parser",
		Date:        "2026-08-01T10:00:00Z",
		Changes: []entities.FileChange{
			{
				FilePath:  "parser.go",
				Status:    entities.StatusModified,
				Additions: 1,
				Deletions: 1,
				Changes: []entities.LineChange{
					{Kind: entities.Deletion, LineNumber: 10, Content: "old"},
					{Kind: entities.Addition, LineNumber: 10, Content: "new"},
				},
			},
		},
	}
}

func TestHTTPPublisherPublish(t *testing.T) {
	t.Parallel()

	t.Run("should post the change set as JSON", func(t *testing.T) {
		// given
		var (
			gotContentType string
			gotBody        []byte
		)
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotContentType = r.Header.Get("Content-Type")
			gotBody, _ = io.ReadAll(r.Body)
			w.WriteHeader(http.StatusAccepted)
		}))
		defer server.Close()

		publisher := transport.NewHTTPPublisherFactory().Create(server.URL)

		// when
		err := publisher.Publish(context.Background(), sampleChangeSet())

		// then
		require.NoError(t, err)
		assert.Equal(t, "application/json", gotContentType)

		var received entities.CommitChangeSet
		require.NoError(t, json.Unmarshal(gotBody, &received))
		assert.Equal(t, sampleChangeSet(), received)
	})

	t.Run("should fail on a non-2xx response and include the body", func(t *testing.T) {
		// given
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			// 404 is not retried, so the failure surfaces immediately
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte("unknown repository"))
		}))
		defer server.Close()

		publisher := transport.NewHTTPPublisherFactory().Create(server.URL)

		// when
		err := publisher.Publish(context.Background(), sampleChangeSet())

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "404")
		assert.Contains(t, err.Error(), "unknown repository")
	})
}
