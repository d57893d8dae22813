package repositories

import (
	"context"

	"github.com/commitlens/commitlens/internal/domain/entities"
)

// PublisherRepository delivers one commit change set to the downstream
// consumer. A delivery failure is scoped to that commit only.
type PublisherRepository interface {
	Publish(ctx context.Context, changeSet entities.CommitChangeSet) error
}

// PublisherFactory builds a publisher bound to a configured endpoint. The
// endpoint is always passed in explicitly; adapters never carry a default.
type PublisherFactory interface {
	Create(endpoint string) PublisherRepository
}
