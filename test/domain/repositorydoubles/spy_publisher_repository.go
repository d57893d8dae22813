package repositorydoubles

import (
	"context"

	"github.com/commitlens/commitlens/internal/domain/entities"
	"github.com/commitlens/commitlens/internal/domain/repositories"
)

// SpyPublisherFactory implements repositories.PublisherFactory, handing out
// a single shared spy publisher and recording the endpoints requested.
type SpyPublisherFactory struct {
	Publisher *SpyPublisherRepository
	// spy: endpoints passed to Create
	CreatedEndpoints []string
}

func (s *SpyPublisherFactory) Create(endpoint string) repositories.PublisherRepository {
	s.CreatedEndpoints = append(s.CreatedEndpoints, endpoint)
	return s.Publisher
}

// SpyPublisherRepository implements repositories.PublisherRepository as a
// configurable spy.
type SpyPublisherRepository struct {
	// ErrByHash makes Publish fail for specific commit hashes.
	ErrByHash map[string]error
	// spy: change sets received, in order
	Published []entities.CommitChangeSet
}

func (s *SpyPublisherRepository) Publish(
	_ context.Context,
	changeSet entities.CommitChangeSet,
) error {
	if err := s.ErrByHash[changeSet.Hash]; err != nil {
		return err
	}
	s.Published = append(s.Published, changeSet)
	return nil
}
