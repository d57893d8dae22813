package repositories

import (
	"go.uber.org/dig"

	gitRepo "github.com/commitlens/commitlens/internal/infrastructure/repositories/git"
	llmRepo "github.com/commitlens/commitlens/internal/infrastructure/repositories/llm"
	memoryRepo "github.com/commitlens/commitlens/internal/infrastructure/repositories/memory"
	transportRepo "github.com/commitlens/commitlens/internal/infrastructure/repositories/transport"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	if err := container.Provide(gitRepo.NewCLIRepository); err != nil {
		return err
	}
	if err := container.Provide(transportRepo.NewHTTPPublisherFactory); err != nil {
		return err
	}
	if err := container.Provide(llmRepo.NewOpenAIFactory); err != nil {
		return err
	}
	if err := container.Provide(memoryRepo.NewSummaryStore); err != nil {
		return err
	}

	return nil
}
