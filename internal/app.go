package internal

import (
	"github.com/commitlens/commitlens/internal/domain/entities"
)

// AppInternal aggregates the application's controllers for the CLI layer.
type AppInternal struct {
	controllers *[]entities.Controller
}

// NewAppInternal creates the application aggregate from all registered
// controllers.
func NewAppInternal(controllers *[]entities.Controller) *AppInternal {
	return &AppInternal{controllers: controllers}
}

// GetControllers returns all controllers to be bound as subcommands.
func (it *AppInternal) GetControllers() []entities.Controller {
	return *it.controllers
}
