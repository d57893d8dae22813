package controllers

import (
	"context"
	"os/signal"
	"syscall"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/commitlens/commitlens/internal/domain/commands"
	"github.com/commitlens/commitlens/internal/domain/entities"
	"github.com/commitlens/commitlens/internal/domain/repositories"
	"github.com/commitlens/commitlens/internal/infrastructure/mcp"
)

// ServeController handles the "serve" subcommand (MCP analysis server).
type ServeController struct {
	command commands.Analyze
	store   repositories.SummaryRepository
}

// NewServeController creates a new ServeController.
func NewServeController(
	command commands.Analyze,
	store repositories.SummaryRepository,
) *ServeController {
	return &ServeController{
		command: command,
		store:   store,
	}
}

// GetBind returns the Cobra command metadata for the serve controller.
func (it *ServeController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "serve",
		Short: "Run the MCP commit analysis server",
		Long: `Run a Model Context Protocol server over stdio.

The server exposes the analyze_commit tool, which turns a commit change set
into a structured review summary via the configured LLM provider (with a
deterministic fallback when the provider is unavailable), plus resources
listing analyzed commits and a reusable analysis prompt.`,
	}
}

// Execute runs the MCP server until the client disconnects or the process
// is interrupted.
func (it *ServeController) Execute(cmd *cobra.Command, _ []string) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	settings := loadSettings(cmd)
	if settings == nil {
		return
	}

	if settings.LLM.APIKey == "" {
		logger.Warn("No LLM API key configured, analyses will use the fallback summary")
	}

	server := mcp.NewServer(settings, it.command, it.store)

	logger.Info("Starting MCP commit analysis server on stdio...")

	if err := server.Run(ctx); err != nil {
		logger.Errorf("MCP server stopped: %v", err)
	}
}
