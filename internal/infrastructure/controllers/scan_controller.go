package controllers

import (
	"context"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/commitlens/commitlens/internal/domain/commands"
	"github.com/commitlens/commitlens/internal/domain/entities"
)

// ScanController handles the "scan" subcommand.
type ScanController struct {
	command commands.Scan
}

// NewScanController creates a new ScanController.
func NewScanController(command commands.Scan) *ScanController {
	return &ScanController{command: command}
}

// GetBind returns the Cobra command metadata for the scan controller.
func (it *ScanController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "scan [path]",
		Short: "Extract and publish unpushed commit change sets",
		Long: `Detect unpushed commits in a local Git repository, extract a
line-addressable change set for each one, and publish every change set as
JSON to the configured endpoint.

A commit's change set lists each touched file with its name-status letter
and the added/deleted lines with post-image line numbers. Failures are
isolated: a file that cannot be diffed is recorded without line changes, a
commit that cannot be delivered is logged and skipped, and the scan always
runs to completion.`,
	}
}

// Execute runs one scan.
func (it *ScanController) Execute(cmd *cobra.Command, args []string) {
	ctx := context.Background()

	dryRun, _ := cmd.Flags().GetBool("dry-run")
	verbose, _ := cmd.Flags().GetBool("verbose")
	endpoint, _ := cmd.Flags().GetString("endpoint")

	settings := loadSettings(cmd)
	if settings == nil {
		return
	}
	if endpoint != "" {
		settings.Endpoint = endpoint
	}

	repoDir := "."
	if len(args) > 0 {
		repoDir = args[0]
	}

	if err := it.command.Execute(ctx, settings, commands.ScanOptions{
		RepoDir: repoDir,
		DryRun:  dryRun,
		Verbose: verbose,
	}); err != nil {
		logger.Errorf("Scan failed: %v", err)
	}
}

// AddFlags adds the scan-specific flags to the given Cobra command.
func (it *ScanController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().String("endpoint", "", "Publish endpoint URL (overrides the config file)")
}

// loadSettings resolves and loads the configuration file, falling back to
// defaults when none exists and no explicit path was given.
func loadSettings(cmd *cobra.Command) *entities.Settings {
	configPath, _ := cmd.Flags().GetString("config")

	if configPath == "" {
		found, err := entities.FindConfigFile()
		if err != nil {
			logger.Debugf("No config file found, using defaults: %v", err)
			return entities.DefaultSettings()
		}
		configPath = found
	}

	logger.Infof("Using config file: %s", configPath)

	settings, err := entities.NewSettings(configPath)
	if err != nil {
		logger.Errorf("Failed to load config: %v", err)
		return nil
	}

	return settings
}
