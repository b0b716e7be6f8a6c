package controllers

import (
	"context"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jenkins-infra/hosting-checker/internal/domain/commands"
	"github.com/jenkins-infra/hosting-checker/internal/domain/entities"
)

// CheckController handles the "check" subcommand (one-shot mode).
type CheckController struct {
	command commands.Check
}

// NewCheckController creates a new CheckController.
func NewCheckController(command commands.Check) *CheckController {
	return &CheckController{command: command}
}

// GetBind returns the Cobra command metadata for the check controller.
func (it *CheckController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "check ISSUE-KEY",
		Short: "Check a single hosting request",
		Long: `Fetch a hosting request from the issue tracker, run every
verifier against it and post the consolidated report as a comment.

Use --dry-run to print the report instead of commenting on the issue.`,
	}
}

// Execute runs the one-shot check mode.
func (it *CheckController) Execute(cmd *cobra.Command, args []string) {
	if len(args) == 0 {
		logger.Error("an issue key is required, e.g. hosting-checker check HOSTING-123")
		return
	}

	settings, err := loadSettings(cmd)
	if err != nil {
		logger.Errorf("failed to load config: %v", err)
		return
	}

	dryRun, _ := cmd.Flags().GetBool("dry-run")
	verbose, _ := cmd.Flags().GetBool("verbose")

	result, err := it.command.Execute(context.Background(), settings, commands.CheckOptions{
		IssueKey: args[0],
		DryRun:   dryRun,
		Verbose:  verbose,
	})
	if err != nil {
		logger.Errorf("Check failed: %v", err)
		return
	}

	logger.Infof("Found %d finding(s) for %s", result.Findings.Len(), result.Issue.Key)
	if !result.Posted {
		cmd.Println(result.Report)
	}
}

// loadSettings resolves the --config flag, falling back to auto-detection and
// pure environment configuration.
func loadSettings(cmd *cobra.Command) (*entities.Settings, error) {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		if found, err := entities.FindConfigFile(); err == nil {
			configPath = found
			logger.Infof("Using config file: %s", configPath)
		}
	}
	return entities.NewSettings(configPath)
}
