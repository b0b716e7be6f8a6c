package controllers

import (
	"errors"
	"net/http"
	"time"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jenkins-infra/hosting-checker/internal/domain/commands"
	"github.com/jenkins-infra/hosting-checker/internal/domain/entities"
)

// ServeController handles the "serve" subcommand (webhook mode).
type ServeController struct {
	command commands.Check
}

// NewServeController creates a new ServeController.
func NewServeController(command commands.Check) *ServeController {
	return &ServeController{command: command}
}

// GetBind returns the Cobra command metadata for the serve controller.
func (it *ServeController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "serve",
		Short: "Listen for issue tracker webhooks",
		Long: `Start the webhook server and run the hosting checks whenever a
hosting request is created or updated in the issue tracker.

The consolidated report is posted back to the issue as a comment.
With debug mode on (config, DEBUG=true or --dry-run) the report is
only logged.`,
	}
}

// Execute starts the webhook HTTP server.
func (it *ServeController) Execute(cmd *cobra.Command, _ []string) {
	settings, err := loadSettings(cmd)
	if err != nil {
		logger.Errorf("failed to load config: %v", err)
		return
	}

	dryRun, _ := cmd.Flags().GetBool("dry-run")

	mux := http.NewServeMux()
	mux.HandleFunc("/health", handleHealth)
	mux.Handle("/webhook", NewWebhookHandler(it.command, settings, dryRun))

	server := &http.Server{
		Addr:         settings.Listen,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Infof("Listening for hosting request webhooks on %s", settings.Listen)

	if serveErr := server.ListenAndServe(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
		logger.Fatalf("Webhook server error: %v", serveErr)
	}
}

func handleHealth(writer http.ResponseWriter, _ *http.Request) {
	writer.WriteHeader(http.StatusOK)
	_, _ = writer.Write([]byte("ok"))
}
