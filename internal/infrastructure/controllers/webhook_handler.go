package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/jenkins-infra/hosting-checker/internal/domain/commands"
	"github.com/jenkins-infra/hosting-checker/internal/domain/entities"
)

// webhookEvents lists the issue tracker events that trigger a check.
var webhookEvents = map[string]bool{
	"jira:issue_created": true,
	"jira:issue_updated": true,
}

// webhookPayload is the explicit shape of the inbound webhook body. Both
// fields are optional on the wire and validated before use.
type webhookPayload struct {
	WebhookEvent string `json:"webhookEvent"`
	Issue        *struct {
		Key string `json:"key"`
	} `json:"issue"`
}

// WebhookHandler reacts to issue tracker webhooks by running the check
// command against the referenced issue.
type WebhookHandler struct {
	command  commands.Check
	settings *entities.Settings
	dryRun   bool
}

// NewWebhookHandler creates a handler bound to the given settings.
func NewWebhookHandler(command commands.Check, settings *entities.Settings, dryRun bool) *WebhookHandler {
	return &WebhookHandler{command: command, settings: settings, dryRun: dryRun}
}

// ServeHTTP handles one webhook delivery.
func (it *WebhookHandler) ServeHTTP(writer http.ResponseWriter, request *http.Request) {
	if request.Method != http.MethodPost {
		http.Error(writer, "only POST is supported", http.StatusMethodNotAllowed)
		return
	}

	var payload webhookPayload
	if err := json.NewDecoder(request.Body).Decode(&payload); err != nil {
		http.Error(writer, "malformed webhook payload", http.StatusBadRequest)
		return
	}

	if !webhookEvents[payload.WebhookEvent] {
		http.Error(writer,
			fmt.Sprintf("unsupported webhook event %q", payload.WebhookEvent),
			http.StatusBadRequest)
		return
	}
	if payload.Issue == nil || strings.TrimSpace(payload.Issue.Key) == "" {
		http.Error(writer, "webhook payload carries no issue", http.StatusBadRequest)
		return
	}

	result, err := it.command.Execute(request.Context(), it.settings, commands.CheckOptions{
		IssueKey: payload.Issue.Key,
		DryRun:   it.dryRun,
	})
	if err != nil {
		logger.Errorf("Check of %s failed: %v", payload.Issue.Key, err)
		http.Error(writer,
			fmt.Sprintf("failed to check issue %q", payload.Issue.Key),
			http.StatusBadRequest)
		return
	}

	logger.Infof("Checked %s: %d finding(s)", result.Issue.Key, result.Findings.Len())
	writer.WriteHeader(http.StatusOK)
}
