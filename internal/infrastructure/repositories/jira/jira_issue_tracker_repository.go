package jira

import (
	"context"
	"fmt"
	"strings"

	gojira "github.com/andygrunwald/go-jira"

	"github.com/jenkins-infra/hosting-checker/internal/domain/entities"
	"github.com/jenkins-infra/hosting-checker/internal/domain/repositories"
)

// defaultFieldIDs maps the canonical hosting-request field names to the
// custom field ids of the Jenkins issue tracker. Entries can be overridden
// per deployment through the jira.fields setting.
var defaultFieldIDs = map[string]string{
	entities.FieldCommitters:     "customfield_10323",
	entities.FieldRepositoryURL:  "customfield_10321",
	entities.FieldRepositoryName: "customfield_10322",
}

// JiraIssueTrackerRepository implements repositories.IssueTrackerRepository
// against the JIRA REST API v2.
type JiraIssueTrackerRepository struct {
	client   *gojira.Client
	fieldIDs map[string]string
}

// NewIssueTrackerRepository creates a JIRA client with basic authentication.
func NewIssueTrackerRepository(settings *entities.Settings) (repositories.IssueTrackerRepository, error) {
	transport := gojira.BasicAuthTransport{
		Username: settings.Jira.Username,
		Password: settings.Jira.Token,
	}

	client, err := gojira.NewClient(transport.Client(), settings.Jira.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create the JIRA client for %q: %w",
			settings.Jira.BaseURL, err)
	}

	fieldIDs := make(map[string]string, len(defaultFieldIDs))
	for name, id := range defaultFieldIDs {
		fieldIDs[name] = id
	}
	for name, id := range settings.Jira.Fields {
		fieldIDs[name] = id
	}

	return &JiraIssueTrackerRepository{client: client, fieldIDs: fieldIDs}, nil
}

// GetIssue fetches the issue and flattens its hosting-request fields into strings.
func (it *JiraIssueTrackerRepository) GetIssue(ctx context.Context, key string) (*entities.Issue, error) {
	issue, _, err := it.client.Issue.GetWithContext(ctx, key, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch issue %q: %w", key, err)
	}

	fields := make(map[string]string, len(it.fieldIDs))
	for name, id := range it.fieldIDs {
		fields[name] = stringValue(issue.Fields.Unknowns[id])
	}

	return &entities.Issue{Key: issue.Key, Fields: fields}, nil
}

// AddComment appends a comment to the issue.
func (it *JiraIssueTrackerRepository) AddComment(ctx context.Context, key, body string) error {
	comment := &gojira.Comment{Body: body}
	if _, _, err := it.client.Issue.AddCommentWithContext(ctx, key, comment); err != nil {
		return fmt.Errorf("failed to comment on issue %q: %w", key, err)
	}
	return nil
}

// stringValue flattens the dynamic value JIRA returns for a custom field.
// Depending on the field type it is a plain string, an option object with a
// "value" key, or a list of either.
func stringValue(raw any) string {
	switch value := raw.(type) {
	case nil:
		return ""
	case string:
		return value
	case []any:
		parts := make([]string, 0, len(value))
		for _, item := range value {
			if part := stringValue(item); part != "" {
				parts = append(parts, part)
			}
		}
		return strings.Join(parts, "\n")
	case map[string]any:
		return stringValue(value["value"])
	default:
		return fmt.Sprintf("%v", value)
	}
}
