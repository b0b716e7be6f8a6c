package repositories

import (
	"context"

	"github.com/jenkins-infra/hosting-checker/internal/domain/entities"
)

// IssueTrackerRepository abstracts the issue tracker holding hosting requests.
type IssueTrackerRepository interface {
	// GetIssue fetches a hosting request by its key.
	GetIssue(ctx context.Context, key string) (*entities.Issue, error)

	// AddComment appends a comment to the issue.
	AddComment(ctx context.Context, key, body string) error
}
