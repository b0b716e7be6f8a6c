package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	gh "github.com/google/go-github/v66/github"

	"github.com/jenkins-infra/hosting-checker/internal/domain/entities"
	"github.com/jenkins-infra/hosting-checker/internal/domain/repositories"
)

// GitHubSourceHostRepository implements repositories.SourceHostRepository
// using the GitHub REST API.
type GitHubSourceHostRepository struct {
	client *gh.Client
}

// NewSourceHostRepository creates a GitHub source host client. An empty token
// yields an unauthenticated client, which is enough for public repositories.
func NewSourceHostRepository(token string) repositories.SourceHostRepository {
	client := gh.NewClient(nil)
	if token != "" {
		client = client.WithAuthToken(token)
	}
	return &GitHubSourceHostRepository{client: client}
}

func (it *GitHubSourceHostRepository) GetUser(ctx context.Context, name string) error {
	user, _, err := it.client.Users.Get(ctx, name)
	if err != nil {
		return fmt.Errorf("failed to get user %q: %w", name, wrapNotFound(err))
	}

	// The users endpoint resolves organizations too; only accept personal
	// accounts here so organizations fall through to GetOrganization.
	if user.GetType() != "User" {
		return fmt.Errorf("account %q is of type %q: %w",
			name, user.GetType(), repositories.ErrNotFound)
	}
	return nil
}

func (it *GitHubSourceHostRepository) GetOrganization(ctx context.Context, name string) error {
	if _, _, err := it.client.Organizations.Get(ctx, name); err != nil {
		return fmt.Errorf("failed to get organization %q: %w", name, wrapNotFound(err))
	}
	return nil
}

func (it *GitHubSourceHostRepository) GetRepository(
	ctx context.Context,
	owner, name string,
) (*entities.Repository, error) {
	repo, _, err := it.client.Repositories.Get(ctx, owner, name)
	if err != nil {
		return nil, fmt.Errorf("failed to get repository %s/%s: %w", owner, name, wrapNotFound(err))
	}

	result := &entities.Repository{
		Owner:         owner,
		Name:          repo.GetName(),
		FullName:      repo.GetFullName(),
		DefaultBranch: repo.GetDefaultBranch(),
	}
	if parent := repo.GetParent(); parent != nil {
		result.ParentFullName = parent.GetFullName()
	}
	return result, nil
}

func (it *GitHubSourceHostRepository) GetFileContent(
	ctx context.Context,
	owner, name, path string,
) (string, error) {
	fileContent, _, _, err := it.client.Repositories.GetContents(
		ctx, owner, name, path,
		&gh.RepositoryContentGetOptions{},
	)
	if err != nil {
		return "", fmt.Errorf("failed to get file %q: %w", path, wrapNotFound(err))
	}
	if fileContent == nil {
		return "", fmt.Errorf("path %q is a directory, not a file", path)
	}

	content, err := fileContent.GetContent()
	if err != nil {
		return "", fmt.Errorf("failed to decode file content: %w", err)
	}

	return content, nil
}

func (it *GitHubSourceHostRepository) HasReadme(ctx context.Context, owner, name string) (bool, error) {
	_, _, err := it.client.Repositories.GetReadme(
		ctx, owner, name,
		&gh.RepositoryContentGetOptions{},
	)
	if err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to get the README of %s/%s: %w", owner, name, err)
	}
	return true, nil
}

// isNotFound reports whether the GitHub API answered 404.
func isNotFound(err error) bool {
	var errResp *gh.ErrorResponse
	return errors.As(err, &errResp) &&
		errResp.Response != nil &&
		errResp.Response.StatusCode == http.StatusNotFound
}

// wrapNotFound maps a 404 API answer onto repositories.ErrNotFound so callers
// can tell absence from transport failures.
func wrapNotFound(err error) error {
	if isNotFound(err) {
		return fmt.Errorf("%w: %v", repositories.ErrNotFound, err)
	}
	return err
}
