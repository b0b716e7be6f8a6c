// Package testdoubles provides test doubles (spies, stubs, dummies) for domain
// interfaces. These are hand-crafted implementations — no mock frameworks.
package testdoubles

import (
	"context"
	"fmt"

	"github.com/jenkins-infra/hosting-checker/internal/domain/entities"
	"github.com/jenkins-infra/hosting-checker/internal/domain/repositories"
)

// ---------------------------------------------------------------------------
// SpySourceHost
// ---------------------------------------------------------------------------

// SpySourceHost implements repositories.SourceHostRepository as a configurable
// spy. Configure the response fields for the methods your test exercises,
// then inspect the call-tracking fields to verify behavior.
type SpySourceHost struct {
	// --- GetUser / GetOrganization ---
	Users         map[string]bool // name -> resolves as a user
	Organizations map[string]bool // name -> resolves as an organization
	// spy: names looked up, in order
	UserLookups         []string
	OrganizationLookups []string

	// --- GetRepository ---
	Repository    *entities.Repository
	RepositoryErr error
	// spy: "owner/name" pairs requested
	RequestedRepositories []string

	// --- GetFileContent ---
	FileContents   map[string]string // path -> content
	FileContentErr error

	// --- HasReadme ---
	Readme    bool
	ReadmeErr error
}

var _ repositories.SourceHostRepository = (*SpySourceHost)(nil)

func (s *SpySourceHost) GetUser(_ context.Context, name string) error {
	s.UserLookups = append(s.UserLookups, name)
	if s.Users[name] {
		return nil
	}
	return fmt.Errorf("no such user %q: %w", name, repositories.ErrNotFound)
}

func (s *SpySourceHost) GetOrganization(_ context.Context, name string) error {
	s.OrganizationLookups = append(s.OrganizationLookups, name)
	if s.Organizations[name] {
		return nil
	}
	return fmt.Errorf("no such organization %q: %w", name, repositories.ErrNotFound)
}

func (s *SpySourceHost) GetRepository(
	_ context.Context,
	owner, name string,
) (*entities.Repository, error) {
	s.RequestedRepositories = append(s.RequestedRepositories, owner+"/"+name)
	if s.RepositoryErr != nil {
		return nil, s.RepositoryErr
	}
	if s.Repository != nil {
		return s.Repository, nil
	}
	return &entities.Repository{
		Owner:    owner,
		Name:     name,
		FullName: owner + "/" + name,
	}, nil
}

func (s *SpySourceHost) GetFileContent(
	_ context.Context,
	_, _, path string,
) (string, error) {
	if s.FileContentErr != nil {
		return "", s.FileContentErr
	}
	if content, ok := s.FileContents[path]; ok {
		return content, nil
	}
	return "", fmt.Errorf("no such file %q: %w", path, repositories.ErrNotFound)
}

func (s *SpySourceHost) HasReadme(_ context.Context, _, _ string) (bool, error) {
	return s.Readme, s.ReadmeErr
}

// ---------------------------------------------------------------------------
// SpyIssueTracker
// ---------------------------------------------------------------------------

// SpyIssueTracker implements repositories.IssueTrackerRepository as a
// configurable spy.
type SpyIssueTracker struct {
	Issue      *entities.Issue
	GetErr     error
	CommentErr error
	// spy: comment bodies posted
	Comments []string
}

var _ repositories.IssueTrackerRepository = (*SpyIssueTracker)(nil)

func (s *SpyIssueTracker) GetIssue(_ context.Context, key string) (*entities.Issue, error) {
	if s.GetErr != nil {
		return nil, s.GetErr
	}
	if s.Issue != nil {
		return s.Issue, nil
	}
	return nil, fmt.Errorf("no such issue: %s", key)
}

func (s *SpyIssueTracker) AddComment(_ context.Context, _, body string) error {
	if s.CommentErr != nil {
		return s.CommentErr
	}
	s.Comments = append(s.Comments, body)
	return nil
}
