package verifiers

import (
	"context"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/jenkins-infra/hosting-checker/internal/domain/entities"
	"github.com/jenkins-infra/hosting-checker/internal/domain/repositories"
)

// upstreamOrganization is the organization hosted plugins end up in; a fork
// of it must have the fork relationship broken before hosting.
const upstreamOrganization = "jenkinsci"

// RepositoryVerifier checks the referenced repository and the committer list
// against the source host.
type RepositoryVerifier struct {
	host repositories.SourceHostRepository
}

// NewRepositoryVerifier creates a repository verifier using the given host.
func NewRepositoryVerifier(host repositories.SourceHostRepository) *RepositoryVerifier {
	return &RepositoryVerifier{host: host}
}

func (it *RepositoryVerifier) Name() string { return "repository" }

// Verify checks the committer usernames and the repository itself.
func (it *RepositoryVerifier) Verify(ctx context.Context, issue *entities.Issue) ([]entities.Finding, error) {
	findings := it.verifyCommitters(ctx, issue.Field(entities.FieldCommitters))
	findings = append(findings, it.verifyRepository(ctx, issue.Field(entities.FieldRepositoryURL))...)
	return findings, nil
}

// verifyCommitters sorts every requested committer into one of three buckets:
// valid user, organization, or unknown account. Organizations and unknown
// accounts are each reported in a single aggregated finding.
func (it *RepositoryVerifier) verifyCommitters(ctx context.Context, value string) []entities.Finding {
	var organizations, invalid []string

	for _, name := range SplitCommitters(value) {
		if err := it.host.GetUser(ctx, name); err == nil {
			continue
		}
		if err := it.host.GetOrganization(ctx, name); err == nil {
			organizations = append(organizations, name)
			continue
		}
		invalid = append(invalid, name)
	}

	var findings []entities.Finding
	if len(organizations) > 0 {
		findings = append(findings, entities.NewFinding(entities.SeverityRequired, nil,
			"The following are organizations, not users, and cannot be authorized as committers: %s",
			strings.Join(organizations, ", ")))
	}
	if len(invalid) > 0 {
		findings = append(findings, entities.NewFinding(entities.SeverityRequired, nil,
			"The following are not valid GitHub usernames: %s",
			strings.Join(invalid, ", ")))
	}
	return findings
}

func (it *RepositoryVerifier) verifyRepository(ctx context.Context, repositoryURL string) []entities.Finding {
	owner, name, ok := ParseRepositoryURL(repositoryURL)
	if !ok {
		// The field verifier already reports a broken URL
		return nil
	}

	var findings []entities.Finding
	if strings.HasSuffix(name, ".git") {
		findings = append(findings, entities.NewFinding(entities.SeverityRequired, nil,
			`The repository URL must not end with ".git", please remove the suffix: %s`, name))
		name = strings.TrimSuffix(name, ".git")
	}

	repo, err := it.host.GetRepository(ctx, owner, name)
	if err != nil {
		logger.Debugf("Failed to fetch repository %s/%s: %v", owner, name, err)
		findings = append(findings, entities.NewFinding(entities.SeverityRequired, nil,
			"Invalid repository: %s/%s", owner, name))
		return findings
	}

	hasReadme, readmeErr := it.host.HasReadme(ctx, owner, name)
	if readmeErr != nil {
		logger.Errorf("Failed to probe the README of %s: %v", repo.FullName, readmeErr)
	} else if !hasReadme {
		findings = append(findings, entities.NewFinding(entities.SeverityRequired, nil,
			"The repository does not contain a README file"))
	}

	// Fork lineage: only a fork of the upstream organization blocks hosting.
	// Failures probing the parent never produce a finding.
	if strings.HasPrefix(repo.ParentFullName, upstreamOrganization+"/") {
		findings = append(findings, entities.NewFinding(entities.SeverityRequired, nil,
			"The repository is a fork of %s; please break the fork relationship to the %s organization before hosting",
			repo.ParentFullName, upstreamOrganization))
	}

	return findings
}
