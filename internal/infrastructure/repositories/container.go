package repositories

import (
	"go.uber.org/dig"

	"github.com/jenkins-infra/hosting-checker/internal/domain/entities"
	domainRepos "github.com/jenkins-infra/hosting-checker/internal/domain/repositories"
	ghRepo "github.com/jenkins-infra/hosting-checker/internal/infrastructure/repositories/github"
	jiraRepo "github.com/jenkins-infra/hosting-checker/internal/infrastructure/repositories/jira"
)

// SourceHostFactory creates a source host repository for the given token.
// Credentials live in the settings, which only exist at run time, so the
// commands layer receives factories instead of ready instances.
type SourceHostFactory func(token string) domainRepos.SourceHostRepository

// IssueTrackerFactory creates an issue tracker repository for the given settings.
type IssueTrackerFactory func(settings *entities.Settings) (domainRepos.IssueTrackerRepository, error)

// RegisterProviders registers all repository factories with the DIG container.
func RegisterProviders(container *dig.Container) error {
	if err := container.Provide(func() SourceHostFactory {
		return ghRepo.NewSourceHostRepository
	}); err != nil {
		return err
	}

	if err := container.Provide(func() IssueTrackerFactory {
		return jiraRepo.NewIssueTrackerRepository
	}); err != nil {
		return err
	}

	return nil
}
