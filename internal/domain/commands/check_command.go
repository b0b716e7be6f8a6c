package commands

import (
	"context"
	"fmt"
	"time"

	logger "github.com/sirupsen/logrus"

	"github.com/jenkins-infra/hosting-checker/internal/domain/entities"
	domainRepos "github.com/jenkins-infra/hosting-checker/internal/domain/repositories"
	"github.com/jenkins-infra/hosting-checker/internal/domain/verifiers"
	infraRepos "github.com/jenkins-infra/hosting-checker/internal/infrastructure/repositories"
)

// Check is the interface for running the verification pipeline on one issue.
type Check interface {
	Execute(ctx context.Context, settings *entities.Settings, opts CheckOptions) (*CheckResult, error)
}

// CheckOptions holds runtime options for a single check run.
type CheckOptions struct {
	IssueKey string
	DryRun   bool
	Verbose  bool
}

// CheckResult carries the outcome of one verification run.
type CheckResult struct {
	Issue    *entities.Issue
	Findings *entities.FindingSet
	Report   string
	Posted   bool
}

// RegistryFactory builds the verifier sequence for a given source host.
type RegistryFactory func(host domainRepos.SourceHostRepository) *verifiers.Registry

// verifierTimeout bounds each verifier's external calls; the issue tracker
// and the source host give no timeout of their own.
const verifierTimeout = 30 * time.Second

// CheckCommand orchestrates the full verification flow:
// fetch issue -> run verifiers -> merge findings -> render -> post comment.
type CheckCommand struct {
	trackerFactory  infraRepos.IssueTrackerFactory
	hostFactory     infraRepos.SourceHostFactory
	registryFactory RegistryFactory
}

// NewCheckCommand creates a new CheckCommand with the given factories.
func NewCheckCommand(
	trackerFactory infraRepos.IssueTrackerFactory,
	hostFactory infraRepos.SourceHostFactory,
	registryFactory RegistryFactory,
) *CheckCommand {
	return &CheckCommand{
		trackerFactory:  trackerFactory,
		hostFactory:     hostFactory,
		registryFactory: registryFactory,
	}
}

// Execute runs every verifier against the issue and posts the consolidated
// report as a comment, unless running dry.
func (it *CheckCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts CheckOptions,
) (*CheckResult, error) {
	if opts.Verbose || settings.Debug {
		logger.SetLevel(logger.DebugLevel)
	}

	tracker, err := it.trackerFactory(settings)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize the issue tracker: %w", err)
	}
	host := it.hostFactory(settings.GitHub.Token)

	issue, err := tracker.GetIssue(ctx, opts.IssueKey)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch issue %q: %w", opts.IssueKey, err)
	}

	logger.Infof("Checking hosting request %s", issue.Key)

	set := entities.NewFindingSet()
	for _, verifier := range it.registryFactory(host).All() {
		findings, verifyErr := runVerifier(ctx, verifier, issue)
		if verifyErr != nil {
			// A failing verifier contributes nothing; the rest still run
			logger.Errorf("Verifier %q failed on %s: %v", verifier.Name(), issue.Key, verifyErr)
			continue
		}
		logger.Debugf("Verifier %q produced %d finding(s)", verifier.Name(), len(findings))
		set.AddAll(findings)
	}

	report := entities.ReportComment(set)

	dryRun := opts.DryRun || settings.Debug
	if dryRun {
		logger.Infof("Dry run, not commenting on %s:\n%s", issue.Key, report)
	} else if commentErr := tracker.AddComment(ctx, issue.Key, report); commentErr != nil {
		return nil, fmt.Errorf("failed to comment on issue %q: %w", issue.Key, commentErr)
	}

	return &CheckResult{
		Issue:    issue,
		Findings: set,
		Report:   report,
		Posted:   !dryRun,
	}, nil
}

func runVerifier(
	ctx context.Context,
	verifier verifiers.Verifier,
	issue *entities.Issue,
) ([]entities.Finding, error) {
	verifyCtx, cancel := context.WithTimeout(ctx, verifierTimeout)
	defer cancel()
	return verifier.Verify(verifyCtx, issue)
}
