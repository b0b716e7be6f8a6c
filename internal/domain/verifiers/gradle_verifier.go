package verifiers

import (
	"context"

	"github.com/jenkins-infra/hosting-checker/internal/domain/entities"
)

// GradleVerifier is a placeholder for build.gradle based projects.
//
// TODO: check the Gradle build descriptor the way PomVerifier checks the
// pom.xml; until then only Maven projects are verified.
type GradleVerifier struct{}

// NewGradleVerifier creates the (stubbed) Gradle verifier.
func NewGradleVerifier() *GradleVerifier {
	return &GradleVerifier{}
}

func (it *GradleVerifier) Name() string { return "gradle" }

// Verify contributes no findings until Gradle support lands.
func (it *GradleVerifier) Verify(_ context.Context, _ *entities.Issue) ([]entities.Finding, error) {
	return nil, nil
}
