package verifiers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
	logger "github.com/sirupsen/logrus"

	"github.com/jenkins-infra/hosting-checker/internal/domain/entities"
	"github.com/jenkins-infra/hosting-checker/internal/domain/repositories"
)

const (
	pomPath               = "pom.xml"
	pluginSuffix          = "-plugin"
	expectedParentGroupID = "org.jenkins-ci.plugins"

	// recommendedParentMajor is the parent pom line hosting requires.
	recommendedParentMajor = 2
)

// PomVerifier fetches the Maven descriptor at the repository root and runs
// the descriptor sub-checks against it.
type PomVerifier struct {
	host repositories.SourceHostRepository
}

// NewPomVerifier creates a pom verifier using the given host.
func NewPomVerifier(host repositories.SourceHostRepository) *PomVerifier {
	return &PomVerifier{host: host}
}

func (it *PomVerifier) Name() string { return "pom" }

// Verify fetches and checks the pom.xml of the referenced repository.
func (it *PomVerifier) Verify(ctx context.Context, issue *entities.Issue) ([]entities.Finding, error) {
	repositoryURL := issue.Field(entities.FieldRepositoryURL)
	owner, name, ok := ParseRepositoryURL(repositoryURL)
	if !ok {
		return []entities.Finding{invalidRepositoryURL(repositoryURL)}, nil
	}

	content, err := it.host.GetFileContent(ctx, owner, name, pomPath)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return []entities.Finding{entities.NewFinding(entities.SeverityWarning, nil,
				"No pom.xml found in the repository root, disregard if you are using a different build system")}, nil
		}
		return nil, fmt.Errorf("failed to fetch %s from %s/%s: %w", pomPath, owner, name, err)
	}

	pom, parseErr := entities.ParsePOM([]byte(content))
	if parseErr != nil {
		logger.Debugf("Unparseable pom.xml in %s/%s: %v", owner, name, parseErr)
		return []entities.Finding{entities.NewFinding(entities.SeverityRequired, nil,
			"Invalid pom.xml")}, nil
	}

	var findings []entities.Finding
	findings = append(findings, it.verifyArtifactID(pom, issue.Field(entities.FieldRepositoryName))...)
	findings = append(findings, it.verifyDisplayName(pom)...)
	findings = append(findings, it.verifyParent(pom)...)
	findings = append(findings, it.verifyLicenses(pom)...)
	return findings, nil
}

// verifyArtifactID compares the artifactId against the requested repository
// name. Nothing to compare against when the name field is blank.
func (it *PomVerifier) verifyArtifactID(pom *entities.POM, repositoryName string) []entities.Finding {
	if repositoryName == "" {
		return nil
	}

	if pom.ArtifactID == nil || strings.TrimSpace(*pom.ArtifactID) == "" {
		return []entities.Finding{entities.NewFinding(entities.SeverityRequired, nil,
			"The pom.xml does not contain a valid <artifactId> element")}
	}

	artifactID := strings.TrimSpace(*pom.ArtifactID)
	expected := strings.TrimSuffix(repositoryName, pluginSuffix)

	var findings []entities.Finding
	if !strings.EqualFold(artifactID, expected) {
		findings = append(findings, entities.NewFinding(entities.SeverityRequired, nil,
			`The <artifactId> from the pom.xml (%s) is incorrect, it should be %s (the repository name with "-plugin" removed)`,
			artifactID, expected))
	}
	if strings.Contains(strings.ToLower(artifactID), "jenkins") {
		findings = append(findings, entities.NewFinding(entities.SeverityRequired, nil,
			`The <artifactId> from the pom.xml (%s) must not contain "Jenkins"`, artifactID))
	}
	if artifactID != strings.ToLower(artifactID) {
		findings = append(findings, entities.NewFinding(entities.SeverityRequired, nil,
			"The <artifactId> from the pom.xml (%s) must be all lowercase", artifactID))
	}
	return findings
}

func (it *PomVerifier) verifyDisplayName(pom *entities.POM) []entities.Finding {
	if pom.Name == nil {
		return []entities.Finding{entities.NewFinding(entities.SeverityRequired, nil,
			"The pom.xml does not contain a valid <name> element")}
	}

	name := strings.TrimSpace(*pom.Name)
	if name == "" {
		return []entities.Finding{entities.NewFinding(entities.SeverityRequired, nil,
			"The <name> in the pom.xml must not be blank")}
	}
	if strings.Contains(strings.ToLower(name), "jenkins") {
		return []entities.Finding{entities.NewFinding(entities.SeverityRequired, nil,
			`The <name> in the pom.xml (%s) must not contain "Jenkins"`, name)}
	}
	return nil
}

// verifyParent checks the parent descriptor recommendation. Any failure in
// here (an unparseable version string, for instance) is logged and swallowed
// without producing a finding.
func (it *PomVerifier) verifyParent(pom *entities.POM) []entities.Finding {
	if pom.Parent == nil {
		return nil
	}

	var findings []entities.Finding
	if pom.Parent.GroupID != expectedParentGroupID {
		findings = append(findings, entities.NewFinding(entities.SeverityRequired, nil,
			"The parent <groupId> in the pom.xml must be %s, found %s",
			expectedParentGroupID, pom.Parent.GroupID))
	}

	rawVersion := strings.TrimSpace(pom.Parent.Version)
	if rawVersion == "" {
		return findings
	}

	version, err := semver.NewVersion(rawVersion)
	if err != nil {
		logger.Errorf("Unparseable parent <version> %q: %v", rawVersion, err)
		return findings
	}

	if version.Major() != recommendedParentMajor {
		findings = append(findings, entities.NewFinding(entities.SeverityRequired, nil,
			"The parent <version> in the pom.xml must be at least %d.x, found %s",
			recommendedParentMajor, rawVersion))
		return findings
	}

	// A jenkins.version property overrides the parent version for the LTS
	// recommendation.
	resolved := version
	if pom.Properties != nil && strings.TrimSpace(pom.Properties.JenkinsVersion) != "" {
		override, overrideErr := semver.NewVersion(strings.TrimSpace(pom.Properties.JenkinsVersion))
		if overrideErr != nil {
			logger.Errorf("Unparseable jenkins.version property %q: %v",
				pom.Properties.JenkinsVersion, overrideErr)
			return findings
		}
		resolved = override
	}

	if resolved.Patch() <= 0 {
		findings = append(findings, entities.NewFinding(entities.SeverityInfo, nil,
			"Consider using an LTS release of Jenkins in the parent <version> (e.g. 2.107.3)"))
	}
	return findings
}

func (it *PomVerifier) verifyLicenses(pom *entities.POM) []entities.Finding {
	if len(pom.Licenses) == 0 {
		return []entities.Finding{entities.NewFinding(entities.SeverityRequired, nil,
			"Specify an open-source license for your code in the <licenses> section of the pom.xml")}
	}
	return nil
}
