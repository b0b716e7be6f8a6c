package verifiers

import (
	"context"
	"strings"

	"github.com/jenkins-infra/hosting-checker/internal/domain/entities"
)

// namingRules are the repository naming guidelines attached to the finding
// raised when the "New Repository Name" field is left blank. They are
// informational here; the filled-in name is checked rule by rule.
var namingRules = []string{
	`it must match the artifactId defined in your pom.xml with "-plugin" appended`,
	`it must end with "-plugin" if you are hosting a plugin`,
	`it must be all lowercase`,
	`it must not contain "Jenkins"`,
	`it must use hyphens instead of spaces`,
}

// FieldVerifier checks the hosting request fields for presence and structure
// without touching the source host.
type FieldVerifier struct{}

// NewFieldVerifier creates the field verifier.
func NewFieldVerifier() *FieldVerifier {
	return &FieldVerifier{}
}

func (it *FieldVerifier) Name() string { return "fields" }

// Verify runs unconditionally against every hosting request.
func (it *FieldVerifier) Verify(_ context.Context, issue *entities.Issue) ([]entities.Finding, error) {
	var findings []entities.Finding

	if issue.Field(entities.FieldCommitters) == "" {
		findings = append(findings, entities.NewFinding(entities.SeverityRequired, nil,
			"Missing list of GitHub users to authorize as committers"))
	}

	repositoryURL := issue.Field(entities.FieldRepositoryURL)
	if _, _, ok := ParseRepositoryURL(repositoryURL); repositoryURL == "" || !ok {
		findings = append(findings, invalidRepositoryURL(repositoryURL))
	}

	findings = append(findings, it.verifyRepositoryName(issue.Field(entities.FieldRepositoryName))...)
	return findings, nil
}

func (it *FieldVerifier) verifyRepositoryName(name string) []entities.Finding {
	if name == "" {
		subitems := make([]entities.Finding, 0, len(namingRules))
		for _, rule := range namingRules {
			subitems = append(subitems, entities.NewFinding(entities.SeverityInfo, nil, "%s", rule))
		}
		return []entities.Finding{entities.NewFinding(entities.SeverityRequired, subitems,
			`Missing value for the "New Repository Name" field, the name must follow these rules:`)}
	}

	var findings []entities.Finding
	lower := strings.ToLower(name)

	if strings.Contains(lower, "jenkins") || strings.Contains(lower, "hudson") {
		findings = append(findings, entities.NewFinding(entities.SeverityRequired, nil,
			`The repository name must not contain "Jenkins" or "Hudson"`))
	}
	if !strings.HasSuffix(name, "-plugin") {
		findings = append(findings, entities.NewFinding(entities.SeverityRequired, nil,
			`The repository name must end with "-plugin" when hosting a plugin`))
	}
	if name != lower {
		findings = append(findings, entities.NewFinding(entities.SeverityRequired, nil,
			"The repository name must be all lowercase: %s", name))
	}
	return findings
}
