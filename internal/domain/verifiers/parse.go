package verifiers

import (
	"regexp"
	"strings"

	"github.com/jenkins-infra/hosting-checker/internal/domain/entities"
)

// repositoryURLPattern accepts "owner/name" with an optional GitHub prefix.
var repositoryURLPattern = regexp.MustCompile(`^(?:https://github\.com/)?(\S+?)/(\S+?)$`)

// ParseRepositoryURL extracts the owner and repository name from the
// "Repository URL" field value.
func ParseRepositoryURL(value string) (string, string, bool) {
	matches := repositoryURLPattern.FindStringSubmatch(strings.TrimSpace(value))
	if matches == nil {
		return "", "", false
	}
	return matches[1], matches[2], true
}

// committerSeparators splits the committer list on newlines, semicolons and commas.
var committerSeparators = regexp.MustCompile(`[\n;,]+`)

// SplitCommitters returns the trimmed, non-empty committer names of the
// "GitHub Users to Authorize as Committers" field value.
func SplitCommitters(value string) []string {
	var names []string
	for _, part := range committerSeparators.Split(value, -1) {
		if name := strings.TrimSpace(part); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// invalidRepositoryURL is raised by several verifiers for the same broken
// field value; the deduplicating set collapses them into one entry.
func invalidRepositoryURL(value string) entities.Finding {
	return entities.NewFinding(entities.SeverityRequired, nil,
		"Invalid repository URL: %q", value)
}
