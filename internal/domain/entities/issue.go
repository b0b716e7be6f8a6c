package entities

import "strings"

// Field names of a hosting request, as shown in the issue tracker.
const (
	FieldCommitters     = "GitHub Users to Authorize as Committers"
	FieldRepositoryURL  = "Repository URL"
	FieldRepositoryName = "New Repository Name"
)

// Issue is a read-only view of a hosting request: its key plus the fields the
// verifiers care about, already flattened to strings.
type Issue struct {
	Key    string
	Fields map[string]string
}

// Field returns the trimmed value of the named field, or "" when unset.
func (it *Issue) Field(name string) string {
	return strings.TrimSpace(it.Fields[name])
}
