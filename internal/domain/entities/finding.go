package entities

import "fmt"

// Severity classifies how blocking a finding is. Required findings block
// hosting approval, warnings should be looked at, info entries are advisory.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityRequired
)

// Label returns the report label for the severity. Anything that is not
// Info or Warning renders as Required, so an unknown value still blocks.
func (s Severity) Label() string {
	switch s {
	case SeverityInfo:
		return "Info"
	case SeverityWarning:
		return "Warning"
	default:
		return "Required"
	}
}

// Color returns the wiki-markup color wrapping the severity label.
func (s Severity) Color() string {
	switch s {
	case SeverityInfo:
		return "black"
	case SeverityWarning:
		return "orange"
	default:
		return "red"
	}
}

// Finding is a single verification result: a severity, a rendered message and
// optional explanatory subitems. Findings are immutable once constructed.
type Finding struct {
	Severity Severity
	Message  string
	Subitems []Finding
}

// NewFinding builds a finding, rendering the message immediately.
func NewFinding(severity Severity, subitems []Finding, format string, args ...any) Finding {
	return Finding{
		Severity: severity,
		Message:  fmt.Sprintf(format, args...),
		Subitems: subitems,
	}
}

// Equal reports whether two findings describe the same problem. Subitems are
// deliberately excluded: two verifiers raising the same complaint must
// collapse into one entry even when only one of them attached subitems.
func (it Finding) Equal(other Finding) bool {
	return it.Severity == other.Severity && it.Message == other.Message
}

func (it Finding) key() string {
	return fmt.Sprintf("%d|%s", it.Severity, it.Message)
}
