package entities

import (
	"sort"
	"strings"
)

// RenderFindings writes the findings to buf as JIRA wiki markup. Entries are
// sorted most severe first; top-level lines carry a colorized severity label,
// nested lines only a deeper bullet marker. Children are rendered depth-first
// right after their parent.
func RenderFindings(buf *strings.Builder, findings []Finding, depth int) {
	sorted := make([]Finding, len(findings))
	copy(sorted, findings)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Severity > sorted[j].Severity
	})

	for _, finding := range sorted {
		buf.WriteString(strings.Repeat("*", depth))
		buf.WriteString(" ")
		if depth == 1 {
			buf.WriteString("{color:")
			buf.WriteString(finding.Severity.Color())
			buf.WriteString("}[")
			buf.WriteString(finding.Severity.Label())
			buf.WriteString("]{color} ")
		}
		buf.WriteString(finding.Message)
		buf.WriteString("\n")

		if len(finding.Subitems) > 0 {
			RenderFindings(buf, finding.Subitems, depth+1)
		}
	}
}

// Render returns the full wiki-markup report for the set.
func (it *FindingSet) Render() string {
	var buf strings.Builder
	RenderFindings(&buf, it.items, 1)
	return buf.String()
}

// ReportComment builds the comment body posted back to the hosting request.
func ReportComment(set *FindingSet) string {
	var buf strings.Builder
	buf.WriteString("Hello from your friendly Jenkins hosting checker.\n\n")

	if set.Len() == 0 {
		buf.WriteString("It looks like you have everything in order. " +
			"A member of the hosting team will check over things and process " +
			"your request as soon as possible.\n")
		return buf.String()
	}

	buf.WriteString("It appears you have some issues with your hosting request. " +
		"Please correct the items listed below and update this issue to run " +
		"the checks again:\n\n")
	buf.WriteString(set.Render())
	return buf.String()
}
