package entities_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jenkins-infra/hosting-checker/internal/domain/entities"
)

func TestRenderFindings(t *testing.T) {
	t.Parallel()

	t.Run("should render the most severe findings first", func(t *testing.T) {
		t.Parallel()

		// given
		set := entities.NewFindingSet()
		set.Add(entities.NewFinding(entities.SeverityInfo, nil, "an info"))
		set.Add(entities.NewFinding(entities.SeverityWarning, nil, "a warning"))
		set.Add(entities.NewFinding(entities.SeverityRequired, nil, "a blocker"))

		// when
		report := set.Render()

		// then
		lines := strings.Split(strings.TrimRight(report, "\n"), "\n")
		require.Len(t, lines, 3)
		assert.Contains(t, lines[0], "[Required]")
		assert.Contains(t, lines[1], "[Warning]")
		assert.Contains(t, lines[2], "[Info]")
	})

	t.Run("should wrap the severity label in a color span", func(t *testing.T) {
		t.Parallel()

		// given
		set := entities.NewFindingSet()
		set.Add(entities.NewFinding(entities.SeverityRequired, nil, "a blocker"))

		// when
		report := set.Render()

		// then
		assert.Equal(t, "* {color:red}[Required]{color} a blocker\n", report)
	})

	t.Run("should indent subitems without a severity label", func(t *testing.T) {
		t.Parallel()

		// given
		subitems := []entities.Finding{
			entities.NewFinding(entities.SeverityInfo, nil, "first rule"),
			entities.NewFinding(entities.SeverityInfo, nil, "second rule"),
		}
		set := entities.NewFindingSet()
		set.Add(entities.NewFinding(entities.SeverityRequired, subitems, "the name is missing"))

		// when
		report := set.Render()

		// then
		lines := strings.Split(strings.TrimRight(report, "\n"), "\n")
		require.Len(t, lines, 3)
		assert.True(t, strings.HasPrefix(lines[0], "* "))
		assert.Equal(t, "** first rule", lines[1])
		assert.Equal(t, "** second rule", lines[2])
		assert.NotContains(t, lines[1], "{color:")
	})

	t.Run("should render children right after their parent", func(t *testing.T) {
		t.Parallel()

		// given
		subitems := []entities.Finding{entities.NewFinding(entities.SeverityInfo, nil, "the detail")}
		set := entities.NewFindingSet()
		set.Add(entities.NewFinding(entities.SeverityRequired, subitems, "parent complaint"))
		set.Add(entities.NewFinding(entities.SeverityRequired, nil, "another complaint"))

		// when
		report := set.Render()

		// then
		parentIdx := strings.Index(report, "parent complaint")
		detailIdx := strings.Index(report, "the detail")
		otherIdx := strings.Index(report, "another complaint")
		assert.Less(t, parentIdx, detailIdx)
		assert.Less(t, detailIdx, otherIdx)
	})

	t.Run("should produce identical output on repeated renders", func(t *testing.T) {
		t.Parallel()

		// given
		set := entities.NewFindingSet()
		set.Add(entities.NewFinding(entities.SeverityRequired, nil, "first blocker"))
		set.Add(entities.NewFinding(entities.SeverityRequired, nil, "second blocker"))
		set.Add(entities.NewFinding(entities.SeverityInfo, nil, "an info"))
		set.Add(entities.NewFinding(entities.SeverityWarning, nil, "a warning"))

		// when
		first := set.Render()
		second := set.Render()

		// then
		assert.Equal(t, first, second)
	})
}

func TestReportComment(t *testing.T) {
	t.Parallel()

	t.Run("should congratulate when there are no findings", func(t *testing.T) {
		t.Parallel()

		// given
		set := entities.NewFindingSet()

		// when
		comment := entities.ReportComment(set)

		// then
		assert.Contains(t, comment, "everything in order")
		assert.NotContains(t, comment, "{color:")
	})

	t.Run("should include the rendered findings otherwise", func(t *testing.T) {
		t.Parallel()

		// given
		set := entities.NewFindingSet()
		set.Add(entities.NewFinding(entities.SeverityRequired, nil, "a blocker"))

		// when
		comment := entities.ReportComment(set)

		// then
		assert.Contains(t, comment, "issues with your hosting request")
		assert.Contains(t, comment, "* {color:red}[Required]{color} a blocker")
	})
}
