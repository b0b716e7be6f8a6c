package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jenkins-infra/hosting-checker/internal/domain/entities"
)

func TestFindingSet(t *testing.T) {
	t.Parallel()

	t.Run("should keep one instance of equal findings regardless of order", func(t *testing.T) {
		t.Parallel()

		// given
		first := entities.NewFinding(entities.SeverityRequired, nil, "duplicate complaint")
		second := entities.NewFinding(entities.SeverityRequired, nil, "duplicate complaint")
		other := entities.NewFinding(entities.SeverityWarning, nil, "something else")

		forward := entities.NewFindingSet()
		backward := entities.NewFindingSet()

		// when
		forward.AddAll([]entities.Finding{first, other, second})
		backward.AddAll([]entities.Finding{second, other, first})

		// then
		assert.Equal(t, 2, forward.Len())
		assert.Equal(t, 2, backward.Len())
	})

	t.Run("should deduplicate findings that differ only in subitems", func(t *testing.T) {
		t.Parallel()

		// given
		subitems := []entities.Finding{entities.NewFinding(entities.SeverityInfo, nil, "detail")}
		withSubitems := entities.NewFinding(entities.SeverityRequired, subitems, "same complaint")
		withoutSubitems := entities.NewFinding(entities.SeverityRequired, nil, "same complaint")

		set := entities.NewFindingSet()

		// when
		set.Add(withSubitems)
		set.Add(withoutSubitems)

		// then
		assert.Equal(t, 1, set.Len())
	})

	t.Run("should keep findings with the same message but different severities", func(t *testing.T) {
		t.Parallel()

		// given
		set := entities.NewFindingSet()

		// when
		set.Add(entities.NewFinding(entities.SeverityWarning, nil, "same message"))
		set.Add(entities.NewFinding(entities.SeverityRequired, nil, "same message"))

		// then
		assert.Equal(t, 2, set.Len())
	})

	t.Run("should return items in insertion order", func(t *testing.T) {
		t.Parallel()

		// given
		set := entities.NewFindingSet()
		set.Add(entities.NewFinding(entities.SeverityInfo, nil, "first"))
		set.Add(entities.NewFinding(entities.SeverityRequired, nil, "second"))

		// when
		items := set.Items()

		// then
		assert.Len(t, items, 2)
		assert.Equal(t, "first", items[0].Message)
		assert.Equal(t, "second", items[1].Message)
	})
}
