package archive

import (
	"testing"
	"time"

	"github.com/sbilibin2017/archive-viewer/internal/models"
	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func TestSortByRecency(t *testing.T) {
	entries := []models.Entry{
		{ID: "old", CreatedAt: date(2023, time.May, 1)},
		{ID: "undated"},
		{ID: "edited", CreatedAt: date(2022, time.January, 1), UpdatedAt: date(2024, time.June, 1)},
		{ID: "new", CreatedAt: date(2024, time.March, 1)},
	}

	SortByRecency(entries)

	var ids []string
	for _, e := range entries {
		ids = append(ids, e.ID)
	}
	assert.Equal(t, []string{"edited", "new", "old", "undated"}, ids)
}

func TestGroupByMonth(t *testing.T) {
	entries := []models.Entry{
		{ID: "a", CreatedAt: date(2024, time.March, 20)},
		{ID: "b", CreatedAt: date(2024, time.March, 2)},
		{ID: "c", CreatedAt: date(2023, time.December, 31)},
		{ID: "d"},
		{ID: "e", CreatedAt: date(2024, time.January, 15)},
	}
	SortByRecency(entries)

	groups := GroupByMonth(entries, time.UTC)

	var labels []string
	for _, g := range groups {
		labels = append(labels, g.Label)
	}
	assert.Equal(t, []string{"Mar '24", "Jan '24", "Dec '23", UnknownDate}, labels)
	assert.Equal(t, "a", groups[0].Entries[0].ID)
	assert.Equal(t, "b", groups[0].Entries[1].ID)
	assert.Equal(t, "d", groups[3].Entries[0].ID)

	var prev time.Time
	for _, g := range groups[:3] {
		for _, e := range g.Entries {
			if !prev.IsZero() {
				assert.False(t, e.CreatedAt.After(prev))
			}
			prev = e.CreatedAt
		}
	}
}

func TestGroupByMonth_UsesLocation(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*60*60)
	entries := []models.Entry{
		{ID: "a", CreatedAt: time.Date(2024, time.April, 1, 2, 0, 0, 0, time.UTC)},
	}

	groups := GroupByMonth(entries, loc)

	assert.Len(t, groups, 1)
	assert.Equal(t, "Mar '24", groups[0].Label)
}

func TestGroupByMonth_Empty(t *testing.T) {
	assert.Empty(t, GroupByMonth(nil, nil))
}
