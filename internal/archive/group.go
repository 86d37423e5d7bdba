package archive

import (
	"sort"
	"time"

	"github.com/sbilibin2017/archive-viewer/internal/models"
)

// UnknownDate labels entries without a usable creation date.
const UnknownDate = "Unknown Date"

// SortByRecency orders entries newest first by SortTime. Undated entries go last.
func SortByRecency(entries []models.Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].SortTime().After(entries[j].SortTime())
	})
}

// MonthLabel formats t as an abbreviated month and two-digit year, e.g. "Mar '24".
func MonthLabel(t time.Time) string {
	return t.Format("Jan '06")
}

// GroupByMonth buckets entries by the calendar month of CreatedAt in loc.
// Groups are ordered newest first with UnknownDate last; entries keep their
// input order inside a group.
func GroupByMonth(entries []models.Entry, loc *time.Location) []models.MonthGroup {
	if loc == nil {
		loc = time.Local
	}

	type bucket struct {
		month time.Time
		group models.MonthGroup
	}
	index := make(map[string]int)
	var buckets []bucket
	var unknown []models.Entry

	for _, e := range entries {
		if e.CreatedAt.IsZero() {
			unknown = append(unknown, e)
			continue
		}
		local := e.CreatedAt.In(loc)
		label := MonthLabel(local)
		i, ok := index[label]
		if !ok {
			i = len(buckets)
			index[label] = i
			buckets = append(buckets, bucket{
				month: time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, loc),
				group: models.MonthGroup{Label: label},
			})
		}
		buckets[i].group.Entries = append(buckets[i].group.Entries, e)
	}

	sort.SliceStable(buckets, func(i, j int) bool {
		return buckets[i].month.After(buckets[j].month)
	})

	groups := make([]models.MonthGroup, 0, len(buckets)+1)
	for _, b := range buckets {
		groups = append(groups, b.group)
	}
	if len(unknown) > 0 {
		groups = append(groups, models.MonthGroup{Label: UnknownDate, Entries: unknown})
	}
	return groups
}
