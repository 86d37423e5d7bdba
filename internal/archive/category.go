package archive

import (
	"strings"

	"github.com/sbilibin2017/archive-viewer/internal/models"
)

// categories maps both singular stored keys and plural display names to the
// stored key and the display bucket. Historical entries use either form.
var categories = map[string]struct {
	key    string
	bucket string
}{
	"tv":       {models.CategoryTV, models.BucketTV},
	"music":    {models.CategoryMusic, models.BucketMusic},
	"podcast":  {models.CategoryPodcast, models.BucketPodcasts},
	"podcasts": {models.CategoryPodcast, models.BucketPodcasts},
	"book":     {models.CategoryBook, models.BucketBooks},
	"books":    {models.CategoryBook, models.BucketBooks},
}

// CategoryKey returns the stored category key for a display or stored category name.
func CategoryKey(name string) (string, bool) {
	c, ok := categories[strings.ToLower(strings.TrimSpace(name))]
	return c.key, ok
}

// BucketOf returns the display bucket for a category name.
func BucketOf(name string) (string, bool) {
	c, ok := categories[strings.ToLower(strings.TrimSpace(name))]
	return c.bucket, ok
}

// IsAggregate reports whether the entry is an artist or show level record.
func IsAggregate(e models.Entry) bool {
	bucket, _ := BucketOf(e.Category)
	format := strings.ToLower(e.Format)
	switch bucket {
	case models.BucketMusic:
		return format == models.FormatArtist
	case models.BucketPodcasts:
		return format == models.FormatShow
	}
	return false
}

// AggregateLabel returns the rail title for aggregate entries of a bucket.
func AggregateLabel(bucket string) string {
	switch bucket {
	case models.BucketMusic:
		return "Artists"
	case models.BucketPodcasts:
		return "Shows"
	}
	return ""
}

// Classify partitions entries into display buckets. Entries whose category
// matches no bucket are kept in Unclassified.
func Classify(entries []models.Entry) models.Classified {
	c := models.Classified{
		TV:       []models.Entry{},
		Music:    []models.Entry{},
		Podcasts: []models.Entry{},
		Books:    []models.Entry{},
	}
	for _, e := range entries {
		bucket, ok := BucketOf(e.Category)
		if !ok {
			c.Unclassified = append(c.Unclassified, e)
			continue
		}
		e.Bucket = bucket
		switch bucket {
		case models.BucketTV:
			c.TV = append(c.TV, e)
		case models.BucketMusic:
			c.Music = append(c.Music, e)
		case models.BucketPodcasts:
			c.Podcasts = append(c.Podcasts, e)
		case models.BucketBooks:
			c.Books = append(c.Books, e)
		}
	}
	return c
}

// InBucket keeps the entries whose category, singular or plural in any
// casing, belongs to bucket.
func InBucket(entries []models.Entry, bucket string) []models.Entry {
	out := make([]models.Entry, 0, len(entries))
	for _, e := range entries {
		if b, ok := BucketOf(e.Category); ok && b == bucket {
			e.Bucket = b
			out = append(out, e)
		}
	}
	return out
}

// SplitAggregates separates individual items from aggregate entries, preserving order.
func SplitAggregates(entries []models.Entry) (items, aggregates []models.Entry) {
	items = make([]models.Entry, 0, len(entries))
	for _, e := range entries {
		if IsAggregate(e) {
			aggregates = append(aggregates, e)
			continue
		}
		items = append(items, e)
	}
	return items, aggregates
}
