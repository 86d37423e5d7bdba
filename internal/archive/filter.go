package archive

import "github.com/sbilibin2017/archive-viewer/internal/models"

// IsCompleted reports whether an entry with the given status is listed.
// An empty status counts as completed.
func IsCompleted(status string) bool {
	return status == "" || status == models.StatusCompleted
}

// FilterCompleted keeps the entries that IsCompleted accepts, preserving order.
func FilterCompleted(entries []models.Entry) []models.Entry {
	out := make([]models.Entry, 0, len(entries))
	for _, e := range entries {
		if IsCompleted(e.Status) {
			out = append(out, e)
		}
	}
	return out
}

// Favorites returns the entries rated exactly FavoriteRating.
func Favorites(entries []models.Entry) []models.Entry {
	var out []models.Entry
	for _, e := range entries {
		if e.Rating != nil && *e.Rating == FavoriteRating {
			out = append(out, e)
		}
	}
	return out
}
