package models

import "time"

// Stored category keys.
const (
	CategoryTV      = "tv"
	CategoryMusic   = "music"
	CategoryPodcast = "podcast"
	CategoryBook    = "book"
)

// Display buckets an entry can be classified into.
const (
	BucketTV       = "tv"
	BucketMusic    = "music"
	BucketPodcasts = "podcasts"
	BucketBooks    = "books"
)

// Formats marking aggregate entries.
const (
	FormatArtist = "artist"
	FormatShow   = "show"
)

// StatusCompleted is the only explicit status shown in listings.
const StatusCompleted = "completed"

// Entry is a normalized archive entry.
// swagger:model Entry
type Entry struct {
	ID           string    `json:"id"`                      // Document key
	UserID       string    `json:"user_id"`                 // Owner of the entry
	Category     string    `json:"category"`                // Category as stored
	Bucket       string    `json:"bucket,omitempty"`        // Classified bucket, empty when unclassified
	Format       string    `json:"format,omitempty"`        // Sub-kind, e.g. artist or show
	Title        string    `json:"title"`                   // Title or "Untitled Entry"
	Creator      string    `json:"creator"`                 // Creator or "Unknown Creator"
	ThumbnailURL string    `json:"thumbnail_url,omitempty"` // Cover image
	Rating       *float64  `json:"rating,omitempty"`        // Coerced numeric rating
	RatingLabel  string    `json:"rating_label,omitempty"`  // Rating with one decimal
	Status       string    `json:"status,omitempty"`        // Stored status
	Aggregate    bool      `json:"aggregate,omitempty"`     // Artist or show level record
	CreatedAt    time.Time `json:"created_at,omitzero"`     // Creation time
	UpdatedAt    time.Time `json:"updated_at,omitzero"`     // Last update time
}

// SortTime returns the timestamp used for recency ordering.
func (e Entry) SortTime() time.Time {
	if !e.UpdatedAt.IsZero() {
		return e.UpdatedAt
	}
	return e.CreatedAt
}
