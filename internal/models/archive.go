package models

// Classified holds a user's entries split into display buckets.
// swagger:model Classified
type Classified struct {
	TV           []Entry `json:"tv"`
	Music        []Entry `json:"music"`
	Podcasts     []Entry `json:"podcasts"`
	Books        []Entry `json:"books"`
	Unclassified []Entry `json:"unclassified,omitempty"` // Entries whose category matches no bucket
}

// ProfileResponse represents a user profile with categorized entries
// swagger:model ProfileResponse
type ProfileResponse struct {
	// Profile owner
	User User `json:"user"`

	// Completed entries grouped by bucket
	Categories Classified `json:"categories"`
}

// MonthGroup is a set of entries sharing a calendar month.
// swagger:model MonthGroup
type MonthGroup struct {
	// Month label
	// example: Mar '24
	Label   string  `json:"label"`
	Entries []Entry `json:"entries"`
}

// CategoryResponse represents a single category archive of a user
// swagger:model CategoryResponse
type CategoryResponse struct {
	// Archive owner
	User User `json:"user"`

	// Category bucket
	// example: music
	Category string `json:"category"`

	// Individual entries grouped by month, newest first
	Months []MonthGroup `json:"months"`

	// Entries rated 5, omitted when empty
	Favorites []Entry `json:"favorites,omitempty"`

	// Rail title for aggregate entries
	// example: Artists
	AggregateLabel string `json:"aggregate_label,omitempty"`

	// Artist or show level entries
	Aggregates []Entry `json:"aggregates,omitempty"`
}
