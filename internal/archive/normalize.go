package archive

import (
	"fmt"
	"strings"

	"github.com/sbilibin2017/archive-viewer/internal/models"
)

// Placeholders for missing entry fields.
const (
	UntitledEntry  = "Untitled Entry"
	UnknownCreator = "Unknown Creator"
)

// NormalizeUser converts a user document into a User.
func NormalizeUser(doc models.Document) models.User {
	u := models.User{
		ID:        doc.ID,
		Username:  stringField(doc.Data, "username"),
		FullName:  stringField(doc.Data, "fullName"),
		Name:      stringField(doc.Data, "name"),
		AvatarURL: stringField(doc.Data, "avatarUrl"),
	}
	u.DisplayName = u.PreferredName()
	return u
}

// NormalizeUsers converts every document with NormalizeUser.
func NormalizeUsers(docs []models.Document) []models.User {
	users := make([]models.User, 0, len(docs))
	for _, d := range docs {
		users = append(users, NormalizeUser(d))
	}
	return users
}

// NormalizeEntry converts an entry document into its canonical shape and classifies it.
func NormalizeEntry(doc models.Document) models.Entry {
	e := models.Entry{
		ID:           doc.ID,
		UserID:       stringField(doc.Data, "userId"),
		Category:     stringField(doc.Data, "category"),
		Format:       stringField(doc.Data, "format"),
		Title:        stringField(doc.Data, "title"),
		Creator:      stringField(doc.Data, "creator"),
		ThumbnailURL: stringField(doc.Data, "thumbnailUrl"),
		Status:       stringField(doc.Data, "status"),
		CreatedAt:    ParseTimestamp(doc.Data["createdAt"]),
		UpdatedAt:    ParseTimestamp(doc.Data["updatedAt"]),
	}
	if e.Title == "" {
		e.Title = UntitledEntry
	}
	if e.Creator == "" {
		e.Creator = UnknownCreator
	}
	if r, ok := ParseRating(doc.Data["rating"]); ok {
		e.Rating = &r
		e.RatingLabel = FormatRating(r)
	}
	if bucket, ok := BucketOf(e.Category); ok {
		e.Bucket = bucket
	}
	e.Aggregate = IsAggregate(e)
	return e
}

// NormalizeEntries converts every document with NormalizeEntry.
func NormalizeEntries(docs []models.Document) []models.Entry {
	entries := make([]models.Entry, 0, len(docs))
	for _, d := range docs {
		entries = append(entries, NormalizeEntry(d))
	}
	return entries
}

func stringField(data map[string]any, key string) string {
	switch v := data[key].(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	default:
		return fmt.Sprint(v)
	}
}
