package models

// Document is a raw record read from a document store collection.
type Document struct {
	ID   string         `json:"id"`   // Document key within its collection
	Data map[string]any `json:"data"` // Stored fields, decoded from JSON
}

// Filter is a single equality condition used when querying a collection.
type Filter struct {
	Field string // Document field name, e.g. "userId"
	Value any    // Value the field must be equal to
}
