package models

// View kinds reported in view events.
const (
	ViewProfile  = "profile"
	ViewCategory = "category"
)

// ViewEvent records a successful archive view.
type ViewEvent struct {
	EventID   string `json:"event_id"`           // EventID is a unique identifier for the event.
	Timestamp int64  `json:"timestamp"`          // Timestamp is the Unix time (in seconds) of the view.
	UserID    string `json:"user_id"`            // UserID is the owner of the viewed archive.
	Username  string `json:"username"`           // Username is the path segment that was requested.
	View      string `json:"view"`               // View is either "profile" or "category".
	Category  string `json:"category,omitempty"` // Category is set for category views.
}
