package models

// User represents a user document from the user collection.
// swagger:model User
type User struct {
	// Internal identifier
	// example: 3kTz9QmP
	ID string `json:"id"`

	// Username
	// example: adalovelace
	Username string `json:"username"`

	// Full name
	// example: Ada Lovelace
	FullName string `json:"full_name,omitempty"`

	// Legacy display name
	Name string `json:"name,omitempty"`

	// Avatar image URL
	AvatarURL string `json:"avatar_url,omitempty"`

	// Name shown on profile and directory cards
	// example: Ada Lovelace
	DisplayName string `json:"display_name"`
}

// PreferredName returns the full name, falling back to the legacy name and then the username.
func (u User) PreferredName() string {
	switch {
	case u.FullName != "":
		return u.FullName
	case u.Name != "":
		return u.Name
	default:
		return u.Username
	}
}

// UsersResponse represents a list of users in the directory
// swagger:model UsersResponse
type UsersResponse struct {
	// Users
	Users []User `json:"users"`
}

// ErrorResponse represents an error response returned by every endpoint
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// example: User not found
	Error string `json:"error"`
}
