package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/archive-viewer/internal/models"
)

//go:generate mockgen -source=users.go -destination=mock_users.go -package=handlers

// UserLister defines the interface that the service must implement.
type UserLister interface {
	ListUsers(ctx context.Context) ([]models.User, error)
}

// UserSearcher defines the interface that the service must implement.
type UserSearcher interface {
	SearchUsers(ctx context.Context, query string) ([]models.User, error)
}

// NewListUsersHandler returns an HTTP handler for the user directory.
// @Summary List users
// @Description Returns every user sorted by username
// @Tags users
// @Produce json
// @Success 200 {object} models.UsersResponse "User directory"
// @Failure 500 {object} models.ErrorResponse "Error connecting to database"
// @Router /users [get]
func NewListUsersHandler(svc UserLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := svc.ListUsers(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, models.UsersResponse{Users: users})
	}
}

// NewSearchUsersHandler returns an HTTP handler for searching the user directory.
// @Summary Search users
// @Description Case-insensitive substring search on username, full name and name. Usernames starting with the query rank first. An empty query returns no users.
// @Tags users
// @Produce json
// @Param q query string false "Search query"
// @Success 200 {object} models.UsersResponse "Matching users"
// @Failure 429 {object} models.ErrorResponse "Rate limit exceeded"
// @Failure 500 {object} models.ErrorResponse "Error connecting to database"
// @Router /users/search [get]
func NewSearchUsersHandler(svc UserSearcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := svc.SearchUsers(r.Context(), r.URL.Query().Get("q"))
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, models.UsersResponse{Users: users})
	}
}
