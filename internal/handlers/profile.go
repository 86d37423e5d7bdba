package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/archive-viewer/internal/models"
)

//go:generate mockgen -source=profile.go -destination=mock_profile.go -package=handlers

// ProfileGetter defines the interface that the service must implement.
type ProfileGetter interface {
	GetProfile(ctx context.Context, username, userID string) (*models.ProfileResponse, error)
}

// NewGetProfileHandler returns an HTTP handler for a user profile.
// @Summary Get user profile
// @Description Returns the user and their completed entries split into tv, music, podcasts and books
// @Tags archives
// @Produce json
// @Param username path string true "Username, matched case-insensitively"
// @Param uid query string false "Pre-resolved user id"
// @Success 200 {object} models.ProfileResponse "Profile"
// @Failure 404 {object} models.ErrorResponse "User not found"
// @Failure 409 {object} models.ErrorResponse "Username matches more than one user"
// @Failure 500 {object} models.ErrorResponse "Error connecting to database"
// @Router /profiles/{username} [get]
func NewGetProfileHandler(svc ProfileGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := chi.URLParam(r, "username")
		userID := r.URL.Query().Get("uid")

		profile, err := svc.GetProfile(r.Context(), username, userID)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, profile)
	}
}
