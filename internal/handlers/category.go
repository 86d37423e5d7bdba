package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/archive-viewer/internal/models"
)

//go:generate mockgen -source=category.go -destination=mock_category.go -package=handlers

// CategoryGetter defines the interface that the service must implement.
type CategoryGetter interface {
	GetCategory(ctx context.Context, username, category, userID string) (*models.CategoryResponse, error)
}

// NewGetCategoryHandler returns an HTTP handler for one category of a user's archive.
// @Summary Get user category archive
// @Description Returns completed entries of one category grouped by month (newest first), favorites rated 5 and the artists or shows rail
// @Tags archives
// @Produce json
// @Param username path string true "Username, matched case-insensitively"
// @Param category path string true "Category: tv, music, podcasts or books"
// @Param uid query string false "Pre-resolved user id"
// @Success 200 {object} models.CategoryResponse "Category archive"
// @Failure 400 {object} models.ErrorResponse "Unknown category"
// @Failure 404 {object} models.ErrorResponse "User not found"
// @Failure 409 {object} models.ErrorResponse "Username matches more than one user"
// @Failure 500 {object} models.ErrorResponse "Error connecting to database"
// @Router /profiles/{username}/{category} [get]
func NewGetCategoryHandler(svc CategoryGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := chi.URLParam(r, "username")
		category := chi.URLParam(r, "category")
		userID := r.URL.Query().Get("uid")

		resp, err := svc.GetCategory(r.Context(), username, category, userID)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, resp)
	}
}
