package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/archive-viewer/internal/models"
	"github.com/sbilibin2017/archive-viewer/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestGetCategoryHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGetter := NewMockCategoryGetter(ctrl)

	r := chi.NewRouter()
	r.Get("/profiles/{username}/{category}", NewGetCategoryHandler(mockGetter))

	resp := &models.CategoryResponse{
		User:     models.User{ID: "u1", Username: "alice"},
		Category: models.BucketMusic,
		Months: []models.MonthGroup{
			{Label: "Mar '24", Entries: []models.Entry{{ID: "e1", Title: "Album"}}},
		},
		AggregateLabel: "Artists",
		Aggregates:     []models.Entry{{ID: "e2", Title: "Artist"}},
	}

	tests := []struct {
		name           string
		url            string
		setupMocks     func()
		expectedStatus int
		expectedError  string
	}{
		{
			name: "success",
			url:  "/profiles/alice/Music",
			setupMocks: func() {
				mockGetter.EXPECT().GetCategory(gomock.Any(), "alice", "Music", "").Return(resp, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "pre-resolved id",
			url:  "/profiles/alice/music?uid=u1",
			setupMocks: func() {
				mockGetter.EXPECT().GetCategory(gomock.Any(), "alice", "music", "u1").Return(resp, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "unknown category",
			url:  "/profiles/alice/games",
			setupMocks: func() {
				mockGetter.EXPECT().GetCategory(gomock.Any(), "alice", "games", "").Return(nil, services.ErrUnknownCategory)
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  msgUnknownCategory,
		},
		{
			name: "not found",
			url:  "/profiles/ghost/tv",
			setupMocks: func() {
				mockGetter.EXPECT().GetCategory(gomock.Any(), "ghost", "tv", "").Return(nil, services.ErrUserNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedError:  msgUserNotFound,
		},
		{
			name: "store error",
			url:  "/profiles/alice/books",
			setupMocks: func() {
				mockGetter.EXPECT().GetCategory(gomock.Any(), "alice", "books", "").Return(nil, errors.New("timeout"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedError:  msgStoreError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMocks()

			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			rr := httptest.NewRecorder()

			r.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)

			if tt.expectedError != "" {
				var body models.ErrorResponse
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
				assert.Equal(t, tt.expectedError, body.Error)
				return
			}

			var body models.CategoryResponse
			assert.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
			assert.Equal(t, models.BucketMusic, body.Category)
			assert.Len(t, body.Months, 1)
			assert.Equal(t, "Artists", body.AggregateLabel)
			assert.Nil(t, body.Favorites)
		})
	}
}
