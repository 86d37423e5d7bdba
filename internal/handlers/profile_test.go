package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/archive-viewer/internal/models"
	"github.com/sbilibin2017/archive-viewer/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestGetProfileHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGetter := NewMockProfileGetter(ctrl)

	r := chi.NewRouter()
	r.Get("/profiles/{username}", NewGetProfileHandler(mockGetter))

	profile := &models.ProfileResponse{
		User: models.User{ID: "u1", Username: "Alice"},
		Categories: models.Classified{
			TV:       []models.Entry{{ID: "e1", Title: "Show"}},
			Music:    []models.Entry{},
			Podcasts: []models.Entry{},
			Books:    []models.Entry{},
		},
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
			url:  "/profiles/alice",
			setupMocks: func() {
				mockGetter.EXPECT().GetProfile(gomock.Any(), "alice", "").Return(profile, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "pre-resolved id",
			url:  "/profiles/alice?uid=u1",
			setupMocks: func() {
				mockGetter.EXPECT().GetProfile(gomock.Any(), "alice", "u1").Return(profile, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "not found",
			url:  "/profiles/ghost",
			setupMocks: func() {
				mockGetter.EXPECT().GetProfile(gomock.Any(), "ghost", "").Return(nil, services.ErrUserNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedError:  msgUserNotFound,
		},
		{
			name: "ambiguous username",
			url:  "/profiles/twin",
			setupMocks: func() {
				mockGetter.EXPECT().GetProfile(gomock.Any(), "twin", "").
					Return(nil, fmt.Errorf("resolve twin: %w", services.ErrAmbiguousUsername))
			},
			expectedStatus: http.StatusConflict,
			expectedError:  msgAmbiguousUsername,
		},
		{
			name: "store error",
			url:  "/profiles/alice",
			setupMocks: func() {
				mockGetter.EXPECT().GetProfile(gomock.Any(), "alice", "").Return(nil, errors.New("connection refused"))
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

			var body models.ProfileResponse
			assert.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
			assert.Equal(t, "u1", body.User.ID)
			assert.Len(t, body.Categories.TV, 1)
		})
	}
}

func TestGetProfileHandler_StaleRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGetter := NewMockProfileGetter(ctrl)

	r := chi.NewRouter()
	r.Get("/profiles/{username}", NewGetProfileHandler(mockGetter))

	ctx, cancel := context.WithCancel(context.Background())

	mockGetter.EXPECT().GetProfile(gomock.Any(), "alice", "").
		DoAndReturn(func(context.Context, string, string) (*models.ProfileResponse, error) {
			// The client navigates away while the lookup is in flight.
			cancel()
			return &models.ProfileResponse{User: models.User{ID: "u1"}}, nil
		})

	req := httptest.NewRequest(http.MethodGet, "/profiles/alice", nil).WithContext(ctx)
	rr := httptest.NewRecorder()

	r.ServeHTTP(rr, req)

	assert.Empty(t, rr.Body.String())
	assert.Empty(t, rr.Header().Get("Content-Type"))
}
