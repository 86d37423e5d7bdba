package middlewares

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/archive-viewer/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestRateLimitMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCounter := NewMockRateCounter(ctrl)
	window := 10 * time.Second

	tests := []struct {
		name           string
		limit          int
		setupMocks     func()
		expectedStatus int
		expectedCalled bool
	}{
		{
			name:  "under limit",
			limit: 3,
			setupMocks: func() {
				mockCounter.EXPECT().Increment(gomock.Any(), "/users/search:10.0.0.1", window).Return(int64(1), nil)
			},
			expectedStatus: http.StatusOK,
			expectedCalled: true,
		},
		{
			name:  "at limit",
			limit: 3,
			setupMocks: func() {
				mockCounter.EXPECT().Increment(gomock.Any(), gomock.Any(), window).Return(int64(3), nil)
			},
			expectedStatus: http.StatusOK,
			expectedCalled: true,
		},
		{
			name:  "over limit",
			limit: 3,
			setupMocks: func() {
				mockCounter.EXPECT().Increment(gomock.Any(), gomock.Any(), window).Return(int64(4), nil)
			},
			expectedStatus: http.StatusTooManyRequests,
			expectedCalled: false,
		},
		{
			name:  "counter error lets request through",
			limit: 3,
			setupMocks: func() {
				mockCounter.EXPECT().Increment(gomock.Any(), gomock.Any(), window).Return(int64(0), errors.New("redis down"))
			},
			expectedStatus: http.StatusOK,
			expectedCalled: true,
		},
		{
			name:           "disabled",
			limit:          0,
			setupMocks:     func() {},
			expectedStatus: http.StatusOK,
			expectedCalled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMocks()

			called := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				w.WriteHeader(http.StatusOK)
			})

			handler := RateLimitMiddleware(mockCounter, tt.limit, window)(next)

			req := httptest.NewRequest(http.MethodGet, "/users/search?q=a", nil)
			req.RemoteAddr = "10.0.0.1:5555"
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.expectedCalled, called)
			if tt.expectedStatus == http.StatusTooManyRequests {
				var body models.ErrorResponse
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
				assert.Equal(t, "Rate limit exceeded", body.Error)
				assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
				assert.Equal(t, "10", rr.Header().Get("Retry-After"))
			}
		})
	}
}
