package handlers

import (
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sbilibin2017/archive-viewer/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestWriteJSON(t *testing.T) {
	tests := []struct {
		name           string
		value          any
		status         int
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "encodable value",
			value:          models.UsersResponse{Users: []models.User{{ID: "u1"}}},
			status:         http.StatusOK,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "unencodable value",
			value:          map[string]float64{"rating": math.NaN()},
			status:         http.StatusOK,
			expectedStatus: http.StatusInternalServerError,
			expectedError:  msgEncodeError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rr := httptest.NewRecorder()

			writeJSON(rr, req, tt.status, tt.value)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

			var body map[string]any
			assert.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, body["error"])
			}
		})
	}
}
