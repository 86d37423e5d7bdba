package middlewares

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/sbilibin2017/archive-viewer/internal/logger"
	"github.com/sbilibin2017/archive-viewer/internal/models"
)

//go:generate mockgen -source=ratelimit.go -destination=mock_ratelimit.go -package=middlewares

// RateCounter counts hits of a key within a fixed window.
type RateCounter interface {
	Increment(ctx context.Context, key string, window time.Duration) (int64, error)
}

// RateLimitMiddleware allows at most limit requests per client and path in
// each window. A counter failure lets the request through.
func RateLimitMiddleware(counter RateCounter, limit int, window time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if limit <= 0 {
				next.ServeHTTP(w, r)
				return
			}

			key := fmt.Sprintf("%s:%s", r.URL.Path, clientIP(r))

			count, err := counter.Increment(r.Context(), key, window)
			if err != nil {
				logger.Log.Errorw("rate limit check failed", "key", key, "error", err)
				next.ServeHTTP(w, r)
				return
			}

			if count > int64(limit) {
				logger.Log.Infow("rate limit exceeded", "key", key, "count", count)
				w.Header().Set("Content-Type", "application/json")
				w.Header().Set("Retry-After", strconv.Itoa(int(window.Seconds())))
				w.WriteHeader(http.StatusTooManyRequests)
				_ = json.NewEncoder(w).Encode(models.ErrorResponse{Error: "Rate limit exceeded"})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
