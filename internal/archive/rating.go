package archive

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// FavoriteRating is the rating that marks an entry as a favorite.
const FavoriteRating = 5.0

// ParseRating coerces a stored rating (number or numeric string) into a float64.
func ParseRating(v any) (float64, bool) {
	return toFloat(v)
}

// FormatRating renders a rating with exactly one decimal place.
func FormatRating(r float64) string {
	return strconv.FormatFloat(r, 'f', 1, 64)
}

// toFloat coerces v into a finite float64. NaN and infinities are rejected
// since they cannot be encoded as JSON.
func toFloat(v any) (float64, bool) {
	f, ok := rawFloat(v)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func rawFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	}
	return 0, false
}
