package archive

import (
	"encoding/json"
	"strings"
	"time"
)

// timeConverter is implemented by store timestamp wrappers such as timestamppb.Timestamp.
type timeConverter interface {
	AsTime() time.Time
}

var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseTimestamp resolves a stored timestamp field into a time.Time.
// It returns the zero time when v holds no usable date.
func ParseTimestamp(v any) time.Time {
	switch t := v.(type) {
	case nil:
		return time.Time{}
	case time.Time:
		return t
	case *time.Time:
		if t == nil {
			return time.Time{}
		}
		return *t
	case timeConverter:
		return t.AsTime()
	case string:
		return parseTimeString(t)
	case json.Number:
		if ms, err := t.Float64(); err == nil {
			return fromMillis(ms)
		}
	case float64:
		return fromMillis(t)
	case int64:
		return fromMillis(float64(t))
	case int:
		return fromMillis(float64(t))
	case map[string]any:
		return parseWrapper(t)
	}
	return time.Time{}
}

func parseTimeString(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range timeLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts
		}
	}
	return time.Time{}
}

// parseWrapper handles {seconds, nanoseconds} objects as exported by hosted stores.
func parseWrapper(m map[string]any) time.Time {
	sec, ok := wrapperField(m, "seconds", "_seconds")
	if !ok {
		return time.Time{}
	}
	nsec, _ := wrapperField(m, "nanoseconds", "_nanoseconds")
	return time.Unix(int64(sec), int64(nsec)).UTC()
}

func wrapperField(m map[string]any, keys ...string) (float64, bool) {
	for _, k := range keys {
		v, ok := m[k]
		if !ok {
			continue
		}
		if f, ok := toFloat(v); ok {
			return f, true
		}
	}
	return 0, false
}

func fromMillis(ms float64) time.Time {
	if ms == 0 {
		return time.Time{}
	}
	return time.UnixMilli(int64(ms)).UTC()
}
