package rawdata

import (
	"strconv"
	"strings"
	"time"
)

// Record is one loosely-typed provider row. Field presence is never
// guaranteed; use the accessors below instead of indexing directly.
type Record map[string]any

// Snapshot carries the four raw collections supplied by the ingestion
// provider. Any of them may be nil or empty.
type Snapshot struct {
	Players   []Record
	Teams     []Record
	Positions []Record
	Fixtures  []Record
}

// IsEmpty reports whether nothing usable arrived from the provider.
func (s Snapshot) IsEmpty() bool {
	return len(s.Players) == 0 && len(s.Teams) == 0 && len(s.Positions) == 0 && len(s.Fixtures) == 0
}

// Float coerces the named field to a float64. Providers deliver numeric
// fields inconsistently as JSON numbers, quoted strings, or null; every
// failure mode collapses to 0.
func (r Record) Float(key string) float64 {
	if r == nil {
		return 0
	}
	return coerceFloat(r[key])
}

// Int coerces the named field to an int, truncating fractional values.
func (r Record) Int(key string) int {
	return int(r.Float(key))
}

// String returns the named field as a trimmed string, or "" when absent.
func (r Record) String(key string) string {
	if r == nil {
		return ""
	}
	switch typed := r[key].(type) {
	case string:
		return strings.TrimSpace(typed)
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64)
	default:
		return ""
	}
}

// Time parses an RFC3339 timestamp field. Zero time on absence or parse failure.
func (r Record) Time(key string) time.Time {
	raw := r.String(key)
	if raw == "" {
		return time.Time{}
	}
	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}
	}
	return parsed
}

func coerceFloat(value any) float64 {
	switch typed := value.(type) {
	case float64:
		return typed
	case float32:
		return float64(typed)
	case int:
		return float64(typed)
	case int64:
		return float64(typed)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(typed), 64)
		if err != nil {
			return 0
		}
		return parsed
	default:
		return 0
	}
}
