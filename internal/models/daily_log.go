package models

import (
	"strings"
	"time"
)

// LogRecord represents one row of the daily_log table.
type LogRecord struct {
	ID        string    `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Title     *string   `json:"title" example:"Shipped the parser"`
	Entries   *string   `json:"entries" example:"Paired on the tokenizer, fixed two flaky tests."`
	LogDate   Date      `json:"log_date" swaggertype:"string" format:"date" example:"2024-01-01"`
	Tags      []string  `json:"tags" example:"work,go"`
	Mood      *string   `json:"mood" example:"calm"`
	CreatedAt time.Time `json:"created_at" example:"2024-01-01T18:30:00.123456Z"`
	UpdatedAt time.Time `json:"updated_at" example:"2024-01-01T18:30:00.123456Z"`
} // @name LogRecord

// LogPayload documents the create/replace request body.
type LogPayload struct {
	Title   *string  `json:"title,omitempty" maxLength:"255" example:"Shipped the parser"`
	Entries *string  `json:"entries,omitempty" example:"Paired on the tokenizer."`
	LogDate string   `json:"log_date,omitempty" format:"date" example:"2024-01-01"`
	Tags    []string `json:"tags,omitempty" example:"work,go"`
	Mood    *string  `json:"mood,omitempty" maxLength:"64" example:"calm"`
} // @name LogPayload

// SortOrder selects the direction of log_date ordering for listings.
type SortOrder string

const (
	SortDescending SortOrder = "desc"
	SortAscending  SortOrder = "asc"
)

// ParseSortOrder accepts "asc" or "desc" (case-insensitive); empty means descending.
func ParseSortOrder(s string) (SortOrder, bool) {
	switch SortOrder(strings.ToLower(strings.TrimSpace(s))) {
	case "", SortDescending:
		return SortDescending, true
	case SortAscending:
		return SortAscending, true
	default:
		return "", false
	}
}

// LogRecordFromMap builds a record from a decoded JSON object. Missing keys
// take their defaults, unknown keys and values of the wrong type are ignored.
// The legacy "date" key is honoured when "log_date" is absent or null.
func LogRecordFromMap(m map[string]any) LogRecord {
	rec := LogRecord{
		ID:      stringValue(m["id"]),
		Title:   optionalString(m["title"]),
		Entries: optionalString(m["entries"]),
		Mood:    optionalString(m["mood"]),
		Tags:    stringSlice(m["tags"]),
	}

	raw := m["log_date"]
	if raw == nil {
		raw = m["date"]
	}
	if s, ok := raw.(string); ok {
		if d, err := ParseDate(s); err == nil {
			rec.LogDate = d
		}
	}

	rec.CreatedAt = timeValue(m["created_at"])
	rec.UpdatedAt = timeValue(m["updated_at"])
	return rec
}

// ToMap renders every field; dates as YYYY-MM-DD and timestamps as RFC 3339.
func (r LogRecord) ToMap() map[string]any {
	tags := r.Tags
	if tags == nil {
		tags = []string{}
	}
	var logDate any
	if !r.LogDate.IsZero() {
		logDate = r.LogDate.String()
	}
	return map[string]any{
		"id":         r.ID,
		"title":      derefOrNil(r.Title),
		"entries":    derefOrNil(r.Entries),
		"log_date":   logDate,
		"tags":       tags,
		"mood":       derefOrNil(r.Mood),
		"created_at": r.CreatedAt.UTC().Format(time.RFC3339Nano),
		"updated_at": r.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func stringValue(v any) string {
	s, _ := v.(string)
	return s
}

func optionalString(v any) *string {
	s, ok := v.(string)
	if !ok {
		return nil
	}
	return &s
}

func stringSlice(v any) []string {
	out := []string{}
	switch items := v.(type) {
	case []string:
		out = append(out, items...)
	case []any:
		for _, item := range items {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
	}
	return out
}

func timeValue(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(time.RFC3339Nano, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

func derefOrNil(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}
