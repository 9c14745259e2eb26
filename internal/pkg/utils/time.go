package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/spbu-monitoring/spbu-dashboard-go/internal/pkg/validator"
)

// Time is a nullable timestamp decoded from the upstream API. It accepts
// RFC3339 timestamps, bare dates and "YYYY-MM-DD HH:MM:SS"; null and "" decode
// to the zero value.
type Time struct {
	time.Time
}

const sqlDateTime = "2006-01-02 15:04:05"

func (t *Time) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		t.Time = time.Time{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("timestamp must be a string: %w", err)
	}
	parsed, err := ParseTime(s)
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}

func (t Time) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.Time.Format(time.RFC3339))
}

// Ptr returns nil for the zero value.
func (t Time) Ptr() *time.Time {
	if t.IsZero() {
		return nil
	}
	v := t.Time
	return &v
}

// ParseTime parses the timestamp layouts the upstream API is known to emit.
func ParseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	if t, ok := validator.IsValidDateTime(s); ok {
		return t, nil
	}
	if t, ok := validator.IsValidDate(s); ok {
		return t, nil
	}
	if t, err := time.Parse(sqlDateTime, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02T15:04:05", s); err == nil {
		return t, nil
	}
	// datetime-local inputs omit the seconds
	if t, err := time.Parse("2006-01-02T15:04", s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("unrecognised timestamp %q", s)
}
