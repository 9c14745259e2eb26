package checklist

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spbu-monitoring/spbu-dashboard-go/internal/domain/shift"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/domain/user"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/pkg/utils"
)

// Normalize converts one upstream record of this variant into an Entry.
// The record date is read from "tanggal", falling back to "createdAt".
func (v Variant) Normalize(raw map[string]json.RawMessage) (Entry, error) {
	e := Entry{Kind: v.Kind}

	if id, ok := raw["id"]; ok {
		if err := json.Unmarshal(id, &e.ID); err != nil {
			return Entry{}, fmt.Errorf("%w: id: %v", ErrMalformedEntry, err)
		}
	}

	dateField := "tanggal"
	if _, ok := raw[dateField]; !ok {
		dateField = "createdAt"
	}
	var ts utils.Time
	if b, ok := raw[dateField]; ok {
		if err := json.Unmarshal(b, &ts); err != nil {
			return Entry{}, fmt.Errorf("%w: %s: %v", ErrMalformedEntry, dateField, err)
		}
	}
	e.Tanggal = ts.Time

	e.Shift = shift.Shift(stringField(raw, "shift"))

	if v.ElementField != "" {
		e.Element = stringField(raw, v.ElementField)
	}
	if v.RemarksField != "" {
		e.Remarks = strings.TrimSpace(stringField(raw, v.RemarksField))
	}

	if v.StatusFields {
		for _, a := range v.Activities {
			if s := stringField(raw, a.Code); s != "" {
				e.Marks = append(e.Marks, Mark{Activity: a.Code, Status: Status(s)})
			}
		}
	} else if activity := stringField(raw, v.ActivityField); activity != "" {
		e.Marks = append(e.Marks, Mark{Activity: activity, Status: Status(stringField(raw, v.StatusField))})
	}

	if b, ok := raw["user"]; ok && string(b) != "null" {
		var u user.User
		if err := json.Unmarshal(b, &u); err != nil {
			return Entry{}, fmt.Errorf("%w: user: %v", ErrMalformedEntry, err)
		}
		e.User = &u
	}

	return e, nil
}

// NormalizeAll normalizes every record, stopping at the first malformed one.
func (v Variant) NormalizeAll(records []map[string]json.RawMessage) ([]Entry, error) {
	out := make([]Entry, 0, len(records))
	for i, r := range records {
		e, err := v.Normalize(r)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		out = append(out, e)
	}
	return out, nil
}

func stringField(raw map[string]json.RawMessage, key string) string {
	b, ok := raw[key]
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return ""
	}
	return strings.TrimSpace(s)
}
