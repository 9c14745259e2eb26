package checklist

import (
	"time"

	"github.com/spbu-monitoring/spbu-dashboard-go/internal/domain/shift"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/pkg/period"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/pkg/utils"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/pkg/validator"
)

// SubmitRequest is the gateway's body for creating or updating a checklist
// record of any variant.
type SubmitRequest struct {
	Tanggal    string            `json:"tanggal" validate:"required"`
	Shift      shift.Shift       `json:"shift" validate:"required,oneof=PAGI SIANG MALAM"`
	Element    string            `json:"elemen,omitempty"`
	Activity   string            `json:"aktivitas,omitempty"`
	Status     Status            `json:"checklistStatus,omitempty"`
	Statuses   map[string]Status `json:"statuses,omitempty"`
	Keterangan string            `json:"keterangan,omitempty"`
}

// FormBody validates req against the variant and builds the form fields the
// upstream endpoint expects.
func (v Variant) FormBody(req SubmitRequest) (map[string]interface{}, error) {
	if err := validator.Struct(req); err != nil {
		return nil, err
	}
	ts, err := utils.ParseTime(req.Tanggal)
	if err != nil || ts.IsZero() {
		return nil, validator.ValidationErrors{{Field: "tanggal", Message: "must be a date (YYYY-MM-DD) or ISO8601 timestamp"}}
	}

	body := map[string]interface{}{
		"tanggal": ts.UTC().Format(time.RFC3339Nano),
		"shift":   string(req.Shift),
	}

	if v.StatusFields {
		for _, a := range v.Activities {
			s, ok := req.Statuses[a.Code]
			if !ok || s == "" {
				s = StatusBelumDilakukan
			}
			if !v.allowsStatus(s) {
				return nil, validator.ValidationErrors{{Field: a.Code, Message: ErrInvalidStatus.Error()}}
			}
			body[a.Code] = string(s)
		}
		for code := range req.Statuses {
			if _, ok := v.Activity(code); !ok {
				return nil, validator.ValidationErrors{{Field: code, Message: ErrUnknownActivity.Error()}}
			}
		}
		if v.RemarksField != "" {
			body[v.RemarksField] = req.Keterangan
		}
		return body, nil
	}

	var errs validator.ValidationErrors
	if _, ok := v.Activity(req.Activity); !ok {
		errs = append(errs, validator.ValidationError{Field: "aktivitas", Message: ErrUnknownActivity.Error()})
	}
	if !v.allowsStatus(req.Status) {
		errs = append(errs, validator.ValidationError{Field: "checklistStatus", Message: ErrInvalidStatus.Error()})
	}
	if v.HasElements() && !v.hasElement(req.Element) {
		errs = append(errs, validator.ValidationError{Field: "elemen", Message: ErrUnknownElement.Error()})
	}
	if len(errs) > 0 {
		return nil, errs
	}

	body[v.ActivityField] = req.Activity
	body[v.StatusField] = string(req.Status)
	if v.ElementField != "" {
		body[v.ElementField] = req.Element
	}
	return body, nil
}

// ExportRequest selects the month rendered by a grid export.
type ExportRequest struct {
	Kind        string
	Window      period.Window
	StationCode string
}
