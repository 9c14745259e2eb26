// Package resource describes the upstream collections served by the generic
// list/create/update/delete views.
package resource

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/domain/user"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/pkg/numeric"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/pkg/utils"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/pkg/validator"
)

// Record is one upstream entity as decoded JSON.
type Record map[string]interface{}

// Encoding selects the body format a collection accepts.
type Encoding int

const (
	JSON Encoding = iota
	Form
)

// Derivation fills a computed field from the others.
type Derivation func(fields Record) error

// Definition configures one generic resource view.
type Definition struct {
	Name     string
	Title    string
	Section  user.Section
	Path     string
	Encoding Encoding
	ReadOnly bool

	// Fields, when set, is the whitelist of writable fields.
	Fields         []string
	Required       []string
	UpdateRequired []string
	Numeric        []string
	Dates          []string
	Enums          map[string][]string
	Defaults       Record
	Derive         []Derivation

	// LogoutOnUnauthorized ends the session when the upstream answers 401.
	LogoutOnUnauthorized bool
}

// Prepare checks a create (update=false) or update body and converts it to
// the wire form: numbers as json.Number, dates as RFC3339 UTC.
func (d Definition) Prepare(fields Record, update bool) (Record, error) {
	if d.ReadOnly {
		return nil, ErrReadOnly
	}

	body := Record{}
	if !update {
		for k, v := range d.Defaults {
			body[k] = v
		}
	}
	for k, v := range fields {
		if d.Fields != nil && !contains(d.Fields, k) {
			continue
		}
		body[k] = v
	}

	required := d.Required
	if update && d.UpdateRequired != nil {
		required = d.UpdateRequired
	}
	if err := validator.RequireFields(body, required); err != nil {
		return nil, err
	}

	var errs validator.ValidationErrors
	for _, name := range d.Numeric {
		v, ok := body[name]
		if !ok || v == nil || v == "" {
			delete(body, name)
			continue
		}
		n, err := numeric.Parse(v)
		if err != nil {
			errs = append(errs, validator.ValidationError{Field: name, Message: "must be a number"})
			continue
		}
		body[name] = json.Number(n.String())
	}
	for _, name := range d.Dates {
		v, ok := body[name]
		if !ok || v == nil {
			continue
		}
		s, _ := v.(string)
		if validator.IsEmpty(s) {
			body[name] = nil
			continue
		}
		t, err := utils.ParseTime(s)
		if err != nil {
			errs = append(errs, validator.ValidationError{Field: name, Message: "must be a date (YYYY-MM-DD) or ISO8601 timestamp"})
			continue
		}
		body[name] = t.UTC().Format(time.RFC3339Nano)
	}
	for name, allowed := range d.Enums {
		v, ok := body[name]
		if !ok {
			continue
		}
		s, _ := v.(string)
		if !validator.IsInSlice(s, allowed) {
			errs = append(errs, validator.ValidationError{Field: name, Message: fmt.Sprintf("must be one of: %v", allowed)})
		}
	}
	if len(errs) > 0 {
		return nil, errs
	}

	for _, derive := range d.Derive {
		if err := derive(body); err != nil {
			return nil, err
		}
	}
	return body, nil
}

// Difference sets target to minuend - subtrahend, treating absent operands
// as zero.
func Difference(target, minuend, subtrahend string) Derivation {
	return func(fields Record) error {
		a, err := numeric.Field(minuend, fields[minuend])
		if err != nil {
			return err
		}
		b, err := numeric.Field(subtrahend, fields[subtrahend])
		if err != nil {
			return err
		}
		fields[target] = json.Number(a.Sub(b).String())
		return nil
	}
}

func contains(xs []string, s string) bool {
	for _, x := range xs {
		if x == s {
			return true
		}
	}
	return false
}

func zero() json.Number {
	return json.Number(decimal.Zero.String())
}
