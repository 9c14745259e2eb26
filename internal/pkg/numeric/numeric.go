// Package numeric converts loosely typed upstream values into decimals.
//
// The upstream API serialises volumes and prices either as JSON numbers or as
// numeric strings. Absent values count as zero; anything else that is not a
// number is rejected with a *ParseError instead of being silently coerced.
package numeric

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

type ParseError struct {
	Field string
	Value interface{}
	Err   error
}

func (e *ParseError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("non-numeric value %v", e.Value)
	}
	return fmt.Sprintf("field %s: non-numeric value %v", e.Field, e.Value)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse converts v into a decimal. nil and blank strings are zero.
func Parse(v interface{}) (decimal.Decimal, error) {
	switch x := v.(type) {
	case nil:
		return decimal.Zero, nil
	case decimal.Decimal:
		return x, nil
	case float64:
		return decimal.NewFromFloat(x), nil
	case float32:
		return decimal.NewFromFloat32(x), nil
	case int:
		return decimal.NewFromInt(int64(x)), nil
	case int64:
		return decimal.NewFromInt(x), nil
	case json.Number:
		return parseString(x.String(), v)
	case string:
		return parseString(x, v)
	case json.RawMessage:
		return ParseRaw(x)
	default:
		return decimal.Zero, &ParseError{Value: v}
	}
}

// ParseRaw converts an undecoded JSON value into a decimal.
func ParseRaw(raw json.RawMessage) (decimal.Decimal, error) {
	s := strings.TrimSpace(string(raw))
	if s == "" || s == "null" {
		return decimal.Zero, nil
	}
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(raw, &str); err != nil {
			return decimal.Zero, &ParseError{Value: s, Err: err}
		}
		return parseString(str, str)
	}
	return parseString(s, s)
}

// Field is Parse with the field name attached to any error.
func Field(name string, v interface{}) (decimal.Decimal, error) {
	d, err := Parse(v)
	if err != nil {
		if pe, ok := err.(*ParseError); ok {
			pe.Field = name
			return d, pe
		}
		return d, &ParseError{Field: name, Value: v, Err: err}
	}
	return d, nil
}

func parseString(s string, original interface{}) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, &ParseError{Value: original, Err: err}
	}
	return d, nil
}

// Sum adds every value in ds.
func Sum(ds ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, d := range ds {
		total = total.Add(d)
	}
	return total
}
