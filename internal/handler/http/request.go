package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/spbu-monitoring/spbu-dashboard-go/internal/pkg/period"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/pkg/validator"
)

// parseWindow reads the optional year, month and day query parameters.
func parseWindow(r *http.Request) (period.Window, error) {
	var (
		w    period.Window
		errs validator.ValidationErrors
	)
	q := r.URL.Query()
	for _, p := range []struct {
		name string
		dst  *int
		max  int
	}{
		{"year", &w.Year, 9999},
		{"month", &w.Month, 12},
		{"day", &w.Day, 31},
	} {
		raw := strings.TrimSpace(q.Get(p.name))
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > p.max {
			errs = append(errs, validator.ValidationError{Field: p.name, Message: "must be a number between 1 and " + strconv.Itoa(p.max)})
			continue
		}
		*p.dst = n
	}
	if len(errs) > 0 {
		return period.Window{}, errs
	}
	return w, nil
}

// confirmed reports whether a destructive request carries confirm=true.
func confirmed(r *http.Request) bool {
	ok, _ := strconv.ParseBool(r.URL.Query().Get("confirm"))
	return ok
}

// decodeBody accepts JSON or form bodies; form values decode as strings.
func decodeBody(r *http.Request, dst interface{}) error {
	ct := r.Header.Get("Content-Type")
	if strings.HasPrefix(ct, "application/x-www-form-urlencoded") || strings.HasPrefix(ct, "multipart/form-data") {
		if err := r.ParseMultipartForm(10 << 20); err != nil && err != http.ErrNotMultipart {
			return err
		}
		fields := map[string]interface{}{}
		for k, v := range r.PostForm {
			if len(v) > 0 {
				fields[k] = v[0]
			}
		}
		b, err := json.Marshal(fields)
		if err != nil {
			return err
		}
		return json.Unmarshal(b, dst)
	}
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	return dec.Decode(dst)
}

func queryInt(r *http.Request, name string, fallback int) int {
	n, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil {
		return fallback
	}
	return n
}
