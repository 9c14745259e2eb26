package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/spbu-monitoring/spbu-dashboard-go/internal/domain/auth"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/domain/checklist"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/domain/dashboard"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/domain/fuel"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/domain/fuelsale"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/domain/report"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/domain/resource"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/domain/user"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/pkg/apiclient"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/pkg/numeric"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// The upstream's own wording is shown unchanged.
	var apiErr *apiclient.Error
	if errors.As(err, &apiErr) {
		switch {
		case errors.Is(err, resource.ErrSessionRevoked):
			Unauthorized(w, resource.ErrSessionRevoked.Error())
		case apiErr.StatusCode == http.StatusUnauthorized:
			Unauthorized(w, apiErr.Message)
		case apiErr.StatusCode >= 500:
			BadGateway(w, apiErr.Message)
		default:
			Upstream(w, apiErr.StatusCode, apiErr.Message)
		}
		return
	}

	var parseErr *numeric.ParseError
	if errors.As(err, &parseErr) {
		slog.Error("upstream returned non-numeric data", "error", err)
		BadGateway(w, "Data dari server tidak valid: "+parseErr.Error())
		return
	}

	switch {
	// Upstream transport
	case errors.Is(err, apiclient.ErrUnavailable):
		BadGateway(w, "Server tidak dapat dihubungi")
	case errors.Is(err, apiclient.ErrMalformedResponse),
		errors.Is(err, checklist.ErrMalformedEntry):
		slog.Error("malformed upstream response", "error", err)
		BadGateway(w, "Data dari server tidak valid")

	// Auth
	case errors.Is(err, auth.ErrTokenMissing):
		BadGateway(w, err.Error())
	case errors.Is(err, auth.ErrLoginRejected):
		Unauthorized(w, err.Error())
	case errors.Is(err, user.ErrUnknownRole):
		Forbidden(w, err.Error())

	// Reports
	case errors.Is(err, report.ErrNoRecords):
		NoRecords(w, err.Error())
	case errors.Is(err, report.ErrPeriodRequired),
		errors.Is(err, report.ErrUnsupportedFormat):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, report.ErrUnknownReport),
		errors.Is(err, report.ErrExportNotFound):
		NotFound(w, err.Error())

	// Resources
	case errors.Is(err, resource.ErrNotFound),
		errors.Is(err, checklist.ErrUnknownVariant):
		NotFound(w, err.Error())
	case errors.Is(err, resource.ErrConfirmationRequired),
		errors.Is(err, resource.ErrIDRequired):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, resource.ErrReadOnly):
		writeError(w, http.StatusMethodNotAllowed, "READ_ONLY", err.Error(), nil)
	case errors.Is(err, resource.ErrSessionRevoked):
		Unauthorized(w, err.Error())

	// Fuel sales
	case errors.Is(err, fuelsale.ErrStandAkhirBelowStandAwal),
		errors.Is(err, fuelsale.ErrNegativeStand):
		ValidationError(w, map[string]string{"standAkhir": err.Error()})
	case errors.Is(err, fuelsale.ErrNegativePrice):
		ValidationError(w, map[string]string{"hargaPerLiter": err.Error()})

	// Dashboard
	case errors.Is(err, fuel.ErrStationNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, dashboard.ErrInvalidGranularity),
		errors.Is(err, dashboard.ErrStationIDRequired):
		BadRequest(w, err.Error(), nil)

	default:
		slog.Error("unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
