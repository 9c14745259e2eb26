package response

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/spbu-monitoring/spbu-dashboard-go/internal/domain/fuelsale"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/domain/report"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/domain/resource"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/pkg/apiclient"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/pkg/numeric"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		{"validation", validator.ValidationErrors{{Field: "email", Message: "is required"}}, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed"},
		{"upstream 400 verbatim", fmt.Errorf("failed to create: %w", &apiclient.Error{StatusCode: 400, Message: "Kode tangki sudah digunakan"}), http.StatusBadRequest, "UPSTREAM_REJECTED", "Kode tangki sudah digunakan"},
		{"upstream 401", &apiclient.Error{StatusCode: 401, Message: "Unauthorized"}, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized"},
		{"upstream 500", &apiclient.Error{StatusCode: 500, Message: "Internal"}, http.StatusBadGateway, "UPSTREAM_ERROR", "Internal"},
		{"unavailable", fmt.Errorf("%w: dial", apiclient.ErrUnavailable), http.StatusBadGateway, "UPSTREAM_ERROR", "Server tidak dapat dihubungi"},
		{"numeric", &numeric.ParseError{Field: "totalHarga", Value: "abc"}, http.StatusBadGateway, "UPSTREAM_ERROR", ""},
		{"period required", report.ErrPeriodRequired, http.StatusBadRequest, "BAD_REQUEST", report.ErrPeriodRequired.Error()},
		{"no records", report.ErrNoRecords, http.StatusNotFound, "NO_RECORDS", report.ErrNoRecords.Error()},
		{"no records in period", report.ErrNoRecordsInPeriod, http.StatusNotFound, "NO_RECORDS", report.ErrNoRecordsInPeriod.Error()},
		{"resource not found", resource.ErrNotFound, http.StatusNotFound, "NOT_FOUND", resource.ErrNotFound.Error()},
		{"confirmation", resource.ErrConfirmationRequired, http.StatusBadRequest, "BAD_REQUEST", resource.ErrConfirmationRequired.Error()},
		{"stand akhir", fmt.Errorf("invalid fuel sale: %w", fuelsale.ErrStandAkhirBelowStandAwal), http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed"},
		{"unknown", fmt.Errorf("boom"), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "An unexpected error occurred"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			HandleError(rec, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			var body Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.False(t, body.Success)
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.wantCode, body.Error.Code)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, body.Error.Message)
			}
		})
	}
}

func TestHandleError_RevokedSession(t *testing.T) {
	rec := httptest.NewRecorder()
	err := fmt.Errorf("%w: %w", resource.ErrSessionRevoked, &apiclient.Error{StatusCode: 401, Message: "Unauthorized"})

	HandleError(rec, err)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Sesi berakhir")
}

func TestAttachment(t *testing.T) {
	rec := httptest.NewRecorder()

	Attachment(rec, "Laporan_Fuel_Sales_Mei_2024.pdf", "application/pdf", []byte("%PDF"))

	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="Laporan_Fuel_Sales_Mei_2024.pdf"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "4", rec.Header().Get("Content-Length"))
	assert.Equal(t, "%PDF", rec.Body.String())
}
