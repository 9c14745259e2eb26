package http

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/spbu-monitoring/spbu-dashboard-go/internal/domain/report"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/domain/session"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/pkg/jwt"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/pkg/sse"
	"github.com/stretchr/testify/assert"
)

func newTestRouter(reports *fakeReportService) http.Handler {
	authSvc := &fakeAuthService{resolveRes: session.Session{Token: "tok", UserID: "1", StationCode: "34.567"}}
	jwtSvc := jwt.NewJWTService(testCookie, false, true)
	return NewRouter(RouterConfig{
		FrontendURL: "http://localhost:3000",
		CookieName:  testCookie,
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		LogLevel:    slog.LevelInfo,
	}, authSvc, Handlers{
		Auth:       NewAuthHandler(jwtSvc, authSvc),
		Resource:   NewResourceHandler(&fakeResourceService{}, authSvc, jwtSvc),
		Dashboard:  NewDashboardHandler(nil),
		FuelSale:   NewFuelSaleHandler(nil),
		Checklist:  NewChecklistHandler(nil),
		Attendance: NewAttendanceHandler(nil),
		Export:     NewExportHandler(reports),
		Archive:    NewArchiveHandler(&fakeArchiveService{}),
		Events:     NewEventHandler(sse.NewHub()),
	})
}

func TestRouter_GuardRedirectsWithoutCookie(t *testing.T) {
	router := newTestRouter(&fakeReportService{})

	for _, path := range []string{"/admin/dashboard", "/supervisor/resources", "/operator/resources", "/ob/resources", "/satpam/resources", "/exports"} {
		t.Run(path, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))

			assert.Equal(t, http.StatusFound, w.Code)
			assert.Equal(t, "/forbidden", w.Header().Get("Location"))
		})
	}
}

func TestRouter_ForbiddenPageIsPublic(t *testing.T) {
	router := newTestRouter(&fakeReportService{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/forbidden", nil))

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRouter_SessionReachesExport(t *testing.T) {
	reports := &fakeReportService{file: &report.File{Filename: "a.pdf", ContentType: "application/pdf", Data: []byte("%PDF")}}
	router := newTestRouter(reports)

	req := httptest.NewRequest(http.MethodGet, "/supervisor/fuel-sales/export?year=2024&month=5", nil)
	req.AddCookie(&http.Cookie{Name: testCookie, Value: "tok"})
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, report.KindFuelSales, reports.lastReq.Kind)
	assert.Equal(t, "34.567", reports.lastReq.StationCode)
}

func TestRouter_ChecklistVariantOutsideSection(t *testing.T) {
	router := newTestRouter(&fakeReportService{})

	req := httptest.NewRequest(http.MethodGet, "/admin/checklists/unknown-variant", nil)
	req.AddCookie(&http.Cookie{Name: testCookie, Value: "tok"})
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
