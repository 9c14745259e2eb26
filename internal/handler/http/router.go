package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/domain/checklist"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/domain/report"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/domain/user"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/handler/http/middleware"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/handler/http/response"
)

type RouterConfig struct {
	FrontendURL string
	CookieName  string
	Logger      *slog.Logger
	LogLevel    slog.Level
}

type Handlers struct {
	Auth       AuthHandler
	Resource   ResourceHandler
	Dashboard  DashboardHandler
	FuelSale   FuelSaleHandler
	Checklist  ChecklistHandler
	Attendance AttendanceHandler
	Export     ExportHandler
	Archive    ArchiveHandler
	Events     EventHandler
}

func NewRouter(cfg RouterConfig, resolver middleware.SessionResolver, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Content-Disposition", "X-Export-ID"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(cfg.Logger, &httplog.Options{
		Level:  cfg.LogLevel,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))
	r.Use(middleware.Session(cfg.CookieName, resolver))

	r.Get(middleware.ForbiddenPath, Forbidden)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", h.Auth.Login)
		r.Post("/logout", h.Auth.Logout)
		r.Get("/session", h.Auth.Session)
	})

	r.Get("/events", h.Events.Stream)

	r.Route("/exports", func(r chi.Router) {
		r.Use(middleware.Guard(cfg.CookieName))
		r.Get("/", h.Archive.List)
		r.Get("/{id}", h.Archive.Download)
	})

	for _, section := range user.Sections {
		r.Route(string(section), func(r chi.Router) {
			r.Use(middleware.Guard(cfg.CookieName))
			sectionRoutes(r, section, h)
		})
	}

	return r
}

// sectionRoutes mounts what every guarded section shares plus the views
// owned by that section.
func sectionRoutes(r chi.Router, section user.Section, h Handlers) {
	r.Route("/resources", func(r chi.Router) {
		r.Get("/", h.Resource.Definitions(section))
		r.Get("/{name}", h.Resource.List(section))
		r.Post("/{name}", h.Resource.Create(section))
		r.Put("/{name}/{id}", h.Resource.Update(section))
		r.Delete("/{name}/{id}", h.Resource.Delete(section))
	})

	r.Route("/checklists/{variant}", func(r chi.Router) {
		r.Use(variantIn(section))
		r.Get("/", h.Checklist.List)
		r.Post("/", h.Checklist.Create)
		r.Get("/export", h.Export.ExportChecklist)
		r.Put("/{id}", h.Checklist.Update)
		r.Delete("/{id}", h.Checklist.Delete)
	})

	r.Get("/{kind}/export", h.Export.ExportTabular)

	switch section {
	case user.SectionSupervisor:
		r.Get("/dashboard", h.Dashboard.GetSupervisorDashboard)

		r.Get("/fuel-sales", h.FuelSale.List)
		r.With(exportKind(report.KindFuelSales)).Get("/fuel-sales/export", h.Export.ExportTabular)
		r.Post("/fuel-sales", h.FuelSale.Create)
		r.Put("/fuel-sales/{id}", h.FuelSale.Update)
		r.Delete("/fuel-sales/{id}", h.FuelSale.Delete)

		r.Get("/employee/attendances", h.Attendance.ListAttendances)
		r.Get("/employee/attendances/export", h.Export.ExportAttendances)
		r.Get("/employee/absences", h.Attendance.ListAbsences)
		r.Get("/employee/absences/export", h.Export.ExportAbsences)

	case user.SectionAdmin:
		r.Get("/dashboard", h.Dashboard.ListStations)
		r.Get("/spbus/{id}", h.Dashboard.GetStationDetail)
		r.Get("/spbus/{id}/financial", h.Dashboard.GetFinancialReport)
	}
}

// exportKind pins the {kind} parameter for export paths that would
// otherwise be taken by an /{id} route.
func exportKind(kind report.Kind) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			chi.RouteContext(r.Context()).URLParams.Add("kind", string(kind))
			next.ServeHTTP(w, r)
		})
	}
}

// variantIn answers 404 for checklist variants owned by another section.
func variantIn(section user.Section) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			v, err := checklist.Lookup(chi.URLParam(r, "variant"))
			if err != nil {
				response.HandleError(w, err)
				return
			}
			if v.Section != section {
				response.NotFound(w, checklist.ErrUnknownVariant.Error())
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
