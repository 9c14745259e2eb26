package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/httplog/v3"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/config"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/domain/report"
	appHTTP "github.com/spbu-monitoring/spbu-dashboard-go/internal/handler/http"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/pkg/apiclient"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/pkg/cron"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/pkg/database"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/pkg/jwt"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/pkg/media"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/pkg/pdf"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/pkg/spreadsheet"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/pkg/sse"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/pkg/storage"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/repository/memory"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/repository/postgresql"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/repository/upstream"
	archiveService "github.com/spbu-monitoring/spbu-dashboard-go/internal/service/archive"
	attendanceService "github.com/spbu-monitoring/spbu-dashboard-go/internal/service/attendance"
	serviceAuth "github.com/spbu-monitoring/spbu-dashboard-go/internal/service/auth"
	checklistService "github.com/spbu-monitoring/spbu-dashboard-go/internal/service/checklist"
	dashboardService "github.com/spbu-monitoring/spbu-dashboard-go/internal/service/dashboard"
	fuelSaleService "github.com/spbu-monitoring/spbu-dashboard-go/internal/service/fuelsale"
	reportService "github.com/spbu-monitoring/spbu-dashboard-go/internal/service/report"
	resourceService "github.com/spbu-monitoring/spbu-dashboard-go/internal/service/resource"
)

const (
	appName    = "spbu-dashboard"
	appVersion = "v1.0.0"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	logFormat := httplog.SchemaECS.Concise(cfg.App.Env != "production")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       cfg.SlogLevel(),
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", appName),
		slog.String("version", appVersion),
		slog.String("env", cfg.App.Env),
	)
	slog.SetDefault(logger)

	loc := cfg.Location()
	client := apiclient.New(cfg.Upstream.BaseURL, cfg.Upstream.APIPath, cfg.Upstream.Timeout)

	authRepo := upstream.NewAuthRepository(client)
	resourceRepo := upstream.NewResourceRepository(client)
	dashboardRepo := upstream.NewDashboardRepository(client)
	fuelSaleRepo := upstream.NewFuelSaleRepository(client)
	deliveryRepo := upstream.NewDeliveryRepository(client)
	stationRepo := upstream.NewStationRepository(client)
	equipmentRepo := upstream.NewEquipmentRepository(client)
	attendanceRepo := upstream.NewAttendanceRepository(client)
	issueRepo := upstream.NewIssueRepository(client)
	checklistRepo := upstream.NewChecklistRepository(client)

	JWTService := jwt.NewJWTService(cfg.Session.CookieName, cfg.Session.Secure, cfg.Session.HTTPOnly)
	sessionStore := memory.NewSessionStore()
	hub := sse.NewHub()

	scheduler := cron.NewScheduler()
	cron.NewSessionJobs(sessionStore, JWTService, cfg.Session.TTL).RegisterJobs(scheduler, cfg.Session.SweepInterval)
	scheduler.Start()
	defer scheduler.Stop()

	var archive report.ArchiveService = archiveService.Disabled{}
	if cfg.DatabaseEnabled() {
		startCtx, cancelStart := context.WithTimeout(context.Background(), 2*cfg.Database.ConnectTimeout)
		db, err := database.NewPostgreSQLDB(startCtx, cfg.DatabaseURL(), database.PoolConfig{
			MaxConns:       cfg.Database.MaxConns,
			MinConns:       cfg.Database.MinConns,
			ConnectTimeout: cfg.Database.ConnectTimeout,
		})
		if err != nil {
			cancelStart()
			log.Fatal("Error connecting to database: ", err)
		}
		defer db.Close()

		err = postgresql.EnsureExportSchema(startCtx, db)
		cancelStart()
		if err != nil {
			log.Fatal("Failed to prepare export archive schema: ", err)
		}

		var fileStorage storage.FileStorage
		switch cfg.Storage.Type {
		case "local":
			fileStorage, err = storage.NewLocalStorage(cfg.Storage.BasePath)
			if err != nil {
				log.Fatal("Failed to initialize local storage: ", err)
			}
		default:
			log.Fatal("Unsupported storage type: ", cfg.Storage.Type)
		}
		archive = archiveService.NewArchiveService(postgresql.NewExportRepository(db), fileStorage, postgresql.NewTransactor(db))
		slog.Info("export archive enabled", "storage", cfg.Storage.Type, "path", cfg.Storage.BasePath)
	} else {
		slog.Info("export archive disabled, DB_HOST not set")
	}

	authSvc := serviceAuth.NewAuthService(authRepo, sessionStore, JWTService, cfg.Session.TTL)
	resourceSvc := resourceService.NewResourceService(resourceRepo)
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo, fuelSaleRepo, deliveryRepo, equipmentRepo, stationRepo, loc)
	fuelSaleSvc := fuelSaleService.NewFuelSaleService(fuelSaleRepo, loc)
	checklistSvc := checklistService.NewChecklistService(checklistRepo, loc)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, client.ResolvePhotoURL, loc)
	reportSvc := reportService.NewReportService(
		reportService.Repositories{
			Sales:       fuelSaleRepo,
			Issues:      issueRepo,
			Equipment:   equipmentRepo,
			Stations:    stationRepo,
			Deliveries:  deliveryRepo,
			Checklists:  checklistRepo,
			Attendances: attendanceRepo,
		},
		media.NewFetcher(cfg.Report.ImageWidthPixels, cfg.Report.ImageConcurrency, cfg.Report.ImageTimeout),
		client.ResolvePhotoURL,
		[]report.Renderer{pdf.NewRenderer(), spreadsheet.NewRenderer()},
		archive,
		hub,
		loc,
		cfg.Report.ImageWidthMM,
	)

	router := appHTTP.NewRouter(appHTTP.RouterConfig{
		FrontendURL: cfg.App.FrontendURL,
		CookieName:  cfg.Session.CookieName,
		Logger:      logger,
		LogLevel:    cfg.SlogLevel(),
	}, authSvc, appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(JWTService, authSvc),
		Resource:   appHTTP.NewResourceHandler(resourceSvc, authSvc, JWTService),
		Dashboard:  appHTTP.NewDashboardHandler(dashboardSvc),
		FuelSale:   appHTTP.NewFuelSaleHandler(fuelSaleSvc),
		Checklist:  appHTTP.NewChecklistHandler(checklistSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Export:     appHTTP.NewExportHandler(reportSvc),
		Archive:    appHTTP.NewArchiveHandler(archive),
		Events:     appHTTP.NewEventHandler(hub),
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("server running", "addr", srv.Addr, "upstream", cfg.Upstream.BaseURL)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("graceful shutdown failed", "error", err)
	}
}
