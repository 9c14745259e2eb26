package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	App      AppConfig
	Upstream UpstreamConfig
	Session  SessionConfig
	Report   ReportConfig
	Storage  StorageConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string

	MaxConns       int32
	MinConns       int32
	ConnectTimeout time.Duration
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int
	Env         string
	LogLevel    string
	Timezone    string
	FrontendURL string
}

// UpstreamConfig points at the remote SPBU REST API.
type UpstreamConfig struct {
	BaseURL string
	APIPath string
	Timeout time.Duration
}

// SessionConfig controls the token cookie issued after login.
type SessionConfig struct {
	CookieName    string
	TTL           time.Duration
	SweepInterval time.Duration
	Secure        bool
	HTTPOnly      bool
}

type ReportConfig struct {
	ImageWidthMM     float64
	ImageWidthPixels int
	ImageConcurrency int
	ImageTimeout     time.Duration
}

type StorageConfig struct {
	Type     string
	BasePath string
	BaseURL  string
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using process environment")
	}

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	maxConns, err := strconv.ParseInt(getEnv("DB_MAX_CONNS", "10"), 10, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_CONNS: %w", err)
	}
	minConns, err := strconv.ParseInt(getEnv("DB_MIN_CONNS", "1"), 10, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MIN_CONNS: %w", err)
	}
	connectTimeout, err := time.ParseDuration(getEnv("DB_CONNECT_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_CONNECT_TIMEOUT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:           getEnv("DB_HOST", ""),
		Port:           dbPort,
		User:           getEnv("DB_USER", "postgres"),
		Password:       getEnv("DB_PASSWORD", ""),
		Name:           getEnv("DB_NAME", "spbu-dashboard"),
		SSLMode:        getEnv("DB_SSL_MODE", "disable"),
		MaxConns:       int32(maxConns),
		MinConns:       int32(minConns),
		ConnectTimeout: connectTimeout,
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		Timezone:    getEnv("APP_TIMEZONE", "Asia/Jakarta"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
	}

	// Upstream API configuration
	upstreamTimeout, err := time.ParseDuration(getEnv("UPSTREAM_TIMEOUT", "30s"))
	if err != nil {
		return nil, fmt.Errorf("invalid UPSTREAM_TIMEOUT: %w", err)
	}

	config.Upstream = UpstreamConfig{
		BaseURL: strings.TrimSpace(getEnv("UPSTREAM_BASE_URL", "")),
		APIPath: getEnv("UPSTREAM_API_PATH", "/api/v1"),
		Timeout: upstreamTimeout,
	}

	// Session configuration
	sessionTTL, err := time.ParseDuration(getEnv("SESSION_TTL", "24h"))
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_TTL: %w", err)
	}

	sweepInterval, err := time.ParseDuration(getEnv("SESSION_SWEEP_INTERVAL", "10m"))
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_SWEEP_INTERVAL: %w", err)
	}

	config.Session = SessionConfig{
		CookieName:    getEnv("SESSION_COOKIE_NAME", "token"),
		TTL:           sessionTTL,
		SweepInterval: sweepInterval,
		Secure:        getEnvBool("SESSION_COOKIE_SECURE", true),
		HTTPOnly:      getEnvBool("SESSION_COOKIE_HTTP_ONLY", false),
	}

	// Report configuration
	imageWidthMM, err := strconv.ParseFloat(getEnv("REPORT_IMAGE_WIDTH_MM", "25"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid REPORT_IMAGE_WIDTH_MM: %w", err)
	}
	imageWidthPx, err := strconv.Atoi(getEnv("REPORT_IMAGE_WIDTH_PX", "300"))
	if err != nil {
		return nil, fmt.Errorf("invalid REPORT_IMAGE_WIDTH_PX: %w", err)
	}
	imageConcurrency, err := strconv.Atoi(getEnv("REPORT_IMAGE_CONCURRENCY", "8"))
	if err != nil {
		return nil, fmt.Errorf("invalid REPORT_IMAGE_CONCURRENCY: %w", err)
	}
	imageTimeout, err := time.ParseDuration(getEnv("REPORT_IMAGE_TIMEOUT", "15s"))
	if err != nil {
		return nil, fmt.Errorf("invalid REPORT_IMAGE_TIMEOUT: %w", err)
	}

	config.Report = ReportConfig{
		ImageWidthMM:     imageWidthMM,
		ImageWidthPixels: imageWidthPx,
		ImageConcurrency: imageConcurrency,
		ImageTimeout:     imageTimeout,
	}

	// Storage configuration
	config.Storage = StorageConfig{
		Type:     getEnv("STORAGE_TYPE", "local"),
		BasePath: getEnv("STORAGE_BASE_PATH", "./exports"),
		BaseURL:  getEnv("STORAGE_BASE_URL", "http://localhost:8080/exports"),
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Upstream.BaseURL == "" {
		return fmt.Errorf("UPSTREAM_BASE_URL is required")
	}
	if !strings.HasPrefix(c.Upstream.BaseURL, "http") {
		return fmt.Errorf("UPSTREAM_BASE_URL must be an http(s) URL")
	}
	if c.Session.CookieName == "" {
		return fmt.Errorf("SESSION_COOKIE_NAME is required")
	}
	if c.Session.SweepInterval <= 0 {
		return fmt.Errorf("SESSION_SWEEP_INTERVAL must be positive")
	}
	if c.Report.ImageWidthMM <= 0 || c.Report.ImageWidthPixels <= 0 {
		return fmt.Errorf("REPORT_IMAGE_WIDTH_MM and REPORT_IMAGE_WIDTH_PX must be positive")
	}
	if c.Report.ImageConcurrency < 1 {
		return fmt.Errorf("REPORT_IMAGE_CONCURRENCY must be at least 1")
	}
	if c.Database.MaxConns < 1 || c.Database.MinConns < 0 || c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("DB_MIN_CONNS must be between 0 and DB_MAX_CONNS, and DB_MAX_CONNS at least 1")
	}
	if c.Database.ConnectTimeout <= 0 {
		return fmt.Errorf("DB_CONNECT_TIMEOUT must be positive")
	}
	if _, err := time.LoadLocation(c.App.Timezone); err != nil {
		return fmt.Errorf("invalid APP_TIMEZONE: %w", err)
	}
	return nil
}

// DatabaseEnabled reports whether the export archive database is configured.
func (c *Config) DatabaseEnabled() bool {
	return c.Database.Host != ""
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// Location returns the configured time zone, falling back to UTC.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.App.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// SlogLevel maps LOG_LEVEL onto a slog level.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.App.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return b
}
