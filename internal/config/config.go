package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds console configuration loaded from environment and flags.
type Config struct {
	RunAddress      string
	APIURL          string
	CategoriesPath  string
	StatusesPath    string
	OrdersPath      string
	HealthPath      string
	RequestTimeout  time.Duration
	RefreshInterval time.Duration
	ShutdownTimeout time.Duration
	SessionSecret   string
	SessionTTL      time.Duration
	StaffAccounts   string
	LogLevel        string
}

const (
	defaultRunAddress      = ":8080"
	defaultAPIURL          = "http://localhost:8008"
	defaultCategoriesPath  = "/api/vehicle-categories/"
	defaultStatusesPath    = "/api/statuses"
	defaultOrdersPath      = "/api/orders"
	defaultHealthPath      = "/health/"
	defaultRefreshInterval = time.Minute
	defaultShutdownTimeout = 10 * time.Second
	defaultSessionSecret   = "change-me-in-production"
	defaultSessionTTL      = 12 * time.Hour
	defaultLogLevel        = "info"
)

// Load reads an optional .env file, then parses flags and environment variables.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:      getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		APIURL:          getString(lookup, "API_URL", getString(lookup, "VITE_API_URL", defaultAPIURL)),
		CategoriesPath:  getString(lookup, "CATEGORIES_PATH", defaultCategoriesPath),
		StatusesPath:    getString(lookup, "STATUSES_PATH", defaultStatusesPath),
		OrdersPath:      getString(lookup, "ORDERS_PATH", defaultOrdersPath),
		HealthPath:      getString(lookup, "BACKEND_HEALTH_PATH", defaultHealthPath),
		RequestTimeout:  getDuration(lookup, "REQUEST_TIMEOUT", 0),
		RefreshInterval: getDuration(lookup, "REFERENCE_REFRESH_INTERVAL", defaultRefreshInterval),
		ShutdownTimeout: getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		SessionSecret:   getString(lookup, "SESSION_SECRET", defaultSessionSecret),
		SessionTTL:      getDuration(lookup, "SESSION_TTL", defaultSessionTTL),
		StaffAccounts:   getString(lookup, "STAFF_ACCOUNTS", ""),
		LogLevel:        getString(lookup, "LOG_LEVEL", defaultLogLevel),
	}

	fs := flag.NewFlagSet("orderdesk", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		requestTimeoutStr  = cfg.RequestTimeout.String()
		refreshIntervalStr = cfg.RefreshInterval.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
		sessionTTLStr      = cfg.SessionTTL.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.APIURL, "u", cfg.APIURL, "Order backend base URL")
	fs.StringVar(&cfg.CategoriesPath, "categories-path", cfg.CategoriesPath, "Vehicle categories collection path")
	fs.StringVar(&cfg.StatusesPath, "statuses-path", cfg.StatusesPath, "Order statuses collection path")
	fs.StringVar(&cfg.OrdersPath, "orders-path", cfg.OrdersPath, "Orders collection path")
	fs.StringVar(&cfg.HealthPath, "health-path", cfg.HealthPath, "Backend health probe path")
	fs.StringVar(&requestTimeoutStr, "request-timeout", requestTimeoutStr, "Backend request timeout, 0 disables it")
	fs.StringVar(&refreshIntervalStr, "refresh-interval", refreshIntervalStr, "Interval between reference data refreshes")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")
	fs.StringVar(&cfg.SessionSecret, "session-secret", cfg.SessionSecret, "Secret for signing session tokens")
	fs.StringVar(&sessionTTLStr, "session-ttl", sessionTTLStr, "Session token lifetime")
	fs.StringVar(&cfg.StaffAccounts, "staff", cfg.StaffAccounts, "Staff accounts as login:bcrypt-hash pairs separated by ';'")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn or error")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.RequestTimeout, err = time.ParseDuration(requestTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid request timeout: %w", err)
	}

	if cfg.RefreshInterval, err = time.ParseDuration(refreshIntervalStr); err != nil {
		return nil, fmt.Errorf("invalid refresh interval: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if cfg.SessionTTL, err = time.ParseDuration(sessionTTLStr); err != nil {
		return nil, fmt.Errorf("invalid session ttl: %w", err)
	}

	if secretFile, ok := lookup("SESSION_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read session secret file: %w", err)
		}
		cfg.SessionSecret = strings.TrimSpace(string(content))
	}

	if cfg.RequestTimeout < 0 {
		cfg.RequestTimeout = 0
	}

	if cfg.RefreshInterval <= 0 {
		cfg.RefreshInterval = defaultRefreshInterval
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = defaultSessionTTL
	}

	if cfg.APIURL == "" {
		return nil, fmt.Errorf("backend API URL must be provided")
	}

	if strings.TrimSpace(cfg.StaffAccounts) == "" {
		return nil, fmt.Errorf("staff accounts must be provided")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
