package config

import (
	"net/url"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/rentdesk/portal/internal/utils"
)

const AppName = "portal-web"

const (
	DefaultAppPort        = "8080"
	DefaultRequestTimeout = 15 * time.Second
)

// Config holds all application configuration. The backend base URL is a
// single value here; no screen may carry its own.
type Config struct {
	AppName        string
	AppPort        string
	AppURL         string
	BackendBaseURL string
	RequestTimeout time.Duration
}

// LoadConfig reads configuration from the environment (with optional .env
// support) and fails fast on anything required, the same way every service in
// this codebase does.
func LoadConfig() *Config {
	_ = godotenv.Load()

	backendURL := os.Getenv("BACKEND_BASE_URL")
	if backendURL == "" {
		utils.Logger.Fatal("BACKEND_BASE_URL env var is missing")
	}
	if _, err := url.Parse(backendURL); err != nil {
		utils.Logger.WithError(err).Fatal("BACKEND_BASE_URL is not a valid URL")
	}

	appPort := os.Getenv("APP_PORT")
	if appPort == "" {
		appPort = DefaultAppPort
	}

	appURL := os.Getenv("APP_URL")
	if appURL == "" {
		appURL = "http://localhost:" + appPort
	}

	timeout := DefaultRequestTimeout
	if raw := os.Getenv("BACKEND_TIMEOUT"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			utils.Logger.Warnf("Invalid BACKEND_TIMEOUT '%s', using default %v", raw, timeout)
		} else {
			timeout = parsed
		}
	}

	return &Config{
		AppName:        AppName,
		AppPort:        appPort,
		AppURL:         appURL,
		BackendBaseURL: backendURL,
		RequestTimeout: timeout,
	}
}
