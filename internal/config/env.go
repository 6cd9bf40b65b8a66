package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Env struct {
	AppAddr        string
	GinMode        string
	BackendBaseURL string
	BackendToken   string
	UploadURL      string
	UploadPreset   string
	RequestTimeout time.Duration
	ListCacheTTL   time.Duration
	JWTSecret      string
}

func LoadEnv() Env {
	appAddr := strings.TrimSpace(os.Getenv("APP_ADDR"))
	if appAddr == "" {
		appAddr = ":8080"
	}

	baseURL := strings.TrimSpace(os.Getenv("BACKEND_BASE_URL"))
	if baseURL == "" {
		baseURL = "http://localhost:5000/api/v1"
	}

	jwtSecret := strings.TrimSpace(os.Getenv("JWT_SECRET"))
	if jwtSecret == "" {
		jwtSecret = "super-secret-key-change-me"
	}

	return Env{
		AppAddr:        appAddr,
		GinMode:        strings.TrimSpace(os.Getenv("GIN_MODE")),
		BackendBaseURL: strings.TrimRight(baseURL, "/"),
		BackendToken:   strings.TrimSpace(os.Getenv("BACKEND_TOKEN")),
		UploadURL:      strings.TrimSpace(os.Getenv("UPLOAD_URL")),
		UploadPreset:   strings.TrimSpace(os.Getenv("UPLOAD_PRESET")),
		RequestTimeout: envSeconds("REQUEST_TIMEOUT_SECONDS", 30*time.Second),
		ListCacheTTL:   envSeconds("LIST_CACHE_TTL_SECONDS", 0),
		JWTSecret:      jwtSecret,
	}
}

func envSeconds(key string, def time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return def
	}
	return time.Duration(n) * time.Second
}
