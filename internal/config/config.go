package config

import (
	"os"
	"strconv"
	"time"

	"go.uber.org/fx"
)

// BrandingConfig is the company identity stamped on rendered documents. It is
// plain input to the document core, never computed there.
type BrandingConfig struct {
	Name           string
	Address        string
	Phone          string
	Email          string
	Website        string
	LogoURL        string
	CurrencySymbol string
}

// SessionConfig tunes the kiosk session cookie.
type SessionConfig struct {
	CookieName string
	TTL        time.Duration
	Secure     bool
	SameSite   string
	Path       string
	Domain     string
}

// TracingConfig controls the OpenTelemetry exporter.
type TracingConfig struct {
	Enabled          bool
	ExporterEndpoint string
	ExporterProtocol string
	SamplingRatio    float64
}

type Config struct {
	Environment  string
	HTTPAddr     string
	DatabasePath string
	Branding     BrandingConfig
	Session      SessionConfig
	Tracing      TracingConfig
}

func (c Config) IsProduction() bool {
	return c.Environment == "production"
}

// Load reads configuration from the environment with development defaults.
func Load() Config {
	return Config{
		Environment:  getenv("LOCKERDOCS_ENVIRONMENT", "development"),
		HTTPAddr:     getenv("LOCKERDOCS_HTTP_ADDR", ":8080"),
		DatabasePath: getenv("LOCKERDOCS_DB_PATH", "lockerdocs.db"),
		Branding: BrandingConfig{
			Name:           getenv("LOCKERDOCS_BRAND_NAME", "Smallbiznis Locker Rooms"),
			Address:        os.Getenv("LOCKERDOCS_BRAND_ADDRESS"),
			Phone:          os.Getenv("LOCKERDOCS_BRAND_PHONE"),
			Email:          os.Getenv("LOCKERDOCS_BRAND_EMAIL"),
			Website:        os.Getenv("LOCKERDOCS_BRAND_WEBSITE"),
			LogoURL:        os.Getenv("LOCKERDOCS_BRAND_LOGO_URL"),
			CurrencySymbol: getenv("LOCKERDOCS_CURRENCY_SYMBOL", "₺"),
		},
		Session: SessionConfig{
			CookieName: getenv("LOCKERDOCS_SESSION_COOKIE", "lockerdocs_session"),
			TTL:        getduration("LOCKERDOCS_SESSION_TTL", 30*time.Minute),
			Secure:     getbool("LOCKERDOCS_SESSION_SECURE", true),
			SameSite:   getenv("LOCKERDOCS_SESSION_SAMESITE", "lax"),
			Path:       getenv("LOCKERDOCS_SESSION_PATH", "/"),
			Domain:     os.Getenv("LOCKERDOCS_SESSION_DOMAIN"),
		},
		Tracing: TracingConfig{
			Enabled:          getbool("LOCKERDOCS_TRACING_ENABLED", false),
			ExporterEndpoint: os.Getenv("LOCKERDOCS_TRACING_ENDPOINT"),
			ExporterProtocol: getenv("LOCKERDOCS_TRACING_PROTOCOL", "grpc"),
			SamplingRatio:    getfloat("LOCKERDOCS_TRACING_SAMPLING_RATIO", 0.1),
		},
	}
}

var Module = fx.Module("config",
	fx.Provide(Load),
)

func getenv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getbool(key string, fallback bool) bool {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback
	}
	return value
}

func getfloat(key string, fallback float64) float64 {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fallback
	}
	return value
}

func getduration(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}
	return value
}
