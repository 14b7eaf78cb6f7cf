package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Reporting sources the dashboard can read its records from.
const (
	ReportingSourceBackend = "backend"
	ReportingSourcePgsql   = "pgsql"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool
	LogLevel     string

	// REST backend that owns every entity
	BackendBaseURL string
	BackendTimeout time.Duration

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string
	SessionTTL        time.Duration

	LoginRateLimit     string
	CORSAllowedOrigins []string
	DefaultPerPage     int

	// Optional read replica for the dashboard
	ReportingSource string
	DatabaseURL     string
	EnableDBCheck   bool

	// Product analytics; disabled when the key is empty
	PosthogAPIKey   string
	PosthogEndpoint string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("BACKEND_BASE_URL", "")
	viper.SetDefault("BACKEND_TIMEOUT", "30s")
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "12h")
	viper.SetDefault("JWT_ISSUER", "ads-resale-dashboard")
	viper.SetDefault("SESSION_TTL", "")
	viper.SetDefault("LOGIN_RATE_LIMIT", "10-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "")
	viper.SetDefault("DEFAULT_PER_PAGE", 10)
	viper.SetDefault("REPORTING_SOURCE", ReportingSourceBackend)
	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("POSTHOG_API_KEY", "")
	viper.SetDefault("POSTHOG_ENDPOINT", "https://eu.i.posthog.com")

	// Environment variables override the defaults and any .env values.
	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080" // Default port
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.LogLevel = strings.ToLower(viper.GetString("LOG_LEVEL"))

	cfg.BackendBaseURL = strings.TrimRight(viper.GetString("BACKEND_BASE_URL"), "/")
	if cfg.BackendBaseURL == "" {
		log.Println("Warning: BACKEND_BASE_URL environment variable not set. Every backend call will fail.")
	}
	cfg.BackendTimeout = durationOr("BACKEND_TIMEOUT", 30*time.Second)

	// Load JWT Secret
	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "a-very-secret-key-should-be-longer-and-random" // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}
	cfg.JWTExpiryDuration = durationOr("JWT_EXPIRY_DURATION", 12*time.Hour)
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")
	if cfg.JWTIssuer == "" {
		cfg.JWTIssuer = "ads-resale-dashboard"
		log.Printf("Warning: JWT_ISSUER not set. Defaulting to %s.\n", cfg.JWTIssuer)
	}
	// A session lives as long as its token unless told otherwise.
	cfg.SessionTTL = cfg.JWTExpiryDuration
	if viper.GetString("SESSION_TTL") != "" {
		cfg.SessionTTL = durationOr("SESSION_TTL", cfg.JWTExpiryDuration)
	}

	cfg.LoginRateLimit = viper.GetString("LOGIN_RATE_LIMIT")
	cfg.CORSAllowedOrigins = splitList(viper.GetString("CORS_ALLOWED_ORIGINS"))
	if cfg.IsProduction && len(cfg.CORSAllowedOrigins) == 0 {
		log.Println("Warning: CORS_ALLOWED_ORIGINS not set in production. Every origin is allowed.")
	}

	cfg.DefaultPerPage = viper.GetInt("DEFAULT_PER_PAGE")
	if cfg.DefaultPerPage <= 0 || cfg.DefaultPerPage > 200 {
		log.Printf("Warning: Invalid value for DEFAULT_PER_PAGE (%d). Defaulting to 10.\n", cfg.DefaultPerPage)
		cfg.DefaultPerPage = 10
	}

	cfg.ReportingSource = strings.ToLower(viper.GetString("REPORTING_SOURCE"))
	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	switch cfg.ReportingSource {
	case ReportingSourceBackend:
	case ReportingSourcePgsql:
		if cfg.DatabaseURL == "" {
			log.Println("Warning: REPORTING_SOURCE is pgsql but PGSQL_URL is not set. Falling back to the backend.")
			cfg.ReportingSource = ReportingSourceBackend
		}
	default:
		log.Printf("Warning: Unknown REPORTING_SOURCE ('%s'). Defaulting to %s.\n", cfg.ReportingSource, ReportingSourceBackend)
		cfg.ReportingSource = ReportingSourceBackend
	}

	cfg.PosthogAPIKey = viper.GetString("POSTHOG_API_KEY")
	cfg.PosthogEndpoint = viper.GetString("POSTHOG_ENDPOINT")

	return cfg, nil
}

func durationOr(key string, fallback time.Duration) time.Duration {
	raw := viper.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, fallback.String())
		}
		return fallback
	}
	return d
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
