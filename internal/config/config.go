package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Provider exposes read-only access to application configuration.
// Handlers and services depend on this interface rather than on *Config so
// tests can substitute their own values.
type Provider interface {
	GetServerAddr() string
	GetAppBaseURL() string
	GetAppEnv() string
	GetSessionSecret() string
	GetStaticDir() string
	GetLeafCount() int
	GetLeafTick() time.Duration
	GetSubmitDelay() time.Duration
	GetRedirectDelay() time.Duration
	GetViewTTL() time.Duration
}

// Config holds all configuration for the application.
type Config struct {
	ServerAddr    string
	AppBaseURL    string
	AppEnv        string
	SessionSecret string
	StaticDir     string

	LeafCount     int
	LeafTick      time.Duration
	SubmitDelay   time.Duration
	RedirectDelay time.Duration
	ViewTTL       time.Duration
}

// New loads configuration from a .env file, if present, and the environment.
func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment without touching .env.
func FromEnv() *Config {
	cfg := &Config{
		ServerAddr:    getEnv("SERVER_ADDR", ":8080"),
		AppBaseURL:    getEnv("APP_BASE_URL", "http://localhost:8080"),
		AppEnv:        getEnv("APP_ENV", "development"),
		SessionSecret: getEnv("SESSION_SECRET", ""),
		StaticDir:     getEnv("STATIC_DIR", ""),

		LeafCount:     getEnvAsInt("LEAF_COUNT", 10),
		LeafTick:      getEnvAsDuration("LEAF_TICK", 50*time.Millisecond),
		SubmitDelay:   getEnvAsDuration("SUBMIT_DELAY", 2*time.Second),
		RedirectDelay: getEnvAsDuration("REDIRECT_DELAY", 1500*time.Millisecond),
		ViewTTL:       getEnvAsDuration("VIEW_TTL", 30*time.Minute),
	}

	if cfg.SessionSecret == "" {
		// Sessions only carry an anonymous visitor id, so a fixed development
		// secret is acceptable outside production.
		if cfg.IsProduction() {
			log.Fatal("Required environment variable SESSION_SECRET is not set.")
		}
		cfg.SessionSecret = "agrogen-development-session-secret"
	}
	if cfg.LeafCount < 0 {
		cfg.LeafCount = 0
	}

	return cfg
}

// IsProduction reports whether the app runs with APP_ENV=production.
func (c *Config) IsProduction() bool { return c.AppEnv == "production" }

func (c *Config) GetServerAddr() string           { return c.ServerAddr }
func (c *Config) GetAppBaseURL() string           { return c.AppBaseURL }
func (c *Config) GetAppEnv() string               { return c.AppEnv }
func (c *Config) GetSessionSecret() string        { return c.SessionSecret }
func (c *Config) GetStaticDir() string            { return c.StaticDir }
func (c *Config) GetLeafCount() int               { return c.LeafCount }
func (c *Config) GetLeafTick() time.Duration      { return c.LeafTick }
func (c *Config) GetSubmitDelay() time.Duration   { return c.SubmitDelay }
func (c *Config) GetRedirectDelay() time.Duration { return c.RedirectDelay }
func (c *Config) GetViewTTL() time.Duration       { return c.ViewTTL }

func getEnv(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Invalid integer for %s=%q, using default %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

// getEnvAsDuration accepts Go duration strings ("50ms", "2s") or a bare
// number of milliseconds.
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(valueStr); err == nil {
		return d
	}
	if ms, err := strconv.Atoi(valueStr); err == nil {
		return time.Duration(ms) * time.Millisecond
	}
	log.Printf("Invalid duration for %s=%q, using default %s", key, valueStr, defaultValue)
	return defaultValue
}
