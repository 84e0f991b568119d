package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

const (
	DriverRest   = "rest"
	DriverMongo  = "mongo"
	DriverSQLite = "sqlite"
)

// Config holds all application configuration values.
type Config struct {
	Port           string   `env:"PORT" envDefault:"8080"`
	GinMode        string   `env:"GIN_MODE" envDefault:"release"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`
	LogLevel       string   `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat      string   `env:"LOG_FORMAT" envDefault:"text"`

	StoreDriver  string `env:"STORE_DRIVER" envDefault:"sqlite"`
	SupabaseURL  string `env:"SUPABASE_URL"`
	SupabaseKey  string `env:"SUPABASE_KEY"`
	MongoURI     string `env:"MONGODB_URI"`
	DatabaseName string `env:"DATABASE_NAME" envDefault:"kgn"`
	SQLitePath   string `env:"SQLITE_PATH" envDefault:"leads.db"`

	FormSessionTTL      time.Duration `env:"FORM_SESSION_TTL" envDefault:"30m"`
	SessionCookieSecure bool          `env:"SESSION_COOKIE_SECURE" envDefault:"false"`
	CatalogPath         string        `env:"CATALOG_PATH"`

	JWTSecret             string `env:"JWT_SECRET"`
	AdminEmail            string `env:"ADMIN_EMAIL"`
	AdminPasswordHash     string `env:"ADMIN_PASSWORD_HASH"`
	AccessTokenTTLMinutes int    `env:"ACCESS_TOKEN_TTL_MINUTES" envDefault:"15"`
}

// Load reads a .env file if there is one, then the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug("No .env file found, using system environment variables")
	}
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	cfg.StoreDriver = strings.ToLower(strings.TrimSpace(cfg.StoreDriver))
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings the chosen store driver depends on.
func (c *Config) Validate() error {
	switch c.StoreDriver {
	case DriverRest:
		if c.SupabaseURL == "" || c.SupabaseKey == "" {
			return fmt.Errorf("store driver %q needs SUPABASE_URL and SUPABASE_KEY", DriverRest)
		}
	case DriverMongo:
		if c.MongoURI == "" {
			return fmt.Errorf("store driver %q needs MONGODB_URI", DriverMongo)
		}
	case DriverSQLite:
		if strings.TrimSpace(c.SQLitePath) == "" {
			return fmt.Errorf("store driver %q needs SQLITE_PATH", DriverSQLite)
		}
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q (allowed: rest, mongo, sqlite)", c.StoreDriver)
	}
	if c.FormSessionTTL <= 0 {
		return fmt.Errorf("FORM_SESSION_TTL must be positive")
	}
	return nil
}

// AdminEnabled reports whether the back-office login is configured.
func (c *Config) AdminEnabled() bool {
	return c.JWTSecret != "" && c.AdminEmail != "" && c.AdminPasswordHash != ""
}

func (c *Config) AccessTTL() time.Duration {
	if c.AccessTokenTTLMinutes <= 0 {
		return 15 * time.Minute
	}
	return time.Duration(c.AccessTokenTTLMinutes) * time.Minute
}

// SetupLogging applies LOG_LEVEL and LOG_FORMAT to the standard logrus logger.
func (c *Config) SetupLogging() {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		log.WithField("level", c.LogLevel).Warn("Unknown log level, using info")
		level = log.InfoLevel
	}
	log.SetLevel(level)
	if strings.EqualFold(c.LogFormat, "json") {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
}
