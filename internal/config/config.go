package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

// Environment represents different deployment environments
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvTesting     Environment = "testing"
	EnvProduction  Environment = "production"
)

// Config holds the configuration for the lost-and-found service.
// Environment variables are automatically parsed from the LOSTFOUND_ prefix.
type Config struct {
	Environment Environment `envconfig:"ENVIRONMENT" default:"development"`

	// HTTP Configuration
	HTTPPort int `envconfig:"HTTP_PORT" default:"8080"`

	// Database Configuration
	DBDriver    string `envconfig:"DB_DRIVER" default:"sqlite"`
	SQLitePath  string `envconfig:"SQLITE_PATH" default:"./data/lostfound.db"`
	PostgresDSN string `envconfig:"POSTGRES_DSN" default:""`

	// Blob storage Configuration
	BlobDriver      string `envconfig:"BLOB_DRIVER" default:"fs"`
	S3Bucket        string `envconfig:"S3_BUCKET" default:""`
	S3Region        string `envconfig:"S3_REGION" default:"eu-west-3"`
	S3URLPrefix     string `envconfig:"S3_URL_PREFIX" default:""`
	FSBlobDir       string `envconfig:"FS_BLOB_DIR" default:"./data/uploads"`
	FSBlobURLPrefix string `envconfig:"FS_BLOB_URL_PREFIX" default:"/uploads/"`

	// Auth Configuration
	JWTSecret     string `envconfig:"JWT_SECRET" default:"change-me-in-production"`
	TokenTTLHours int    `envconfig:"TOKEN_TTL_HOURS" default:"168"`
	AdminUsername string `envconfig:"ADMIN_USERNAME" default:"admin"`
	AdminPassword string `envconfig:"ADMIN_PASSWORD" default:"admin123"`

	// Match policy Configuration
	MatchMinSharedTokens int  `envconfig:"MATCH_MIN_SHARED_TOKENS" default:"2"`
	MatchMinTokenLength  int  `envconfig:"MATCH_MIN_TOKEN_LENGTH" default:"4"`
	MatchRequireDates    bool `envconfig:"MATCH_REQUIRE_DATES" default:"false"`
}

// ResolveDefaults validates the driver selections and derives URL prefixes
// left empty.
func (c *Config) ResolveDefaults() error {
	switch c.DBDriver {
	case "sqlite":
		if c.SQLitePath == "" {
			return fmt.Errorf("SQLITE_PATH is required with DB_DRIVER=sqlite")
		}
	case "postgres":
		if c.PostgresDSN == "" {
			return fmt.Errorf("POSTGRES_DSN is required with DB_DRIVER=postgres")
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER: %s", c.DBDriver)
	}

	switch c.BlobDriver {
	case "fs":
		if c.FSBlobDir == "" {
			return fmt.Errorf("FS_BLOB_DIR is required with BLOB_DRIVER=fs")
		}
	case "s3":
		if c.S3Bucket == "" {
			return fmt.Errorf("S3_BUCKET is required with BLOB_DRIVER=s3")
		}
		if c.S3URLPrefix == "" {
			c.S3URLPrefix = fmt.Sprintf("https://%s.s3.%s.amazonaws.com/", c.S3Bucket, c.S3Region)
		}
	case "memory":
		// in-process store, nothing to derive
	default:
		return fmt.Errorf("unsupported BLOB_DRIVER: %s", c.BlobDriver)
	}

	if c.TokenTTLHours <= 0 {
		return fmt.Errorf("TOKEN_TTL_HOURS must be positive, got %d", c.TokenTTLHours)
	}
	if c.MatchMinSharedTokens < 1 {
		return fmt.Errorf("MATCH_MIN_SHARED_TOKENS must be at least 1, got %d", c.MatchMinSharedTokens)
	}
	if c.MatchMinTokenLength < 1 {
		return fmt.Errorf("MATCH_MIN_TOKEN_LENGTH must be at least 1, got %d", c.MatchMinTokenLength)
	}
	return nil
}

// New creates a new Config by parsing environment variables.
// Variables are prefixed with LOSTFOUND_, for example LOSTFOUND_HTTP_PORT.
func New() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("LOSTFOUND", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}

	if err := cfg.ResolveDefaults(); err != nil {
		return nil, err
	}

	if cfg.AdminPassword == "admin123" && cfg.IsProduction() {
		log.Warn().Msg("ADMIN_PASSWORD is still the default; set LOSTFOUND_ADMIN_PASSWORD")
	}

	log.Info().
		Str("environment", string(cfg.Environment)).
		Int("port", cfg.HTTPPort).
		Str("db_driver", cfg.DBDriver).
		Str("blob_driver", cfg.BlobDriver).
		Int("token_ttl_hours", cfg.TokenTTLHours).
		Int("match_min_shared_tokens", cfg.MatchMinSharedTokens).
		Int("match_min_token_length", cfg.MatchMinTokenLength).
		Bool("match_require_dates", cfg.MatchRequireDates).
		Msg("Configuration loaded")

	return &cfg, nil
}

// NewForTesting creates a config specifically for testing
func NewForTesting() *Config {
	return &Config{
		Environment: EnvTesting,
		HTTPPort:    8080,

		DBDriver:   "sqlite",
		SQLitePath: ":memory:",

		BlobDriver: "memory",

		JWTSecret:     "test-secret",
		TokenTTLHours: 1,
		AdminUsername: "admin",
		AdminPassword: "admin123",

		MatchMinSharedTokens: 2,
		MatchMinTokenLength:  4,
	}
}

// IsTesting returns true if the environment is set to testing
func (c *Config) IsTesting() bool {
	return c.Environment == EnvTesting
}

// IsProduction returns true if the environment is set to production
func (c *Config) IsProduction() bool {
	return c.Environment == EnvProduction
}

// GetHTTPAddr returns the HTTP server address
func (c *Config) GetHTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}
