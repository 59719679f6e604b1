package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultAddr                = ":8080"
	DefaultVisibilityThreshold = 50.0
	DefaultMediaURLTTL         = 15 * time.Minute
	DefaultLogLevel            = "info"

	// devJWTSecret is only used when JWT_SECRET is missing; serve warns about it.
	devJWTSecret = "kg-market-dev-secret"
)

var ErrMissingJWTSecret = errors.New("JWT_SECRET is not set")

// Config holds environment-driven configuration.
type Config struct {
	Addr        string
	DatabaseURL string
	JWTSecret   string

	// VisibilityThreshold is the percentage of a feed entry that must be on
	// screen before it can become the active entry.
	VisibilityThreshold float64

	MediaBucket string
	MediaURLTTL time.Duration
	LogLevel    string
}

// Load reads configuration from the environment. A .env file in the working
// directory is honoured when present.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Addr:                getenv("KG_MARKET_ADDR", DefaultAddr),
		DatabaseURL:         os.Getenv("DATABASE_URL"),
		JWTSecret:           os.Getenv("JWT_SECRET"),
		VisibilityThreshold: DefaultVisibilityThreshold,
		MediaBucket:         os.Getenv("MEDIA_BUCKET"),
		MediaURLTTL:         DefaultMediaURLTTL,
		LogLevel:            getenv("LOG_LEVEL", DefaultLogLevel),
	}

	if v := os.Getenv("FEED_VISIBILITY_THRESHOLD"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return Config{}, fmt.Errorf("parse FEED_VISIBILITY_THRESHOLD: %w", err)
		}
		cfg.VisibilityThreshold = f
	}
	if v := os.Getenv("MEDIA_URL_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse MEDIA_URL_TTL: %w", err)
		}
		cfg.MediaURLTTL = d
	}

	return cfg, cfg.Validate()
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.Addr == "" {
		return errors.New("listen address is empty")
	}
	if c.VisibilityThreshold <= 0 || c.VisibilityThreshold > 100 {
		return fmt.Errorf("visibility threshold must be in (0,100], got %v", c.VisibilityThreshold)
	}
	if c.MediaURLTTL <= 0 {
		return fmt.Errorf("media url ttl must be positive, got %v", c.MediaURLTTL)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	return nil
}

// SigningKey returns the JWT secret, falling back to a development key.
// The returned error is ErrMissingJWTSecret when the fallback was used.
func (c Config) SigningKey() ([]byte, error) {
	if c.JWTSecret == "" {
		return []byte(devJWTSecret), ErrMissingJWTSecret
	}
	return []byte(c.JWTSecret), nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
