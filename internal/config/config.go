// Package config loads application configuration from environment variables.
package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.  The upstream section points at the remote data
// API that owns every business record; this service keeps no database of its
// own.
type Config struct {
	Env             string        // application environment (e.g. "dev", "prod")
	Port            string        // HTTP port to listen on
	UpstreamURL     string        // base URL of the remote data API
	UpstreamToken   string        // optional service token for upstream calls
	UpstreamTimeout time.Duration // per-request timeout for upstream calls
	JWTSecret       string        // secret used to sign access tokens
	AccessTTLMin    int           // access token time-to-live in minutes
	RefreshTTLDays  int           // refresh token time-to-live in days
	SyncSchedule    string        // cron spec for the periodic snapshot re-sync
}

// Load reads configuration values from environment variables and returns a
// Config.  Required variables are enforced by must(); missing values cause
// the program to exit with a fatal log message.  Optional values fall back
// to defaults that suit a single-property deployment.
func Load() Config {
	return Config{
		Env:             getenv("APP_ENV", "dev"),
		Port:            getenv("APP_PORT", "8080"),
		UpstreamURL:     must("UPSTREAM_API_URL"),
		UpstreamToken:   os.Getenv("UPSTREAM_API_TOKEN"),
		UpstreamTimeout: parseDur(getenv("UPSTREAM_TIMEOUT", "10s")),
		JWTSecret:       must("JWT_SECRET"),
		AccessTTLMin:    envInt("ACCESS_TOKEN_TTL_MIN", 30),
		RefreshTTLDays:  envInt("REFRESH_TOKEN_TTL_DAYS", 14),
		SyncSchedule:    getenv("SNAPSHOT_SYNC_SCHEDULE", "@every 15m"),
	}
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

// getenv returns the value of an environment variable or a default.
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoi(s string) int {
	i, _ := strconv.Atoi(s)
	return i
}

func parseDur(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return time.Second
	}
	return d
}

