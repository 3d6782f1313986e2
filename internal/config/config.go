package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	Environment string
	ServiceName string
	Version     string

	APIKey         string
	TrustedProxies []string

	StartingBalance int
	GridSize        int
	TickInterval    time.Duration

	SessionCacheSize int
	SessionTTL       time.Duration

	// CropCatalogPath empty means the built-in catalog
	CropCatalogPath string

	// DatabaseURL empty means the in-memory event log
	DatabaseURL        string
	DBMaxConns         int
	EventRetentionDays int
	EventLogCapacity   int

	// Subscriber retries; EventDeadLetterPath empty means exhausted events are only logged
	EventMaxRetries     int
	EventRetryDelay     time.Duration
	EventDeadLetterPath string

	WorkerCount     int
	WorkerQueueSize int
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:        getEnv(EnvLogLevel, DefaultLogLevel),
		LogFormat:       getEnv(EnvLogFormat, DefaultLogFormat),
		Environment:     getEnv(EnvEnvironment, DefaultEnvironment),
		ServiceName:     getEnv(EnvServiceName, DefaultServiceName),
		Version:         getEnv(EnvVersion, DefaultVersion),
		APIKey:          getEnv(EnvAPIKey, ""),
		TrustedProxies:  getEnvAsList(EnvTrustedProxies),
		CropCatalogPath: getEnv(EnvCropCatalogPath, ""),
		DatabaseURL:     getEnv(EnvDatabaseURL, ""),

		EventDeadLetterPath: getEnv(EnvEventDeadLetterPath, DefaultEventDeadLetterPath),
	}

	ints := []struct {
		key  string
		def  int
		dest *int
	}{
		{EnvPort, DefaultPort, &cfg.Port},
		{EnvStartingBalance, DefaultStartingBalance, &cfg.StartingBalance},
		{EnvGridSize, DefaultGridSize, &cfg.GridSize},
		{EnvSessionCacheSize, DefaultSessionCacheSize, &cfg.SessionCacheSize},
		{EnvDBMaxConns, DefaultDBMaxConns, &cfg.DBMaxConns},
		{EnvEventRetentionDays, DefaultEventRetentionDays, &cfg.EventRetentionDays},
		{EnvEventLogCapacity, DefaultEventLogCapacity, &cfg.EventLogCapacity},
		{EnvEventMaxRetries, DefaultEventMaxRetries, &cfg.EventMaxRetries},
		{EnvWorkerCount, DefaultWorkerCount, &cfg.WorkerCount},
		{EnvWorkerQueueSize, DefaultWorkerQueueSize, &cfg.WorkerQueueSize},
	}
	for _, v := range ints {
		n, err := getEnvAsInt(v.key, v.def)
		if err != nil {
			return nil, err
		}
		*v.dest = n
	}

	durations := []struct {
		key  string
		def  time.Duration
		dest *time.Duration
	}{
		{EnvTickInterval, DefaultTickInterval, &cfg.TickInterval},
		{EnvSessionTTL, DefaultSessionTTL, &cfg.SessionTTL},
		{EnvEventRetryDelay, DefaultEventRetryDelay, &cfg.EventRetryDelay},
	}
	for _, v := range durations {
		d, err := getEnvAsDuration(v.key, v.def)
		if err != nil {
			return nil, err
		}
		*v.dest = d
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an integer variable. Unset or empty yields the default.
func getEnvAsInt(key string, defaultValue int) (int, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf(ErrMsgInvalidIntFmt, key, raw, err)
	}
	return n, nil
}

// getEnvAsDuration parses a Go duration string such as "100ms" or "2h"
func getEnvAsDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf(ErrMsgInvalidDurationFmt, key, raw, err)
	}
	return d, nil
}

// getEnvAsList splits a comma-separated variable, dropping blanks
func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(getEnv(key, ""), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
