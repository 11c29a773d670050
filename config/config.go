package config

import (
	"os"
	"strconv"
	"strings"
)

const (
	// EnvMaxBodyBytes is the environment variable name for the markup body limit.
	EnvMaxBodyBytes = "TBL_MAX_BODY_BYTES"

	// EnvMaxFileBytes is the environment variable name for the file size limit.
	EnvMaxFileBytes = "TBL_MAX_FILE_BYTES"

	// EnvLogLevel selects the minimum log level: debug, info, warn, error.
	EnvLogLevel = "TBL_LOG_LEVEL"

	// EnvLogFormat selects the log format: text or json.
	EnvLogFormat = "TBL_LOG_FORMAT"

	// DefaultMaxBodyBytes is the default maximum accepted markup body (1 MiB).
	DefaultMaxBodyBytes int64 = 1 << 20

	// DefaultMaxFileBytes is the default maximum accepted file size (50 MiB).
	DefaultMaxFileBytes int64 = 50 << 20

	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

// Config holds runtime configuration sourced from environment variables.
type Config struct {
	MaxBodyBytes     int64
	MaxFileSizeBytes int64
	LogLevel         string
	LogFormat        string
}

// MaxFileSizeMB returns the configured limit in whole megabytes.
func (c *Config) MaxFileSizeMB() int64 {
	return c.MaxFileSizeBytes >> 20
}

// MaxBodyKB returns the configured body limit in whole kilobytes.
func (c *Config) MaxBodyKB() int64 {
	return c.MaxBodyBytes >> 10
}

// Load reads Config from environment variables, falling back to defaults for
// missing or invalid values.
func Load() *Config {
	return &Config{
		MaxBodyBytes:     positiveInt(EnvMaxBodyBytes, DefaultMaxBodyBytes),
		MaxFileSizeBytes: positiveInt(EnvMaxFileBytes, DefaultMaxFileBytes),
		LogLevel:         oneOf(EnvLogLevel, DefaultLogLevel, "debug", "info", "warn", "warning", "error"),
		LogFormat:        oneOf(EnvLogFormat, DefaultLogFormat, "text", "json"),
	}
}

func positiveInt(env string, def int64) int64 {
	if v := os.Getenv(env); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			return n
		}
	}
	return def
}

func oneOf(env, def string, allowed ...string) string {
	v := strings.ToLower(strings.TrimSpace(os.Getenv(env)))
	for _, a := range allowed {
		if v == a {
			return v
		}
	}
	return def
}
