// Package config provides configuration loading from environment variables.
package config

import (
	"os"
	"strconv"
)

// Defaults for processing caps.
const (
	DefaultMaxNodesValue      = 1_000_000
	DefaultPatternCacheValue  = 128
	DefaultQueryMaxResultsVal = 0
)

// Config holds all configuration for the schemax CLI. Flags take precedence
// over these values; the environment sets the baseline.
type Config struct {
	Strict          bool // SCHEMAX_STRICT, default false
	MaxNodes        int  // SCHEMAX_MAX_NODES, default 1_000_000
	PatternCacheMax int  // SCHEMAX_PATTERN_CACHE_MAX, default 128
	QueryMaxResults int  // SCHEMAX_QUERY_MAX_RESULTS, default 0 (unbounded)

	// Logging configuration
	LogLevel      string // SCHEMAX_LOG_LEVEL, default "info"
	LogFile       string // SCHEMAX_LOG_FILE, default "" (stderr only)
	LogMaxSizeMB  int    // SCHEMAX_LOG_MAX_SIZE_MB, default 10
	LogMaxBackups int    // SCHEMAX_LOG_MAX_BACKUPS, default 3
	LogMaxAgeDays int    // SCHEMAX_LOG_MAX_AGE_DAYS, default 28
	LogCompress   bool   // SCHEMAX_LOG_COMPRESS, default true
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Strict:          getEnvBool("SCHEMAX_STRICT", false),
		MaxNodes:        getEnvInt("SCHEMAX_MAX_NODES", DefaultMaxNodesValue),
		PatternCacheMax: getEnvInt("SCHEMAX_PATTERN_CACHE_MAX", DefaultPatternCacheValue),
		QueryMaxResults: getEnvInt("SCHEMAX_QUERY_MAX_RESULTS", DefaultQueryMaxResultsVal),

		LogLevel:      getEnvString("SCHEMAX_LOG_LEVEL", "info"),
		LogFile:       getEnvString("SCHEMAX_LOG_FILE", ""),
		LogMaxSizeMB:  getEnvInt("SCHEMAX_LOG_MAX_SIZE_MB", 10),
		LogMaxBackups: getEnvInt("SCHEMAX_LOG_MAX_BACKUPS", 3),
		LogMaxAgeDays: getEnvInt("SCHEMAX_LOG_MAX_AGE_DAYS", 28),
		LogCompress:   getEnvBool("SCHEMAX_LOG_COMPRESS", true),
	}
}

func getEnvBool(key string, defaultVal bool) bool {
	if v := os.Getenv(key); v != "" {
		switch v {
		case "1", "true", "yes", "on":
			return true
		case "0", "false", "no", "off":
			return false
		}
	}
	return defaultVal
}

func getEnvString(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}
