package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// LoadEnv loads variables from a .env file if present.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file found: %v", err)
	}
}

// GetEnv returns an environment variable or a default value.
func GetEnv(key, defaultVal string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return defaultVal
}

// GetIntEnv returns an int environment variable or a default value.
func GetIntEnv(key string, defaultVal int) int {
	if val, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

// GetDurationEnv returns a duration environment variable (e.g. "30s") or a default value.
func GetDurationEnv(key string, defaultVal time.Duration) time.Duration {
	if val, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}

// GetListEnv splits a comma separated environment variable.
func GetListEnv(key string, defaultVal []string) []string {
	val := GetEnv(key, "")
	if val == "" {
		return defaultVal
	}
	parts := strings.Split(val, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// IsProduction checks if the app runs in production mode.
func IsProduction() bool {
	return GetEnv("ENV", "development") == "production"
}

// LedgerConfig controls how remote bank ledgers are called.
type LedgerConfig struct {
	HTTPTimeout        time.Duration
	BreakerMaxFailures int
	BreakerOpenTimeout time.Duration
}

// Ledger reads the ledger client settings from the environment.
func Ledger() LedgerConfig {
	return LedgerConfig{
		HTTPTimeout:        GetDurationEnv("LEDGER_HTTP_TIMEOUT", 30*time.Second),
		BreakerMaxFailures: GetIntEnv("LEDGER_BREAKER_MAX_FAILURES", 5),
		BreakerOpenTimeout: GetDurationEnv("LEDGER_BREAKER_OPEN_TIMEOUT", 30*time.Second),
	}
}
