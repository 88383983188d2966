package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds process-level settings. JWT_SECRET is read by pkg/jwt
// directly.
type Config struct {
	Port      string
	RedisAddr string
	// ProcessDelay stands in for upstream latency on mutating and lookup
	// operations. Tests set it to zero for determinism.
	ProcessDelay time.Duration
}

func Load() *Config {
	return &Config{
		Port:         getEnv("PORT", "3000"),
		RedisAddr:    getEnv("REDIS_ADDR", ""),
		ProcessDelay: time.Duration(getEnvInt("PROCESS_DELAY_MS", 1000)) * time.Millisecond,
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
