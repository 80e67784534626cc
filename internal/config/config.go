// Package config reads service settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	DefaultPort        = "8080"
	DefaultEnvironment = "development"
	DefaultLogLevel    = "info"
	DefaultCacheSize   = 1024
)

type Config struct {
	Port        string
	Environment string
	LogLevel    string
	// CacheSize bounds the calculation memo; 0 disables it.
	CacheSize int
}

// Load reads files (".env" when none are given) into the environment without
// overriding variables already set, then builds a Config. Missing files are
// not an error.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment.
func FromEnv() (Config, error) {
	cfg := Config{
		Port:        getenv("PORT", DefaultPort),
		Environment: getenv("ENVIRONMENT", DefaultEnvironment),
		LogLevel:    getenv("LOG_LEVEL", DefaultLogLevel),
		CacheSize:   DefaultCacheSize,
	}

	if raw := os.Getenv("CACHE_SIZE"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return Config{}, fmt.Errorf("invalid CACHE_SIZE %q", raw)
		}
		cfg.CacheSize = n
	}
	return cfg, nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
