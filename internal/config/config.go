// Package config loads process-wide defaults from the environment, after
// reading an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"runtime"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/jmisabella/mazer/engine"
)

// Environment variable names.
const (
	EnvWorkers   = "MAZER_WORKERS"
	EnvLogLevel  = "MAZER_LOG_LEVEL"
	EnvLogFormat = "MAZER_LOG_FORMAT"
	EnvAddr      = "MAZER_ADDR"
	EnvMaxCells  = "MAZER_MAX_CELLS"
)

// Config holds defaults that command-line flags may override.
type Config struct {
	Workers   int    // Batch concurrency
	LogLevel  string // debug, info, warn, error
	LogFormat string // text or json
	Addr      string // listen address for serve mode; empty disables it
	MaxCells  int    // largest accepted W·H
}

// Load reads the given .env files (default ".env"; missing files are
// ignored) and then the environment. Variables already set in the
// environment win over .env values.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("config: load env file: %w", err)
	}

	workers, err := getEnvAsInt(EnvWorkers, runtime.NumCPU())
	if err != nil {
		return Config{}, err
	}
	maxCells, err := getEnvAsInt(EnvMaxCells, engine.DefaultMaxCells)
	if err != nil {
		return Config{}, err
	}
	return Config{
		Workers:   workers,
		LogLevel:  getEnvWithDefault(EnvLogLevel, "info"),
		LogFormat: getEnvWithDefault(EnvLogFormat, "text"),
		Addr:      getEnvWithDefault(EnvAddr, ""),
		MaxCells:  maxCells,
	}, nil
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an integer variable, falling back to defaultValue when unset.
func getEnvAsInt(key string, defaultValue int) (int, error) {
	valueStr, exists := os.LookupEnv(key)
	if !exists || valueStr == "" {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, fmt.Errorf("config: %s must be an integer: %w", key, err)
	}
	return value, nil
}
