package main

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables that seed flag defaults.
const (
	envWorkers   = "PARMST_WORKERS"
	envLogLevel  = "PARMST_LOG_LEVEL"
	envLogFormat = "PARMST_LOG_FORMAT"
	envPartition = "PARMST_PARTITION"
	envSlots     = "PARMST_SLOTS"
)

// dotEnvFiles are loaded in order; earlier files win because godotenv never
// overrides a variable that is already set.
var dotEnvFiles = []string{".env.local", ".env"}

// config holds flag defaults resolved from the environment.
type config struct {
	Workers   int
	LogLevel  string
	LogFormat string
	Partition string
	Slots     string
}

// loadDotEnv loads every existing file in paths into the process environment.
// Missing files are skipped.
func loadDotEnv(paths ...string) error {
	for _, p := range paths {
		if _, err := os.Stat(p); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return fmt.Errorf("load %s: %w", p, err)
		}
	}

	return nil
}

// configFromEnv returns defaults overridden by any PARMST_* variables.
func configFromEnv() (config, error) {
	cfg := config{
		Workers:   runtime.GOMAXPROCS(0),
		LogLevel:  "warn",
		LogFormat: "text",
		Partition: "stride",
		Slots:     "mutex",
	}
	if v := os.Getenv(envWorkers); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return config{}, fmt.Errorf("%s=%q: want a positive integer", envWorkers, v)
		}
		cfg.Workers = n
	}
	if v := os.Getenv(envLogLevel); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv(envLogFormat); v != "" {
		cfg.LogFormat = v
	}
	if v := os.Getenv(envPartition); v != "" {
		cfg.Partition = v
	}
	if v := os.Getenv(envSlots); v != "" {
		cfg.Slots = v
	}

	return cfg, nil
}
