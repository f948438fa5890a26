package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// ServerConfig holds settings for the HTTP API.
type ServerConfig struct {
	Addr         string
	LogLevel     string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	MaxBodyBytes int64
}

// LoadServerConfig reads server settings from the environment. A .env file in
// the working directory, if present, is loaded first; variables already set in
// the environment win.
func LoadServerConfig(envFiles ...string) (*ServerConfig, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}

	readTimeout, err := getEnvDuration("FINSIM_READ_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}
	writeTimeout, err := getEnvDuration("FINSIM_WRITE_TIMEOUT", 30*time.Second)
	if err != nil {
		return nil, err
	}
	maxBody, err := getEnvInt64("FINSIM_MAX_BODY_BYTES", 1<<20)
	if err != nil {
		return nil, err
	}

	cfg := &ServerConfig{
		Addr:         getEnv("FINSIM_ADDR", ":8080"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		MaxBodyBytes: maxBody,
	}
	if cfg.Addr == "" {
		return nil, fmt.Errorf("FINSIM_ADDR is required")
	}
	if cfg.MaxBodyBytes <= 0 {
		return nil, fmt.Errorf("FINSIM_MAX_BODY_BYTES must be positive")
	}
	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) (time.Duration, error) {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultVal, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}

func getEnvInt64(key string, defaultVal int64) (int64, error) {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultVal, nil
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}
