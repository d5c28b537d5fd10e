package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	EnvAddr          = "CHECKERS_ADDR"
	EnvLogLevel      = "CHECKERS_LOG_LEVEL"
	EnvLogPretty     = "CHECKERS_LOG_PRETTY"
	EnvMatchInterval = "CHECKERS_MATCH_INTERVAL"
)

type Config struct {
	Addr          string
	LogLevel      string
	LogPretty     bool
	MatchInterval time.Duration
}

func Default() Config {
	return Config{
		Addr:          ":8080",
		LogLevel:      "info",
		MatchInterval: 2 * time.Second,
	}
}

// Load reads the given .env files (".env" when none are named) into the
// process environment, then builds a Config from it. Missing files are not
// an error; variables already set in the environment win over the files.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function, starting from Default.
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Default()
	if v := strings.TrimSpace(getenv(EnvAddr)); v != "" {
		cfg.Addr = v
	}
	if v := strings.TrimSpace(getenv(EnvLogLevel)); v != "" {
		cfg.LogLevel = v
	}
	if v := strings.TrimSpace(getenv(EnvLogPretty)); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvLogPretty, err)
		}
		cfg.LogPretty = b
	}
	if v := strings.TrimSpace(getenv(EnvMatchInterval)); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvMatchInterval, err)
		}
		cfg.MatchInterval = d
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Addr == "" {
		return errors.New("empty listen address")
	}
	if c.MatchInterval <= 0 {
		return fmt.Errorf("match interval must be positive, got %s", c.MatchInterval)
	}
	return nil
}
