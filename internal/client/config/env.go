package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

const (
	EnvServerURL  = "BLINDMATCH_SERVER_URL"
	EnvDBPath     = "BLINDMATCH_DB_PATH"
	EnvPushURL    = "BLINDMATCH_PUSH_URL"
	EnvLogBackend = "BLINDMATCH_LOG_BACKEND"
	EnvLogLevel   = "BLINDMATCH_LOG_LEVEL"
)

// loadDotEnv seeds the process environment from path. Variables that are
// already set are not overridden. A missing file is not an error.
func loadDotEnv(path string) {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}
}

// parseEnv overlays cfg with the BLINDMATCH_* variables that are set.
// A variable set to the empty string clears the value (useful for PushURL).
func parseEnv(cfg *Config) {
	lookup(&cfg.ServerURL, EnvServerURL)
	lookup(&cfg.DatabasePath, EnvDBPath)
	lookup(&cfg.PushURL, EnvPushURL)
	lookup(&cfg.LogBackend, EnvLogBackend)
	lookup(&cfg.LogLevel, EnvLogLevel)
}

func lookup(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok {
		*dst = v
	}
}
