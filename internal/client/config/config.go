package config

import "os"

// Config holds runtime settings for the blindmatch client.
type Config struct {
	ServerURL    string
	DatabasePath string
	PushURL      string
	LogBackend   string
	LogLevel     string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://127.0.0.1:3000/api"
	c.DatabasePath = "blindmatch.db"
	c.PushURL = ""
	c.LogBackend = "slog"
	c.LogLevel = "info"
}

// Load builds a Config from args (without the program name): defaults, then
// the config file, then the environment, then flags.
func Load(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFile(cfg, args)
	loadDotEnv(".env")
	parseEnv(cfg)
	parseFlags(cfg, args)
	return cfg
}

// LoadConfig is Load applied to the process command line.
func LoadConfig() *Config {
	return Load(os.Args[1:])
}
