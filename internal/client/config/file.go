package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/blindmatch/internal/flagx"
	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk representation. Empty fields leave the current
// value untouched.
type FileConfig struct {
	ServerURL    string `json:"server_url" yaml:"server_url"`
	DatabasePath string `json:"database_path" yaml:"database_path"`
	PushURL      string `json:"push_url" yaml:"push_url"`
	LogBackend   string `json:"log_backend" yaml:"log_backend"`
	LogLevel     string `json:"log_level" yaml:"log_level"`
}

// parseFile overlays cfg with the file named by -c/-config, if any.
// Read or decode errors panic.
func parseFile(cfg *Config, args []string) {
	path := flagx.ConfigFileFlag(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var fc FileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		panic(err)
	}

	overlay(&cfg.ServerURL, fc.ServerURL)
	overlay(&cfg.DatabasePath, fc.DatabasePath)
	overlay(&cfg.PushURL, fc.PushURL)
	overlay(&cfg.LogBackend, fc.LogBackend)
	overlay(&cfg.LogLevel, fc.LogLevel)
}

func overlay(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
