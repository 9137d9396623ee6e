// Package config loads runtime configuration for the blindmatch client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file selected via -c or -config. Files ending in .yaml
//     or .yml are parsed as YAML, anything else as JSON.
//  3. Environment variables, optionally seeded from a .env file in the
//     working directory.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-a string   base URL of the REST API
//	-d string   path of the local SQLite database
//	-p string   websocket URL of the push feed (empty disables it)
//	-l string   log level (debug, info, warn, error)
//
// # File schema
//
//	{
//	  "server_url": "https://api.example.com/api",
//	  "database_path": "blindmatch.db",
//	  "push_url": "",
//	  "log_backend": "slog",
//	  "log_level": "info"
//	}
//
// # Environment
//
//	BLINDMATCH_SERVER_URL, BLINDMATCH_DB_PATH, BLINDMATCH_PUSH_URL,
//	BLINDMATCH_LOG_BACKEND, BLINDMATCH_LOG_LEVEL
//
// Malformed files or flags panic: configuration errors are fatal at startup.
package config
