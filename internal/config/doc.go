// Package config loads runtime configuration for the Fundraise CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment variables prefixed with FUNDRAISE_ (see parseEnv).
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-s string   storage backend: file or sqlite
//	-u string   users file (file backend)
//	-p string   projects file (file backend)
//	-d string   database file (sqlite backend)
//	-l string   log level: debug, info, warn or error
//
// # JSON schema
//
// Keys missing from the file keep their previous value:
//
//	{
//	  "storage": "file",
//	  "users_file": "users.jsonl",
//	  "projects_file": "projects.jsonl",
//	  "database_file": "fundraise.db",
//	  "log_level": "info",
//	  "log_file": "fundraise.log",
//	  "log_backend": "slog"
//	}
//
// # Environment
//
//	FUNDRAISE_STORAGE, FUNDRAISE_USERS_FILE, FUNDRAISE_PROJECTS_FILE,
//	FUNDRAISE_DATABASE_FILE, FUNDRAISE_LOG_LEVEL, FUNDRAISE_LOG_FILE,
//	FUNDRAISE_LOG_BACKEND
//
// Running with no flags, no variables and no file yields the defaults.
package config
