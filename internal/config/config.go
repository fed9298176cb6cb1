package config

import (
	"fmt"
	"slices"
)

// Storage backends.
const (
	StorageFile   = "file"
	StorageSQLite = "sqlite"
)

// Log backends.
const (
	LogBackendSlog = "slog"
	LogBackendZap  = "zap"
)

// LogFileStderr as LogFile sends logs to standard error.
const LogFileStderr = "-"

var logLevels = []string{"debug", "info", "warn", "error"}

// Config holds runtime settings for the Fundraise CLI.
type Config struct {
	Storage      string `json:"storage" env:"STORAGE"`
	UsersFile    string `json:"users_file" env:"USERS_FILE"`
	ProjectsFile string `json:"projects_file" env:"PROJECTS_FILE"`
	DatabaseFile string `json:"database_file" env:"DATABASE_FILE"`
	LogLevel     string `json:"log_level" env:"LOG_LEVEL"`
	LogFile      string `json:"log_file" env:"LOG_FILE"`
	LogBackend   string `json:"log_backend" env:"LOG_BACKEND"`
}

// LoadDefaults populates c with the values used when nothing is configured.
func (c *Config) LoadDefaults() {
	c.Storage = StorageFile
	c.UsersFile = "users.jsonl"
	c.ProjectsFile = "projects.jsonl"
	c.DatabaseFile = "fundraise.db"
	c.LogLevel = "info"
	c.LogFile = "fundraise.log"
	c.LogBackend = LogBackendSlog
}

// Validate rejects unknown backends and log levels.
func (c *Config) Validate() error {
	switch c.Storage {
	case StorageFile:
		if c.UsersFile == "" || c.ProjectsFile == "" {
			return fmt.Errorf("file storage needs both users and projects files")
		}
	case StorageSQLite:
		if c.DatabaseFile == "" {
			return fmt.Errorf("sqlite storage needs a database file")
		}
	default:
		return fmt.Errorf("unknown storage backend %q", c.Storage)
	}

	if c.LogBackend != LogBackendSlog && c.LogBackend != LogBackendZap {
		return fmt.Errorf("unknown log backend %q", c.LogBackend)
	}
	if !slices.Contains(logLevels, c.LogLevel) {
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	return nil
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON, the environment and command-line flags. Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
