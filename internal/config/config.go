package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application's environment-driven configuration.
type Config struct {
	Workers      int
	MaxFileSize  int64
	MaxFiles     int
	DBPath       string
	History      bool
	HistoryLimit int
	Debug        bool
}

// Load reads configuration from FINDFX_* environment variables, after
// loading a local .env file when one exists. Malformed values fall back to
// the defaults rather than failing.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		Workers:      runtime.NumCPU(),
		MaxFileSize:  10 * 1024 * 1024, // 10 MiB per file
		MaxFiles:     10000,
		DBPath:       filepath.Join(".findfx", "history.db"),
		History:      true,
		HistoryLimit: 1000,
	}

	if workersStr := os.Getenv("FINDFX_WORKERS"); workersStr != "" {
		if workers, err := strconv.Atoi(workersStr); err == nil && workers > 0 {
			cfg.Workers = workers
		}
	}

	if sizeStr := os.Getenv("FINDFX_MAX_FILE_SIZE"); sizeStr != "" {
		if size, err := strconv.ParseInt(sizeStr, 10, 64); err == nil && size > 0 {
			cfg.MaxFileSize = size
		}
	}

	if maxFilesStr := os.Getenv("FINDFX_MAX_FILES"); maxFilesStr != "" {
		if maxFiles, err := strconv.Atoi(maxFilesStr); err == nil && maxFiles > 0 {
			cfg.MaxFiles = maxFiles
		}
	}

	if dbPath := os.Getenv("FINDFX_DB_PATH"); dbPath != "" {
		cfg.DBPath = dbPath
	}

	if historyStr := os.Getenv("FINDFX_HISTORY"); historyStr != "" {
		if history, err := strconv.ParseBool(historyStr); err == nil {
			cfg.History = history
		}
	}

	if limitStr := os.Getenv("FINDFX_HISTORY_LIMIT"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil && limit >= 0 {
			cfg.HistoryLimit = limit
		}
	}

	if debugStr := os.Getenv("FINDFX_DEBUG"); debugStr != "" {
		if debug, err := strconv.ParseBool(debugStr); err == nil {
			cfg.Debug = debug
		}
	}

	return cfg
}
