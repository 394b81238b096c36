package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rshade/selectlist/internal/logging"
)

// LoggingConfig is the logging section of the configuration file.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// ToLoggingConfig converts LoggingConfig to logging.Config for use with the internal/logging
// package.
func (lc LoggingConfig) ToLoggingConfig() logging.Config {
	return logging.Config{
		Level:  lc.Level,
		Format: lc.Format,
		File:   lc.File,
	}
}

// EnsureLogDir creates the directory of the configured log file, if any.
func (lc LoggingConfig) EnsureLogDir() error {
	if lc.File == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(lc.File), 0o700); err != nil {
		return fmt.Errorf("creating log directory: %w", err)
	}
	return nil
}
