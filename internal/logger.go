package internal

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	globalLogger *zerolog.Logger
	logFile      *os.File
	mu           sync.RWMutex
)

type Component string

const (
	ComponentWallet  Component = "Wallet"
	ComponentService Component = "Service"
	ComponentConfig  Component = "Config"
	ComponentCLI     Component = "CLI"
	ComponentGeneral Component = "General"
)

// InitGlobalLogger builds the process-wide logger from cfg. Calling it again
// replaces the previous logger and closes its log file.
func InitGlobalLogger(cfg LogConfig) error {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	var console io.Writer = os.Stderr
	if cfg.Format != LogFormatJSON {
		console = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	}

	writers := []io.Writer{console}
	var file *os.File
	if cfg.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
		file, err = os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		writers = append(writers, file)
	}

	logger := zerolog.New(io.MultiWriter(writers...)).Level(level).With().Timestamp().Logger()

	mu.Lock()
	defer mu.Unlock()
	if logFile != nil {
		_ = logFile.Close()
	}
	logFile = file
	globalLogger = &logger

	return nil
}

// GetLogger returns the global logger, falling back to an info level console
// logger when InitGlobalLogger has not been called.
func GetLogger() *zerolog.Logger {
	mu.RLock()
	logger := globalLogger
	mu.RUnlock()
	if logger != nil {
		return logger
	}

	mu.Lock()
	defer mu.Unlock()
	if globalLogger == nil {
		l := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
			Level(zerolog.InfoLevel).
			With().Timestamp().Logger()
		globalLogger = &l
	}
	return globalLogger
}

// SetLogger replaces the global logger. Tests use it to capture output.
func SetLogger(logger zerolog.Logger) {
	mu.Lock()
	defer mu.Unlock()
	globalLogger = &logger
}

// ComponentLogger returns a child of the global logger tagged with component
func ComponentLogger(component Component) zerolog.Logger {
	return GetLogger().With().Str("component", string(component)).Logger()
}

// CloseLogger closes the log file opened by InitGlobalLogger, if any. The
// logger writing to it is dropped, so later calls get the default logger.
func CloseLogger() error {
	mu.Lock()
	defer mu.Unlock()

	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	globalLogger = nil
	return err
}
