// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package logutil

import (
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"sync"
)

// Level represents the logging level.
type Level int

const (
	// LevelDebug is for debug messages.
	LevelDebug Level = iota
	// LevelInfo is for informational messages.
	LevelInfo
	// LevelWarn is for warnings.
	LevelWarn
	// LevelError is for errors.
	LevelError
)

// String returns the lower-case level name.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "info"
	}
}

func (l Level) slog() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// EnvDebug enables debug logging when set to a true value ("1", "true", ...).
const EnvDebug = "BASEURL_DEBUG"

// Options configures the global logger.
type Options struct {
	// Debug enables debug-level logging. BASEURL_DEBUG turns it on as well.
	Debug bool
	// Structured selects JSON output instead of logfmt-style text.
	Structured bool
	// Writer receives the log records. Defaults to os.Stderr.
	Writer io.Writer
}

var (
	mu           sync.RWMutex
	globalLogger *slog.Logger
	level        = new(slog.LevelVar)
	currentLevel = LevelInfo
	isStructured bool
	outputWriter io.Writer = os.Stderr
)

func init() {
	SetupLogger(false, false)
}

// Setup configures the global logger from opts.
// This function is safe for concurrent use.
func Setup(opts Options) {
	mu.Lock()
	defer mu.Unlock()

	currentLevel = LevelInfo
	if opts.Debug || envDebug() {
		currentLevel = LevelDebug
	}
	isStructured = opts.Structured
	outputWriter = opts.Writer
	if outputWriter == nil {
		outputWriter = os.Stderr
	}
	rebuild()
}

// SetupLogger configures the global logger to write to stderr.
func SetupLogger(debug, structured bool) {
	Setup(Options{Debug: debug, Structured: structured})
}

// SetupLoggerWithWriter configures the logger with a custom writer.
// This is useful for testing or redirecting logs.
func SetupLoggerWithWriter(w io.Writer, debug, structured bool) {
	Setup(Options{Debug: debug, Structured: structured, Writer: w})
}

// SetOutput redirects the logger, keeping level and format.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()

	outputWriter = w
	rebuild()
}

// rebuild replaces the global logger. Caller must hold mu.
func rebuild() {
	level.Set(currentLevel.slog())
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if isStructured {
		handler = slog.NewJSONHandler(outputWriter, opts)
	} else {
		handler = slog.NewTextHandler(outputWriter, opts)
	}
	globalLogger = slog.New(handler)
}

func envDebug() bool {
	v, err := strconv.ParseBool(os.Getenv(EnvDebug))
	return err == nil && v
}

// IsDebugEnabled reports whether debug records are written, either because
// the logger was set up with debug or because BASEURL_DEBUG is set.
func IsDebugEnabled() bool {
	return GetLevel() == LevelDebug || envDebug()
}

// Debug logs a debug message with optional key-value pairs.
//
// Example:
//
//	logutil.Debug("parsed url", "input", raw)
func Debug(msg string, args ...any) {
	Logger().Debug(msg, args...)
}

// Info logs an info message with optional key-value pairs.
func Info(msg string, args ...any) {
	Logger().Info(msg, args...)
}

// Warn logs a warning message with optional key-value pairs.
func Warn(msg string, args ...any) {
	Logger().Warn(msg, args...)
}

// Error logs an error message with optional key-value pairs.
//
// Example:
//
//	logutil.Error("check failed", "line", n, "error", err)
func Error(msg string, args ...any) {
	Logger().Error(msg, args...)
}

// ParseLevel parses a string into a Level.
// Valid values are: "debug", "info", "warn", "warning", "error".
// Returns LevelInfo for unrecognized values.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// GetLevel returns the current logging level.
func GetLevel() Level {
	mu.RLock()
	defer mu.RUnlock()
	return currentLevel
}

// SetLevel changes the level without rebuilding the logger. Loggers already
// handed out by NewLogger follow the change.
func SetLevel(l Level) {
	mu.Lock()
	defer mu.Unlock()

	currentLevel = l
	level.Set(l.slog())
}

// Logger returns the underlying slog.Logger for advanced usage.
func Logger() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return globalLogger
}
