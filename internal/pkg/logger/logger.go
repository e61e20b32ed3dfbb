package logger

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	slogzap "github.com/samber/slog-zap/v2"
	"go.uber.org/zap"
)

var (
	globalLogger *slog.Logger
	zapLogger    *zap.Logger
)

// ParseLevel maps a config level string to a slog level, defaulting to INFO.
func ParseLevel(levelStr string) (slog.Level, bool) {
	switch strings.ToUpper(strings.TrimSpace(levelStr)) {
	case "DEBUG":
		return slog.LevelDebug, true
	case "INFO":
		return slog.LevelInfo, true
	case "WARN", "WARNING":
		return slog.LevelWarn, true
	case "ERROR":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

// Init builds the zap logger for the given format ("development" or "production"),
// bridges it into slog and installs the result as the slog default.
func Init(levelStr, format string) error {
	var (
		zl  *zap.Logger
		err error
	)
	if strings.EqualFold(format, "production") {
		zl, err = zap.NewProduction()
	} else {
		zl, err = zap.NewDevelopment()
	}
	if err != nil {
		return fmt.Errorf("failed to initialize zap logger: %w", err)
	}

	level, ok := ParseLevel(levelStr)
	InitWithZap(zl, level)
	if !ok {
		Warn("Invalid log level string, defaulting to INFO", "input", levelStr)
	}
	return nil
}

// InitWithZap installs zl, filtered at level, as the global logger.
func InitWithZap(zl *zap.Logger, level slog.Level) {
	handler := slogzap.Option{
		Level:  level,
		Logger: zl,
	}.NewZapHandler()

	zapLogger = zl
	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}

// Sync flushes buffered zap output.
func Sync() {
	if zapLogger != nil {
		_ = zapLogger.Sync()
	}
}

func ensureInitialized() {
	if globalLogger == nil {
		if err := Init("INFO", "development"); err != nil {
			globalLogger = slog.New(slog.NewTextHandler(os.Stderr, nil))
		}
	}
}

// Debug logs a message at DebugLevel.
func Debug(msg string, args ...any) {
	ensureInitialized()
	if globalLogger.Enabled(context.Background(), slog.LevelDebug) {
		globalLogger.Debug(msg, args...)
	}
}

// Info logs a message at InfoLevel.
func Info(msg string, args ...any) {
	ensureInitialized()
	if globalLogger.Enabled(context.Background(), slog.LevelInfo) {
		globalLogger.Info(msg, args...)
	}
}

// Warn logs a message at WarnLevel.
func Warn(msg string, args ...any) {
	ensureInitialized()
	if globalLogger.Enabled(context.Background(), slog.LevelWarn) {
		globalLogger.Warn(msg, args...)
	}
}

// Error logs a message at ErrorLevel.
func Error(msg string, args ...any) {
	ensureInitialized()
	if globalLogger.Enabled(context.Background(), slog.LevelError) {
		globalLogger.Error(msg, args...)
	}
}

// Fatal logs a message at ErrorLevel then exits.
func Fatal(msg string, args ...any) {
	ensureInitialized()
	// always logged, regardless of level
	globalLogger.Error(msg, args...)
	Sync()
	os.Exit(1)
}
