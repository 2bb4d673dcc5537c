package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	zap "go.uber.org/zap"
	zapcore "go.uber.org/zap/zapcore"
)

var (
	logger  *zap.Logger
	logFile *os.File
)

// Init configures the process logger. The interactive browser owns the
// terminal, so entries are written as JSON to a dated file inside dir.
// An empty dir disables file output and keeps a no-op logger.
func Init(debug bool, dir string) error {
	level := zapcore.InfoLevel
	if debug {
		level = zapcore.DebugLevel
	}

	if dir == "" {
		setLogger(zap.NewNop())
		return nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("osint-%s.log", time.Now().Format("2006-01-02")))
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderCfg), zapcore.AddSync(f), level)

	Close()
	logFile = f
	setLogger(zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1)))
	return nil
}

// Close flushes buffered entries and releases the log file
func Close() {
	if logger != nil {
		_ = logger.Sync()
	}
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
}

func setLogger(l *zap.Logger) {
	logger = l
	zap.ReplaceGlobals(l)
}

// Debug logs a debug message with alternating key/value pairs
func Debug(msg string, args ...any) {
	if logger != nil {
		logger.Sugar().Debugw(msg, args...)
	}
}

// Info logs an info message
func Info(msg string, args ...any) {
	if logger != nil {
		logger.Sugar().Infow(msg, args...)
	}
}

// Warn logs a warning message
func Warn(msg string, args ...any) {
	if logger != nil {
		logger.Sugar().Warnw(msg, args...)
	}
}

// Error logs an error message
func Error(msg string, args ...any) {
	if logger != nil {
		logger.Sugar().Errorw(msg, args...)
	}
}
