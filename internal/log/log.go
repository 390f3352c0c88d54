package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	cblog "github.com/charmbracelet/log"
)

var (
	logger     *cblog.Logger
	loggerOnce sync.Once
	logFile    *os.File
)

// GetLogger returns the process-wide logger, creating it on first use.
func GetLogger() *cblog.Logger {
	loggerOnce.Do(func() {
		logger = cblog.NewWithOptions(os.Stderr, cblog.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.000",
			Prefix:          "dankmotion",
			Level:           cblog.InfoLevel,
		})
	})
	return logger
}

// ParseLevel maps a level name to a charm log level.
func ParseLevel(name string) (cblog.Level, error) {
	lvl, err := cblog.ParseLevel(strings.ToLower(strings.TrimSpace(name)))
	if err != nil {
		return cblog.InfoLevel, fmt.Errorf("invalid log level %q: %w", name, err)
	}
	return lvl, nil
}

func SetLevel(name string) error {
	lvl, err := ParseLevel(name)
	if err != nil {
		return err
	}
	GetLogger().SetLevel(lvl)
	return nil
}

func SetOutput(w io.Writer) {
	GetLogger().SetOutput(w)
}

// ToFile redirects logging to path. The TUI owns the terminal while it
// runs, so anything written to stderr would corrupt the screen.
func ToFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	Close()
	logFile = f
	SetOutput(f)
	return nil
}

// Close releases the log file opened by ToFile, if any.
func Close() {
	if logFile == nil {
		return
	}
	SetOutput(os.Stderr)
	logFile.Close()
	logFile = nil
}

func Debug(msg interface{}, keyvals ...interface{}) { GetLogger().Debug(msg, keyvals...) }
func Info(msg interface{}, keyvals ...interface{})  { GetLogger().Info(msg, keyvals...) }
func Warn(msg interface{}, keyvals ...interface{})  { GetLogger().Warn(msg, keyvals...) }
func Error(msg interface{}, keyvals ...interface{}) { GetLogger().Error(msg, keyvals...) }
func Fatal(msg interface{}, keyvals ...interface{}) { GetLogger().Fatal(msg, keyvals...) }

func Debugf(format string, args ...interface{}) { GetLogger().Debugf(format, args...) }
func Infof(format string, args ...interface{})  { GetLogger().Infof(format, args...) }
func Warnf(format string, args ...interface{})  { GetLogger().Warnf(format, args...) }
func Errorf(format string, args ...interface{}) { GetLogger().Errorf(format, args...) }
func Fatalf(format string, args ...interface{}) { GetLogger().Fatalf(format, args...) }
