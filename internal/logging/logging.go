package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"
)

// Level is the minimum severity written to the log.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return fmt.Sprintf("LEVEL(%d)", int(l))
	}
}

// ParseLevel accepts debug, info, warn (or warning) and error.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "", "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("invalid log level %q (must be one of: debug, info, warn, error)", s)
	}
}

var (
	mu      sync.Mutex
	logger  *log.Logger
	logFile *os.File
	logPath string
	enabled bool
	minimum = LevelInfo
)

// Init opens prefsheet.log in dir, or in the default log directory for the
// OS when dir is empty. A file opened by an earlier Init is closed.
func Init(dir string) error {
	if dir == "" {
		dir = DefaultDir()
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	path := filepath.Join(dir, "prefsheet.log")
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	mu.Lock()
	if logFile != nil {
		logFile.Close()
	}
	logFile = f
	logPath = path
	logger = log.New(f, "", 0)
	enabled = true
	mu.Unlock()

	Info("prefsheet started")
	return nil
}

// DefaultDir returns the log directory for the current OS.
func DefaultDir() string {
	home, err := os.UserHomeDir()
	switch {
	case err != nil:
		return filepath.Join(os.TempDir(), "prefsheet", "logs")
	case runtime.GOOS == "darwin":
		return filepath.Join(home, "Library", "Logs", "prefsheet")
	case runtime.GOOS == "linux":
		if state := os.Getenv("XDG_STATE_HOME"); state != "" {
			return filepath.Join(state, "prefsheet", "logs")
		}
		return filepath.Join(home, ".local", "state", "prefsheet", "logs")
	default:
		return filepath.Join(os.TempDir(), "prefsheet", "logs")
	}
}

// Close flushes and closes the log file.
func Close() {
	Info("prefsheet shutting down")

	mu.Lock()
	defer mu.Unlock()
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	logger = nil
	enabled = false
}

// Path returns the path of the open log file.
func Path() string {
	mu.Lock()
	defer mu.Unlock()
	return logPath
}

// SetLevel sets the minimum level written.
func SetLevel(l Level) {
	mu.Lock()
	minimum = l
	mu.Unlock()
}

// SetOutput adds w as a second destination, e.g. stderr while debugging.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if logger != nil {
		logger.SetOutput(io.MultiWriter(logFile, w))
	}
}

func formatMessage(level Level, format string, args ...any) string {
	timestamp := time.Now().Format("2006-01-02 15:04:05.000")
	return fmt.Sprintf("[%s] [%s] %s", timestamp, level, fmt.Sprintf(format, args...))
}

func write(level Level, format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	if !enabled || logger == nil || level < minimum {
		return
	}
	logger.Println(formatMessage(level, format, args...))
}

// Debug logs a debug message
func Debug(format string, args ...any) { write(LevelDebug, format, args...) }

// Info logs an info message
func Info(format string, args ...any) { write(LevelInfo, format, args...) }

// Warn logs a warning message
func Warn(format string, args ...any) { write(LevelWarn, format, args...) }

// Error logs an error message
func Error(format string, args ...any) { write(LevelError, format, args...) }
