// Package logging provides the append-only line log shared by the
// engine. Every line carries an ISO-8601 timestamp prefix; there is no
// rotation or size bound.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

const timeLayout = "2006-01-02T15:04:05.000Z07:00"

var (
	mu      sync.Mutex
	logFile *os.File
	logPath string
)

// Init opens (creating if needed) the log file at path. Logging before
// Init writes to stderr only.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	if logFile != nil {
		_ = logFile.Close()
	}
	logFile = f
	logPath = path
	return nil
}

// Path returns the active log file path, or "" before Init.
func Path() string {
	mu.Lock()
	defer mu.Unlock()
	return logPath
}

// Logf appends one timestamped line to the log.
func Logf(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	line := time.Now().Format(timeLayout) + " " + fmt.Sprintf(format, args...) + "\n"
	if logFile != nil {
		_, _ = logFile.WriteString(line)
		return
	}
	fmt.Fprint(os.Stderr, line)
}

// Tail returns the last n lines of the log file at path.
func Tail(path string, n int) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) == 1 && lines[0] == "" {
		return nil, nil
	}
	if n > 0 && len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return lines, nil
}

// DefaultPath is ~/.faaah/faaah.log, falling back to the working
// directory when the home directory is unknown.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "faaah.log"
	}
	return filepath.Join(home, ".faaah", "faaah.log")
}
