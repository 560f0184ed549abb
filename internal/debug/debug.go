package debug

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// EnvVar names the environment variable that enables logging at startup.
const EnvVar = "SPLITS_DEBUG"

var (
	out  io.WriteCloser
	mu   sync.Mutex
	once sync.Once

	// errOut receives the one-time report of a bad EnvVar path.
	errOut io.Writer = os.Stderr
)

// Init starts appending debug messages to the file at path, replacing any
// previously configured destination.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()
	once.Do(func() {})
	return initLocked(path)
}

// initLocked does the actual init work. Caller must hold mu.
func initLocked(path string) error {
	if path == "" {
		return fmt.Errorf("debug log path is empty")
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open debug log: %w", err)
	}

	if out != nil {
		out.Close()
	}
	out = f
	return nil
}

// initFromEnv opens the SPLITS_DEBUG file on first use and reports a path
// that cannot be opened to errOut. Caller must hold mu.
func initFromEnv() {
	once.Do(func() {
		path := os.Getenv(EnvVar)
		if path == "" {
			return
		}
		if err := initLocked(path); err != nil {
			fmt.Fprintf(errOut, "debug: %s=%s: %v\n", EnvVar, path, err)
		}
	})
}

// Enabled reports whether messages are currently being written anywhere.
func Enabled() bool {
	mu.Lock()
	defer mu.Unlock()
	initFromEnv()
	return out != nil
}

// Close closes the debug log file. Later messages are dropped.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	if out != nil {
		err := out.Close()
		out = nil
		return err
	}
	return nil
}

// Log writes a message to the debug log with a timestamp.
func Log(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	initFromEnv()
	if out == nil {
		return
	}

	timestamp := time.Now().Format("15:04:05.000")
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(out, "[%s] %s\n", timestamp, msg)
}
