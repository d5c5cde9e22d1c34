// Package logging owns the process-wide structured logger.
//
// Logs are discarded unless debug output is requested, either through
// Options or through the GITCOORDS_DEBUG* environment variables.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// DefaultMaxLogFiles mirrors the --max-log-files flag default
const DefaultMaxLogFiles = 1000

// Logger is the public logger instance accessible from all packages
var Logger = discardLogger()

// Options selects where debug logs go
type Options struct {
	Debug       bool
	File        string // Fixed log file; disables rotation
	MaxLogFiles int    // 0 keeps every file
}

// FromEnv overlays GITCOORDS_DEBUG, GITCOORDS_DEBUG_FILE and GITCOORDS_MAX_LOG_FILES.
// An explicit File or a non-default MaxLogFiles wins over the environment.
func (o Options) FromEnv() Options {
	if os.Getenv("GITCOORDS_DEBUG") == "1" {
		o.Debug = true
	}
	if o.File == "" {
		o.File = os.Getenv("GITCOORDS_DEBUG_FILE")
	}
	if o.MaxLogFiles == DefaultMaxLogFiles {
		if n, err := strconv.Atoi(os.Getenv("GITCOORDS_MAX_LOG_FILES")); err == nil {
			o.MaxLogFiles = n
		}
	}
	return o
}

func (o Options) enabled() bool {
	return o.Debug || o.File != ""
}

// Initialize replaces Logger according to opts and the environment.
// It returns the log file in use, "" when logs are discarded.
func Initialize(opts Options) (string, error) {
	opts = opts.FromEnv()
	if !opts.enabled() {
		Logger = discardLogger()
		return "", nil
	}

	path, err := logFilePath(opts)
	if err != nil {
		return "", err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return "", fmt.Errorf("failed to create log file: %w", err)
	}

	Logger = slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	Logger.Info("Debug logging initialized", "log_file", path, "max_log_files", opts.MaxLogFiles)

	return path, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

// logFilePath creates the target directory and, for rotated logs, prunes it first
func logFilePath(opts Options) (string, error) {
	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0755); err != nil {
			return "", fmt.Errorf("failed to create log directory: %w", err)
		}
		return opts.File, nil
	}

	dir, err := stateDir()
	if err != nil {
		return "", fmt.Errorf("failed to get log directory: %w", err)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create log directory: %w", err)
	}

	if opts.MaxLogFiles > 0 {
		if err := pruneLogs(dir, opts.MaxLogFiles-1); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: log rotation failed: %v\n", err)
		}
	}

	return filepath.Join(dir, uuid.NewString()+".log"), nil
}

// pruneLogs deletes the oldest *.log files in dir until at most keep remain
func pruneLogs(dir string, keep int) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read log directory: %w", err)
	}

	type logFile struct {
		path    string
		modTime time.Time
	}
	var files []logFile
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".log" {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		files = append(files, logFile{path: filepath.Join(dir, entry.Name()), modTime: info.ModTime()})
	}

	if len(files) <= keep {
		return nil
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].modTime.Before(files[j].modTime)
	})

	for _, f := range files[:len(files)-keep] {
		if err := os.Remove(f.path); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to delete old log file %s: %v\n", f.path, err)
		}
	}
	return nil
}

// stateDir is where rotated logs live on each OS
func stateDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Logs", "gitcoords"), nil
	case "windows":
		base := os.Getenv("LOCALAPPDATA")
		if base == "" {
			base = filepath.Join(home, "AppData", "Local")
		}
		return filepath.Join(base, "gitcoords", "logs"), nil
	case "linux":
		base := os.Getenv("XDG_STATE_HOME")
		if base == "" {
			base = filepath.Join(home, ".local", "state")
		}
		return filepath.Join(base, "gitcoords"), nil
	default:
		return filepath.Join(home, ".gitcoords", "logs"), nil
	}
}
