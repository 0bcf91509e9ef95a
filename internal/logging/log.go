// Package logging configures the process-wide structured logger.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/starsunsurpass/topdf/internal/fileutil"
)

// logFileName is the file messages are duplicated into under the
// configured log directory.
const logFileName = "topdf.log"

// filePermissions is the mode for created log files.
const filePermissions = 0o600 // rw-------: owner read+write

// Options select the log level and an optional log directory.
type Options struct {
	Verbose bool   // Emit debug-level messages
	Quiet   bool   // Errors only; wins over Verbose
	Dir     string // When set, duplicate messages into <Dir>/topdf.log
}

// Init installs the process-wide default logger. Messages go to stderr
// as text; with a directory set they are also appended to a log file.
// The returned closer releases the file and is a no-op without one.
func Init(opts Options) (func() error, error) {
	level := slog.LevelInfo
	switch {
	case opts.Quiet:
		level = slog.LevelError
	case opts.Verbose:
		level = slog.LevelDebug
	}

	out := io.Writer(os.Stderr)
	closer := func() error { return nil }
	if opts.Dir != "" {
		file, err := openLogFile(opts.Dir)
		if err != nil {
			return nil, err
		}
		out = io.MultiWriter(os.Stderr, file)
		closer = file.Close
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level})))
	return closer, nil
}

func openLogFile(dir string) (*os.File, error) {
	if err := fileutil.EnsureDir(dir); err != nil {
		return nil, err
	}
	path := filepath.Join(dir, logFileName)
	// #nosec G304 -- the path is built from the configured log directory
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, filePermissions)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	return file, nil
}
