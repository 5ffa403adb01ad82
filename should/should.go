// Package should provides cleanup helpers for operations that are
// expected to succeed but may fail in practice. Failures are logged via
// slog instead of returned, which keeps defer sites in fixtures and
// tests free of error plumbing.
package should

import (
	"io"
	"log/slog"
	"os"
)

// Close closes the given io.Closer, logging msg with the error if the
// close fails.
//
// Example:
//
//	defer should.Close(file, "failed to close fixture file")
func Close(closer io.Closer, msg string) {
	if err := closer.Close(); err != nil {
		slog.Error(msg, "error", err)
	}
}

// Remove removes the named file or directory, logging msg with the error
// if the removal fails.
//
// Example:
//
//	defer should.Remove(tmpPath, "failed to remove scratch file")
func Remove(path string, msg string) {
	if err := os.Remove(path); err != nil {
		slog.Error(msg, "error", err)
	}
}

// Do runs an arbitrary cleanup function, logging msg with the error if
// it fails. Useful for deferring cleanup APIs that return an error but
// are not io.Closers.
//
// Example:
//
//	defer should.Do(watcher.Stop, "failed to stop watcher")
func Do(f func() error, msg string) {
	if err := f(); err != nil {
		slog.Error(msg, "error", err)
	}
}
