// Package ioutils provides file system utilities for the chord compiler.
//
// This package contains functions for:
//   - File writing
//   - Append-only line writing
//   - Directory creation
//
// All functions that accept a context.Context check it before touching
// the file system, though the file operations themselves are not interruptible.
package ioutils

import (
	"context"
	"os"
)

// WriteFile writes data to a file, creating it if necessary.
//
// The file is created with mode 0644. If the file already exists,
// it is truncated before writing.
//
// Example:
//
//	err := WriteFile(ctx, "/out/Wonderwall.txt", []byte(doc.Render()))
func WriteFile(ctx context.Context, path string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// AppendFile appends data to a file, creating it if necessary.
//
// The file is opened, written and closed on every call, so no handle is
// held between writes and each write is on disk once AppendFile returns.
//
// Example:
//
//	err := AppendFile("/out/aaa_errors.txt", []byte("Wonderwall\tOasis\n"))
func AppendFile(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// EnsureDir creates a directory and all parent directories if they don't exist.
//
// Directories are created with mode 0755 (rwxr-xr-x).
// If the directory already exists, no error is returned.
//
// Example:
//
//	err := EnsureDir("bin/outfile03_04_05")
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}
