// Package ioutils provides file system utilities.
//
// # File Operations
//
//	// Write an output file (truncates)
//	err := ioutils.WriteFile(ctx, "/out/Wonderwall.txt", content)
//
//	// Append a line to a log without holding the file open
//	err := ioutils.AppendFile("/out/aaa_log.txt", []byte("searching ...\n"))
//
//	// Ensure directory exists
//	err := ioutils.EnsureDir("/out")
package ioutils
