// Package runlog writes the durable per-run log and error streams.
//
// Both streams are append-only text files in the run's output folder. Every
// write opens the file, appends and closes it again, so a crash mid-batch
// leaves every earlier line on disk.
//
// The log stream reads, for a run with one success and one failure:
//
//	STARTED AT 03_04_05 (run 6f1c...)
//	searching http://www.ultimate-guitar.com/search.php?...
//	**** accessing http://tabs.ultimate-guitar.com/o/oasis/wonderwall_crd.htm
//	SUCCESSFULy RETRIEVED
//
//	searching http://www.ultimate-guitar.com/search.php?...
//		ERROR:	NotFoundError: resolve version: ...
//
//	FINISHED AT 03_04_09
//
// The error stream holds one "title<TAB>artist" line per failed song, which
// is itself a valid song list for a retry run.
package runlog

import (
	"fmt"
	"path/filepath"
	"time"

	ioutils "github.com/handiism/chord-compiler/internal/io"
	"github.com/handiism/chord-compiler/internal/model"
)

// stampLayout matches the output folder's hh_mm_ss stamp.
const stampLayout = "03_04_05"

// Log appends to a run's log and error streams.
//
// Log is not safe for concurrent use; callers that process songs in parallel
// serialize writes themselves so each song's lines stay together.
type Log struct {
	LogPath   string
	ErrorPath string
}

// New returns a Log writing logName and errorName inside dir.
func New(dir, logName, errorName string) *Log {
	return &Log{
		LogPath:   filepath.Join(dir, logName),
		ErrorPath: filepath.Join(dir, errorName),
	}
}

// Started writes the run header.
func (l *Log) Started(t time.Time, runID string) error {
	line := "STARTED AT " + t.Format(stampLayout)
	if runID != "" {
		line += " (run " + runID + ")"
	}
	return l.write(line + "\n")
}

// Searching records the search URL about to be fetched.
func (l *Log) Searching(url string) error {
	return l.write("searching " + url + "\n")
}

// Accessing records the listing URL about to be fetched.
func (l *Log) Accessing(url string) error {
	return l.write("**** accessing " + url + "\n")
}

// Retrieved closes a successful song entry.
func (l *Log) Retrieved() error {
	return l.write("SUCCESSFULy RETRIEVED\n\n")
}

// Failed closes a failed song entry with the error message.
func (l *Log) Failed(err error) error {
	return l.write(fmt.Sprintf("\tERROR:\t%v\n\n", err))
}

// Finished writes the run footer.
func (l *Log) Finished(t time.Time) error {
	return l.write("FINISHED AT " + t.Format(stampLayout) + "\n")
}

// RecordError appends song to the error stream.
func (l *Log) RecordError(song model.SongRequest) error {
	return ioutils.AppendFile(l.ErrorPath, []byte(song.Title+"\t"+song.Artist+"\n"))
}

func (l *Log) write(s string) error {
	return ioutils.AppendFile(l.LogPath, []byte(s))
}
