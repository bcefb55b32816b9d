// Package songlist reads the batch input: one "title<TAB>artist" record
// per line.
package songlist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/handiism/chord-compiler/internal/model"
)

// Stdin is the path that makes Load read standard input.
const Stdin = "-"

// Load reads a song list from path, or from standard input when path is "-".
func Load(path string) ([]model.SongRequest, error) {
	if path == Stdin {
		return Parse(os.Stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, model.InputError("open song list", err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse reads song records from r.
//
// Lines are trimmed of surrounding whitespace and blank lines are skipped.
// Fields are tab-separated: the first is the title, the second the artist,
// and any further fields are ignored. A record without an artist is an
// InputError naming its 1-based line number.
func Parse(r io.Reader) ([]model.SongRequest, error) {
	var songs []model.SongRequest

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) < 2 || strings.TrimSpace(fields[1]) == "" {
			return nil, model.InputError("parse song list", fmt.Errorf("line %d: missing artist in %q", lineNo, line))
		}

		songs = append(songs, model.SongRequest{
			Title:  strings.TrimSpace(fields[0]),
			Artist: strings.TrimSpace(fields[1]),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, model.InputError("read song list", err)
	}

	return songs, nil
}
