package model

import (
	"fmt"
	"regexp"
	"strings"
)

// SongRequest is one (title, artist) pair from the input batch.
//
// A SongRequest is created once from the song list and consumed once by the
// download manager. Fields are never modified after creation.
//
// Example:
//
//	song := model.SongRequest{Title: "Wonderwall", Artist: "Oasis"}
//	fmt.Println(song.FileName()) // "Wonderwall.txt"
type SongRequest struct {
	// Title is the song title as written in the song list.
	Title string

	// Artist is the performing artist as written in the song list.
	Artist string
}

// String returns "title by artist".
func (s SongRequest) String() string {
	return fmt.Sprintf("%s by %s", s.Title, s.Artist)
}

// FileName returns the output file name for this song.
//
// The title is used verbatim except for characters that are invalid in
// file names, which are replaced with underscores.
func (s SongRequest) FileName() string {
	return sanitizeFileName(s.Title) + ".txt"
}

// ChordDocument is the chord/lyric sheet retrieved for one song.
type ChordDocument struct {
	// Song is the request this document answers.
	Song SongRequest

	// URL is the listing page the body was extracted from.
	URL string

	// Version is the resolved listing version (1-based).
	Version int

	// Body is the plain-text chord/lyric body, already trimmed.
	Body string
}

// Banner returns the one-line header written above the body.
func (d *ChordDocument) Banner() string {
	return fmt.Sprintf("**** %s by %s ****", d.Song.Title, d.Song.Artist)
}

// Render returns the full output file content: banner, newline, body.
func (d *ChordDocument) Render() string {
	var sb strings.Builder
	sb.WriteString(d.Banner())
	sb.WriteString("\n")
	sb.WriteString(d.Body)
	return sb.String()
}

// sanitizeFileName removes or replaces characters that are invalid in file/folder names.
//
// The following transformations are applied:
//   - Invalid characters (<>:"/\|?* and control chars) are replaced with underscore
//   - Trailing dots are removed (Windows limitation)
//   - Multiple whitespace is collapsed to single space
//   - Trailing whitespace is removed
//
// Example:
//
//	sanitizeFileName("Song: Part 1/2") // Returns "Song_ Part 1_2"
func sanitizeFileName(name string) string {
	name = invalidFileChars.ReplaceAllString(name, "_")
	name = trailingDots.ReplaceAllString(name, "")
	name = whitespaceRuns.ReplaceAllString(name, " ")
	return strings.TrimRight(name, " ")
}

var (
	invalidFileChars = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)
	trailingDots     = regexp.MustCompile(`\.+$`)
	whitespaceRuns   = regexp.MustCompile(`\s+`)
)
