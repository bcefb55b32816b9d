package audio

import (
	"context"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bogem/id3v2"
	"github.com/handiism/chord-compiler/internal/model"
)

// ScanLibrary builds a song list from the MP3 files under dir.
//
// Each file contributes one SongRequest from its TIT2 (title) and TPE1
// (artist) frames. Files missing either frame, or whose tag cannot be
// read, are skipped. Songs are returned in path order.
//
// Example:
//
//	songs, err := audio.ScanLibrary(ctx, "/home/me/Music")
func ScanLibrary(ctx context.Context, dir string) ([]model.SongRequest, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if !d.IsDir() && strings.EqualFold(filepath.Ext(path), ".mp3") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, model.InputError("scan library", err)
	}

	sort.Strings(paths)

	var songs []model.SongRequest
	for _, path := range paths {
		song, ok := readSong(path)
		if ok {
			songs = append(songs, song)
		}
	}

	return songs, nil
}

func readSong(path string) (model.SongRequest, bool) {
	tag, err := id3v2.Open(path, id3v2.Options{
		Parse:       true,
		ParseFrames: []string{"Title", "Artist"},
	})
	if err != nil {
		return model.SongRequest{}, false
	}
	defer tag.Close()

	song := model.SongRequest{
		Title:  strings.TrimSpace(tag.Title()),
		Artist: strings.TrimSpace(tag.Artist()),
	}
	if song.Title == "" || song.Artist == "" {
		return model.SongRequest{}, false
	}
	return song, true
}
