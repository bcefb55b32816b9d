package audio

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/bogem/id3v2"
	"github.com/google/go-cmp/cmp"
	"github.com/handiism/chord-compiler/internal/model"
)

func writeTagged(t *testing.T, path, title, artist string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	tag := id3v2.NewEmptyTag()
	tag.SetVersion(4)
	tag.SetDefaultEncoding(id3v2.EncodingUTF8)
	if title != "" {
		tag.SetTitle(title)
	}
	if artist != "" {
		tag.SetArtist(artist)
	}
	if _, err := tag.WriteTo(f); err != nil {
		t.Fatalf("write tag: %v", err)
	}
}

func TestScanLibrary(t *testing.T) {
	dir := t.TempDir()
	writeTagged(t, filepath.Join(dir, "b", "02.mp3"), "Hey Jude", "The Beatles")
	writeTagged(t, filepath.Join(dir, "a", "01.MP3"), "Wonderwall", "Oasis")
	writeTagged(t, filepath.Join(dir, "a", "untitled.mp3"), "", "Nobody")
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("not audio"), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := ScanLibrary(context.Background(), dir)
	if err != nil {
		t.Fatalf("ScanLibrary failed: %v", err)
	}

	want := []model.SongRequest{
		{Title: "Wonderwall", Artist: "Oasis"},
		{Title: "Hey Jude", Artist: "The Beatles"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ScanLibrary mismatch (-want +got):\n%s", diff)
	}
}

func TestScanLibrary_MissingDir(t *testing.T) {
	_, err := ScanLibrary(context.Background(), filepath.Join(t.TempDir(), "missing"))
	if !errors.Is(err, model.ErrInput) {
		t.Errorf("expected InputError, got %v", err)
	}
}

func TestScanLibrary_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := ScanLibrary(ctx, t.TempDir()); err == nil {
		t.Error("expected error for cancelled context")
	}
}
