package model

import (
	"errors"
	"fmt"
	"testing"
)

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Wonderwall", "Wonderwall"},
		{"file:with:colons", "file_with_colons"},
		{"file<with>brackets", "file_with_brackets"},
		{"AC/DC\\Live", "AC_DC_Live"},
		{"file|with|pipes", "file_with_pipes"},
		{"Why?*", "Why__"},
		{"file\"with\"quotes", "file_with_quotes"},
		{"trailing dots...", "trailing dots"},
		{"multiple   spaces", "multiple spaces"},
		{"trailing spaces   ", "trailing spaces"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := sanitizeFileName(tt.input)
			if got != tt.want {
				t.Errorf("sanitizeFileName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSongRequest_FileName(t *testing.T) {
	song := SongRequest{Title: "Don't Look Back in Anger", Artist: "Oasis"}
	if got, want := song.FileName(), "Don't Look Back in Anger.txt"; got != want {
		t.Errorf("FileName() = %q, want %q", got, want)
	}
}

func TestChordDocument_Render(t *testing.T) {
	doc := &ChordDocument{
		Song: SongRequest{Title: "Wonderwall", Artist: "Oasis"},
		Body: "Em7 G\nDsus4",
	}

	want := "**** Wonderwall by Oasis ****\nEm7 G\nDsus4"
	if got := doc.Render(); got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestError_Is(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
		kind     Kind
	}{
		{"input", InputError("load songs", nil), ErrInput, KindInput},
		{"network", NetworkError("fetch", errors.New("timeout")), ErrNetwork, KindNetwork},
		{"not found", NotFoundError("locate baseline", nil), ErrNotFound, KindNotFound},
		{"parse", ParseError("read rating", nil), ErrParse, KindParse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("song 3: %w", tt.err)
			if !errors.Is(wrapped, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false", wrapped, tt.sentinel)
			}
			if got := KindOf(wrapped); got != tt.kind {
				t.Errorf("KindOf() = %v, want %v", got, tt.kind)
			}
		})
	}

	if errors.Is(ParseError("x", nil), ErrNotFound) {
		t.Error("ParseError should not match ErrNotFound")
	}
	if KindOf(errors.New("plain")) != KindUnknown {
		t.Error("plain errors should classify as KindUnknown")
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := NetworkError("fetch listing", cause)

	if !errors.Is(err, cause) {
		t.Error("NetworkError should unwrap to its cause")
	}
	if got, want := err.Error(), "NetworkError: fetch listing: connection refused"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestOutcome_OK(t *testing.T) {
	ok := Outcome{Stage: StageDone}
	if !ok.OK() {
		t.Error("StageDone without error should be OK")
	}

	failed := Outcome{Stage: StageFailed, FailedAt: StageResolving, Err: NotFoundError("resolve", nil)}
	if failed.OK() {
		t.Error("failed outcome should not be OK")
	}
	if failed.Kind() != KindNotFound {
		t.Errorf("Kind() = %v, want %v", failed.Kind(), KindNotFound)
	}
}

func TestStage_String(t *testing.T) {
	if got := StageFetchingListing.String(); got != "FETCHING_LISTING" {
		t.Errorf("String() = %q", got)
	}
}
