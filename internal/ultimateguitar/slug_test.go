package ultimateguitar

import (
	"errors"
	"testing"

	"github.com/handiism/chord-compiler/internal/model"
)

func TestBuildSlug(t *testing.T) {
	tests := []struct {
		name  string
		words []string
		want  string
	}{
		{"sanitized words", []string{"Don't", "Stop", "&", "Go"}, "Dont_Stop_and_Go"},
		{"single word", []string{"Wonderwall"}, "Wonderwall"},
		{"quotes and commas", []string{`"Heroes",`, "Live"}, "Heroes_Live"},
		{"embedded ampersand", []string{"Simon&Garfunkel"}, "SimonandGarfunkel"},
		{"words that vanish", []string{",", "Hello", "'"}, "Hello"},
		{"edge underscores", []string{"_Intro_"}, "Intro"},
		{"vanished word keeps its slot", []string{"Rock", ",", "Roll"}, "Rock__Roll"},
		{"empty", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BuildSlug(tt.words); got != tt.want {
				t.Errorf("BuildSlug(%q) = %q, want %q", tt.words, got, tt.want)
			}
		})
	}
}

func TestSite_ListingURL(t *testing.T) {
	site := DefaultSite()

	tests := []struct {
		name    string
		song    string
		artist  string
		version int
		want    string
	}{
		{"version 1 has no suffix", "song", "artist", 1, "http://tabs.ultimate-guitar.com/a/artist/song_crd.htm"},
		{"version 3", "song", "artist", 3, "http://tabs.ultimate-guitar.com/a/artist/song_ver3_crd.htm"},
		{"letter segment keeps case", "Wonderwall", "Oasis", 2, "http://tabs.ultimate-guitar.com/O/Oasis/Wonderwall_ver2_crd.htm"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := site.ListingURL(tt.song, tt.artist, tt.version)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ListingURL() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSite_ListingURL_InvalidInput(t *testing.T) {
	site := DefaultSite()

	if _, err := site.ListingURL("song", "", 1); !errors.Is(err, model.ErrInput) {
		t.Errorf("empty artist: got %v, want InputError", err)
	}
	if _, err := site.ListingURL("song", "artist", 0); !errors.Is(err, model.ErrInput) {
		t.Errorf("version 0: got %v, want InputError", err)
	}
	if _, err := site.SongListingURL(model.SongRequest{Title: " , ", Artist: "Oasis"}, 1); !errors.Is(err, model.ErrInput) {
		t.Errorf("empty title slug: got %v, want InputError", err)
	}
}

func TestSite_SearchURL(t *testing.T) {
	site := DefaultSite()

	tests := []struct {
		song   string
		artist string
		want   string
	}{
		{"Wonderwall", "Oasis", DefaultSearchEndpoint + "Wonderwall+Oasis"},
		{"Don't Stop", "Fleetwood Mac", DefaultSearchEndpoint + "Dont+Stop+Fleetwood+Mac"},
		{"Rock & Roll", "Led Zeppelin", DefaultSearchEndpoint + "Rock+and+Roll+Led+Zeppelin"},
		{"  Spaced   Out ", "", DefaultSearchEndpoint + "Spaced+Out"},
		{"Rock , Roll", "", DefaultSearchEndpoint + "Rock++Roll"},
		{"Hello ,", "", DefaultSearchEndpoint + "Hello"},
		{"Thunderstruck", "AC/DC", DefaultSearchEndpoint + "Thunderstruck+AC%2FDC"},
		{"Café", "Sigur Rós", DefaultSearchEndpoint + "Caf%C3%A9+Sigur+R%C3%B3s"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := site.SearchURL(tt.song, tt.artist); got != tt.want {
				t.Errorf("SearchURL(%q, %q) = %q, want %q", tt.song, tt.artist, got, tt.want)
			}
		})
	}
}

func TestSite_Baseline(t *testing.T) {
	site := DefaultSite()

	baseline, err := site.Baseline(model.SongRequest{Title: "Wonderwall", Artist: "Oasis"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if want := "http://tabs.ultimate-guitar.com/o/oasis/wonderwall_crd"; baseline.SlugPrefix != want {
		t.Errorf("SlugPrefix = %q, want %q", baseline.SlugPrefix, want)
	}
	if want := "http://tabs.ultimate-guitar.com/o/oasis/wonderwall"; baseline.PartialPrefix != want {
		t.Errorf("PartialPrefix = %q, want %q", baseline.PartialPrefix, want)
	}
}
