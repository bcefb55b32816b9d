package ultimateguitar

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/handiism/chord-compiler/internal/model"
)

var slugReplacer = strings.NewReplacer("'", "", `"`, "", ",", "", "&", "and")

// sanitizeWord removes quotes and commas and spells out ampersands.
func sanitizeWord(word string) string {
	return slugReplacer.Replace(word)
}

// BuildSlug joins sanitized words with underscores.
//
// Each word has ', " and , removed and every & replaced with "and". A word
// that sanitizes to nothing still takes its place in the join, so "Rock ,
// Roll" becomes "Rock__Roll". Leading/trailing underscores are trimmed from
// the result. An empty input yields an empty slug.
//
// Example:
//
//	BuildSlug([]string{"Don't", "Stop", "&", "Go"}) // "Dont_Stop_and_Go"
func BuildSlug(words []string) string {
	parts := make([]string, len(words))
	for i, word := range words {
		parts[i] = sanitizeWord(word)
	}
	return strings.Trim(strings.Join(parts, "_"), "_")
}

// Slug splits s on whitespace and builds its slug.
func Slug(s string) string {
	return BuildSlug(strings.Fields(s))
}

// ListingURL builds the URL of one version of a song's chords listing.
//
// The artist slug's first character selects the site's single-letter path
// segment. Version 1 has no version suffix:
//
//	http://tabs.ultimate-guitar.com/o/Oasis/Wonderwall_crd.htm
//	http://tabs.ultimate-guitar.com/o/Oasis/Wonderwall_ver3_crd.htm
//
// Returns an InputError if artistSlug is empty or version is below 1.
func (s Site) ListingURL(songSlug, artistSlug string, version int) (string, error) {
	if artistSlug == "" {
		return "", model.InputError("build listing url", errors.New("empty artist slug"))
	}
	if version < 1 {
		return "", model.InputError("build listing url", fmt.Errorf("invalid version %d", version))
	}

	first, _ := utf8.DecodeRuneInString(artistSlug)

	var sb strings.Builder
	sb.WriteString(s.Domain)
	sb.WriteRune(first)
	sb.WriteString("/")
	sb.WriteString(artistSlug)
	sb.WriteString("/")
	sb.WriteString(songSlug)
	if version > 1 {
		sb.WriteString(fmt.Sprintf("%s%d", versionPrefix, version))
	}
	sb.WriteString(chordsSuffix)
	sb.WriteString(pageExt)
	return sb.String(), nil
}

// SongListingURL builds the listing URL for a song request.
//
// Unlike ListingURL it also rejects a title that slugs to nothing.
func (s Site) SongListingURL(song model.SongRequest, version int) (string, error) {
	songSlug := Slug(song.Title)
	if songSlug == "" {
		return "", model.InputError("build listing url", fmt.Errorf("title %q has no usable words", song.Title))
	}
	return s.ListingURL(songSlug, Slug(song.Artist), version)
}

// SearchURL builds the search results URL for a song.
//
// The sanitized words of the title, then of the artist, are joined with "+"
// and appended to the search endpoint; trailing "+" are trimmed. As in
// BuildSlug, a word that sanitizes to nothing leaves an empty slot
// ("Rock , Roll" searches for "Rock++Roll").
//
// Each word is query-escaped, so non-ASCII titles and titles containing
// reserved characters such as "/", "?" or "+" produce percent-escaped
// terms ("AC/DC" searches for "AC%2FDC").
//
// Example:
//
//	site.SearchURL("Wonderwall", "Oasis")
//	// http://www.ultimate-guitar.com/search.php?search_type=title&value=Wonderwall+Oasis
func (s Site) SearchURL(song, artist string) string {
	words := append(strings.Fields(song), strings.Fields(artist)...)
	terms := make([]string, len(words))
	for i, word := range words {
		terms[i] = url.QueryEscape(sanitizeWord(word))
	}

	return s.SearchEndpoint + strings.TrimRight(strings.Join(terms, "+"), "+")
}

// Baseline identifies a song's listings inside search results markup.
type Baseline struct {
	// SlugPrefix is the version-1 listing URL, lower-cased, without ".htm".
	SlugPrefix string

	// PartialPrefix is SlugPrefix without the "_crd" marker. It matches every
	// version and every listing type of the same song.
	PartialPrefix string
}

// Baseline computes the search prefixes for a song.
func (s Site) Baseline(song model.SongRequest) (Baseline, error) {
	listingURL, err := s.SongListingURL(song, 1)
	if err != nil {
		return Baseline{}, err
	}

	slugPrefix := strings.ToLower(strings.TrimSuffix(listingURL, pageExt))
	return Baseline{
		SlugPrefix:    slugPrefix,
		PartialPrefix: strings.TrimSuffix(slugPrefix, chordsSuffix),
	}, nil
}
