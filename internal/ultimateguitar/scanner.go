package ultimateguitar

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/handiism/chord-compiler/internal/model"
)

// ListingScanner extracts listing facts from search results.
//
// Offsets are byte positions in the scanned markup. Implementations hold no
// state between calls.
type ListingScanner interface {
	// LocateNextListing returns the offset of the first occurrence of prefix
	// at or after from.
	LocateNextListing(prefix string, from int) (int, bool)

	// ReadRating returns the rating of the listing at offset at.
	// Returns a ParseError if the rating marker or its number is missing.
	ReadRating(at int) (int, error)

	// ReadType returns the type label of the listing at offset at, or false
	// if no type marker follows it.
	ReadType(at int) (string, bool)
}

// MarkupScanner scans raw search results markup as text.
//
// Matching is case-insensitive: the scanner works on an ASCII lower-cased
// copy of the markup, so byte offsets line up with the original.
type MarkupScanner struct {
	text    string
	markers Markers
}

var _ ListingScanner = (*MarkupScanner)(nil)

// NewMarkupScanner creates a scanner over markup.
func NewMarkupScanner(markup string, markers Markers) *MarkupScanner {
	return &MarkupScanner{
		text:    lowerASCII(markup),
		markers: markers,
	}
}

// LocateNextListing implements ListingScanner.
func (m *MarkupScanner) LocateNextListing(prefix string, from int) (int, bool) {
	i := m.indexFrom(strings.ToLower(prefix), from)
	return i, i >= 0
}

// ReadRating implements ListingScanner.
func (m *MarkupScanner) ReadRating(at int) (int, error) {
	i := m.indexFrom(m.markers.Rating, at)
	if i < 0 {
		return 0, model.ParseError("read rating", fmt.Errorf("no %q marker after offset %d", m.markers.Rating, at))
	}

	if m.markers.RatingWindow <= 0 {
		return 0, model.ParseError("read rating", fmt.Errorf("invalid rating window %d", m.markers.RatingWindow))
	}
	start := i + len(m.markers.Rating) + m.markers.RatingOffset
	if start < 0 || start >= len(m.text) {
		return 0, model.ParseError("read rating", errors.New("rating window outside markup"))
	}
	end := min(start+m.markers.RatingWindow, len(m.text))

	raw := m.text[start:end]
	rating, err := strconv.Atoi(strings.Trim(raw, m.markers.RatingTrim))
	if err != nil {
		return 0, model.ParseError("read rating", fmt.Errorf("window %q: %w", raw, err))
	}

	return rating, nil
}

// ReadType implements ListingScanner.
//
// The type column follows the rating column, so the type marker is looked
// up after the listing's rating marker.
func (m *MarkupScanner) ReadType(at int) (string, bool) {
	i := m.indexFrom(m.markers.Rating, at)
	if i < 0 {
		return "", false
	}
	j := m.indexFrom(m.markers.Type, i)
	if j < 0 {
		return "", false
	}

	start := j + len(m.markers.Type)
	if m.markers.TypeWindow < 0 {
		return "", false
	}
	end := min(start+m.markers.TypeWindow, len(m.text))
	return m.text[start:end], true
}

func (m *MarkupScanner) indexFrom(substr string, from int) int {
	if from < 0 {
		from = 0
	}
	if from > len(m.text) || substr == "" {
		return -1
	}
	i := strings.Index(m.text[from:], substr)
	if i < 0 {
		return -1
	}
	return from + i
}

// lowerASCII lower-cases ASCII letters only, keeping the byte length intact.
func lowerASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
