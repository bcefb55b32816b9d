package ultimateguitar

import (
	"errors"
	"strings"

	"github.com/handiism/chord-compiler/internal/model"
)

// ExtractBody isolates the chord/lyric body from a listing page's text.
//
// The start delimiter appears twice: once in the page chrome and once right
// before the body. The body runs from the end of the second occurrence to
// the end delimiter and is returned with surrounding whitespace trimmed.
//
// Returns a ParseError if either delimiter, or the second start delimiter,
// is missing.
func (s Site) ExtractBody(pageText string) (string, error) {
	if s.StartDelimiter == "" || s.EndDelimiter == "" {
		return "", model.ParseError("extract body", errors.New("delimiters not configured"))
	}

	first := strings.Index(pageText, s.StartDelimiter)
	if first < 0 {
		return "", model.ParseError("extract body", errors.New("start delimiter not found"))
	}

	second := strings.Index(pageText[first+1:], s.StartDelimiter)
	if second < 0 {
		return "", model.ParseError("extract body", errors.New("second start delimiter not found"))
	}
	start := first + 1 + second + len(s.StartDelimiter)

	end := strings.Index(pageText[start:], s.EndDelimiter)
	if end < 0 {
		return "", model.ParseError("extract body", errors.New("end delimiter not found"))
	}

	return strings.TrimSpace(pageText[start : start+end]), nil
}
