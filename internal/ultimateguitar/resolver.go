package ultimateguitar

import (
	"fmt"

	"github.com/handiism/chord-compiler/internal/model"
)

// Resolve returns the version number of the best-rated chords listing.
//
// The site lists every version of a song contiguously after the baseline
// (version 1) listing. Resolve finds the baseline, reads its rating, then
// walks the following same-song listings for as long as they are chords
// listings. A listing whose rating is strictly greater than the best so far
// becomes the new best; ties keep the earlier listing. The walk stops at the
// first listing that is not a chords listing or when none remain.
//
// Returns a NotFoundError if the baseline is absent, and a ParseError if a
// rating cannot be read.
//
// Example (ratings 70, 95, 60 in listing order):
//
//	version, _ := Resolve(scanner, baseline, "chords") // 2
func Resolve(scanner ListingScanner, baseline Baseline, chordsType string) (int, error) {
	index, ok := scanner.LocateNextListing(baseline.SlugPrefix, 0)
	if !ok {
		return 0, model.NotFoundError("locate baseline listing", fmt.Errorf("%q not in search results", baseline.SlugPrefix))
	}

	best, err := scanner.ReadRating(index)
	if err != nil {
		return 0, err
	}

	version, offset := 1, 0
	for {
		next, ok := scanner.LocateNextListing(baseline.PartialPrefix, index+1)
		if !ok {
			break
		}
		if kind, ok := scanner.ReadType(next); !ok || kind != chordsType {
			break
		}

		offset++
		rating, err := scanner.ReadRating(next)
		if err != nil {
			return 0, err
		}
		if rating > best {
			version += offset
			offset = 0
			best = rating
		}

		index = next
	}

	return version, nil
}

// ResolveVersion scans search results markup for the best chords listing.
func (s Site) ResolveVersion(markup string, baseline Baseline) (int, error) {
	return Resolve(NewMarkupScanner(markup, s.Markers), baseline, s.Markers.ChordsType)
}
