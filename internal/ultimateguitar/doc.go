// Package ultimateguitar knows the tab site's URL scheme and page markup.
//
// The package covers three steps of the pipeline:
//
//  1. Building slugs, listing URLs and search URLs for a song
//  2. Resolving which listing version is the best-rated chords listing
//  3. Extracting the chord/lyric body from a listing page
//
// # URLs
//
//	site := ultimateguitar.DefaultSite()
//	search := site.SearchURL("Wonderwall", "Oasis")
//	listing, err := site.ListingURL("Wonderwall", "Oasis", 2)
//	// http://tabs.ultimate-guitar.com/o/Oasis/Wonderwall_ver2_crd.htm
//
// # Version Resolution
//
// Search results are scanned as raw text. Only two marker tokens are assumed
// stable: the rating marker (followed by a small integer) and the type
// marker (followed by the listing type label). The scanning is behind the
// ListingScanner interface so it can be tested without a network and
// replaced by a structured parser.
//
//	baseline, _ := site.Baseline(song)
//	version, err := site.ResolveVersion(searchHTML, baseline)
//
// # Body Extraction
//
//	body, err := site.ExtractBody(pageText)
package ultimateguitar
