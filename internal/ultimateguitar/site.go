package ultimateguitar

const (
	// DefaultDomain is the root every listing URL is built under.
	DefaultDomain = "http://tabs.ultimate-guitar.com/"

	// DefaultSearchEndpoint is the title search; words are appended joined by "+".
	DefaultSearchEndpoint = "http://www.ultimate-guitar.com/search.php?search_type=title&value="

	// DefaultStartDelimiter appears twice in a listing page's text; the body
	// follows the second occurrence.
	DefaultStartDelimiter = "+ --------------------------------------------------------------------- +"

	// DefaultEndDelimiter closes the body.
	DefaultEndDelimiter = "/* Ultimate-Guitar - Tab Pages */"
)

const (
	pageExt       = ".htm"
	chordsSuffix  = "_crd"
	versionPrefix = "_ver"
)

// Site describes the tab site's URL scheme and page markup.
//
// A Site is an immutable value: build it once (DefaultSite or
// config.Settings.Site) and pass it to the download manager. Tests swap in
// fixture endpoints and delimiters by constructing their own Site.
type Site struct {
	// Domain is the listing URL root, including the trailing slash.
	Domain string

	// SearchEndpoint is the search URL up to and including the query value.
	SearchEndpoint string

	// StartDelimiter and EndDelimiter bound the chord body in page text.
	StartDelimiter string
	EndDelimiter   string

	// Markers locates ratings and listing types in search results.
	Markers Markers
}

// Markers are the fixed tokens the search results markup is scanned for.
//
// A listing's rating is a small integer found RatingOffset bytes after the
// end of the Rating token, inside a RatingWindow-byte window, surrounded by
// any of the RatingTrim characters. Its type label is the TypeWindow bytes
// that follow the first Type token after the rating.
type Markers struct {
	Rating       string
	RatingOffset int
	RatingWindow int
	RatingTrim   string

	Type       string
	TypeWindow int

	// ChordsType is the type label of chord listings.
	ChordsType string
}

// DefaultMarkers returns the markers used by the site's search results table.
//
//	<b class="ratdig">95</b> ... <td><strong>chords</strong></td>
func DefaultMarkers() Markers {
	return Markers{
		Rating:       "ratdig",
		RatingOffset: 2,
		RatingWindow: 6,
		RatingTrim:   "</b> ",
		Type:         "<td><strong>",
		TypeWindow:   6,
		ChordsType:   "chords",
	}
}

// DefaultSite returns the production site description.
func DefaultSite() Site {
	return Site{
		Domain:         DefaultDomain,
		SearchEndpoint: DefaultSearchEndpoint,
		StartDelimiter: DefaultStartDelimiter,
		EndDelimiter:   DefaultEndDelimiter,
		Markers:        DefaultMarkers(),
	}
}
