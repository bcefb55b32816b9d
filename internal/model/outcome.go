package model

// Stage is the position of one song in the download pipeline.
//
// A song moves forward through the stages in order. Any stage may move to
// StageFailed, which is terminal and does not affect other songs.
type Stage int

const (
	StagePending Stage = iota
	StageFetchingSearch
	StageResolving
	StageFetchingListing
	StageExtracting
	StageWriting
	StageDone
	StageFailed
)

// String returns the upper-case stage name used in logs.
func (s Stage) String() string {
	switch s {
	case StagePending:
		return "PENDING"
	case StageFetchingSearch:
		return "FETCHING_SEARCH"
	case StageResolving:
		return "RESOLVING"
	case StageFetchingListing:
		return "FETCHING_LISTING"
	case StageExtracting:
		return "EXTRACTING"
	case StageWriting:
		return "WRITING"
	case StageDone:
		return "DONE"
	case StageFailed:
		return "FAILED"
	default:
		return "UNKNOWN"
	}
}

// Outcome is the result of processing one song.
//
// Exactly one of Path (success) or Err (failure) is meaningful. FailedAt
// records the stage that was running when Err occurred.
type Outcome struct {
	Song     SongRequest
	Stage    Stage
	FailedAt Stage
	Version  int

	// SearchURL and URL are the search and listing pages fetched, when
	// the song got that far.
	SearchURL string
	URL       string

	Path string
	Err  error
}

// OK reports whether the song reached StageDone.
func (o Outcome) OK() bool {
	return o.Stage == StageDone && o.Err == nil
}

// Kind returns the failure kind, or KindUnknown for a successful outcome.
func (o Outcome) Kind() Kind {
	if o.Err == nil {
		return KindUnknown
	}
	return KindOf(o.Err)
}
