// Package download provides the batch orchestration logic for fetching
// chord sheets from Ultimate Guitar.
//
// # Manager
//
// The Manager runs every song of the batch through the same pipeline:
//
//  1. Fetch the title search results
//  2. Resolve the best-rated chords version
//  3. Fetch that version's listing page
//  4. Extract the chord body from the page text
//  5. Write {output}/{title}.txt with a one-line banner
//
// A failure at any step ends that song only. It is written to the run log
// and the error stream, reported as a LevelError event, and the batch moves
// on to the next song.
//
// # Basic Usage
//
//	manager := download.NewManager(settings, func(event download.ProgressEvent) {
//	    fmt.Println(event.Message)
//	})
//
//	err := manager.Initialize(ctx, songs)
//	if err != nil {
//	    log.Fatal(err) // output folder could not be created
//	}
//
//	outcomes, err := manager.Run(ctx)
//
// # Concurrency
//
// settings.MaxConcurrentSongs bounds how many songs run at once. The
// default of 1 processes the batch strictly in input order. Larger values
// share one rate-limited HTTP client across a worker pool; each song's run
// log entry is still written in one piece once the song finishes.
//
// The progress callback may be called from several goroutines when songs
// run concurrently.
//
// # Progress Tracking
//
// Progress is reported via a callback function that receives ProgressEvent:
//
//	type ProgressEvent struct {
//	    Message string
//	    Level   ProgressLevel // Info, Verbose, Warning, Error, Success
//	}
//
// GetProgress returns retrieved, failed and total song counts for UIs that
// poll instead.
//
// # No Retries
//
// A failed fetch or parse is recorded once and the song is abandoned for
// this run. The error stream is itself a song list, so a second run over
// it retries exactly the failures.
package download
