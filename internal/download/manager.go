package download

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/handiism/chord-compiler/internal/config"
	"github.com/handiism/chord-compiler/internal/htmltext"
	"github.com/handiism/chord-compiler/internal/http"
	ioutils "github.com/handiism/chord-compiler/internal/io"
	"github.com/handiism/chord-compiler/internal/model"
	"github.com/handiism/chord-compiler/internal/runlog"
	"github.com/handiism/chord-compiler/internal/ultimateguitar"
	"golang.org/x/sync/errgroup"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents a batch progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// Fetcher retrieves the raw body of a URL.
//
// *http.Client implements Fetcher; tests substitute fixture pages.
type Fetcher interface {
	Get(ctx context.Context, url string) ([]byte, error)
}

// TextConverter turns a fetched page into plain text.
type TextConverter func(raw []byte) (string, error)

// Option configures a Manager.
type Option func(*Manager)

// WithFetcher replaces the HTTP client built from settings.
func WithFetcher(f Fetcher) Option {
	return func(m *Manager) {
		m.fetcher = f
	}
}

// WithTextConverter replaces the HTML to text conversion.
func WithTextConverter(fn TextConverter) Option {
	return func(m *Manager) {
		m.toText = fn
	}
}

// WithClock replaces time.Now for the run's timestamps.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		m.now = now
	}
}

// Manager coordinates a batch of chord sheet downloads.
type Manager struct {
	settings *config.Settings
	site     ultimateguitar.Site
	fetcher  Fetcher
	toText   TextConverter
	now      func() time.Time

	songs     []model.SongRequest
	outputDir string
	startedAt time.Time
	runID     string
	log       *runlog.Log

	doneSongs   int32
	failedSongs int32

	onProgress func(ProgressEvent)

	// logMu keeps each song's run log entry contiguous.
	logMu sync.Mutex
}

// NewManager creates a new download Manager.
func NewManager(settings *config.Settings, onProgress func(ProgressEvent), opts ...Option) *Manager {
	m := &Manager{
		settings:   settings,
		site:       settings.Site(),
		toText:     htmltext.ToPlainText,
		now:        time.Now,
		onProgress: onProgress,
	}
	for _, opt := range opts {
		opt(m)
	}

	if m.fetcher == nil {
		m.fetcher = http.NewClient(
			http.WithUserAgent(settings.UserAgent),
			http.WithTimeout(settings.Timeout()),
			http.WithRateLimit(settings.RequestsPerSecond),
		)
	}

	return m
}

// Initialize creates the run's output folder and prepares the run log.
//
// Failing to create the folder is fatal to the run and returned before any
// song is attempted.
func (m *Manager) Initialize(ctx context.Context, songs []model.SongRequest) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.startedAt = m.now()
	m.outputDir = m.settings.OutputPath(m.startedAt)
	if err := ioutils.EnsureDir(m.outputDir); err != nil {
		return fmt.Errorf("create output folder %s: %w", m.outputDir, err)
	}

	m.songs = songs
	m.runID = uuid.NewString()
	m.log = runlog.New(m.outputDir, m.settings.LogFileName, m.settings.ErrorFileName)
	atomic.StoreInt32(&m.doneSongs, 0)
	atomic.StoreInt32(&m.failedSongs, 0)

	m.progress(ProgressEvent{Message: fmt.Sprintf("Writing %d songs to %s", len(songs), m.outputDir), Level: LevelInfo})
	return nil
}

// Run processes every initialized song and returns one Outcome per song,
// in input order.
//
// A failing song never stops the batch. The returned error is non-nil only
// when the run log header cannot be written or ctx is cancelled; outcomes
// for songs that never started keep StagePending.
func (m *Manager) Run(ctx context.Context) ([]model.Outcome, error) {
	if m.log == nil {
		return nil, errors.New("manager not initialized")
	}

	if err := m.log.Started(m.startedAt, m.runID); err != nil {
		return nil, fmt.Errorf("write run log: %w", err)
	}

	outcomes := make([]model.Outcome, len(m.songs))
	for i, song := range m.songs {
		outcomes[i] = model.Outcome{Song: song, Stage: model.StagePending}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, m.settings.MaxConcurrentSongs))

	for i, song := range m.songs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			out := m.processSong(gctx, song)
			m.record(out)
			outcomes[i] = out
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return outcomes, err
	}

	if err := m.log.Finished(m.now()); err != nil {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Error writing run log: %v", err), Level: LevelWarning})
	}

	done, failed, total := m.GetProgress()
	m.progress(ProgressEvent{Message: fmt.Sprintf("Finished: %d retrieved, %d failed of %d", done, failed, total), Level: LevelInfo})

	return outcomes, ctx.Err()
}

// GetProgress returns how many songs have been retrieved and how many have
// failed so far, out of the batch total.
func (m *Manager) GetProgress() (done, failed, total int32) {
	return atomic.LoadInt32(&m.doneSongs), atomic.LoadInt32(&m.failedSongs), int32(len(m.songs))
}

// GetSongNames returns the names of all initialized songs.
func (m *Manager) GetSongNames() []string {
	names := make([]string, len(m.songs))
	for i, song := range m.songs {
		names[i] = song.String()
	}
	return names
}

// OutputDir returns the run's output folder, once initialized.
func (m *Manager) OutputDir() string {
	return m.outputDir
}

// processSong runs one song through the pipeline. Every failure is returned
// inside the Outcome, tagged with the stage it happened in.
func (m *Manager) processSong(ctx context.Context, song model.SongRequest) model.Outcome {
	out := model.Outcome{Song: song, Stage: model.StagePending}
	fail := func(err error) model.Outcome {
		out.FailedAt = out.Stage
		out.Stage = model.StageFailed
		out.Err = err
		return out
	}

	out.Stage = model.StageFetchingSearch
	out.SearchURL = m.site.SearchURL(song.Title, song.Artist)
	m.progress(ProgressEvent{Message: fmt.Sprintf("Searching: %s", out.SearchURL), Level: LevelVerbose})

	markup, err := m.fetch(ctx, "fetch search results", out.SearchURL)
	if err != nil {
		return fail(err)
	}

	out.Stage = model.StageResolving
	baseline, err := m.site.Baseline(song)
	if err != nil {
		return fail(err)
	}
	version, err := m.site.ResolveVersion(string(markup), baseline)
	if err != nil {
		return fail(err)
	}
	out.Version = version

	out.Stage = model.StageFetchingListing
	listingURL, err := m.site.SongListingURL(song, version)
	if err != nil {
		return fail(err)
	}
	out.URL = listingURL
	m.progress(ProgressEvent{Message: fmt.Sprintf("Accessing: %s", listingURL), Level: LevelVerbose})

	page, err := m.fetch(ctx, "fetch listing", listingURL)
	if err != nil {
		return fail(err)
	}

	out.Stage = model.StageExtracting
	text, err := m.toText(page)
	if err != nil {
		return fail(model.ParseError("convert listing", err))
	}
	body, err := m.site.ExtractBody(text)
	if err != nil {
		return fail(err)
	}

	out.Stage = model.StageWriting
	doc := model.ChordDocument{Song: song, URL: listingURL, Version: version, Body: body}
	path := filepath.Join(m.outputDir, song.FileName())
	if err := ioutils.WriteFile(ctx, path, []byte(doc.Render())); err != nil {
		return fail(fmt.Errorf("write %s: %w", path, err))
	}
	out.Path = path

	out.Stage = model.StageDone
	return out
}

// fetch wraps fetcher failures that carry no kind as network errors.
func (m *Manager) fetch(ctx context.Context, op, url string) ([]byte, error) {
	body, err := m.fetcher.Get(ctx, url)
	if err != nil {
		if model.KindOf(err) == model.KindUnknown {
			return nil, model.NetworkError(op, err)
		}
		return nil, err
	}
	return body, nil
}

// record writes a finished song's entry to the run log and error stream.
func (m *Manager) record(out model.Outcome) {
	m.logMu.Lock()
	err := m.writeEntry(out)
	m.logMu.Unlock()

	if err != nil {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Error writing run log for %s: %v", out.Song, err), Level: LevelWarning})
	}

	if out.OK() {
		atomic.AddInt32(&m.doneSongs, 1)
		m.progress(ProgressEvent{Message: fmt.Sprintf("Retrieved: %s (version %d)", out.Song, out.Version), Level: LevelSuccess})
		return
	}

	atomic.AddInt32(&m.failedSongs, 1)
	m.progress(ProgressEvent{Message: fmt.Sprintf("Failed: %s: %v", out.Song, out.Err), Level: LevelError})
}

func (m *Manager) writeEntry(out model.Outcome) error {
	var errs []error
	if out.SearchURL != "" {
		errs = append(errs, m.log.Searching(out.SearchURL))
	}
	if out.URL != "" {
		errs = append(errs, m.log.Accessing(out.URL))
	}

	if out.OK() {
		errs = append(errs, m.log.Retrieved())
	} else {
		errs = append(errs, m.log.Failed(out.Err), m.log.RecordError(out.Song))
	}

	return errors.Join(errs...)
}

func (m *Manager) progress(event ProgressEvent) {
	if m.onProgress != nil {
		m.onProgress(event)
	}
}
