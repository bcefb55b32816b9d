package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/handiism/chord-compiler/internal/ultimateguitar"
	"github.com/pelletier/go-toml/v2"
)

// TimePlaceholder in OutputDir expands to the run's start clock time.
const TimePlaceholder = "{time}"

// timeLayout is the 12-hour hh_mm_ss stamp used for output folders.
const timeLayout = "03_04_05"

// Environment variables read by ApplyEnv.
const (
	EnvOutputDir   = "CHORDS_OUTPUT_DIR"
	EnvUserAgent   = "CHORDS_USER_AGENT"
	EnvConcurrency = "CHORDS_CONCURRENCY"
	EnvRate        = "CHORDS_RATE"
)

// Settings holds all configuration options.
type Settings struct {
	// Output settings
	OutputDir     string `json:"output_dir" toml:"output_dir"`
	LogFileName   string `json:"log_file_name" toml:"log_file_name"`
	ErrorFileName string `json:"error_file_name" toml:"error_file_name"`

	// Site layout
	Domain         string `json:"domain" toml:"domain"`
	SearchEndpoint string `json:"search_endpoint" toml:"search_endpoint"`
	StartDelimiter string `json:"start_delimiter" toml:"start_delimiter"`
	EndDelimiter   string `json:"end_delimiter" toml:"end_delimiter"`

	// Search results markers
	RatingMarker string `json:"rating_marker" toml:"rating_marker"`
	RatingOffset int    `json:"rating_offset" toml:"rating_offset"`
	RatingWindow int    `json:"rating_window" toml:"rating_window"`
	TypeMarker   string `json:"type_marker" toml:"type_marker"`
	ChordsType   string `json:"chords_type" toml:"chords_type"`

	// HTTP settings
	UserAgent         string  `json:"user_agent" toml:"user_agent"`
	TimeoutSeconds    int     `json:"timeout_seconds" toml:"timeout_seconds"`
	RequestsPerSecond float64 `json:"requests_per_second" toml:"requests_per_second"`

	// MaxConcurrentSongs bounds how many songs are processed at once.
	// 1 processes the batch strictly in order.
	MaxConcurrentSongs int `json:"max_concurrent_songs" toml:"max_concurrent_songs"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	markers := ultimateguitar.DefaultMarkers()
	return &Settings{
		OutputDir:     filepath.Join("bin", "outfile"+TimePlaceholder),
		LogFileName:   "aaa_log.txt",
		ErrorFileName: "aaa_errors.txt",

		Domain:         ultimateguitar.DefaultDomain,
		SearchEndpoint: ultimateguitar.DefaultSearchEndpoint,
		StartDelimiter: ultimateguitar.DefaultStartDelimiter,
		EndDelimiter:   ultimateguitar.DefaultEndDelimiter,

		RatingMarker: markers.Rating,
		RatingOffset: markers.RatingOffset,
		RatingWindow: markers.RatingWindow,
		TypeMarker:   markers.Type,
		ChordsType:   markers.ChordsType,

		UserAgent:         "ChordCompiler",
		TimeoutSeconds:    60,
		RequestsPerSecond: 0,

		MaxConcurrentSongs: 1,
	}
}

// Load reads settings from a JSON file, or a TOML file when the path ends
// in ".toml". Fields absent from the file keep their default values.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if isTOML(path) {
		err = toml.Unmarshal(data, settings)
	} else {
		err = json.Unmarshal(data, settings)
	}
	if err != nil {
		return nil, err
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return settings, nil
}

// Validate reports settings the pipeline cannot run with.
func (s *Settings) Validate() error {
	var errs []error
	if s.RatingMarker == "" {
		errs = append(errs, errors.New("rating_marker must not be empty"))
	}
	if s.TypeMarker == "" {
		errs = append(errs, errors.New("type_marker must not be empty"))
	}
	if s.RatingOffset < 0 {
		errs = append(errs, fmt.Errorf("rating_offset must not be negative, got %d", s.RatingOffset))
	}
	if s.RatingWindow <= 0 {
		errs = append(errs, fmt.Errorf("rating_window must be positive, got %d", s.RatingWindow))
	}
	if s.StartDelimiter == "" || s.EndDelimiter == "" {
		errs = append(errs, errors.New("start_delimiter and end_delimiter must not be empty"))
	}
	if s.TimeoutSeconds < 0 {
		errs = append(errs, fmt.Errorf("timeout_seconds must not be negative, got %d", s.TimeoutSeconds))
	}
	if s.RequestsPerSecond < 0 {
		errs = append(errs, fmt.Errorf("requests_per_second must not be negative, got %v", s.RequestsPerSecond))
	}
	return errors.Join(errs...)
}

// Save writes settings to a JSON or TOML file, chosen by extension.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	var (
		data []byte
		err  error
	)
	if isTOML(path) {
		data, err = toml.Marshal(s)
	} else {
		data, err = json.MarshalIndent(s, "", "  ")
	}
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// ApplyEnv overrides settings from CHORDS_* environment variables.
// Unset or unparsable numeric values leave the current value alone.
func (s *Settings) ApplyEnv() {
	if v := os.Getenv(EnvOutputDir); v != "" {
		s.OutputDir = v
	}
	if v := os.Getenv(EnvUserAgent); v != "" {
		s.UserAgent = v
	}
	if n, err := strconv.Atoi(os.Getenv(EnvConcurrency)); err == nil && n > 0 {
		s.MaxConcurrentSongs = n
	}
	if r, err := strconv.ParseFloat(os.Getenv(EnvRate), 64); err == nil && r >= 0 {
		s.RequestsPerSecond = r
	}
}

// Site returns the site description the pipeline runs against.
func (s *Settings) Site() ultimateguitar.Site {
	markers := ultimateguitar.DefaultMarkers()
	markers.Rating = s.RatingMarker
	markers.RatingOffset = s.RatingOffset
	markers.RatingWindow = s.RatingWindow
	markers.Type = s.TypeMarker
	markers.ChordsType = s.ChordsType

	return ultimateguitar.Site{
		Domain:         s.Domain,
		SearchEndpoint: s.SearchEndpoint,
		StartDelimiter: s.StartDelimiter,
		EndDelimiter:   s.EndDelimiter,
		Markers:        markers,
	}
}

// OutputPath expands OutputDir for a run started at now.
func (s *Settings) OutputPath(now time.Time) string {
	return strings.ReplaceAll(s.OutputDir, TimePlaceholder, now.Format(timeLayout))
}

// Timeout returns the per-request timeout.
func (s *Settings) Timeout() time.Duration {
	return time.Duration(s.TimeoutSeconds) * time.Second
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}
