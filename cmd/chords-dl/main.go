package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/handiism/chord-compiler/internal/audio"
	"github.com/handiism/chord-compiler/internal/config"
	"github.com/handiism/chord-compiler/internal/download"
	"github.com/handiism/chord-compiler/internal/model"
	"github.com/handiism/chord-compiler/internal/songlist"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
)

var (
	configFlag      string
	outputFlag      string
	fromMP3Flag     string
	concurrencyFlag int
	verboseFlag     bool
	dryRunFlag      bool
)

var rootCmd = &cobra.Command{
	Use:   "chords-dl [songlist]",
	Short: "Download chord sheets for a list of songs from Ultimate Guitar",
	Long: `chords-dl reads a song list with one "title<TAB>artist" record per line
and writes the best-rated chords version of each song to {output}/{title}.txt.

Use "-" to read the song list from standard input, or --from-mp3 to build it
from the ID3 tags of an MP3 library. For interactive mode, use chords-tui.`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVar(&configFlag, "config", "", "path to a JSON or TOML config file")
	flags.StringVarP(&outputFlag, "output", "o", "", "output folder, {time} expands to the start time (overrides config)")
	flags.StringVar(&fromMP3Flag, "from-mp3", "", "build the song list from the MP3 files under this folder")
	flags.IntVarP(&concurrencyFlag, "concurrency", "c", 0, "songs processed at once (overrides config)")
	flags.BoolVarP(&verboseFlag, "verbose", "v", false, "show verbose output")
	flags.BoolVar(&dryRunFlag, "dry-run", false, "print search and listing URLs without fetching")
}

func main() {
	// Handle interrupts
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		slog.Warn("interrupted, cancelling")
		cancel()
	}()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	level := slog.LevelInfo
	if verboseFlag {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	})))

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("failed to read .env", "err", err)
	}

	settings, err := loadSettings()
	if err != nil {
		slog.Error("failed to load config", "err", err)
		return err
	}

	songs, err := loadSongs(ctx, args)
	if err != nil {
		slog.Error("failed to load song list", "err", err)
		return err
	}
	if len(songs) == 0 {
		err := model.InputError("load song list", errors.New("no songs"))
		slog.Error("nothing to do", "err", err)
		return err
	}

	if dryRunFlag {
		return printDryRun(settings, songs)
	}

	manager := download.NewManager(settings, logProgress)
	if err := manager.Initialize(ctx, songs); err != nil {
		slog.Error("failed to initialize", "err", err)
		return err
	}

	started := time.Now()
	outcomes, err := manager.Run(ctx)
	if err != nil {
		if ctx.Err() != nil {
			slog.Warn("run cancelled")
		} else {
			slog.Error("run failed", "err", err)
		}
	}

	printSummary(outcomes)

	done, failed, total := manager.GetProgress()
	slog.Info("complete",
		"retrieved", done,
		"failed", failed,
		"total", total,
		"output", manager.OutputDir(),
		"elapsed", time.Since(started).Round(time.Millisecond),
	)
	return err
}

// loadSettings layers config file, environment and flags, later wins.
func loadSettings() (*config.Settings, error) {
	settings := config.DefaultSettings()
	if configFlag != "" {
		var err error
		settings, err = config.Load(configFlag)
		if err != nil {
			return nil, err
		}
	}

	settings.ApplyEnv()

	if outputFlag != "" {
		settings.OutputDir = outputFlag
	}
	if concurrencyFlag > 0 {
		settings.MaxConcurrentSongs = concurrencyFlag
	}

	return settings, nil
}

func loadSongs(ctx context.Context, args []string) ([]model.SongRequest, error) {
	switch {
	case fromMP3Flag != "" && len(args) > 0:
		return nil, model.InputError("load song list", errors.New("give either a song list or --from-mp3, not both"))
	case fromMP3Flag != "":
		return audio.ScanLibrary(ctx, fromMP3Flag)
	case len(args) == 1:
		return songlist.Load(args[0])
	default:
		return nil, model.InputError("load song list", errors.New("no song list given"))
	}
}

func logProgress(event download.ProgressEvent) {
	switch event.Level {
	case download.LevelVerbose:
		slog.Debug(event.Message)
	case download.LevelWarning:
		slog.Warn(event.Message)
	case download.LevelError:
		slog.Error(event.Message)
	default:
		slog.Info(event.Message)
	}
}

func printDryRun(settings *config.Settings, songs []model.SongRequest) error {
	site := settings.Site()

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Song", "Artist", "Search", "Listing"})

	for _, song := range songs {
		listing, err := site.SongListingURL(song, 1)
		if err != nil {
			listing = err.Error()
		}
		t.AppendRow(table.Row{song.Title, song.Artist, site.SearchURL(song.Title, song.Artist), listing})
	}

	t.SetStyle(table.StyleRounded)
	t.Render()
	return nil
}

func printSummary(outcomes []model.Outcome) {
	if len(outcomes) == 0 {
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Song", "Artist", "Version", "Status"})

	for _, o := range outcomes {
		version := ""
		if o.Version > 0 {
			version = fmt.Sprint(o.Version)
		}

		status := o.Stage.String()
		if o.Err != nil {
			status = fmt.Sprintf("%s at %s", o.Kind(), o.FailedAt)
		}

		t.AppendRow(table.Row{o.Song.Title, o.Song.Artist, version, status})
	}

	t.SetStyle(table.StyleRounded)
	t.Render()
}
