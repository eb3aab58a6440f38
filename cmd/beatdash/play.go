package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/JJC3321/BeatDash/internal/config"
	"github.com/JJC3321/BeatDash/internal/core"
	"github.com/JJC3321/BeatDash/internal/modes"
	"github.com/JJC3321/BeatDash/internal/music"
	"github.com/JJC3321/BeatDash/internal/platform/tui"
	"github.com/JJC3321/BeatDash/internal/storage"
)

var (
	flagPlaylist   string
	flagConfig     string
	flagMetricsURL string
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a game mode",
	Long: `Start a game session.

With --playlist, the playlist's metrics generate the whole configuration
(including which mode to play). An explicit mode argument overrides the
generated choice. Without a playlist, the configuration file decides.

Controls:
  Arrows/WASD  - Move
  Space/Up     - Jump
  P/Esc        - Pause
  R            - Restart (after game over)
  Q/Ctrl+C     - Quit

Examples:
  beatdash play --playlist workout-mix
  beatdash play dodge
  beatdash play runner --playlist road-trip
  beatdash play --config ./custom.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPlaylist, "playlist", "", "Playlist name to generate the game from")
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to a game configuration file")
	playCmd.Flags().StringVar(&flagMetricsURL, "metrics-url", "", "Base URL of a metrics service (falls back to local analysis)")
}

// buildConfiguration resolves the session configuration from the playlist
// or the configuration file.
func buildConfiguration() (config.GameConfiguration, error) {
	if flagPlaylist != "" {
		metrics := analyzePlaylist(flagPlaylist)
		return config.Generate(flagPlaylist, metrics), nil
	}
	return config.Load(flagConfig)
}

// analyzePlaylist fetches metrics from the service when one is configured,
// otherwise synthesizes them locally. Never fails: the fallback always
// produces usable metrics.
func analyzePlaylist(name string) *music.PlaylistMetrics {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var analyzer music.Analyzer = music.FallbackAnalyzer{}
	if flagMetricsURL != "" {
		analyzer = music.NewServiceAnalyzer(flagMetricsURL)
	}

	metrics, err := analyzer.Analyze(ctx, name)
	if err != nil {
		// The service analyzer already falls back internally, so this
		// only happens for a broken fallback. Play without metrics.
		fmt.Fprintf(os.Stderr, "Warning: could not analyze playlist: %v\n", err)
		return nil
	}
	return metrics
}

func runPlay(_ *cobra.Command, args []string) {
	gameCfg, err := buildConfiguration()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	// Explicit mode argument overrides the configured/generated mode.
	if len(args) > 0 {
		gameCfg.GameType = config.GameType(args[0])
	}

	modes.SetConfiguration(gameCfg)
	game := modes.ForType(gameCfg.GameType)

	// Get terminal size
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, cfg, flagPlaylist)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
