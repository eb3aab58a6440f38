package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/JJC3321/BeatDash/internal/config"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <playlist>",
	Short: "Show playlist metrics and the configuration they generate",
	Long: `Analyze a playlist and print its metrics, the generated game
configuration, and the derived simulation parameters without playing.

Useful for checking what a playlist will turn into before a session.

Examples:
  beatdash analyze workout-mix
  beatdash analyze chill-vibes --metrics-url http://localhost:8080`,
	Args: cobra.ExactArgs(1),
	Run:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&flagMetricsURL, "metrics-url", "", "Base URL of a metrics service (falls back to local analysis)")
}

func runAnalyze(_ *cobra.Command, args []string) {
	playlist := args[0]
	metrics := analyzePlaylist(playlist)
	if metrics == nil {
		fmt.Fprintln(os.Stderr, "Error: no metrics available")
		os.Exit(1)
	}

	fmt.Printf("Playlist: %s\n\n", playlist)
	fmt.Printf("  Tempo:        %.1f BPM\n", metrics.AvgTempo)
	fmt.Printf("  Energy:       %.2f\n", metrics.AvgEnergy)
	fmt.Printf("  Valence:      %.2f\n", metrics.AvgValence)
	fmt.Printf("  Acousticness: %.2f\n", metrics.AvgAcousticness)
	fmt.Printf("  Danceability: %.2f\n", metrics.AvgDanceability)
	fmt.Printf("  Loudness:     %.1f dB\n", metrics.AvgLoudness)
	fmt.Printf("  Tracks:       %d\n", metrics.TrackCount)

	cfg := config.Generate(playlist, metrics)
	params := cfg.Params()

	fmt.Println()
	fmt.Println("Derived parameters:")
	fmt.Printf("  Beat interval:  %.0f ms\n", params.BeatIntervalMs)
	fmt.Printf("  Spawn interval: %.0f ms\n", params.SpawnIntervalMs)
	fmt.Printf("  Speed:          %.2fx\n", params.SpeedMultiplier)
	fmt.Printf("  Gravity:        %.2fx\n", params.GravityMultiplier)

	out, err := yaml.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding configuration: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println("Generated configuration:")
	fmt.Println(string(out))
}
