// beatdash turns music playlists into playable terminal mini-games.
//
// Usage:
//
//	beatdash list                      - List available game modes
//	beatdash play [mode]               - Play a mode
//	beatdash analyze <playlist>        - Show metrics and generated config
//	beatdash scores <mode>             - Show high scores for a mode
//	beatdash serve                     - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.beatdash/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import modes to register them
	_ "github.com/JJC3321/BeatDash/internal/modes"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "beatdash",
	Short: "BeatDash - music-driven mini-games in your terminal",
	Long: `BeatDash generates terminal mini-games from music playlists. The
playlist's tempo, energy, and mood pick the game mode, pace the spawns,
and tune the physics, so every playlist plays differently.

Available commands:
  list     - Show all available game modes
  play     - Play a mode (generated from a playlist or a config file)
  analyze  - Show playlist metrics and the configuration they generate
  scores   - View high scores
  serve    - Start SSH server for remote play

Examples:
  beatdash list
  beatdash play --playlist workout-mix
  beatdash play dodge
  beatdash analyze chill-vibes
  beatdash serve --ssh :2222
  beatdash scores dodge`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.beatdash/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
