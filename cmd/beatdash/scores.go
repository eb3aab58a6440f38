package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/JJC3321/BeatDash/internal/platform/tui"
	"github.com/JJC3321/BeatDash/internal/registry"
	"github.com/JJC3321/BeatDash/internal/storage"
)

var flagPlainScores bool

var scoresCmd = &cobra.Command{
	Use:   "scores <mode>",
	Short: "Show high scores for a mode",
	Long: `Display the high scores for the specified mode.

Opens the interactive scoreboard (tab switches between modes) when run
in a terminal; --plain prints a plain-text top 10 instead.

Examples:
  beatdash scores dodge
  beatdash scores runner --plain`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlainScores, "plain", false, "Print a plain-text table instead of the interactive scoreboard")
}

func runScores(cmd *cobra.Command, args []string) {
	mode := args[0]

	if !registry.Exists(mode) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", mode)
		fmt.Fprintln(os.Stderr, "Run 'beatdash list' to see available modes.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	// The interactive scoreboard needs a terminal; piped output gets the
	// plain table.
	if !flagPlainScores && term.IsTerminal(int(os.Stdout.Fd())) {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunScoreboard(store, mode, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", err)
			os.Exit(1)
		}
		return
	}

	printScores(store, mode)
}

// printScores writes the top 10 as a plain-text table.
func printScores(store *storage.Store, mode string) {
	game, err := registry.Create(mode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating mode: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	scores, err := store.TopScores(mode, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'beatdash play %s' to set the first high score!\n", mode)
		return
	}

	fmt.Printf("  %-4s  %-10s  %-16s  %s\n", "Rank", "Score", "Playlist", "Date")
	fmt.Printf("  %-4s  %-10s  %-16s  %s\n", "----", "-----", "--------", "----")

	for i, entry := range scores {
		playlist := entry.Playlist
		if playlist == "" {
			playlist = "-"
		}
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-16s  %s\n", i+1, entry.Score, playlist, dateStr)
	}

	fmt.Println()
	highScore, err := store.HighScore(mode)
	if err == nil {
		fmt.Printf("Best: %d\n", highScore)
	}
}
