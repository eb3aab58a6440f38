package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/JJC3321/BeatDash/internal/config"
	"github.com/JJC3321/BeatDash/internal/modes"
	"github.com/JJC3321/BeatDash/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagSSHDBPath   string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the BeatDash SSH server",
	Long: `Start an SSH server that lets users connect and play.

The configuration is resolved once at startup (from --playlist or
--config); every connecting session plays that setup with a fresh seed.
Scores are stored per-server (all users share the same leaderboard).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.beatdash/host_key

Examples:
  beatdash serve                           # Listen on :23234
  beatdash serve --ssh :2222 --playlist workout-mix
  beatdash serve --host-key ./my_host_key
  beatdash serve --db ./scores.db

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().StringVar(&flagSSHDBPath, "db", "~/.beatdash/scores.db", "Path to scores database")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagPlaylist, "playlist", "", "Playlist name to generate the game from")
	serveCmd.Flags().StringVar(&flagConfig, "config", "", "Path to a game configuration file")
	serveCmd.Flags().StringVar(&flagMetricsURL, "metrics-url", "", "Base URL of a metrics service (falls back to local analysis)")
}

func runServe(_ *cobra.Command, _ []string) {
	gameCfg, err := buildConfiguration()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}
	modes.SetConfiguration(gameCfg)

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagSSHDBPath,
		Playlist:    flagPlaylist,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	mode := gameCfg.GameType
	if mode == "" {
		mode = config.GameTypePlatformer
	}
	fmt.Printf("Starting BeatDash SSH server on %s (mode: %s)\n", cfg.Address, mode)
	fmt.Println("Connect with: ssh localhost -p 23234")
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
