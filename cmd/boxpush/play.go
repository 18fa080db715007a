package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/fdfdjfk3/box-pushing-game/internal/game"
	"github.com/fdfdjfk3/box-pushing-game/internal/platform/tui"
	"github.com/fdfdjfk3/box-pushing-game/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the campaign",
	Long: `Start the campaign in the current terminal.

Controls:
  Arrows/WASD - Move (walk into a box to push it)
  R           - Restart the current level
  Q/Ctrl+C    - Quit

Push boxes onto buttons to hold doors open; every button sharing an id
must be covered at once. Reach the goal (#) to advance.

Examples:
  boxpush play
  boxpush play --levels ./my-levels
  boxpush play --db ./completions.db`,
	Run: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := loadAppConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	campaign, err := loadCampaign(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading levels: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Open completion storage
	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open completions database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	session := game.NewSession(campaign, cfg.PlayerRune(game.DefaultPlayerGlyph))
	runErr := tui.Run(session, store, width, height)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
