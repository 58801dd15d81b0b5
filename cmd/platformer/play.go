package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

var flagPlayLevel string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a level in the terminal",
	Long: `Start playing. Without --level the built-in level is used.

Controls:
  Left/Right, A/D  - Move
  Space/Up/W       - Jump (release early for a short hop)
  Enter            - Start
  R                - Restart the run
  Esc              - Back to title / quit
  Q/Ctrl+C         - Quit

Examples:
  platformer play
  platformer play --level assets/levels/level1.txt
  platformer play --level level1 --fps 30`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPlayLevel, "level", "", "Level file or name under --assets-dir")
}

func runPlay(cmd *cobra.Command, args []string) {
	logger := newLogger()
	cfg := loadTuning(logger)
	name, contents := resolveLevel(logger, flagPlayLevel, cfg)

	// Refuse terminals the playfield cannot fit into.
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		if w < 40 || h < 10 {
			fmt.Fprintf(os.Stderr, "Error: terminal %dx%d is too small (need at least 40x10)\n", w, h)
			os.Exit(1)
		}
	}

	state := buildGame(logger, contents, cfg)

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		// Continue without storage - game still works
		store = nil
	}

	// Run the game
	runErr := tui.Run(state, store, name, flagFPS)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
