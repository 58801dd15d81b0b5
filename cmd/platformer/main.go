// platformer is a deterministic side-scrolling platformer for the terminal.
//
// Usage:
//
//	platformer play               - Play in the terminal
//	platformer run                - Run the simulation headless and print the state hash
//	platformer scores <level>     - Show high scores for a level
//	platformer serve              - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--db <path>         - Set database path (default: ~/.platformer/scores.db)
//	--config <path>     - Path to custom tuning YAML
//	--assets-dir <dir>  - Directory searched for level files
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS       int
	flagDBPath    string
	flagConfig    string
	flagAssetsDir string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "platformer",
	Short: "A deterministic platformer in your terminal",
	Long: `A side-scrolling platformer that runs the same fixed-point simulation
everywhere: in your terminal, headless for replay verification, or served
over SSH.

Available commands:
  play     - Play a level in the terminal
  run      - Run the simulation headless and print the state hash
  scores   - View high scores
  serve    - Start SSH server for remote play

Examples:
  platformer play
  platformer play --level assets/levels/level1.txt
  platformer run --ticks 1200
  platformer run --replay run.jsonl --expect-hash 0x1a2b3c
  platformer scores level1
  platformer serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.platformer/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
	rootCmd.PersistentFlags().StringVar(&flagAssetsDir, "assets-dir", "assets/levels", "Directory searched for level files")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
