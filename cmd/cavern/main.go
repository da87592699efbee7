// cavern is a terminal arcade game: trap robots in blown orbs, pop them into
// fruit, and survive as deep into the cave as you can.
//
// Usage:
//
//	cavern play              - Play directly
//	cavern menu              - Start at the title screen
//	cavern serve             - Start SSH server for remote play
//	cavern scores            - Show saved high scores
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.cavern/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	// Register the game with the registry.
	_ "github.com/cavern-arcade/cavern/internal/games/cavern"
)

var (
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
	Use:   "cavern",
	Short: "Cavern - trap robots in orbs, pop them into fruit",
	Long: `Cavern is a single-screen terminal arcade game. Blow orbs to trap
the robots patrolling the cave, then pop the orbs to turn them into fruit.

Available commands:
  play     - Play directly with the given difficulty
  menu     - Interactive title screen
  serve    - Start SSH server for remote play
  scores   - View saved high scores

Examples:
  cavern play
  cavern play --difficulty hard
  cavern menu
  cavern serve --ssh :2222
  cavern scores`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.cavern/runs.db", "Path to runs database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// termSize reports the current terminal dimensions with sane fallbacks.
func termSize() (int, int) {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}
