package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cavern-arcade/cavern/internal/core"
	"github.com/cavern-arcade/cavern/internal/platform/tui"
	"github.com/cavern-arcade/cavern/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start at the title screen",
	Long: `Open the title screen, pick a difficulty, and play. The scoreboard
is reachable from the title screen too.

Examples:
  cavern menu`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	width, height := termSize()
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		store = nil
	}

	runErr := tui.RunSession(store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}
