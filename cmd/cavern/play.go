package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cavern-arcade/cavern/internal/config"
	"github.com/cavern-arcade/cavern/internal/core"
	"github.com/cavern-arcade/cavern/internal/games/cavern"
	"github.com/cavern-arcade/cavern/internal/platform/tui"
	"github.com/cavern-arcade/cavern/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a run directly, skipping the title screen.

Controls:
  A/D, Left/Right  - Walk
  W/Up             - Jump
  Space/Z          - Blow an orb (hold to blow it further)
  P/Esc            - Pause
  R                - Restart (after game over)
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  cavern play
  cavern play --difficulty hard
  cavern play --config ./my-cavern.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(_ *cobra.Command, _ []string) {
	gameCfg, err := config.LoadCavern(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Only stomp the loaded config when a preset was asked for, so custom
	// config files keep their own difficulty settings.
	preset := config.DifficultyNormal
	if flagDifficulty != "" {
		preset = config.DifficultyPreset(flagDifficulty)
		config.ApplyCavernPreset(&gameCfg, preset)
	}

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

	runErr := tui.Run(cavern.New(gameCfg), store, cfg, string(preset))

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
