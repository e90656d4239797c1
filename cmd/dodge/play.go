package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/tiltdodge/dodge/internal/config"
	"github.com/tiltdodge/dodge/internal/core"
	"github.com/tiltdodge/dodge/internal/platform/tui"
	"github.com/tiltdodge/dodge/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start the game in the difficulty menu.

Controls:
  Left/Right  - Tilt (move the avatar)
  Up/Down     - Rotate the encoder (menu selection)
  Enter/Space - Button (confirm, pause, resume)
  Ctrl+S      - Save a screenshot
  Q/Ctrl+C    - Quit

Difficulty presets preselect the menu entry:
  easy   - Slow claws, long spawn gaps
  medium - Faster claws
  hard   - Fast claws, short spawn gaps

Examples:
  dodge play
  dodge play --difficulty hard
  dodge play --config ./my-dodge.yaml
  dodge play --seed 42`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, medium, hard")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size for the screen buffer
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	cursor := config.CursorForPreset(config.DifficultyPreset(flagDifficulty))
	runErr := tui.Run(gameCfg, store, cfg, cursor)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
