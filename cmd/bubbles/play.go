package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/bubble-arcade/internal/core"
	"github.com/vovakirdan/bubble-arcade/internal/games/bubbles"
	"github.com/vovakirdan/bubble-arcade/internal/platform/tui"
	"github.com/vovakirdan/bubble-arcade/internal/registry"
	"github.com/vovakirdan/bubble-arcade/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLevel      string
	flagLevelsDir  string
	flagPick       bool
	flagTheme      string
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game mode",
	Long: `Start playing the given mode (default: bubbles).

Modes:
  bubbles         - Campaign, levels in order; a win advances
  bubbles_random  - A random level each round

Controls:
  Left/Right, A/D  - Aim
  Up/Down, W/S     - Launch power (full power spreads the shot)
  Space            - Fire
  Enter            - Next round (after a round ends)
  P                - Pause
  R                - Restart session (after a round ends)
  Esc              - Back
  Q/Ctrl+C         - Quit
  ?                - Toggle full help

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  bubbles play
  bubbles play --pick
  bubbles play --level 05_rainbow --difficulty hard
  bubbles play bubbles_random --levels-dir ./my-levels`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

// addGameFlags registers the flags shared by play and menu.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	cmd.Flags().StringVar(&flagLevelsDir, "levels-dir", "", "Directory with custom level files")
	cmd.Flags().StringVar(&flagTheme, "theme", "default", "Menu theme: default, mono")
}

func init() {
	addGameFlags(playCmd)
	playCmd.Flags().StringVar(&flagLevel, "level", "", "Level ID to start with")
	playCmd.Flags().BoolVar(&flagPick, "pick", false, "Choose the start level from a list")
}

// applyGameFlags hands the game flags to the bubbles package.
func applyGameFlags() {
	bubbles.SetConfigPath(flagConfig)
	bubbles.SetDifficultyPreset(flagDifficulty)
	bubbles.SetLevelsDir(flagLevelsDir)
	bubbles.SetStartLevel(flagLevel)
	tui.SetTheme(tui.ThemeByName(flagTheme))
}

// runtimeConfig returns the runtime config for the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the scores database. Failure is not fatal: the game
// runs without scores.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := "bubbles"
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q (run 'bubbles list' to see available modes)", gameID)
	}

	closeLog, err := setupLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	applyGameFlags()
	cfg := runtimeConfig()

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	if flagPick {
		levelID, ok, err := tui.RunLevelSelector(tui.LevelChoices(store, gameID), cfg)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		bubbles.SetStartLevel(levelID)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	if _, err := tui.Run(game, store, cfg); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
