// bubbles is a terminal bubble shooter.
//
// Usage:
//
//	bubbles list                - List available game modes
//	bubbles play [game]         - Play a game mode (default: bubbles)
//	bubbles menu                - Start menu to pick modes interactively
//	bubbles levels list         - List playable levels
//	bubbles levels validate     - Check level files against the board
//	bubbles levels preview <id> - Print a level as ASCII
//	bubbles sim                 - Let the bot play headless
//	bubbles scores [game]       - Show high scores and level statistics
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.bubbles/scores.db)
//	--log-level <level> - debug, info, warn, error (default: warn)
//	--log-file <path>   - Write logs to a file while the TUI runs
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/bubble-arcade/internal/games/bubbles"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bubbles",
	Short: "Bubbles - a bubble shooter for your terminal",
	Long: `Bubbles is a terminal bubble shooter: aim, shoot colored bubbles
into a hex grid and clear groups of three or more.

Available commands:
  list     - Show the game modes
  play     - Play a mode directly
  menu     - Interactive mode picker
  levels   - List, validate and preview levels
  sim      - Run the autoplay bot headless
  scores   - View high scores and level statistics

Examples:
  bubbles play
  bubbles play bubbles_random --difficulty hard
  bubbles levels validate ./my-levels
  bubbles sim --rounds 10 --seed 42`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.bubbles/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file (the TUI discards logs without one)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(scoresCmd)
}

// newLogger builds the CLI logger writing to w.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "bubbles",
		Level:           level,
	})
	return logger, nil
}

// setupLogger installs the game logger. tui commands own the terminal, so
// they log only to --log-file. The returned closer releases the file.
func setupLogger(tui bool) (func(), error) {
	var w io.Writer = os.Stderr
	closer := func() {}

	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closer = func() { f.Close() }
	case tui:
		w = io.Discard
	}

	logger, err := newLogger(w)
	if err != nil {
		closer()
		return nil, err
	}
	bubbles.SetLogger(logger)
	return closer, nil
}
