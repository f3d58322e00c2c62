package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bubble-arcade/internal/registry"
	"github.com/vovakirdan/bubble-arcade/internal/storage"
)

var (
	flagScoresClear bool
	flagScoresLimit int
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores and level statistics",
	Long: `Display the top high scores and per-level round statistics for a
mode (default: bubbles).

Examples:
  bubbles scores
  bubbles scores bubbles_random --limit 20
  bubbles scores --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all scores and rounds of the mode")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID := "bubbles"
	if len(args) > 0 {
		gameID = args[0]
	}

	game, ok := registry.Lookup(gameID)
	if !ok {
		return fmt.Errorf("unknown mode %q (run 'bubbles list' to see available modes)", gameID)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Printf("Cleared scores for %s\n", game.Title)
		return nil
	}

	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", game.Title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'bubbles play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	if sum, err := store.Summary(gameID); err == nil {
		fmt.Println()
		fmt.Printf("Best: %d  Average: %.1f  Rounds scored: %d  Last: %s\n",
			sum.Best, sum.Average, sum.Count, sum.LastPlayed.Format("2006-01-02 15:04"))
	}

	levelStats, err := store.LevelStats(gameID)
	if err != nil || len(levelStats) == 0 {
		return err
	}
	fmt.Println()
	fmt.Println("Levels")
	fmt.Printf("  %-14s  %-6s  %-4s  %-5s  %s\n", "Level", "Played", "Won", "Best", "Fewest shots")
	fmt.Printf("  %-14s  %-6s  %-4s  %-5s  %s\n", "-----", "------", "---", "----", "------------")
	for _, ls := range levelStats {
		shots := "-"
		if ls.FewestShots > 0 {
			shots = fmt.Sprint(ls.FewestShots)
		}
		fmt.Printf("  %-14s  %-6d  %-4d  %-5d  %s\n", ls.LevelID, ls.Played, ls.Won, ls.BestScore, shots)
	}
	return nil
}
