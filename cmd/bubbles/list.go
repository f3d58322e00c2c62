package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bubble-arcade/internal/games/bubbles"
	"github.com/vovakirdan/bubble-arcade/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all game modes",
	Long:  `Shows every registered mode with its playable level count and how the next level is chosen after a win.`,
	Run: func(cmd *cobra.Command, _ []string) {
		applyLevelFlags()
		writeModes(cmd.OutOrStdout(), registry.List(), len(bubbles.PlayableLevels()))
	},
}

// modeAdvance describes how a mode picks the level after a win.
var modeAdvance = map[string]string{
	"bubbles":        "next",
	"bubbles_random": "random",
}

func writeModes(w io.Writer, games []registry.GameInfo, levelCount int) {
	if len(games) == 0 {
		fmt.Fprintln(w, "No modes available.")
		return
	}

	idLen, titleLen := 2, 5
	for _, g := range games {
		idLen = max(idLen, len(g.ID))
		titleLen = max(titleLen, len(g.Title))
	}

	fmt.Fprintf(w, "  %-*s  %-*s  %-6s  %s\n", idLen, "ID", titleLen, "Title", "Levels", "After win")
	fmt.Fprintf(w, "  %-*s  %-*s  %-6s  %s\n", idLen, "--", titleLen, "-----", "------", "---------")
	for _, g := range games {
		advance, ok := modeAdvance[g.ID]
		if !ok {
			advance = "-"
		}
		fmt.Fprintf(w, "  %-*s  %-*s  %-6d  %s\n", idLen, g.ID, titleLen, g.Title, levelCount, advance)
	}

	fmt.Fprintln(w)
	if levelCount == 0 {
		fmt.Fprintln(w, "No playable levels found; check --levels-dir.")
		return
	}
	fmt.Fprintln(w, "Run 'bubbles play <id>' to play.")
}

func init() {
	listCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	listCmd.Flags().StringVar(&flagLevelsDir, "levels-dir", "", "Directory with custom level files")
}
