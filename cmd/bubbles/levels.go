package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bubble-arcade/internal/config"
	"github.com/vovakirdan/bubble-arcade/internal/games/bubbles"
	"github.com/vovakirdan/bubble-arcade/internal/games/bubbles/levels"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List, validate and preview levels",
	Long: `Work with level files.

Levels are .txt/.lvl text files (first line: shot budget, then one line
per row of color digits, '.' for an empty slot) or .yaml/.yml files.`,
}

var levelsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List playable levels",
	RunE: func(_ *cobra.Command, _ []string) error {
		applyLevelFlags()
		lvls := bubbles.PlayableLevels()
		if len(lvls) == 0 {
			fmt.Println("No playable levels.")
			return nil
		}

		maxIDLen := 2
		for _, l := range lvls {
			maxIDLen = max(maxIDLen, len(l.ID))
		}
		fmt.Printf("  %-*s  %-5s  %-5s  %s\n", maxIDLen, "ID", "Shots", "Cells", "Name")
		fmt.Printf("  %-*s  %-5s  %-5s  %s\n", maxIDLen, "--", "-----", "-----", "----")
		for _, l := range lvls {
			fmt.Printf("  %-*s  %-5d  %-5d  %s\n", maxIDLen, l.ID, l.Shots, len(l.Items), l.Title())
		}
		return nil
	},
}

var levelsValidateCmd = &cobra.Command{
	Use:   "validate [dir]",
	Short: "Check level files against the board",
	Long: `Load every level file and check it fits the configured board and
palette. Without a directory the builtin levels are checked.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLevelsValidate,
}

var levelsPreviewCmd = &cobra.Command{
	Use:   "preview <id>",
	Short: "Print a level as ASCII",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		applyLevelFlags()
		for _, l := range bubbles.PlayableLevels() {
			if l.ID == args[0] {
				fmt.Printf("%s (%d shots)\n", l.Title(), l.Shots)
				fmt.Print(bubbles.PreviewLevel(l))
				return nil
			}
		}
		return fmt.Errorf("unknown level %q (run 'bubbles levels list')", args[0])
	},
}

func init() {
	for _, c := range []*cobra.Command{levelsListCmd, levelsValidateCmd, levelsPreviewCmd} {
		c.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	}
	levelsListCmd.Flags().StringVar(&flagLevelsDir, "levels-dir", "", "Directory with custom level files")
	levelsPreviewCmd.Flags().StringVar(&flagLevelsDir, "levels-dir", "", "Directory with custom level files")

	levelsCmd.AddCommand(levelsListCmd)
	levelsCmd.AddCommand(levelsValidateCmd)
	levelsCmd.AddCommand(levelsPreviewCmd)
}

func applyLevelFlags() {
	bubbles.SetConfigPath(flagConfig)
	bubbles.SetLevelsDir(flagLevelsDir)
}

func runLevelsValidate(_ *cobra.Command, args []string) error {
	cfg, err := config.LoadBubbles(flagConfig)
	if err != nil {
		return err
	}
	palette := bubbles.Palette(cfg)

	loader := levels.Builtin()
	if len(args) > 0 {
		loader = levels.NewLoader(args[0])
	}
	paths, err := loader.Paths()
	if err != nil {
		return err
	}

	bad := 0
	for _, p := range paths {
		l, err := loader.LoadFile(p)
		if err == nil {
			err = levels.Validate(l, cfg.Field.Cols, cfg.Field.Rows, palette)
		}
		if err != nil {
			bad++
			fmt.Printf("  FAIL  %s: %v\n", p, err)
			continue
		}
		fmt.Printf("  ok    %s (%d shots, %d cells)\n", p, l.Shots, len(l.Items))
	}

	fmt.Println()
	fmt.Printf("%d of %d levels valid\n", len(paths)-bad, len(paths))
	if bad > 0 {
		return errors.New("invalid levels found")
	}
	return nil
}
