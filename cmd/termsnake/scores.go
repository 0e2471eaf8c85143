package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ardzh/termsnake/internal/platform/tui"
	"github.com/ardzh/termsnake/internal/storage"
)

var (
	flagInteractive bool
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best recorded runs",
	Long: `Display the top 10 runs, or browse all of them interactively.

Examples:
  termsnake scores
  termsnake scores --interactive
  termsnake scores --clear`,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagInteractive, "interactive", false, "Browse runs in a scrollable table")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded runs")
}

func runScores(_ *cobra.Command, _ []string) error {
	if flagDBPath == "" {
		return fmt.Errorf("scores: no database configured (--db is empty)")
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(); err != nil {
			return err
		}
		fmt.Println("All runs cleared.")
		return nil
	}

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		return tui.RunScoreboard(store, width, height)
	}

	runs, err := store.TopRuns(10)
	if err != nil {
		return err
	}

	fmt.Println("Best runs")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'termsnake play' to set the first score!")
		return nil
	}

	fmt.Printf("  %-4s  %-7s  %-6s  %-5s  %s\n", "Rank", "Apples", "Ticks", "End", "Date")
	fmt.Printf("  %-4s  %-7s  %-6s  %-5s  %s\n", "----", "------", "-----", "---", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-7d  %-6d  %-5s  %s\n",
			i+1, r.Score, r.Ticks, r.Cause, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	high, err := store.HighScore()
	if err == nil {
		fmt.Println()
		fmt.Printf("Best: %d\n", high)
	}
	return nil
}
