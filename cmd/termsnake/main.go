// termsnake is a terminal snake game with a built-in difficulty ramp: each
// tick waits for one steering key, and the wait shrinks as the game goes on.
//
// Usage:
//
//	termsnake play             - Play a game
//	termsnake scores           - Show the best runs
//
// Global flags:
//
//	--seed <value>  - RNG seed for reproducible apple placement
//	--db <path>     - Scores database path (empty disables score keeping)
//	--config <path> - Custom YAML config
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed   int64
	flagDBPath string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "termsnake",
	Short: "Snake in your terminal, against a shrinking clock",
	Long: `termsnake is a terminal snake game. Steer with A (turn left) and D
(turn right); any other key or no key at all keeps the snake going straight.
Every tick the input window shrinks, so the game speeds up on its own.

Examples:
  termsnake play
  termsnake play --difficulty hard
  termsnake scores
  termsnake scores --interactive`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Bare invocation starts a game, like the original script did
		return runPlay(cmd, args)
	},
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.termsnake/scores.db", "Path to scores database (empty to disable)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
}
