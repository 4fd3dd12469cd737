// cardfall is a TUI puzzle platform for playing card-dropping games in the terminal.
//
// Usage:
//
//	cardfall list              - List available game modes
//	cardfall play <mode>       - Play a mode directly
//	cardfall menu              - Start menu to pick a mode interactively
//	cardfall serve             - Start SSH server for remote play
//	cardfall scores <mode>     - Show high scores for a mode
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.cardfall/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/cardfall/internal/games/blitz21"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "cardfall",
	Short: "Cardfall - A falling-card puzzle for your terminal",
	Long: `Cardfall is a terminal puzzle game where playing cards fall onto a board.
Steer each card as it drops and build connected runs that sum to exactly 21
to clear them. Aces count as 1 or 11, whichever completes a run.

Available commands:
  list     - Show all available game modes
  play     - Play a specific mode directly
  menu     - Interactive mode picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  cardfall list
  cardfall play blitz21
  cardfall menu
  cardfall serve --ssh :2222
  cardfall scores blitz21_hard`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.cardfall/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
