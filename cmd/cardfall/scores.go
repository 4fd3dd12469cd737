package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cardfall/internal/registry"
	"github.com/vovakirdan/cardfall/internal/storage"
)

var (
	flagScoresAll   bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores",
	Long: `Display high scores.

Without a mode argument, shows a per-mode summary of every mode that has
been played. With a mode, shows its top 10 scores (or every score with
--all). --clear wipes the recorded scores for the given mode.

Examples:
  cardfall scores
  cardfall scores blitz21
  cardfall scores blitz21_hard --all
  cardfall scores blitz21 --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "Show every recorded score, not just the top 10")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all recorded scores for the mode")
}

func runScores(cmd *cobra.Command, args []string) {
	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 0 {
		runScoresSummary(store)
		return
	}

	gameID := args[0]

	// Check if mode exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'cardfall list' to see available modes.")
		os.Exit(1)
	}

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared all scores for %s.\n", gameID)
		return
	}

	// Get mode title
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	// Get scores: top 10, or everything with --all
	var scores []storage.ScoreEntry
	if flagScoresAll {
		scores, err = store.AllScores(gameID)
	} else {
		scores, err = store.TopScores(gameID, 10)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	// Display scores
	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'cardfall play %s' to set the first high score!\n", gameID)
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %-6s  %-7s  %s\n", "Rank", "Score", "Cards", "Chains", "Date")
	fmt.Printf("  %-4s  %-10s  %-6s  %-7s  %s\n", "----", "-----", "-----", "------", "----")

	// Print scores
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-6d  %-7d  %s\n", i+1, entry.Score, entry.CardsCleared, entry.Cascades, dateStr)
	}

	// Show high score
	fmt.Println()
	highScore, err := store.HighScore(gameID)
	if err == nil {
		fmt.Printf("Best: %d\n", highScore)
	}
}

// runScoresSummary prints per-mode aggregates for every mode played.
func runScoresSummary(store *storage.Store) {
	stats, err := store.GetAllGamesStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	if len(stats) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'cardfall play blitz21' to set the first high score!")
		return
	}

	ids := make([]string, 0, len(stats))
	for id := range stats {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Println("Score summary:")
	fmt.Println()
	fmt.Printf("  %-14s  %-7s  %-10s  %-10s  %s\n", "Mode", "Played", "Best", "Avg", "Last played")
	fmt.Printf("  %-14s  %-7s  %-10s  %-10s  %s\n", "----", "------", "----", "---", "-----------")

	for _, id := range ids {
		gs := stats[id]
		lastStr := gs.LastPlayed.Format("2006-01-02 15:04")
		fmt.Printf("  %-14s  %-7d  %-10d  %-10.0f  %s\n", id, gs.GamesCount, gs.HighScore, gs.AvgScore, lastStr)
	}

	fmt.Println()
	fmt.Println("Run 'cardfall scores <mode>' for a full leaderboard.")
}
