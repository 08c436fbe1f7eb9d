package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-slash/internal/registry"
	"github.com/vovakirdan/tui-slash/internal/storage"
)

var (
	flagShowRuns bool
	flagClear    bool
	flagLimit    int
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores or recent runs",
	Long: `Display the top scores for a mode (classic by default).

With --runs, list the latest runs instead, including abandoned ones.
With --clear, delete the mode's scores and runs.

Examples:
  slash scores
  slash scores endless
  slash scores --runs --limit 20
  slash scores --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagShowRuns, "runs", false, "Show recent runs instead of top scores")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores and runs for the mode")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of entries to show")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := resolveMode(args)

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'slash list' to see available modes.")
		os.Exit(1)
	}
	title := registry.Title(gameID)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagClear:
		err = store.ClearScores(gameID)
		if err == nil {
			fmt.Printf("Cleared scores and runs for %s.\n", title)
		}
	case flagShowRuns:
		err = printRuns(store, gameID, title)
	default:
		err = printScores(store, gameID, title)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		store.Close()
		os.Exit(1)
	}
}

func printScores(store *storage.Store, gameID, title string) error {
	scores, err := store.TopScores(gameID, flagLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'slash play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Println()
		fmt.Printf("Best: %d  Games: %d  Wins: %d  Cuts: %d\n",
			stats.HighScore, stats.GamesCount, stats.Wins, stats.TotalCuts)
	}
	return nil
}

func printRuns(store *storage.Store, gameID, title string) error {
	runs, err := store.RecentRuns(gameID, flagLimit)
	if err != nil {
		return fmt.Errorf("retrieving runs: %w", err)
	}

	fmt.Printf("Recent Runs - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	fmt.Printf("  %-16s  %-7s  %-4s  %-5s  %-9s  %-8s  %s\n", "Player", "Score", "Cuts", "Area", "Result", "Time", "Date")
	fmt.Printf("  %-16s  %-7s  %-4s  %-5s  %-9s  %-8s  %s\n", "------", "-----", "----", "----", "------", "----", "----")
	for _, r := range runs {
		fmt.Printf("  %-16s  %-7d  %-4d  %-5s  %-9s  %-8s  %s\n",
			r.Player,
			r.Run.Score,
			r.Run.Cuts,
			fmt.Sprintf("%.0f%%", r.Run.AreaLeft*100),
			r.Run.Outcome,
			r.Run.Duration.Round(100*time.Millisecond),
			r.CreatedAt.Format("2006-01-02 15:04"),
		)
	}
	return nil
}
