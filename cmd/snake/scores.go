package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagInteractive bool
	flagScoresMode  string
	flagRuns        int
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores and recent runs",
	Long: `Display the top 10 high scores and the latest runs of a mode.

Examples:
  snake scores
  snake scores --mode snake_endless
  snake scores --runs 20
  snake scores --interactive`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse scores in the terminal UI")
	scoresCmd.Flags().StringVar(&flagScoresMode, "mode", tui.CampaignID, "Mode to show: "+tui.CampaignID+" or "+tui.EndlessID)
	scoresCmd.Flags().IntVar(&flagRuns, "runs", 5, "Number of recent runs to show")
}

func runScores(_ *cobra.Command, _ []string) error {
	gameID := flagScoresMode
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown mode %q (available: %v)", gameID, registry.IDs())
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		_, err := tui.RunScoreboard(store, gameID, width, height)
		return err
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'snake play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.GetGameStats(gameID); err == nil && stats != nil {
		fmt.Println()
		fmt.Printf("Best: %d  Games: %d  Average: %.1f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
	}

	if flagRuns <= 0 {
		return nil
	}
	runs, err := store.RecentRuns(gameID, flagRuns)
	if err != nil {
		return fmt.Errorf("retrieving runs: %w", err)
	}
	if len(runs) == 0 {
		return nil
	}

	fmt.Println()
	fmt.Println("Recent runs:")
	fmt.Printf("  %-8s  %-6s  %-6s  %-6s  %s\n", "ID", "Score", "Length", "Ended", "Date")
	for _, r := range runs {
		fmt.Printf("  %-8s  %-6d  %-6d  %-6s  %s\n", r.ID[:8], r.Score, r.Length, r.EndReason, r.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
