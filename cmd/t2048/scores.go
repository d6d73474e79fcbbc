package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagScoresSize  int
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores for a board size",
	Long: `Display the best finished games for a board size.

Examples:
  t2048 scores
  t2048 scores --size 5 --limit 20
  t2048 scores --size 3 --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresSize, "size", 0, "Board size (default from config)")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of games to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all recorded games for the board size")
}

func runScores(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	size := cfg.Board.Size
	if flagScoresSize != 0 {
		size = flagScoresSize
	}

	logger, closeLog := newLogger(cfg, false)
	defer closeLog()

	store := openStore(cfg, logger)
	if store == nil {
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearGames(size); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		logger.Info("scores cleared", "size", size)
		fmt.Printf("Cleared all %dx%d games.\n", size, size)
		return
	}

	games, err := store.TopGames(size, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - %dx%d\n", size, size)
	fmt.Println()

	if len(games) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 't2048 play --size %d' to set the first high score!\n", size)
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %-6s  %-6s  %s\n", "Rank", "Score", "Tile", "Moves", "Date")
	fmt.Printf("  %-4s  %-10s  %-6s  %-6s  %s\n", "----", "-----", "----", "-----", "----")

	for i, g := range games {
		dateStr := g.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-6d  %-6d  %s\n", i+1, g.Score, g.MaxTile, g.Moves, dateStr)
	}

	fmt.Println()
	stats, err := store.Stats(size)
	if err == nil {
		fmt.Printf("Games: %d  Best: %d  Average: %.0f  Best tile: %d\n",
			stats.GamesCount, stats.BestScore, stats.AvgScore, stats.BestTile)
	}
}
