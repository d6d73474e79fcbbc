package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var (
	flagSize       int
	flagSeed       int64
	flagResume     bool
	flagEndless    bool
	flagNoAutosave bool
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game of 2048.

Controls:
  Arrows/WASD/hjkl - Tilt the board
  R                - Restart
  ?                - Toggle help
  Q/Esc/Ctrl+C     - Quit (the game in progress is saved)

Difficulty options:
  easy   - Few 4s, slowly becoming more common
  normal - The classic 10% chance of a 4, rising with score
  hard   - Many 4s from the start
  fixed  - The chance of a 4 never changes

Examples:
  t2048 play
  t2048 play --size 5 --difficulty hard
  t2048 play --resume
  t2048 play --endless --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagSize, "size", 0, "Board size (default from config)")
	playCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	playCmd.Flags().BoolVar(&flagResume, "resume", false, "Continue the saved game for this board size")
	playCmd.Flags().BoolVar(&flagEndless, "endless", false, "Keep playing after reaching the winning tile")
	playCmd.Flags().BoolVar(&flagNoAutosave, "no-autosave", false, "Do not save the game in progress")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	if flagSize != 0 {
		cfg.Board.Size = flagSize
	}
	if flagEndless {
		cfg.Board.MaxPiece = 0
	}
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	config.ApplyPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog := newLogger(cfg, true)
	defer closeLog()

	store := openStore(cfg, logger)
	if store != nil {
		defer store.Close()
	}

	var resume *t2048.Snapshot
	if flagResume {
		resume = loadSave(store, cfg.Board.Size)
		if resume == nil {
			fmt.Fprintf(os.Stderr, "No saved %dx%d game to resume.\n", cfg.Board.Size, cfg.Board.Size)
			os.Exit(1)
		}
	}

	width, height := terminalSize()
	res, err := tui.Run(tui.Options{
		Config:   cfg,
		Seed:     flagSeed,
		Store:    store,
		Logger:   logger,
		Resume:   resume,
		Autosave: !flagNoAutosave,
		Width:    width,
		Height:   height,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	printResult(res)
}

// loadSave returns the saved game for size, or nil.
func loadSave(store *storage.Store, size int) *t2048.Snapshot {
	if store == nil {
		return nil
	}
	snap, err := store.LoadSnapshot(size)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not load saved game: %v\n", err)
		return nil
	}
	return snap
}

func printResult(res tui.Result) {
	status := "in progress"
	if res.GameOver {
		status = "over"
	}
	fmt.Printf("Score: %d  Highest tile: %d  Moves: %d  Game %s\n", res.Score, res.MaxTile, res.Moves, status)
}
