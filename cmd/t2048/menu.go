package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/platform/tui"
)

func runMenu(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	logger, closeLog := newLogger(cfg, true)
	defer closeLog()

	store := openStore(cfg, logger)
	if store != nil {
		defer store.Close()
	}

	width, height := terminalSize()
	size := cfg.Board.Size

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(store, size, width, height)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}
		size = menuResult.Size
		if menuResult.Width > 0 && menuResult.Height > 0 {
			width, height = menuResult.Width, menuResult.Height
		}

		opts := tui.Options{
			Config:   cfg,
			Store:    store,
			Logger:   logger,
			Autosave: true,
			Width:    width,
			Height:   height,
		}
		opts.Config.Board.Size = size

		switch menuResult.Choice {
		case tui.ChoiceNone:
			return

		case tui.ChoiceScores:
			goBack, sbErr := tui.RunScoreboard(store, size, width, height)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			return // User quit from scoreboard

		case tui.ChoiceResume:
			opts.Resume = loadSave(store, size)

		case tui.ChoiceEndless:
			opts.Config.Board.MaxPiece = 0
		}

		if _, err := tui.Run(opts); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			logger.Error("game failed", "error", err)
		}
	}
}
