// t2048 is the 2048 sliding-tile puzzle for the terminal.
//
// Usage:
//
//	t2048                    - Start menu to pick a board size and mode
//	t2048 play               - Play a game directly
//	t2048 replay <files>     - Replay scripted scenarios and check their outcome
//	t2048 scores             - Show high scores for a board size
//
// Global flags:
//
//	--config <path>     - Configuration file (default: ~/.t2048/config.yaml)
//	--db <path>         - Database path (default: storage.path from config)
//	--log-level <level> - debug, info, warn or error
//	--log-file <path>   - Write logs to a file instead of stderr
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "t2048",
	Short: "2048 - Slide and merge tiles in your terminal",
	Long: `t2048 is the 2048 sliding-tile puzzle for the terminal.

Tilt the board to slide every tile toward one side. Two equal tiles
that collide merge into one tile of twice the value, and the merged
value is added to your score. Reach the 2048 tile to win; the game
also ends when no move is left.

Available commands:
  play     - Play a game directly
  replay   - Replay scenario files
  scores   - View high scores

Run without a command to open the start menu.

Examples:
  t2048
  t2048 play --size 5
  t2048 replay scenarios/
  t2048 scores --size 4`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(scoresCmd)
}

// loadConfig loads the configuration file and exits on error.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// newLogger builds the application logger. The returned function closes the log file, if any.
// While a full-screen program runs, logging to stderr would corrupt the display,
// so interactive commands pass quiet and only log when --log-file is set.
func newLogger(cfg config.Config, quiet bool) (*log.Logger, func()) {
	var w io.Writer = os.Stderr
	closeFn := func() {}

	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
			w = io.Discard
		} else {
			w = f
			closeFn = func() { f.Close() }
		}
	} else if quiet {
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "t2048",
	})

	levelName := cfg.Log.Level
	if flagLogLevel != "" {
		levelName = flagLogLevel
	}
	if levelName != "" {
		level, err := log.ParseLevel(levelName)
		if err != nil {
			logger.Warn("unknown log level, using info", "level", levelName)
			level = log.InfoLevel
		}
		logger.SetLevel(level)
	}

	return logger, closeFn
}

// openStore opens the scores database, or returns nil with a warning.
func openStore(cfg config.Config, logger *log.Logger) *storage.Store {
	path := cfg.Storage.Path
	if flagDBPath != "" {
		path = flagDBPath
	}
	store, err := storage.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores disabled", "path", path, "error", err)
		return nil
	}
	return store
}

// terminalSize returns the terminal size, or 80x24 if it is unknown.
func terminalSize() (int, int) {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}
