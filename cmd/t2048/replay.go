package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/scenario"
)

var flagVerbose bool

var replayCmd = &cobra.Command{
	Use:   "replay <scenario.yaml|dir>...",
	Short: "Replay scenario files",
	Long: `Replay scripted games and check the expected outcome.

A scenario file lists a starting board (top row first), a sequence of
tilts and tile additions, and the expected final state:

  name: three in a row
  board:
    rows:
      - [0, 0, 0, 0]
      - [2, 0, 0, 0]
      - [2, 0, 0, 0]
      - [2, 0, 0, 0]
  steps:
    - tilt: north
    - add: {value: 2, col: 3, row: 0}
  expect:
    score: 4

Directories are searched for .yaml and .yml files. The command exits
with status 1 if any scenario fails.

Examples:
  t2048 replay internal/scenario/testdata
  t2048 replay --verbose my-game.yaml`,
	Args: cobra.MinimumNArgs(1),
	Run:  runReplay,
}

func init() {
	replayCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Print the board after every step")
}

func runReplay(_ *cobra.Command, args []string) {
	cfg := loadConfig()
	logger, closeLog := newLogger(cfg, false)
	defer closeLog()

	var scenarios []scenario.Scenario
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if info.IsDir() {
			found, err := scenario.LoadAll(arg)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			scenarios = append(scenarios, found...)
			continue
		}
		sc, err := scenario.Load(arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		scenarios = append(scenarios, sc)
	}

	failed := 0
	for i := range scenarios {
		sc := &scenarios[i]
		res, err := sc.Run()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			failed++
			continue
		}

		fmt.Printf("=== %s (%s)\n", sc.Name, sc.Path)
		if flagVerbose {
			fmt.Print(res.Start)
			for j, step := range res.Steps {
				fmt.Printf("-- %d. %v\n", j+1, step.Step)
				if step.Err != nil {
					fmt.Printf("   rejected: %v\n", step.Err)
				}
				fmt.Print(step.Rendering)
			}
		} else {
			fmt.Print(res.Rendering)
		}

		if err := res.Check(); err != nil {
			failed++
			fmt.Printf("FAIL: %v\n\n", err)
			logger.Warn("scenario failed", "name", sc.Name, "path", sc.Path)
			continue
		}
		fmt.Printf("ok\n\n")
		logger.Debug("scenario passed", "name", sc.Name, "steps", len(sc.Steps))
	}

	fmt.Printf("%d scenarios, %d failed\n", len(scenarios), failed)
	if failed > 0 {
		os.Exit(1)
	}
}
