// Package scenario loads and replays scripted 2048 games described in YAML.
//
// A scenario lists a starting board with rows written top row first, as the
// board is displayed, followed by tilts and tile additions and the state
// expected at the end.
package scenario

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

// Scenario is a parsed scenario file.
type Scenario struct {
	Name    string  `yaml:"name"`
	Board   Board   `yaml:"board"`
	Options Options `yaml:"options"`
	Steps   []Step  `yaml:"steps"`
	Expect  Expect  `yaml:"expect"`

	Path string `yaml:"-"`
}

// Board is the starting state.
type Board struct {
	Rows     [][]int `yaml:"rows"` // Top row first
	Score    int     `yaml:"score"`
	MaxScore int     `yaml:"max_score"`
	GameOver bool    `yaml:"game_over"`
}

// Options mirror the rule settings of a model.
type Options struct {
	MaxPiece              *int `yaml:"max_piece"`
	CountStationarySlides bool `yaml:"count_stationary_slides"`
}

// Step is either a tilt or a tile addition, with optional expectations.
type Step struct {
	Tilt *t2048.Side `yaml:"tilt,omitempty"`
	Add  *Add        `yaml:"add,omitempty"`

	Changed  *bool `yaml:"changed,omitempty"`  // Expected result of a tilt
	Rejected *bool `yaml:"rejected,omitempty"` // Expected rejection of an add
}

// Add places a tile at an absolute cell.
type Add struct {
	Value int `yaml:"value"`
	Col   int `yaml:"col"`
	Row   int `yaml:"row"`
}

// Expect describes the final state. Unset fields are not checked.
type Expect struct {
	Rows     [][]int `yaml:"rows"` // Top row first
	Score    *int    `yaml:"score"`
	MaxScore *int    `yaml:"max_score"`
	GameOver *bool   `yaml:"game_over"`
}

// String describes the step the way it is written in a file.
func (s Step) String() string {
	switch {
	case s.Tilt != nil:
		return "tilt " + s.Tilt.String()
	case s.Add != nil:
		return fmt.Sprintf("add %d at (%d,%d)", s.Add.Value, s.Add.Col, s.Add.Row)
	default:
		return "empty step"
	}
}

// Parse decodes and validates a scenario.
func Parse(data []byte) (Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return Scenario{}, fmt.Errorf("scenario: yaml unmarshal: %w", err)
	}
	if err := sc.validate(); err != nil {
		return Scenario{}, err
	}
	return sc, nil
}

// Load reads and parses a scenario file. The name defaults to the file name.
func Load(path string) (Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("scenario: reading file %s: %w", path, err)
	}
	sc, err := Parse(data)
	if err != nil {
		return Scenario{}, fmt.Errorf("%s: %w", path, err)
	}
	sc.Path = path
	if sc.Name == "" {
		sc.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return sc, nil
}

// LoadAll loads every .yaml or .yml file under root, sorted by path.
// Unlike Load it fails on the first invalid file.
func LoadAll(root string) ([]Scenario, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml":
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scenario: walking directory %s: %w", root, err)
	}
	sort.Strings(paths)

	scenarios := make([]Scenario, 0, len(paths))
	for _, path := range paths {
		sc, err := Load(path)
		if err != nil {
			return nil, err
		}
		scenarios = append(scenarios, sc)
	}
	return scenarios, nil
}

func (sc Scenario) validate() error {
	var errs []error
	size := len(sc.Board.Rows)
	if size == 0 {
		errs = append(errs, errors.New("board.rows is empty"))
	}
	for i, row := range sc.Board.Rows {
		if len(row) != size {
			errs = append(errs, fmt.Errorf("board.rows[%d] has %d cells, want %d", i, len(row), size))
		}
	}
	if sc.Expect.Rows != nil && len(sc.Expect.Rows) != size {
		errs = append(errs, fmt.Errorf("expect.rows has %d rows, want %d", len(sc.Expect.Rows), size))
	}
	for i, step := range sc.Steps {
		if (step.Tilt == nil) == (step.Add == nil) {
			errs = append(errs, fmt.Errorf("steps[%d] must set exactly one of tilt or add", i))
		}
		if step.Changed != nil && step.Tilt == nil {
			errs = append(errs, fmt.Errorf("steps[%d]: changed only applies to tilt", i))
		}
		if step.Rejected != nil && step.Add == nil {
			errs = append(errs, fmt.Errorf("steps[%d]: rejected only applies to add", i))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("scenario: invalid: %w", errors.Join(errs...))
	}
	return nil
}

// modelOptions converts the scenario options into model options.
func (sc Scenario) modelOptions() []t2048.Option {
	opts := []t2048.Option{t2048.WithStationarySlides(sc.Options.CountStationarySlides)}
	if sc.Options.MaxPiece != nil {
		opts = append(opts, t2048.WithMaxPiece(*sc.Options.MaxPiece))
	}
	return opts
}

// flipRows converts rows written top row first into values indexed
// [row][col] with row 0 at the bottom, and back.
func flipRows(rows [][]int) [][]int {
	flipped := make([][]int, len(rows))
	for i, r := range rows {
		flipped[len(rows)-1-i] = r
	}
	return flipped
}
