// Package config provides YAML-based configuration loading and
// difficulty presets for the 2048 game.
package config

import (
	"errors"
	"fmt"
)

// Config contains all configuration for a 2048 session.
type Config struct {
	Board   BoardConfig   `yaml:"board"`
	Rules   RulesConfig   `yaml:"rules"`
	Spawn   SpawnConfig   `yaml:"spawn"`
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
}

// BoardConfig defines the board dimensions and the winning tile.
type BoardConfig struct {
	Size     int `yaml:"size"`
	MaxPiece int `yaml:"max_piece"` // 0 = endless
}

// RulesConfig defines optional rule variations.
type RulesConfig struct {
	// CountStationarySlides reports a tilt as a change when a tile is examined
	// but stays where it is.
	CountStationarySlides bool `yaml:"count_stationary_slides"`
}

// SpawnConfig defines how new tiles appear.
type SpawnConfig struct {
	InitialTiles    int               `yaml:"initial_tiles"`
	FourProbability float64           `yaml:"four_probability"` // Probability of spawning 4 instead of 2
	Progression     ProgressionConfig `yaml:"progression"`
}

// ProgressionConfig defines how the four probability grows with score.
type ProgressionConfig struct {
	Type    string  `yaml:"type"`     // "score" or "none"
	MaxAt   int     `yaml:"max_at"`   // Score at which FourMax is reached
	FourMax float64 `yaml:"four_max"` // Four probability at full progression
}

// StorageConfig defines where scores and saved games live.
type StorageConfig struct {
	Path string `yaml:"path"`
}

// LogConfig defines logging behaviour.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. The empty string means no preset.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}

// ApplyPreset modifies the spawn settings based on a difficulty preset.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Spawn.FourProbability = 0.05
		cfg.Spawn.Progression.Type = "score"
		cfg.Spawn.Progression.FourMax = 0.10
	case DifficultyNormal:
		cfg.Spawn.FourProbability = 0.10
		cfg.Spawn.Progression.Type = "score"
		cfg.Spawn.Progression.FourMax = 0.20
	case DifficultyHard:
		cfg.Spawn.FourProbability = 0.20
		cfg.Spawn.Progression.Type = "score"
		cfg.Spawn.Progression.FourMax = 0.35
	case DifficultyFixed:
		cfg.Spawn.Progression.Type = "none"
	}
}

// Validate checks that the configuration describes a playable game.
func (c Config) Validate() error {
	var errs []error
	if c.Board.Size < 2 {
		errs = append(errs, fmt.Errorf("board.size must be at least 2, got %d", c.Board.Size))
	}
	if c.Board.MaxPiece != 0 && (c.Board.MaxPiece < 4 || c.Board.MaxPiece&(c.Board.MaxPiece-1) != 0) {
		errs = append(errs, fmt.Errorf("board.max_piece must be 0 or a power of two >= 4, got %d", c.Board.MaxPiece))
	}
	if c.Spawn.InitialTiles < 0 || c.Spawn.InitialTiles > c.Board.Size*c.Board.Size {
		errs = append(errs, fmt.Errorf("spawn.initial_tiles must fit on the board, got %d", c.Spawn.InitialTiles))
	}
	if c.Spawn.FourProbability < 0 || c.Spawn.FourProbability > 1 {
		errs = append(errs, fmt.Errorf("spawn.four_probability must be within [0, 1], got %g", c.Spawn.FourProbability))
	}
	switch c.Spawn.Progression.Type {
	case "", "none":
	case "score":
		if c.Spawn.Progression.FourMax < 0 || c.Spawn.Progression.FourMax > 1 {
			errs = append(errs, fmt.Errorf("spawn.progression.four_max must be within [0, 1], got %g", c.Spawn.Progression.FourMax))
		}
	default:
		errs = append(errs, fmt.Errorf("spawn.progression.type must be score or none, got %q", c.Spawn.Progression.Type))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}
