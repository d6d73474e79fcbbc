package config

import (
	_ "embed"
)

//go:embed defaults/t2048.yaml
var defaultYAML []byte

// Default returns the built-in configuration: a classic 4x4 game to 2048.
func Default() Config {
	return Config{
		Board: BoardConfig{
			Size:     4,
			MaxPiece: 2048,
		},
		Rules: RulesConfig{
			CountStationarySlides: false,
		},
		Spawn: SpawnConfig{
			InitialTiles:    2,
			FourProbability: 0.10,
			Progression: ProgressionConfig{
				Type:    "score",
				MaxAt:   20000,
				FourMax: 0.20,
			},
		},
		Storage: StorageConfig{
			Path: "~/.t2048/scores.db",
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
