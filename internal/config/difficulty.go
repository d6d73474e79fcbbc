package config

import "math"

// SpawnCurve calculates the probability of spawning a 4 based on score.
type SpawnCurve struct {
	cfg     SpawnConfig
	enabled bool
}

// NewSpawnCurve creates a spawn curve from the spawn configuration.
func NewSpawnCurve(cfg SpawnConfig) *SpawnCurve {
	return &SpawnCurve{
		cfg:     cfg,
		enabled: cfg.Progression.Type == "score",
	}
}

// SetEnabled enables or disables progression.
func (c *SpawnCurve) SetEnabled(enabled bool) {
	c.enabled = enabled
}

// IsEnabled returns whether progression is active.
func (c *SpawnCurve) IsEnabled() bool {
	return c.enabled && c.cfg.Progression.Type == "score"
}

// Level returns the current progression level (0.0 to 1.0) based on score.
func (c *SpawnCurve) Level(score int) float64 {
	if !c.IsEnabled() {
		return 0
	}

	maxAt := float64(c.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}
	return clampF(float64(score)/maxAt, 0.0, 1.0)
}

// FourProbability returns the chance that the next spawned tile is a 4.
func (c *SpawnCurve) FourProbability(score int) float64 {
	base := clampF(c.cfg.FourProbability, 0.0, 1.0)
	if !c.IsEnabled() {
		return base
	}
	// Interpolate from the base probability toward FourMax
	target := clampF(c.cfg.Progression.FourMax, 0.0, 1.0)
	return base + c.Level(score)*(target-base)
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
