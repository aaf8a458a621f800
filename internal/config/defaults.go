package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the built-in configuration.
// It matches defaults/tetris.yaml and is used when the embedded file cannot be parsed.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Board: BoardConfig{
			Width:  10,
			Height: 20,
		},
		Timing: TimingConfig{
			InitialDropMs: 1000,
			DecreaseMs:    100,
			FloorMs:       50,
		},
		Scoring: ScoringConfig{
			Single:        100,
			Double:        300,
			Triple:        500,
			Tetris:        800,
			SoftDrop:      1,
			HardDrop:      2,
			LinesPerLevel: 10,
		},
		Display: DisplayConfig{
			ShowGhost: true,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultTetrisYAML
}
